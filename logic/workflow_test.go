package logic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cosmind-backend/logic"
	"cosmind-backend/models"
	"cosmind-backend/pkg"
)

type fakeCompleter struct {
	response      string
	err           error
	calls         int
	gotMessages   []pkg.RequestMessage
	gotExpectJSON bool
}

func (f *fakeCompleter) Complete(_ context.Context, messages []pkg.RequestMessage, expectJSON bool) (string, error) {
	f.calls++
	f.gotMessages = messages
	f.gotExpectJSON = expectJSON
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompleter) Model() string { return "test-model" }

type fakeHistory struct {
	entries []models.HistoryEntry
	err     error
}

func (f *fakeHistory) AppendEntry(userID uint64, feature models.FeatureKind, result string) (*models.HistoryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entry := models.HistoryEntry{
		ID:      uint64(len(f.entries) + 1),
		UserID:  userID,
		Feature: feature,
		Result:  result,
	}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

type fakeChat struct {
	messages []models.ChatMessage
	err      error
}

func (f *fakeChat) CreateMessage(userID uint64, role, content string, tokensUsed int64) (*models.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	msg := models.ChatMessage{
		ID:         uint64(len(f.messages) + 1),
		UserID:     userID,
		Role:       role,
		Content:    content,
		TokensUsed: tokensUsed,
	}
	f.messages = append(f.messages, msg)
	return &msg, nil
}

func (f *fakeChat) GetMessages(userID uint64) ([]models.ChatMessage, error) {
	return f.messages, nil
}

type fakeActivity struct {
	records []models.ActivityRecord
	err     error
}

func (f *fakeActivity) SaveActivity(userID uint64, feature models.FeatureKind, tokensUsed int64) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, models.ActivityRecord{
		UserID: userID, Feature: feature, TokensUsed: tokensUsed,
	})
	return nil
}

type workflowFixture struct {
	store    *fakeLedgerStore
	llm      *fakeCompleter
	history  *fakeHistory
	chat     *fakeChat
	activity *fakeActivity
	workflow *logic.FeatureWorkflow
}

func newWorkflowFixture(balance int64, llm *fakeCompleter) *workflowFixture {
	f := &workflowFixture{
		store:    newFakeLedgerStore(map[uint64]int64{1: balance}),
		llm:      llm,
		history:  &fakeHistory{},
		chat:     &fakeChat{},
		activity: &fakeActivity{},
	}
	f.workflow = logic.NewFeatureWorkflow(
		logic.NewCreditLedger(f.store),
		f.llm, f.history, f.chat, f.activity,
		zap.NewNop(),
	)
	return f
}

func horoscopeFields() map[string]string {
	return map[string]string{"name": "Luna", "sign": "scorpio"}
}

func TestWorkflow_Success(t *testing.T) {
	llm := &fakeCompleter{response: validHoroscopeJSON(t, nil)}
	f := newWorkflowFixture(5, llm)

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, horoscopeFields())
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.TokensSpent)
	assert.Equal(t, int64(4), result.Balance)
	assert.Equal(t, "test-model", result.Model)
	assert.True(t, llm.gotExpectJSON)

	reading, ok := result.Record.(*models.HoroscopeReading)
	require.True(t, ok)
	assert.Equal(t, "scorpio", reading.Sign)
	assert.NotEmpty(t, reading.Date)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, models.FeatureHoroscope, f.history.entries[0].Feature)
	require.Len(t, f.activity.records, 1)
	assert.Equal(t, int64(1), f.activity.records[0].TokensUsed)

	assert.Equal(t, []logic.Stage{
		logic.StageIdle, logic.StageValidating, logic.StageAuthorizing,
		logic.StageBuilding, logic.StageCalling, logic.StageValidatingResponse,
		logic.StageCommitting, logic.StageRecording, logic.StageDone,
	}, result.Trace)
}

func TestWorkflow_InsufficientTokens(t *testing.T) {
	llm := &fakeCompleter{response: validHoroscopeJSON(t, nil)}
	f := newWorkflowFixture(0, llm)

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, horoscopeFields())
	assert.ErrorIs(t, err, models.ErrInsufficientTokens)

	// Refused before any network call, balance and history untouched.
	assert.Zero(t, llm.calls)
	assert.Equal(t, int64(0), f.store.balances[1])
	assert.Empty(t, f.history.entries)
	assert.Equal(t, logic.StageFailed, result.Trace[len(result.Trace)-1])
	assert.Contains(t, result.Trace, logic.StageAuthorizing)
	assert.NotContains(t, result.Trace, logic.StageCalling)
}

func TestWorkflow_MissingFieldFailsBeforeAuthorize(t *testing.T) {
	llm := &fakeCompleter{response: validHoroscopeJSON(t, nil)}
	f := newWorkflowFixture(5, llm)

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, map[string]string{"name": "Luna"})

	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Zero(t, llm.calls)
	assert.Equal(t, int64(5), f.store.balances[1])
	assert.Equal(t, []logic.Stage{logic.StageIdle, logic.StageValidating, logic.StageFailed}, result.Trace)
}

func TestWorkflow_MalformedResponseCostsNothing(t *testing.T) {
	llm := &fakeCompleter{response: "the cosmos is unclear"}
	f := newWorkflowFixture(5, llm)

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, horoscopeFields())

	var parseErr *models.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, models.ParseMalformedJSON, parseErr.Kind)

	assert.Equal(t, int64(5), f.store.balances[1])
	assert.Empty(t, f.history.entries)
	assert.Empty(t, f.activity.records)
	assert.Contains(t, result.Trace, logic.StageValidatingResponse)
	assert.NotContains(t, result.Trace, logic.StageCommitting)
}

func TestWorkflow_GatewayErrorCostsNothing(t *testing.T) {
	kinds := []models.GatewayErrorKind{
		models.GatewayNetworkFailure,
		models.GatewayRateLimited,
		models.GatewayUpstreamError,
		models.GatewayTimeout,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			llm := &fakeCompleter{err: &models.GatewayError{Kind: kind, Err: errors.New("boom")}}
			f := newWorkflowFixture(5, llm)

			result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, horoscopeFields())

			var gatewayErr *models.GatewayError
			require.ErrorAs(t, err, &gatewayErr)
			assert.Equal(t, kind, gatewayErr.Kind)
			assert.Equal(t, int64(5), f.store.balances[1])
			assert.Empty(t, f.history.entries)
			assert.NotContains(t, result.Trace, logic.StageCommitting)
		})
	}
}

func TestWorkflow_FeatureCosts(t *testing.T) {
	llm := &fakeCompleter{response: validCompatibilityJSON(t, nil)}
	f := newWorkflowFixture(5, llm)

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureCompatibility, map[string]string{
		"person1_name": "Ana", "person1_sign": "leo",
		"person2_name": "Bia", "person2_sign": "aries",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TokensSpent)
	assert.Equal(t, int64(2), result.Balance)
}

func TestWorkflow_Chat(t *testing.T) {
	t.Run("records both sides of the exchange", func(t *testing.T) {
		llm := &fakeCompleter{response: "Mercury retrograde invites reflection."}
		f := newWorkflowFixture(5, llm)

		result, err := f.workflow.Run(context.Background(), 1, models.FeatureChat, map[string]string{
			"message": "what about mercury retrograde?",
		})
		require.NoError(t, err)
		assert.False(t, llm.gotExpectJSON)

		reply, ok := result.Record.(*models.ChatReply)
		require.True(t, ok)
		assert.Equal(t, "Mercury retrograde invites reflection.", reply.Content)

		require.Len(t, f.chat.messages, 2)
		assert.Equal(t, "user", f.chat.messages[0].Role)
		assert.Equal(t, "what about mercury retrograde?", f.chat.messages[0].Content)
		assert.Equal(t, "assistant", f.chat.messages[1].Role)
		assert.Equal(t, int64(1), f.chat.messages[1].TokensUsed)
		assert.Empty(t, f.history.entries)
	})

	t.Run("replays the recent thread", func(t *testing.T) {
		llm := &fakeCompleter{response: "As I said, the stars favor patience."}
		f := newWorkflowFixture(5, llm)
		f.chat.messages = []models.ChatMessage{
			{ID: 1, UserID: 1, Role: "user", Content: "first question"},
			{ID: 2, UserID: 1, Role: "assistant", Content: "first answer"},
		}

		_, err := f.workflow.Run(context.Background(), 1, models.FeatureChat, map[string]string{
			"message": "and now?",
		})
		require.NoError(t, err)

		require.Len(t, llm.gotMessages, 4)
		assert.Equal(t, "system", llm.gotMessages[0].Role)
		assert.Equal(t, "first question", llm.gotMessages[1].Content)
		assert.Equal(t, "first answer", llm.gotMessages[2].Content)
		assert.Equal(t, "and now?", llm.gotMessages[3].Content)
	})
}

func TestWorkflow_RecordingFailureKeepsTheCharge(t *testing.T) {
	llm := &fakeCompleter{response: validHoroscopeJSON(t, nil)}
	f := newWorkflowFixture(5, llm)
	f.history.err = errors.New("disk full")

	result, err := f.workflow.Run(context.Background(), 1, models.FeatureHoroscope, horoscopeFields())
	require.NoError(t, err)

	// The paid-for answer stands even though history writing failed.
	assert.Equal(t, int64(4), result.Balance)
	assert.Equal(t, logic.StageDone, result.Trace[len(result.Trace)-1])
}

func TestWorkflow_UnknownFeature(t *testing.T) {
	f := newWorkflowFixture(5, &fakeCompleter{})

	_, err := f.workflow.Run(context.Background(), 1, "numerology", nil)
	assert.ErrorIs(t, err, models.ErrUnknownFeature)
}
