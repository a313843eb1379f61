package logic

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"cosmind-backend/models"
	"cosmind-backend/pkg"
)

// Stage is one state of the per-request workflow. Transitions are strictly
// sequential; any failure before StageCommitting aborts with no debit.
type Stage string

const (
	StageIdle               Stage = "idle"
	StageValidating         Stage = "validating"
	StageAuthorizing        Stage = "authorizing"
	StageBuilding           Stage = "building"
	StageCalling            Stage = "calling"
	StageValidatingResponse Stage = "validating_response"
	StageCommitting         Stage = "committing"
	StageRecording          Stage = "recording"
	StageDone               Stage = "done"
	StageFailed             Stage = "failed"
)

// Completer is the gateway boundary. *pkg.LLMClient satisfies it.
type Completer interface {
	Complete(ctx context.Context, messages []pkg.RequestMessage, expectJSON bool) (string, error)
	Model() string
}

// HistoryStore persists feature results. *dao.HistoryDAO satisfies it.
type HistoryStore interface {
	AppendEntry(userID uint64, feature models.FeatureKind, result string) (*models.HistoryEntry, error)
}

// ChatStore persists the mystic chat thread. *dao.ChatDAO satisfies it.
type ChatStore interface {
	CreateMessage(userID uint64, role, content string, tokensUsed int64) (*models.ChatMessage, error)
	GetMessages(userID uint64) ([]models.ChatMessage, error)
}

// ActivityStore logs successful feature uses. *dao.ActivityDAO satisfies it.
type ActivityStore interface {
	SaveActivity(userID uint64, feature models.FeatureKind, tokensUsed int64) error
}

// WorkflowResult is the outcome of one metered feature request. Trace holds
// every stage the request passed through, in order, so callers and tests can
// inspect where a request ended up.
type WorkflowResult struct {
	Feature     models.FeatureKind `json:"feature"`
	Record      interface{}        `json:"record"`
	Raw         string             `json:"-"`
	Model       string             `json:"model"`
	TokensSpent int64              `json:"tokens_spent"`
	Balance     int64              `json:"balance"`
	Trace       []Stage            `json:"-"`
}

// maxChatContext bounds how many prior thread messages are replayed into a
// chat request.
const maxChatContext = 20

// FeatureWorkflow orchestrates one metered AI request end to end:
// validate -> authorize -> build -> call -> validate response -> commit ->
// record. The debit happens only after a validated response, so a failed
// call never costs the user anything.
type FeatureWorkflow struct {
	ledger   *CreditLedger
	llm      Completer
	history  HistoryStore
	chat     ChatStore
	activity ActivityStore
	logger   *zap.Logger
}

func NewFeatureWorkflow(
	ledger *CreditLedger,
	llm Completer,
	history HistoryStore,
	chat ChatStore,
	activity ActivityStore,
	logger *zap.Logger,
) *FeatureWorkflow {
	return &FeatureWorkflow{
		ledger:   ledger,
		llm:      llm,
		history:  history,
		chat:     chat,
		activity: activity,
		logger:   logger,
	}
}

// Run executes the workflow for one user action. On failure the returned
// result still carries the stage trace; the balance is untouched unless the
// trace reached StageCommitting.
func (w *FeatureWorkflow) Run(ctx context.Context, userID uint64, kind models.FeatureKind, fields map[string]string) (WorkflowResult, error) {
	result := WorkflowResult{Feature: kind, Trace: []Stage{StageIdle}}
	advance := func(s Stage) { result.Trace = append(result.Trace, s) }
	fail := func(err error) (WorkflowResult, error) {
		advance(StageFailed)
		return result, err
	}

	advance(StageValidating)
	if err := ValidateFields(kind, fields); err != nil {
		return fail(err)
	}
	cost := kind.Cost()

	// One authorize+commit span in flight per user. Held across the call so
	// a concurrent request cannot authorize against a balance this request
	// is about to debit.
	release := w.ledger.Acquire(userID)
	defer release()

	advance(StageAuthorizing)
	ok, err := w.ledger.Authorize(userID, cost)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(models.ErrInsufficientTokens)
	}

	advance(StageBuilding)
	date := time.Now().Format("2006-01-02")
	system, user, err := BuildPrompt(kind, fields, date)
	if err != nil {
		return fail(err)
	}
	messages, err := w.buildMessages(userID, kind, system, user)
	if err != nil {
		return fail(err)
	}

	advance(StageCalling)
	raw, err := w.llm.Complete(ctx, messages, kind.ExpectsJSON())
	if err != nil {
		w.logger.Warn("gateway call failed",
			zap.String("feature", string(kind)),
			zap.Uint64("user_id", userID),
			zap.Error(err))
		return fail(err)
	}
	result.Raw = raw

	advance(StageValidatingResponse)
	record, err := ParseResult(kind, raw)
	if err != nil {
		w.logger.Warn("response validation failed",
			zap.String("feature", string(kind)),
			zap.Uint64("user_id", userID),
			zap.Error(err))
		return fail(err)
	}
	w.stamp(kind, record, fields, date)

	advance(StageCommitting)
	balance, err := w.ledger.Commit(userID, cost)
	if err != nil {
		return fail(err)
	}
	result.TokensSpent = cost
	result.Balance = balance
	result.Record = record
	result.Model = w.llm.Model()

	// A paid-for answer is never undone because recording failed; log and
	// carry on.
	advance(StageRecording)
	w.record(userID, kind, fields, raw, record, cost)

	advance(StageDone)
	return result, nil
}

// buildMessages assembles the request message list. Chat replays the recent
// thread so the model keeps conversational context.
func (w *FeatureWorkflow) buildMessages(userID uint64, kind models.FeatureKind, system, user string) ([]pkg.RequestMessage, error) {
	messages := []pkg.RequestMessage{{Role: "system", Content: system}}

	if kind == models.FeatureChat {
		thread, err := w.chat.GetMessages(userID)
		if err != nil {
			return nil, err
		}
		if len(thread) > maxChatContext {
			thread = thread[len(thread)-maxChatContext:]
		}
		for _, msg := range thread {
			messages = append(messages, pkg.RequestMessage{Role: msg.Role, Content: msg.Content})
		}
	}

	return append(messages, pkg.RequestMessage{Role: "user", Content: user}), nil
}

// stamp fills the caller-owned fields of a record the model does not return.
func (w *FeatureWorkflow) stamp(kind models.FeatureKind, record interface{}, fields map[string]string, date string) {
	switch kind {
	case models.FeatureHoroscope:
		if reading, ok := record.(*models.HoroscopeReading); ok {
			reading.Sign = fields["sign"]
			reading.Date = date
		}
	case models.FeatureTransits:
		if analysis, ok := record.(*models.TransitAnalysis); ok {
			analysis.CurrentDate = date
		}
	}
}

func (w *FeatureWorkflow) record(userID uint64, kind models.FeatureKind, fields map[string]string, raw string, record interface{}, cost int64) {
	if kind == models.FeatureChat {
		if _, err := w.chat.CreateMessage(userID, "user", fields["message"], 0); err != nil {
			w.logger.Error("failed to record chat ask", zap.Uint64("user_id", userID), zap.Error(err))
		}
		if _, err := w.chat.CreateMessage(userID, "assistant", raw, cost); err != nil {
			w.logger.Error("failed to record chat answer", zap.Uint64("user_id", userID), zap.Error(err))
		}
	} else {
		serialized, err := json.Marshal(record)
		if err != nil {
			w.logger.Error("failed to serialize result", zap.String("feature", string(kind)), zap.Error(err))
		} else if _, err := w.history.AppendEntry(userID, kind, string(serialized)); err != nil {
			w.logger.Error("failed to append history", zap.String("feature", string(kind)), zap.Error(err))
		}
	}

	if err := w.activity.SaveActivity(userID, kind, cost); err != nil {
		w.logger.Error("failed to log activity", zap.Uint64("user_id", userID), zap.Error(err))
	}
}
