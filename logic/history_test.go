package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmind-backend/logic"
	"cosmind-backend/models"
)

type fakeHistoryBrowser struct {
	entries []models.HistoryEntry
}

func (f *fakeHistoryBrowser) ListEntries(userID uint64, feature models.FeatureKind) ([]models.HistoryEntry, error) {
	var out []models.HistoryEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Feature == feature {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHistoryBrowser) RemoveEntry(userID uint64, feature models.FeatureKind, entryID uint64) error {
	for i, e := range f.entries {
		if e.UserID == userID && e.Feature == feature && e.ID == entryID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return models.ErrEntryNotFound
}

func (f *fakeHistoryBrowser) ClearEntries(userID uint64, feature models.FeatureKind) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.UserID != userID || e.Feature != feature {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func TestHistoryLogic_List(t *testing.T) {
	browser := &fakeHistoryBrowser{entries: []models.HistoryEntry{
		{ID: 1, UserID: 1, Feature: models.FeatureHoroscope, Result: `{"reading":"a"}`},
		{ID: 2, UserID: 1, Feature: models.FeatureRitual, Result: `{"title":"b"}`},
		{ID: 3, UserID: 2, Feature: models.FeatureHoroscope, Result: `{"reading":"c"}`},
	}}
	l := logic.NewHistoryLogic(browser)

	entries, err := l.List(1, models.FeatureHoroscope)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(1), entries[0].ID)
}

func TestHistoryLogic_ListEmptyIsNotNil(t *testing.T) {
	l := logic.NewHistoryLogic(&fakeHistoryBrowser{})

	entries, err := l.List(1, models.FeatureCareer)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestHistoryLogic_UnknownFeature(t *testing.T) {
	l := logic.NewHistoryLogic(&fakeHistoryBrowser{})

	_, err := l.List(1, "numerology")
	assert.ErrorIs(t, err, models.ErrUnknownFeature)
	assert.ErrorIs(t, l.Remove(1, "numerology", 1), models.ErrUnknownFeature)
	assert.ErrorIs(t, l.Clear(1, "numerology"), models.ErrUnknownFeature)
}

func TestHistoryLogic_Remove(t *testing.T) {
	browser := &fakeHistoryBrowser{entries: []models.HistoryEntry{
		{ID: 1, UserID: 1, Feature: models.FeatureHoroscope},
		{ID: 2, UserID: 1, Feature: models.FeatureHoroscope},
	}}
	l := logic.NewHistoryLogic(browser)

	require.NoError(t, l.Remove(1, models.FeatureHoroscope, 1))

	entries, err := l.List(1, models.FeatureHoroscope)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(2), entries[0].ID)

	assert.ErrorIs(t, l.Remove(1, models.FeatureHoroscope, 99), models.ErrEntryNotFound)
}

func TestHistoryLogic_Clear(t *testing.T) {
	browser := &fakeHistoryBrowser{entries: []models.HistoryEntry{
		{ID: 1, UserID: 1, Feature: models.FeatureHoroscope},
		{ID: 2, UserID: 1, Feature: models.FeatureRitual},
	}}
	l := logic.NewHistoryLogic(browser)

	require.NoError(t, l.Clear(1, models.FeatureHoroscope))

	horoscopes, err := l.List(1, models.FeatureHoroscope)
	require.NoError(t, err)
	assert.Empty(t, horoscopes)

	rituals, err := l.List(1, models.FeatureRitual)
	require.NoError(t, err)
	assert.Len(t, rituals, 1)
}
