package logic

import (
	"cosmind-backend/models"
)

// HistoryBrowser is the persistence needed for browsing history.
// *dao.HistoryDAO satisfies it.
type HistoryBrowser interface {
	ListEntries(userID uint64, feature models.FeatureKind) ([]models.HistoryEntry, error)
	RemoveEntry(userID uint64, feature models.FeatureKind, entryID uint64) error
	ClearEntries(userID uint64, feature models.FeatureKind) error
}

// HistoryLogic exposes per-feature history browsing
type HistoryLogic struct {
	history HistoryBrowser
}

func NewHistoryLogic(history HistoryBrowser) *HistoryLogic {
	return &HistoryLogic{history: history}
}

// List returns the feature's history in append order.
func (l *HistoryLogic) List(userID uint64, feature models.FeatureKind) ([]models.HistoryEntry, error) {
	if !feature.Valid() {
		return nil, models.ErrUnknownFeature
	}
	entries, err := l.history.ListEntries(userID, feature)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

// Remove deletes a single entry.
func (l *HistoryLogic) Remove(userID uint64, feature models.FeatureKind, entryID uint64) error {
	if !feature.Valid() {
		return models.ErrUnknownFeature
	}
	return l.history.RemoveEntry(userID, feature, entryID)
}

// Clear deletes the feature's whole history.
func (l *HistoryLogic) Clear(userID uint64, feature models.FeatureKind) error {
	if !feature.Valid() {
		return models.ErrUnknownFeature
	}
	return l.history.ClearEntries(userID, feature)
}
