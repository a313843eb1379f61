package dao

import (
	"cosmind-backend/models"

	"gorm.io/gorm"
)

// HistoryDAO handles feature history database operations
type HistoryDAO struct {
	db *gorm.DB
}

func NewHistoryDAO(db *gorm.DB) *HistoryDAO {
	return &HistoryDAO{db: db}
}

// AppendEntry adds a result to the user's history for a feature
func (d *HistoryDAO) AppendEntry(userID uint64, feature models.FeatureKind, result string) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		UserID:  userID,
		Feature: feature,
		Result:  result,
	}
	if err := d.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves the history for a feature in append order
func (d *HistoryDAO) ListEntries(userID uint64, feature models.FeatureKind) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := d.db.Where("user_id = ? AND feature = ?", userID, feature).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveEntry deletes a single entry by id
func (d *HistoryDAO) RemoveEntry(userID uint64, feature models.FeatureKind, entryID uint64) error {
	res := d.db.Where("user_id = ? AND feature = ? AND id = ?", userID, feature, entryID).
		Delete(&models.HistoryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrEntryNotFound
	}
	return nil
}

// ClearEntries deletes the whole history of a feature
func (d *HistoryDAO) ClearEntries(userID uint64, feature models.FeatureKind) error {
	return d.db.Where("user_id = ? AND feature = ?", userID, feature).
		Delete(&models.HistoryEntry{}).Error
}
