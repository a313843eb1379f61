package dao

import (
	"cosmind-backend/models"

	"gorm.io/gorm"
)

// ActivityDAO handles the usage log storage
type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{db: db}
}

// SaveActivity records one successful metered feature use
func (d *ActivityDAO) SaveActivity(userID uint64, feature models.FeatureKind, tokensUsed int64) error {
	record := &models.ActivityRecord{
		UserID:     userID,
		Feature:    feature,
		TokensUsed: tokensUsed,
	}
	return d.db.Create(record).Error
}

// ListActivity retrieves a user's activity, newest first
func (d *ActivityDAO) ListActivity(userID uint64) ([]models.ActivityRecord, error) {
	var records []models.ActivityRecord
	err := d.db.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
