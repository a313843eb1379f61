package dao

import (
	"cosmind-backend/models"

	"gorm.io/gorm"
)

// PurchaseDAO handles purchase history storage
type PurchaseDAO struct {
	db *gorm.DB
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{db: db}
}

// SavePurchase persists a purchase record. Records are never mutated after
// creation.
func (d *PurchaseDAO) SavePurchase(record *models.PurchaseRecord) error {
	return d.db.Create(record).Error
}

// ListPurchases retrieves a user's purchases, oldest first
func (d *PurchaseDAO) ListPurchases(userID uint64) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	err := d.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
