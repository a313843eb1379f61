package models

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus is the settlement state of a purchase.
type PurchaseStatus string

const (
	PurchaseCompleted PurchaseStatus = "completed"
	PurchasePending   PurchaseStatus = "pending"
	PurchaseFailed    PurchaseStatus = "failed"
)

// PurchaseRecord is an immutable row of the purchase history.
type PurchaseRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint64         `gorm:"index;not null" json:"user_id"`
	PackageID string         `gorm:"not null" json:"package_id"`
	Tokens    int64          `gorm:"not null" json:"tokens"`
	Amount    float64        `gorm:"not null" json:"amount"`
	Status    PurchaseStatus `gorm:"not null" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// TokenPackage is a purchasable bundle from the shop catalog.
type TokenPackage struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Tokens        int64   `json:"tokens"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Popular       bool    `json:"popular"`
}
