package models

import "time"

// HistoryEntry is one persisted feature result. Result holds the serialized
// result record; the list per (user, feature) is append-only and uncapped.
type HistoryEntry struct {
	ID        uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64      `gorm:"index;not null" json:"user_id"`
	Feature   FeatureKind `gorm:"index;not null" json:"feature"`
	Result    string      `gorm:"not null" json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}
