package models

import "time"

// ChatMessage is one message of a user's mystic chat thread.
type ChatMessage struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"index;not null" json:"user_id"`
	Role       string    `gorm:"not null" json:"role"` // "user" for ask, "assistant" for answer
	Content    string    `gorm:"not null" json:"content"`
	TokensUsed int64     `json:"tokens_used,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityRecord logs one successful metered feature use.
type ActivityRecord struct {
	ID         uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64      `gorm:"index;not null" json:"user_id"`
	Feature    FeatureKind `gorm:"not null" json:"feature"`
	TokensUsed int64       `gorm:"not null" json:"tokens_used"`
	CreatedAt  time.Time   `json:"created_at"`
}
