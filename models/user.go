package models

import (
	"time"
)

// User represents an account with its token balance
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Name           string    `gorm:"not null" json:"name"`
	ZodiacSign     string    `json:"zodiac_sign"`
	BirthDate      string    `json:"birth_date"`
	Tokens         int64     `gorm:"default:0" json:"tokens"`          // Current token balance
	TokensConsumed int64     `gorm:"default:0" json:"tokens_consumed"` // Total tokens consumed
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
