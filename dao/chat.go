package dao

import (
	"cosmind-backend/models"

	"gorm.io/gorm"
)

// ChatDAO handles chat thread database operations
type ChatDAO struct {
	db *gorm.DB
}

func NewChatDAO(db *gorm.DB) *ChatDAO {
	return &ChatDAO{db: db}
}

// CreateMessage appends a message to the user's thread
func (d *ChatDAO) CreateMessage(userID uint64, role, content string, tokensUsed int64) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		UserID:     userID,
		Role:       role,
		Content:    content,
		TokensUsed: tokensUsed,
	}
	if err := d.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessages retrieves the user's thread in chronological order
func (d *ChatDAO) GetMessages(userID uint64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := d.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ClearMessages deletes the user's thread
func (d *ChatDAO) ClearMessages(userID uint64) error {
	return d.db.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
}
