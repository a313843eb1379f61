package dao

import (
	"cosmind-backend/models"

	"gorm.io/gorm"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user with the starter token balance
func (d *UserDAO) CreateUser(user *models.User) (*models.User, error) {
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (d *UserDAO) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by primary key
func (d *UserDAO) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Balance returns the current token balance
func (d *UserDAO) Balance(userID uint64) (int64, error) {
	user, err := d.GetUserByID(userID)
	if err != nil {
		return 0, err
	}
	return user.Tokens, nil
}

// DebitTokens decrements the balance by cost. The update is guarded so the
// balance can never go below zero; when the guard fails no row is touched
// and ErrInsufficientTokens is returned.
func (d *UserDAO) DebitTokens(userID uint64, cost int64) (int64, error) {
	res := d.db.Model(&models.User{}).
		Where("id = ? AND tokens >= ?", userID, cost).
		Updates(map[string]interface{}{
			"tokens":          gorm.Expr("tokens - ?", cost),
			"tokens_consumed": gorm.Expr("tokens_consumed + ?", cost),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, models.ErrInsufficientTokens
	}
	return d.Balance(userID)
}

// GrantTokens increments the balance by amount
func (d *UserDAO) GrantTokens(userID uint64, amount int64) (int64, error) {
	res := d.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("tokens", gorm.Expr("tokens + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return d.Balance(userID)
}

// SaveUser persists user field changes
func (d *UserDAO) SaveUser(user *models.User) error {
	return d.db.Save(user).Error
}
