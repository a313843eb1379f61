package logic

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cosmind-backend/models"
)

// StarterTokens is the free balance granted on signup.
const StarterTokens = 5

// UserStore is the persistence needed by auth. *dao.UserDAO satisfies it.
type UserStore interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint64) (*models.User, error)
}

// AuthLogic handles account registration and JWT login
type AuthLogic struct {
	users   UserStore
	secret  string
	expHour int
}

func NewAuthLogic(users UserStore, secret string, expHour int) *AuthLogic {
	return &AuthLogic{
		users:   users,
		secret:  secret,
		expHour: expHour,
	}
}

// RegisterInput holds the signup form.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	ZodiacSign string
	BirthDate  string
}

// Register creates an account with the starter token balance.
func (l *AuthLogic) Register(in RegisterInput) (*models.User, error) {
	_, err := l.users.GetUserByEmail(in.Email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		ZodiacSign:   in.ZodiacSign,
		BirthDate:    in.BirthDate,
		Tokens:       StarterTokens,
	}
	return l.users.CreateUser(user)
}

// Login verifies credentials and returns the user with a signed session
// token.
func (l *AuthLogic) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := l.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, models.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, models.ErrInvalidCredentials
	}

	token, expireAt, err := l.generateJWT(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// GetUser retrieves the current account
func (l *AuthLogic) GetUser(userID uint64) (*models.User, error) {
	return l.users.GetUserByID(userID)
}

func (l *AuthLogic) generateJWT(userID uint64) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(l.expHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expireAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(l.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expireAt, nil
}
