package controller

import (
	"errors"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cosmind-backend/models"
)

// currentUserID extracts the authenticated user id from the JWT claims the
// auth middleware stashed in the context.
func currentUserID(c *gin.Context) (uint64, error) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return 0, errors.New("user not found in context")
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user claims"})
		return 0, errors.New("invalid user claims")
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_id not found in token"})
		return 0, errors.New("user_id not found in token")
	}

	return uint64(id), nil
}

// statusFor maps a workflow or logic error to its HTTP status.
func statusFor(err error) int {
	var missing *models.MissingFieldError
	var gateway *models.GatewayError
	var parse *models.ParseError

	switch {
	case errors.As(err, &missing), errors.Is(err, models.ErrUnknownFeature),
		errors.Is(err, models.ErrInvalidAmount), errors.Is(err, models.ErrPackageNotFound):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientTokens):
		return http.StatusPaymentRequired
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrEntryNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &gateway), errors.As(err, &parse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
