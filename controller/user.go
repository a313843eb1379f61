package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmind-backend/logic"
)

// UserController handles HTTP requests
type UserController struct {
	authLogic *logic.AuthLogic
}

func NewUserController(authLogic *logic.AuthLogic) *UserController {
	return &UserController{authLogic: authLogic}
}

// Register handles POST /auth/register
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required,min=8"`
		Name       string `json:"name" binding:"required"`
		ZodiacSign string `json:"zodiac_sign"`
		BirthDate  string `json:"birth_date"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.authLogic.Register(logic.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		ZodiacSign: req.ZodiacSign,
		BirthDate:  req.BirthDate,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
func (c *UserController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expireAt, err := c.authLogic.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expire_at": expireAt,
	})
}

// Me handles GET /me
func (c *UserController) Me(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	user, err := c.authLogic.GetUser(userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
