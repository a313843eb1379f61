package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmind-backend/dao"
	"cosmind-backend/logic"
)

// ShopController handles token shop requests
type ShopController struct {
	purchaseLogic *logic.PurchaseLogic
	activityDAO   *dao.ActivityDAO
}

func NewShopController(purchaseLogic *logic.PurchaseLogic, activityDAO *dao.ActivityDAO) *ShopController {
	return &ShopController{
		purchaseLogic: purchaseLogic,
		activityDAO:   activityDAO,
	}
}

// Packages handles GET /shop/packages
func (c *ShopController) Packages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.purchaseLogic.Packages())
}

// Checkout handles POST /shop/checkout
func (c *ShopController) Checkout(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	type Request struct {
		PackageID string `json:"package_id" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, balance, err := c.purchaseLogic.Checkout(userID, req.PackageID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"purchase": record,
		"balance":  balance,
	})
}

// Purchases handles GET /shop/purchases
func (c *ShopController) Purchases(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	records, err := c.purchaseLogic.ListPurchases(userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// Activity handles GET /activity
func (c *ShopController) Activity(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	records, err := c.activityDAO.ListActivity(userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
