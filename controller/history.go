package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cosmind-backend/logic"
	"cosmind-backend/models"
)

// HistoryController handles history browsing requests
type HistoryController struct {
	historyLogic *logic.HistoryLogic
}

func NewHistoryController(historyLogic *logic.HistoryLogic) *HistoryController {
	return &HistoryController{historyLogic: historyLogic}
}

// List handles GET /history/:kind
func (c *HistoryController) List(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	entries, err := c.historyLogic.List(userID, models.FeatureKind(ctx.Param("kind")))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// Remove handles DELETE /history/:kind/:id
func (c *HistoryController) Remove(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	entryID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := c.historyLogic.Remove(userID, models.FeatureKind(ctx.Param("kind")), entryID); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Clear handles DELETE /history/:kind
func (c *HistoryController) Clear(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	if err := c.historyLogic.Clear(userID, models.FeatureKind(ctx.Param("kind"))); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
