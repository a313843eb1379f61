package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmind-backend/logic"
	"cosmind-backend/models"
)

// FeatureController handles the metered feature workflow requests
type FeatureController struct {
	workflow *logic.FeatureWorkflow
	transits *logic.TransitLogic
}

func NewFeatureController(workflow *logic.FeatureWorkflow, transits *logic.TransitLogic) *FeatureController {
	return &FeatureController{
		workflow: workflow,
		transits: transits,
	}
}

// Run handles POST /features/:kind
func (c *FeatureController) Run(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	kind := models.FeatureKind(ctx.Param("kind"))
	if !kind.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrUnknownFeature.Error()})
		return
	}

	type Request struct {
		Fields map[string]string `json:"fields"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.workflow.Run(ctx.Request.Context(), userID, kind, req.Fields)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Transits handles GET /transits
func (c *FeatureController) Transits(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	analysis, cached, err := c.transits.Current(ctx.Request.Context(), userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"analysis": analysis,
		"cached":   cached,
	})
}
