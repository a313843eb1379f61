package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmind-backend/dao"
)

// ChatController handles chat thread requests
type ChatController struct {
	chatDAO *dao.ChatDAO
}

func NewChatController(chatDAO *dao.ChatDAO) *ChatController {
	return &ChatController{chatDAO: chatDAO}
}

// Messages handles GET /chat/messages
func (c *ChatController) Messages(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	messages, err := c.chatDAO.GetMessages(userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// Clear handles DELETE /chat/messages
func (c *ChatController) Clear(ctx *gin.Context) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return
	}

	if err := c.chatDAO.ClearMessages(userID); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
