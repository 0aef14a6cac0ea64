package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storyquest/internal/dto"
	"storyquest/internal/service"
)

type ChatbotHandler struct {
	chatbotService service.ChatbotService
}

func NewChatbotHandler(chatbotService service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

func (h *ChatbotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Ask)
}

// Ask answers one study-buddy question. The service guarantees a reply, so
// the only error path left is a malformed request.
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, dto.ChatResponse{Response: h.chatbotService.Answer(ctx, req)})
}
