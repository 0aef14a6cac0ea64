package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storyquest/internal/dto"
	"storyquest/internal/repository"
	"storyquest/internal/service"
)

type TextbookHandler struct {
	textbookService service.TextbookService
}

func NewTextbookHandler(textbookService service.TextbookService) *TextbookHandler {
	return &TextbookHandler{textbookService: textbookService}
}

func (h *TextbookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/user", h.ListByUser)
	rg.POST("/:id/stories", h.AddStory)
}

func (h *TextbookHandler) Create(c *gin.Context) {
	var req dto.CreateTextbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid textbook data", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	textbook, err := h.textbookService.Create(ctx, req.ToModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create textbook"})
		return
	}
	c.JSON(http.StatusOK, textbook)
}

func (h *TextbookHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	textbooks, err := h.textbookService.GetByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get textbooks"})
		return
	}
	c.JSON(http.StatusOK, textbooks)
}

func (h *TextbookHandler) AddStory(c *gin.Context) {
	textbookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid textbook id"})
		return
	}

	var req dto.AddStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	textbook, err := h.textbookService.AddStory(ctx, textbookID, req.StoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "textbook not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add story to textbook"})
		return
	}
	c.JSON(http.StatusOK, textbook)
}
