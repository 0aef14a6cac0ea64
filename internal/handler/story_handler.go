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

const (
	requestTimeout = 5 * time.Second
	// Generation waits on the external model, so it gets a longer budget.
	generateTimeout = 90 * time.Second
)

type StoryHandler struct {
	storyService service.StoryService
}

func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// RegisterRoutes registers the story-related routes.
func (h *StoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.Generate)
	rg.GET("/user", h.ListByUser)
	rg.GET("/subject/:subject", h.ListBySubject)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
}

func (h *StoryHandler) Generate(c *gin.Context) {
	var req dto.GenerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic, subject, and userId are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	story, err := h.storyService.Generate(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate story"})
		return
	}
	c.JSON(http.StatusOK, story)
}

func (h *StoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	story, err := h.storyService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get story"})
		return
	}
	c.JSON(http.StatusOK, story)
}

func (h *StoryHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	stories, err := h.storyService.GetByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) ListBySubject(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	stories, err := h.storyService.GetByUserAndSubject(ctx, userID, c.Param("subject"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stories by subject"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
		return
	}

	var req dto.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	story, err := h.storyService.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update story"})
		return
	}
	c.JSON(http.StatusOK, story)
}
