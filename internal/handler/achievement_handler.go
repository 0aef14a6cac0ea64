package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storyquest/internal/dto"
	"storyquest/internal/service"
)

type AchievementHandler struct {
	achievementService service.AchievementService
}

func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

func (h *AchievementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.ListByUser)
	rg.POST("", h.Grant)
}

func (h *AchievementHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	achievements, err := h.achievementService.GetByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get achievements"})
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *AchievementHandler) Grant(c *gin.Context) {
	var req dto.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid achievement data", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	achievement, err := h.achievementService.Grant(ctx, req.ToModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create achievement"})
		return
	}
	c.JSON(http.StatusOK, achievement)
}
