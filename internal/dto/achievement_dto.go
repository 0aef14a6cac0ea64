package dto

import "storyquest/internal/models"

type CreateAchievementRequest struct {
	UserID      int64  `json:"userId" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}

func (d CreateAchievementRequest) ToModel() models.Achievement {
	return models.Achievement{
		UserID:      d.UserID,
		Type:        d.Type,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
	}
}
