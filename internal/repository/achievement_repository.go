package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storyquest/internal/models"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByUser(ctx context.Context, userID int64) ([]models.Achievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	if err := r.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return fmt.Errorf("create achievement: %w", err)
	}
	return nil
}

func (r *achievementRepository) GetByUser(ctx context.Context, userID int64) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("get user achievements: %w", err)
	}
	return achievements, nil
}
