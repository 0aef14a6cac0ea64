package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storyquest/internal/models"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *models.UserProgress) error
	GetByUser(ctx context.Context, userID int64) (*models.UserProgress, error)
	Update(ctx context.Context, progress *models.UserProgress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, progress *models.UserProgress) error {
	if err := r.db.WithContext(ctx).Create(progress).Error; err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *progressRepository) GetByUser(ctx context.Context, userID int64) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &progress, nil
}

func (r *progressRepository) Update(ctx context.Context, progress *models.UserProgress) error {
	// Save gives upsert behavior, same as Create for a fresh record.
	if err := r.db.WithContext(ctx).Save(progress).Error; err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}
