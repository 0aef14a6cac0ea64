package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storyquest/internal/models"
)

type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id int64) (*models.Story, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Story, error)
	GetByUserAndSubject(ctx context.Context, userID int64, subject string) ([]models.Story, error)
	Update(ctx context.Context, story *models.Story) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id int64) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).First(&story, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get story: %w", err)
	}
	return &story, nil
}

func (r *storyRepository) GetByUser(ctx context.Context, userID int64) ([]models.Story, error) {
	var stories []models.Story
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("get user stories: %w", err)
	}
	return stories, nil
}

func (r *storyRepository) GetByUserAndSubject(ctx context.Context, userID int64, subject string) ([]models.Story, error) {
	var stories []models.Story
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject = ?", userID, subject).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("get stories by subject: %w", err)
	}
	return stories, nil
}

func (r *storyRepository) Update(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Save(story).Error; err != nil {
		return fmt.Errorf("update story: %w", err)
	}
	return nil
}
