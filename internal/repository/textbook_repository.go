package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storyquest/internal/models"
)

type TextbookRepository interface {
	Create(ctx context.Context, textbook *models.Textbook) error
	GetByID(ctx context.Context, id int64) (*models.Textbook, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Textbook, error)
	Update(ctx context.Context, textbook *models.Textbook) error
}

type textbookRepository struct {
	db *gorm.DB
}

func NewTextbookRepository(db *gorm.DB) TextbookRepository {
	return &textbookRepository{db: db}
}

func (r *textbookRepository) Create(ctx context.Context, textbook *models.Textbook) error {
	if err := r.db.WithContext(ctx).Create(textbook).Error; err != nil {
		return fmt.Errorf("create textbook: %w", err)
	}
	return nil
}

func (r *textbookRepository) GetByID(ctx context.Context, id int64) (*models.Textbook, error) {
	var textbook models.Textbook
	if err := r.db.WithContext(ctx).First(&textbook, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get textbook: %w", err)
	}
	return &textbook, nil
}

func (r *textbookRepository) GetByUser(ctx context.Context, userID int64) ([]models.Textbook, error) {
	var textbooks []models.Textbook
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&textbooks).Error; err != nil {
		return nil, fmt.Errorf("get user textbooks: %w", err)
	}
	return textbooks, nil
}

func (r *textbookRepository) Update(ctx context.Context, textbook *models.Textbook) error {
	if err := r.db.WithContext(ctx).Save(textbook).Error; err != nil {
		return fmt.Errorf("update textbook: %w", err)
	}
	return nil
}
