package service

import (
	"context"

	"storyquest/internal/models"
	"storyquest/internal/repository"
)

type TextbookService interface {
	Create(ctx context.Context, textbook models.Textbook) (*models.Textbook, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Textbook, error)
	AddStory(ctx context.Context, textbookID, storyID int64) (*models.Textbook, error)
}

type textbookService struct {
	textbooks repository.TextbookRepository
}

func NewTextbookService(textbooks repository.TextbookRepository) TextbookService {
	return &textbookService{textbooks: textbooks}
}

func (s *textbookService) Create(ctx context.Context, textbook models.Textbook) (*models.Textbook, error) {
	if textbook.StoryIDs == nil {
		textbook.StoryIDs = []int64{}
	}
	if err := s.textbooks.Create(ctx, &textbook); err != nil {
		return nil, err
	}
	return &textbook, nil
}

func (s *textbookService) GetByUser(ctx context.Context, userID int64) ([]models.Textbook, error) {
	return s.textbooks.GetByUser(ctx, userID)
}

// AddStory appends a story id to the textbook's membership list. Adding a
// story that is already a member leaves the list unchanged.
func (s *textbookService) AddStory(ctx context.Context, textbookID, storyID int64) (*models.Textbook, error) {
	textbook, err := s.textbooks.GetByID(ctx, textbookID)
	if err != nil {
		return nil, err
	}

	for _, id := range textbook.StoryIDs {
		if id == storyID {
			return textbook, nil
		}
	}

	textbook.StoryIDs = append(textbook.StoryIDs, storyID)
	if err := s.textbooks.Update(ctx, textbook); err != nil {
		return nil, err
	}
	return textbook, nil
}
