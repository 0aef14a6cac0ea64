package service

import (
	"context"
	"errors"
	"fmt"

	"storyquest/internal/models"
	"storyquest/internal/repository"
)

// UserService handles user registration and lookup. Registration is
// idempotent on externalId: posting the same external identity twice returns
// the already-stored record instead of erroring.
type UserService interface {
	Register(ctx context.Context, user models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

type userService struct {
	users    repository.UserRepository
	progress repository.ProgressRepository
}

func NewUserService(users repository.UserRepository, progress repository.ProgressRepository) UserService {
	return &userService{users: users, progress: progress}
}

func (s *userService) Register(ctx context.Context, user models.User) (*models.User, error) {
	existing, err := s.users.GetByExternalID(ctx, user.ExternalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	// Every user starts with a zeroed progress aggregate.
	progress := &models.UserProgress{
		UserID:          user.ID,
		SubjectProgress: map[string]models.SubjectStats{},
	}
	if err := s.progress.Create(ctx, progress); err != nil {
		return nil, fmt.Errorf("init progress: %w", err)
	}

	return &user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.users.GetByExternalID(ctx, externalID)
}
