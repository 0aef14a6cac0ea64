package service

import (
	"context"
	"encoding/json"
	"fmt"

	"storyquest/internal/cache"
	"storyquest/internal/dto"
	"storyquest/internal/generator"
	"storyquest/internal/models"
	"storyquest/internal/repository"
)

type StoryService interface {
	Generate(ctx context.Context, req dto.GenerateStoryRequest) (*models.Story, error)
	GetByID(ctx context.Context, id int64) (*models.Story, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Story, error)
	GetByUserAndSubject(ctx context.Context, userID int64, subject string) ([]models.Story, error)
	Update(ctx context.Context, id int64, update dto.UpdateStoryRequest) (*models.Story, error)
}

type storyService struct {
	stories  repository.StoryRepository
	users    repository.UserRepository
	resolver *generator.Resolver
	cache    *cache.Cache
}

func NewStoryService(stories repository.StoryRepository, users repository.UserRepository, resolver *generator.Resolver, c *cache.Cache) StoryService {
	return &storyService{stories: stories, users: users, resolver: resolver, cache: c}
}

// Generate runs the story pipeline: load preferences, resolve a story
// (model call with template fallback), persist, return the stored record.
// Once inputs are valid the only failure mode left is the persistence write.
func (s *storyService) Generate(ctx context.Context, req dto.GenerateStoryRequest) (*models.Story, error) {
	var userFavorites []string
	if user, err := s.users.GetByID(ctx, req.UserID); err == nil {
		userFavorites = user.FavoriteCartoons
	}
	var requestFavorites []string
	if req.UserPreferences != nil {
		requestFavorites = req.UserPreferences.FavoriteCartoons
	}

	storyData := s.resolver.Resolve(ctx, generator.Request{
		Topic:         req.Topic,
		Subject:       req.Subject,
		MainCharacter: generator.MainCharacter(userFavorites, requestFavorites),
	})

	content, err := json.Marshal(storyData)
	if err != nil {
		return nil, fmt.Errorf("marshal story content: %w", err)
	}

	story := &models.Story{
		UserID:    req.UserID,
		Subject:   req.Subject,
		Topic:     req.Topic,
		Title:     storyData.Title,
		Content:   string(content),
		Panels:    storyData.Panels,
		IsLearned: false,
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}

	s.cache.SetStory(ctx, story)
	return story, nil
}

func (s *storyService) GetByID(ctx context.Context, id int64) (*models.Story, error) {
	if story, ok := s.cache.GetStory(ctx, id); ok {
		return story, nil
	}
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetStory(ctx, story)
	return story, nil
}

func (s *storyService) GetByUser(ctx context.Context, userID int64) ([]models.Story, error) {
	return s.stories.GetByUser(ctx, userID)
}

func (s *storyService) GetByUserAndSubject(ctx context.Context, userID int64, subject string) ([]models.Story, error) {
	return s.stories.GetByUserAndSubject(ctx, userID, subject)
}

// Update applies a partial update. Setting isLearned twice is a no-op the
// second time, not an error.
func (s *storyService) Update(ctx context.Context, id int64, update dto.UpdateStoryRequest) (*models.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		story.Title = *update.Title
	}
	if update.IsLearned != nil {
		story.IsLearned = *update.IsLearned
	}

	if err := s.stories.Update(ctx, story); err != nil {
		return nil, err
	}

	s.cache.InvalidateStory(ctx, id)
	return story, nil
}
