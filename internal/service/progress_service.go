package service

import (
	"context"
	"errors"
	"time"

	"storyquest/internal/cache"
	"storyquest/internal/dto"
	"storyquest/internal/models"
	"storyquest/internal/repository"
)

type ProgressService interface {
	GetByUser(ctx context.Context, userID int64) (*models.UserProgress, error)
	// Apply folds one learning event into the user's aggregate and runs
	// achievement evaluation over the result.
	Apply(ctx context.Context, event dto.UpdateProgressRequest) (*models.UserProgress, error)
}

type progressService struct {
	progress     repository.ProgressRepository
	achievements AchievementService
	cache        *cache.Cache
	now          func() time.Time
}

func NewProgressService(progress repository.ProgressRepository, achievements AchievementService, c *cache.Cache) ProgressService {
	return &progressService{
		progress:     progress,
		achievements: achievements,
		cache:        c,
		now:          time.Now,
	}
}

func (s *progressService) GetByUser(ctx context.Context, userID int64) (*models.UserProgress, error) {
	return s.progress.GetByUser(ctx, userID)
}

func (s *progressService) Apply(ctx context.Context, event dto.UpdateProgressRequest) (*models.UserProgress, error) {
	progress, err := s.progress.GetByUser(ctx, event.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		// Users created before progress bootstrapping existed have no row yet.
		progress = &models.UserProgress{
			UserID:          event.UserID,
			SubjectProgress: map[string]models.SubjectStats{},
		}
	} else if err != nil {
		return nil, err
	}
	if progress.SubjectProgress == nil {
		progress.SubjectProgress = map[string]models.SubjectStats{}
	}

	now := s.now()
	progress.CurrentStreak = nextStreak(progress.LastActiveDate, progress.CurrentStreak, now)
	progress.LastActiveDate = &now
	progress.TotalTimeSpent += event.TimeSpentMinutes

	var dailyStories int64
	if event.StoryCompleted {
		progress.TotalStoriesRead++
		dailyStories = s.cache.IncrDailyStories(ctx, event.UserID, now)

		if event.Subject != "" {
			stats := progress.SubjectProgress[event.Subject]
			stats.StoriesCompleted++
			stats.TimeSpent += event.TimeSpentMinutes
			if event.Topic != "" && !containsString(stats.TopicsLearned, event.Topic) {
				stats.TopicsLearned = append(stats.TopicsLearned, event.Topic)
			}
			progress.SubjectProgress[event.Subject] = stats
		}
	} else if event.Subject != "" && event.TimeSpentMinutes > 0 {
		stats := progress.SubjectProgress[event.Subject]
		stats.TimeSpent += event.TimeSpentMinutes
		progress.SubjectProgress[event.Subject] = stats
	}

	if err := s.progress.Update(ctx, progress); err != nil {
		return nil, err
	}

	if _, err := s.achievements.EvaluateAndGrant(ctx, progress, dailyStories); err != nil {
		return nil, err
	}
	return progress, nil
}

// nextStreak advances the day streak: same calendar day keeps it, the next
// day extends it, anything longer resets to 1. Days are compared as calendar
// dates, not 24-hour spans, so DST-shortened days still count.
func nextStreak(lastActive *time.Time, streak int, now time.Time) int {
	if lastActive == nil {
		return 1
	}
	last := dateOf(*lastActive)
	today := dateOf(now)
	switch {
	case today.Equal(last):
		if streak == 0 {
			return 1
		}
		return streak
	case today.Equal(last.AddDate(0, 0, 1)):
		return streak + 1
	default:
		return 1
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
