package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyquest/internal/dto"
	"storyquest/internal/models"
	"storyquest/internal/repository"
)

func newProgressFixture(t *testing.T) (*progressService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	achievements := NewAchievementService(store.Achievements(), logger)
	svc := NewProgressService(store.Progress(), achievements, nil).(*progressService)
	return svc, store
}

func completion(userID int64, subject, topic string, minutes int) dto.UpdateProgressRequest {
	return dto.UpdateProgressRequest{
		UserID:           userID,
		Subject:          subject,
		Topic:            topic,
		StoryCompleted:   true,
		TimeSpentMinutes: minutes,
	}
}

func TestApplyAccumulatesTotalsAndSubjects(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, completion(1, "Math", "Addition", 10))
	require.NoError(t, err)

	progress, err := svc.Apply(ctx, completion(1, "Math", "Multiplication", 5))
	require.NoError(t, err)

	assert.Equal(t, 2, progress.TotalStoriesRead)
	assert.Equal(t, 15, progress.TotalTimeSpent)
	math := progress.SubjectProgress["Math"]
	assert.Equal(t, 2, math.StoriesCompleted)
	assert.ElementsMatch(t, []string{"Addition", "Multiplication"}, math.TopicsLearned)
	assert.Equal(t, 15, math.TimeSpent)
}

func TestApplyDoesNotDuplicateTopics(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, completion(1, "Math", "Addition", 5))
	require.NoError(t, err)
	progress, err := svc.Apply(ctx, completion(1, "Math", "Addition", 5))
	require.NoError(t, err)

	assert.Equal(t, []string{"Addition"}, progress.SubjectProgress["Math"].TopicsLearned)
}

func TestApplyStreakProgression(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	progress, err := svc.Apply(ctx, completion(1, "Math", "Addition", 5))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStreak)

	// Same day: streak unchanged.
	svc.now = func() time.Time { return day.Add(4 * time.Hour) }
	progress, err = svc.Apply(ctx, completion(1, "Science", "Plants", 5))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStreak)

	// Next day: streak extends.
	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }
	progress, err = svc.Apply(ctx, completion(1, "Math", "Shapes", 5))
	require.NoError(t, err)
	assert.Equal(t, 2, progress.CurrentStreak)

	// Two-day gap: streak resets.
	svc.now = func() time.Time { return day.AddDate(0, 0, 4) }
	progress, err = svc.Apply(ctx, completion(1, "Math", "Time", 5))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStreak)
}

func TestApplyGrantsFirstStoryOnce(t *testing.T) {
	svc, store := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, completion(1, "Math", "Addition", 5))
	require.NoError(t, err)
	_, err = svc.Apply(ctx, completion(1, "Math", "Multiplication", 5))
	require.NoError(t, err)

	achievements, err := store.Achievements().GetByUser(ctx, 1)
	require.NoError(t, err)

	var firstStory int
	for _, a := range achievements {
		if a.Type == models.AchievementFirstStory {
			firstStory++
		}
	}
	assert.Equal(t, 1, firstStory)
}

func TestApplyGrantsSubjectMaster(t *testing.T) {
	svc, store := newProgressFixture(t)
	ctx := context.Background()

	topics := []string{"Addition", "Subtraction", "Multiplication", "Division", "Fractions"}
	for _, topic := range topics {
		_, err := svc.Apply(ctx, completion(1, "Math", topic, 5))
		require.NoError(t, err)
	}

	achievements, err := store.Achievements().GetByUser(ctx, 1)
	require.NoError(t, err)

	types := make([]string, 0, len(achievements))
	for _, a := range achievements {
		types = append(types, a.Type)
	}
	assert.Contains(t, types, models.AchievementMathMaster)
}

func TestApplyTimeOnlyEvent(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	progress, err := svc.Apply(ctx, dto.UpdateProgressRequest{
		UserID: 2, Subject: "Science", TimeSpentMinutes: 12,
	})
	require.NoError(t, err)

	assert.Zero(t, progress.TotalStoriesRead)
	assert.Equal(t, 12, progress.TotalTimeSpent)
	assert.Equal(t, 12, progress.SubjectProgress["Science"].TimeSpent)
	assert.Zero(t, progress.SubjectProgress["Science"].StoriesCompleted)
}

func TestNextStreak(t *testing.T) {
	base := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, nextStreak(nil, 0, base))

	last := base
	assert.Equal(t, 3, nextStreak(&last, 3, base.Add(time.Hour)))

	// Late evening to early next morning still counts as consecutive days.
	nextMorning := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, nextStreak(&last, 3, nextMorning))

	assert.Equal(t, 1, nextStreak(&last, 3, base.AddDate(0, 0, 3)))
}

func TestNextStreakAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring-forward makes 2025-03-09 a 23-hour day; it is still the next
	// calendar day and extends the streak.
	last := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	next := time.Date(2025, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, 4, nextStreak(&last, 3, next))

	// Fall-back makes 2025-11-02 a 25-hour day; same rule applies.
	last = time.Date(2025, 11, 1, 12, 0, 0, 0, loc)
	next = time.Date(2025, 11, 2, 12, 0, 0, 0, loc)
	assert.Equal(t, 4, nextStreak(&last, 3, next))
}
