package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyquest/internal/models"
	"storyquest/internal/repository"
)

func TestMemoryCreateStampsTimestamps(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	user := &models.User{ExternalID: "ext-1", Name: "Maya", Age: 8, Class: "3rd Grade", Location: "Austin"}
	require.NoError(t, store.Users().Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	story := &models.Story{UserID: user.ID, Subject: "Math", Topic: "Addition", Title: "Counting Coconuts", Content: "{}"}
	require.NoError(t, store.Stories().Create(ctx, story))
	assert.False(t, story.CreatedAt.IsZero())

	textbook := &models.Textbook{UserID: user.ID, Name: "My Math Book", Subject: "Math"}
	require.NoError(t, store.Textbooks().Create(ctx, textbook))
	assert.False(t, textbook.CreatedAt.IsZero())

	achievement := &models.Achievement{UserID: user.ID, Type: models.AchievementFirstStory, Name: "First Adventure", Description: "Completed your very first story!", Icon: "🎯"}
	require.NoError(t, store.Achievements().Create(ctx, achievement))
	assert.False(t, achievement.UnlockedAt.IsZero())

	// The stored copy carries the same stamp the caller sees.
	saved, err := store.Stories().GetByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, story.CreatedAt, saved.CreatedAt)
}

func TestMemoryCreateKeepsExplicitTimestamp(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	stamp := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	story := &models.Story{UserID: 1, Subject: "Math", Topic: "Addition", Title: "Counting Coconuts", Content: "{}", CreatedAt: stamp}
	require.NoError(t, store.Stories().Create(ctx, story))
	assert.Equal(t, stamp, story.CreatedAt)
}

func TestMemoryStoriesListNewestFirst(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	titles := []string{"oldest", "middle", "newest"}
	for i, title := range titles {
		story := &models.Story{
			UserID: 1, Subject: "Math", Topic: "Addition",
			Title: title, Content: "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Stories().Create(ctx, story))
	}

	stories, err := store.Stories().GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, "newest", stories[0].Title)
	assert.Equal(t, "middle", stories[1].Title)
	assert.Equal(t, "oldest", stories[2].Title)
}

func TestMemoryAchievementsListNewestFirst(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	types := []string{models.AchievementFirstStory, models.AchievementMathMaster}
	for i, typ := range types {
		achievement := &models.Achievement{
			UserID: 1, Type: typ, Name: typ, Description: typ, Icon: "🌟",
			UnlockedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Achievements().Create(ctx, achievement))
	}

	achievements, err := store.Achievements().GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, achievements, 2)
	assert.Equal(t, models.AchievementMathMaster, achievements[0].Type)
	assert.Equal(t, models.AchievementFirstStory, achievements[1].Type)
}
