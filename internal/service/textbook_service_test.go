package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyquest/internal/models"
	"storyquest/internal/repository"
	"storyquest/internal/service"
)

func TestAddStorySkipsDuplicates(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := service.NewTextbookService(store.Textbooks())
	ctx := context.Background()

	textbook, err := svc.Create(ctx, models.Textbook{UserID: 1, Name: "My Math Book", Subject: "Math"})
	require.NoError(t, err)
	assert.Empty(t, textbook.StoryIDs)

	updated, err := svc.AddStory(ctx, textbook.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, updated.StoryIDs)

	updated, err = svc.AddStory(ctx, textbook.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, updated.StoryIDs)

	updated, err = svc.AddStory(ctx, textbook.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, updated.StoryIDs)
}

func TestAddStoryUnknownTextbook(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := service.NewTextbookService(store.Textbooks())

	_, err := svc.AddStory(context.Background(), 5, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
