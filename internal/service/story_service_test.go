package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyquest/internal/dto"
	"storyquest/internal/generator"
	"storyquest/internal/models"
	"storyquest/internal/repository"
	"storyquest/internal/service"
)

type stubModel struct {
	output string
	err    error
}

func (m *stubModel) GenerateText(_ context.Context, _ string) (string, error) {
	return m.output, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoryService(t *testing.T, model generator.TextModel) (service.StoryService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	resolver := generator.NewResolver(model, discardLogger())
	return service.NewStoryService(store.Stories(), store.Users(), resolver, nil), store
}

func TestGeneratePersistsResolvedStory(t *testing.T) {
	model := &stubModel{output: `{"title": "Water Cycle Wonders", "panels": [{"character": "dora", "characterName": "Dora", "text": "Rain comes from clouds!", "background": "A rainy hillside"}]}`}
	svc, store := newStoryService(t, model)
	ctx := context.Background()

	story, err := svc.Generate(ctx, dto.GenerateStoryRequest{
		Topic: "Water Cycle", Subject: "Science", UserID: 7,
	})
	require.NoError(t, err)
	require.NotZero(t, story.ID)
	assert.Equal(t, "Water Cycle Wonders", story.Title)
	assert.False(t, story.IsLearned)

	// Content round-trips to the same structured payload the panels hold.
	var data models.StoryData
	require.NoError(t, json.Unmarshal([]byte(story.Content), &data))
	assert.Equal(t, story.Panels, data.Panels)

	saved, err := store.Stories().GetByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, story.Title, saved.Title)
}

func TestGeneratePrefersUserFavorites(t *testing.T) {
	model := &stubModel{err: errors.New("unreachable")}
	svc, store := newStoryService(t, model)
	ctx := context.Background()

	user := models.User{ExternalID: "ext-1", Name: "Ben", Age: 7, Class: "2nd", Location: "Leeds", FavoriteCartoons: []string{"Bluey"}}
	require.NoError(t, store.Users().Create(ctx, &user))

	story, err := svc.Generate(ctx, dto.GenerateStoryRequest{
		Topic: "Volcanoes", Subject: "Science", UserID: user.ID,
		UserPreferences: &dto.UserPreferences{FavoriteCartoons: []string{"Pikachu"}},
	})
	require.NoError(t, err)

	// Volcanoes is not in the catalog, so the generic fallback stars the
	// profile favorite, not the request preference.
	require.NotEmpty(t, story.Panels)
	assert.Equal(t, "Bluey", story.Panels[0].CharacterName)
}

func TestGenerateUnknownUserFallsBackToRequestPreferences(t *testing.T) {
	model := &stubModel{err: errors.New("unreachable")}
	svc, _ := newStoryService(t, model)

	story, err := svc.Generate(context.Background(), dto.GenerateStoryRequest{
		Topic: "Volcanoes", Subject: "Science", UserID: 99,
		UserPreferences: &dto.UserPreferences{FavoriteCartoons: []string{"Pikachu"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", story.Panels[0].CharacterName)
}

func TestUpdateIsLearnedIdempotent(t *testing.T) {
	model := &stubModel{err: errors.New("unreachable")}
	svc, _ := newStoryService(t, model)
	ctx := context.Background()

	story, err := svc.Generate(ctx, dto.GenerateStoryRequest{
		Topic: "Addition", Subject: "Math", UserID: 1,
	})
	require.NoError(t, err)

	learned := true
	first, err := svc.Update(ctx, story.ID, dto.UpdateStoryRequest{IsLearned: &learned})
	require.NoError(t, err)
	assert.True(t, first.IsLearned)

	second, err := svc.Update(ctx, story.ID, dto.UpdateStoryRequest{IsLearned: &learned})
	require.NoError(t, err)
	assert.True(t, second.IsLearned)
}

func TestUpdateUnknownStory(t *testing.T) {
	model := &stubModel{err: errors.New("unreachable")}
	svc, _ := newStoryService(t, model)

	learned := true
	_, err := svc.Update(context.Background(), 42, dto.UpdateStoryRequest{IsLearned: &learned})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByUserAndSubject(t *testing.T) {
	model := &stubModel{err: errors.New("unreachable")}
	svc, _ := newStoryService(t, model)
	ctx := context.Background()

	for _, subject := range []string{"Math", "Science", "Math"} {
		_, err := svc.Generate(ctx, dto.GenerateStoryRequest{
			Topic: "Topic", Subject: subject, UserID: 3,
		})
		require.NoError(t, err)
	}

	mathStories, err := svc.GetByUserAndSubject(ctx, 3, "Math")
	require.NoError(t, err)
	assert.Len(t, mathStories, 2)

	all, err := svc.GetByUser(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
