package generator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyquest/internal/generator"
)

type stubModel struct {
	output string
	err    error
}

func (m *stubModel) GenerateText(_ context.Context, _ string) (string, error) {
	return m.output, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveUsesModelOutput(t *testing.T) {
	model := &stubModel{output: `Here is your story!
{
  "title": "Counting Coconuts",
  "panels": [
    {"character": "dora", "characterName": "Dora the Explorer", "text": "Let's count!", "background": "A beach"},
    {"character": "dora", "characterName": "Dora the Explorer", "text": "One, two, three!", "background": "Palm trees"}
  ]
}
Enjoy!`}
	r := generator.NewResolver(model, testLogger())

	story := r.Resolve(context.Background(), generator.Request{
		Topic: "Counting", Subject: "Math", MainCharacter: "Dora",
	})

	assert.Equal(t, "Counting Coconuts", story.Title)
	require.Len(t, story.Panels, 2)
	assert.Equal(t, "Let's count!", story.Panels[0].Text)
}

func TestResolveModelFailureUsesCatalog(t *testing.T) {
	model := &stubModel{err: errors.New("connection refused")}
	r := generator.NewResolver(model, testLogger())

	story := r.Resolve(context.Background(), generator.Request{
		Topic: "Addition", Subject: "Math", MainCharacter: "SpongeBob",
	})

	assert.Equal(t, "SpongeBob's Krabby Patty Math Adventure", story.Title)
	assert.NotEmpty(t, story.Panels)
}

func TestResolveUnparseableOutputUsesCatalog(t *testing.T) {
	model := &stubModel{output: "Sorry, I can't help with that."}
	r := generator.NewResolver(model, testLogger())

	story := r.Resolve(context.Background(), generator.Request{
		Topic: "Friendship", Subject: "Social", MainCharacter: "SpongeBob",
	})

	assert.Equal(t, "SpongeBob's Friendship Lesson", story.Title)
}

func TestResolveUncataloguedTopicUsesGenericStory(t *testing.T) {
	model := &stubModel{err: errors.New("timeout")}
	r := generator.NewResolver(model, testLogger())

	story := r.Resolve(context.Background(), generator.Request{
		Topic: "Geometry", Subject: "Math", MainCharacter: "Pikachu",
	})

	require.Len(t, story.Panels, 4)
	assert.Contains(t, story.Panels[0].Text, "Geometry")
	for _, panel := range story.Panels {
		assert.Equal(t, "Pikachu", panel.CharacterName)
	}
}

func TestResolveAlwaysReturnsAtLeastOnePanel(t *testing.T) {
	cases := []struct {
		name  string
		model *stubModel
	}{
		{"model error", &stubModel{err: errors.New("boom")}},
		{"empty output", &stubModel{output: ""}},
		{"truncated json", &stubModel{output: `{"title": "Oops", "panels": [`}},
		{"empty panels", &stubModel{output: `{"title": "Oops", "panels": []}`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := generator.NewResolver(tc.model, testLogger())
			story := r.Resolve(context.Background(), generator.Request{
				Topic: "Weather", Subject: "Science", MainCharacter: "Dora",
			})
			assert.NotEmpty(t, story.Title)
			assert.NotEmpty(t, story.Panels)
		})
	}
}

func TestCatalogLookupIsCaseSensitive(t *testing.T) {
	_, ok := generator.LookupTemplate("Math", "Addition")
	assert.True(t, ok)

	_, ok = generator.LookupTemplate("math", "Addition")
	assert.False(t, ok)

	_, ok = generator.LookupTemplate("Math", "addition")
	assert.False(t, ok)
}

func TestGenericStoryLowercasesCharacterTag(t *testing.T) {
	story := generator.GenericStory("Fractions", "Math", "SpongeBob")
	require.Len(t, story.Panels, 4)
	for _, panel := range story.Panels {
		assert.Equal(t, "spongebob", panel.Character)
		assert.Equal(t, "SpongeBob", panel.CharacterName)
	}
}
