package generator

import (
	"context"
	"log/slog"

	"storyquest/internal/models"
)

// TextModel is the outbound boundary to the generative provider. It takes a
// single prompt and returns free-form text. Implementations live in
// internal/gemini; tests supply their own.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Request carries the validated inputs of one generation.
type Request struct {
	Topic         string
	Subject       string
	MainCharacter string
}

// Resolver turns a generation request into a StoryData value. Provider and
// parse failures are absorbed by the fallback chain; Resolve never fails.
type Resolver struct {
	model  TextModel
	logger *slog.Logger
}

func NewResolver(model TextModel, logger *slog.Logger) *Resolver {
	return &Resolver{model: model, logger: logger}
}

// Resolve invokes the model once (no retry), tries to recover a structured
// story from its output, and otherwise selects a fallback. The returned
// story always has at least one panel.
func (r *Resolver) Resolve(ctx context.Context, req Request) models.StoryData {
	prompt := BuildStoryPrompt(req.Topic, req.Subject, req.MainCharacter)

	raw, err := r.model.GenerateText(ctx, prompt)
	if err != nil {
		r.logger.Warn("model call failed, using template story",
			"subject", req.Subject, "topic", req.Topic, "error", err)
		return fallbackStory(req)
	}

	story, err := ExtractStoryJSON(raw)
	if err != nil {
		r.logger.Warn("model output unparseable, using template story",
			"subject", req.Subject, "topic", req.Topic, "error", err)
		return fallbackStory(req)
	}
	return story
}

// fallbackStory is the pure selection over a failed parse: exact catalog
// match first, generic four-panel story otherwise.
func fallbackStory(req Request) models.StoryData {
	if story, ok := LookupTemplate(req.Subject, req.Topic); ok {
		return story
	}
	return GenericStory(req.Topic, req.Subject, req.MainCharacter)
}
