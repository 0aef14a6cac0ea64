package generator

import (
	"encoding/json"
	"errors"
	"strings"

	"storyquest/internal/models"
)

var (
	// ErrNoJSON means the model output contained nothing that looks like a JSON object.
	ErrNoJSON = errors.New("no JSON object found in model output")
	// ErrBadShape means the output decoded but is not a usable story.
	ErrBadShape = errors.New("model output does not match story shape")
)

// ExtractStoryJSON recovers a StoryData value from free-form model output.
// The model is an untrusted text source: its reply usually wraps the JSON in
// prose or a markdown fence, so we take the substring from the first '{' to
// the last '}' and decode that. Any failure is reported to the caller, which
// falls back to the template catalog rather than propagating the error.
func ExtractStoryJSON(raw string) (models.StoryData, error) {
	var story models.StoryData

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return story, ErrNoJSON
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), &story); err != nil {
		return story, ErrBadShape
	}

	if story.Title == "" || len(story.Panels) == 0 {
		return story, ErrBadShape
	}
	for _, p := range story.Panels {
		if p.Text == "" {
			return story, ErrBadShape
		}
	}
	return story, nil
}
