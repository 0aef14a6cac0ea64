package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"storyquest/internal/dto"
	"storyquest/internal/service"
)

func TestChatbotReturnsModelAnswer(t *testing.T) {
	model := &stubModel{output: "  Plants drink water through their roots! Try watering one and watch it grow.  "}
	svc := service.NewChatbotService(model, discardLogger())

	answer := svc.Answer(context.Background(), dto.ChatRequest{Message: "How do plants drink?"})
	assert.Equal(t, "Plants drink water through their roots! Try watering one and watch it grow.", answer)
}

func TestChatbotFallsBackOnFailure(t *testing.T) {
	cases := []struct {
		name  string
		model *stubModel
	}{
		{"provider error", &stubModel{err: errors.New("rate limit")}},
		{"blank reply", &stubModel{output: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewChatbotService(tc.model, discardLogger())
			answer := svc.Answer(context.Background(), dto.ChatRequest{Message: "Why is the sky blue?"})
			assert.NotEmpty(t, answer)
			assert.NotContains(t, answer, "error")
		})
	}
}
