package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storyquest/internal/dto"
	"storyquest/internal/generator"
)

// fallbackAnswer is served whenever the model is unreachable or returns
// nothing usable; the chat widget never sees a provider error.
const fallbackAnswer = "That's a great question! Ask a grown-up or your teacher to explore it together, and try asking me again in a little while!"

// ChatbotService answers the study-buddy widget's questions. Same discipline
// as story generation: the provider is untrusted and failures are absorbed.
type ChatbotService interface {
	Answer(ctx context.Context, req dto.ChatRequest) string
}

type chatbotService struct {
	model  generator.TextModel
	logger *slog.Logger
}

func NewChatbotService(model generator.TextModel, logger *slog.Logger) ChatbotService {
	return &chatbotService{model: model, logger: logger}
}

func (s *chatbotService) Answer(ctx context.Context, req dto.ChatRequest) string {
	reply, err := s.model.GenerateText(ctx, buildChatPrompt(req))
	if err != nil || strings.TrimSpace(reply) == "" {
		s.logger.Warn("chatbot model call failed, using fallback answer", "error", err)
		return fallbackAnswer
	}
	return strings.TrimSpace(reply)
}

func buildChatPrompt(req dto.ChatRequest) string {
	var sb strings.Builder
	sb.WriteString("You are Study Buddy, a friendly helper inside a children's learning app. ")
	sb.WriteString("Answer the child's question in 2-3 short, simple, encouraging sentences suitable for ages 5-12. ")
	sb.WriteString("Never include content that is not kid-appropriate.\n\n")

	if len(req.Context) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, msg := range req.Context {
			speaker := "Child"
			if msg.IsBot {
				speaker = "Study Buddy"
			}
			sb.WriteString(fmt.Sprintf("%s: %s\n", speaker, msg.Text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Question: %s\n", req.Message))
	return sb.String()
}
