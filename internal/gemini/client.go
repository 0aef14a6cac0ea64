package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel   = "gemini-1.5-flash"
	defaultTimeout = 60 * time.Second
)

var ErrEmptyResponse = errors.New("model returned no choices")

// Client wraps the OpenAI-compatible chat API exposed by Gemini. It makes a
// single completion call per request; retry policy is deliberately absent.
type Client struct {
	client *openai.Client
	model  string
}

type Option func(*config)

type config struct {
	baseURL string
	model   string
	timeout time.Duration
}

func WithBaseURL(url string) Option {
	return func(c *config) {
		if url != "" {
			c.baseURL = url
		}
	}
}

func WithModel(model string) Option {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a Gemini client from an API key and options.
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &config{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = cfg.baseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.timeout}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.model,
	}
}

// GenerateText sends one prompt and returns the raw text of the first choice.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
