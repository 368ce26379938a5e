// Package planner produces the free-form day-by-day trip plan text that the
// parser package turns into structured activities. It is the only package
// that talks to the text-completion service.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/tripforge/backend/internal/domain"
)

// Client wraps the OpenAI chat-completion API for itinerary generation.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// Option customizes a Client. Defaults suit production use; tests override
// the underlying API client to point at a local server.
type Option func(*Client)

// WithModel overrides the completion model (default gpt-3.5-turbo).
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at an alternative API endpoint.
// Used by tests to talk to an httptest server.
func WithBaseURL(apiKey, baseURL string) Option {
	return func(c *Client) {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = baseURL
		c.client = openai.NewClientWithConfig(cfg)
	}
}

// New constructs a Client. The API key is required — there is no offline
// mode; callers that cannot reach the completion service should not be
// constructing a planner at all.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("planner.New: API key is required")
	}

	c := &Client{
		client:      openai.NewClient(apiKey),
		model:       openai.GPT3Dot5Turbo,
		temperature: 0.7,
		maxTokens:   3000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GeneratePlan asks the completion service for a markdown-formatted
// day-by-day plan matching the request. The returned text carries no schema
// guarantee — downstream parsing must tolerate anything.
//
// Failures and empty completions are wrapped in domain.ErrUpstream so
// handlers can distinguish them from local errors.
func (c *Client) GeneratePlan(ctx context.Context, req domain.GenerateRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("planner.Client.GeneratePlan: %w: %v", domain.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("planner.Client.GeneratePlan: %w: empty completion", domain.ErrUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}
