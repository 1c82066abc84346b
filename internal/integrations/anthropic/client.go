// Package anthropic completes prompts with the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 4096
)

// StatusError carries the HTTP status of a failed Messages call.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("anthropic: unexpected status %d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

func (e *StatusError) HTTPStatusCode() int { return e.StatusCode }

type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

type Option func(*settings)

type settings struct {
	model     string
	baseURL   string
	maxTokens int64
}

func WithModel(model string) Option {
	return func(s *settings) { s.model = strings.TrimSpace(model) }
}

func WithBaseURL(baseURL string) Option {
	return func(s *settings) { s.baseURL = strings.TrimSpace(baseURL) }
}

func WithMaxTokens(n int64) Option {
	return func(s *settings) { s.maxTokens = n }
}

// NewClient creates a Client. SDK retries are disabled so each Complete
// issues exactly one request.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic: api key must not be empty")
	}
	s := settings{model: DefaultModel, maxTokens: defaultMaxTokens}
	for _, opt := range opts {
		opt(&s)
	}
	if s.model == "" {
		s.model = DefaultModel
	}
	if s.maxTokens <= 0 {
		s.maxTokens = defaultMaxTokens
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if s.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(s.baseURL))
	}
	return &Client{
		client:    anthropic.NewClient(reqOpts...),
		model:     s.model,
		maxTokens: s.maxTokens,
	}, nil
}

// Complete sends prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", fmt.Errorf("anthropic: messages request: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic: no text content in response")
	}
	return sb.String(), nil
}
