// Package langchain adapts any langchaingo model to the single-prompt
// completion interface used by the study service.
package langchain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const DefaultGeminiModel = "gemini-pro"

// Client completes prompts through a langchaingo model.
type Client struct {
	model llms.Model
	opts  []llms.CallOption
}

// New wraps model. opts are applied to every call.
func New(model llms.Model, opts ...llms.CallOption) (*Client, error) {
	if model == nil {
		return nil, errors.New("langchain: model must not be nil")
	}
	return &Client{model: model, opts: opts}, nil
}

// NewGemini builds a Client backed by Google's Gemini models.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("langchain: api key must not be empty")
	}
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("langchain: create gemini model: %w", err)
	}
	return New(llm)
}

// Complete sends prompt as a single human message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, c.opts...)
	if err != nil {
		return "", fmt.Errorf("langchain: generate: %w", err)
	}
	return completion, nil
}
