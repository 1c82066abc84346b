package langchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply    string
	err      error
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, opt := range options {
		opt(&f.options)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestNew_NilModel(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestNewGemini_EmptyKey(t *testing.T) {
	_, err := NewGemini(context.Background(), " ", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestComplete_SendsSingleHumanMessage(t *testing.T) {
	m := &fakeModel{reply: "Photosynthesis notes"}
	c, err := New(m, llms.WithTemperature(0.7))
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "Prepare notes")
	require.NoError(t, err)
	require.Equal(t, "Photosynthesis notes", out)

	require.Len(t, m.messages, 1)
	require.Equal(t, llms.ChatMessageTypeHuman, m.messages[0].Role)
	require.Equal(t, []llms.ContentPart{llms.TextContent{Text: "Prepare notes"}}, m.messages[0].Parts)
	require.InDelta(t, 0.7, m.options.Temperature, 1e-9)
}

func TestComplete_WrapsModelError(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	c, err := New(&fakeModel{err: sentinel})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hi")
	require.ErrorIs(t, err, sentinel)
	require.Contains(t, err.Error(), "langchain: generate")
}
