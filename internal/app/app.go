// Package app builds the shared runtime pieces every executable needs.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"studymate-agent/internal/config"
	"studymate-agent/internal/integrations/anthropic"
	"studymate-agent/internal/integrations/langchain"
	"studymate-agent/internal/integrations/openai"
	"studymate-agent/internal/integrations/paramstore"
	"studymate-agent/internal/usecase"
)

// GetterFactory lazily builds the parameter store client.
type GetterFactory func(ctx context.Context) (paramstore.Getter, error)

// NewLogger returns a JSON logger on stdout and installs it as the default.
func NewLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// SSMGetter loads the default AWS config chain and returns an SSM-backed getter.
func SSMGetter(ctx context.Context) (paramstore.Getter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: load AWS config: %w", err)
	}
	client, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return nil, fmt.Errorf("app: create SSM client: %w", err)
	}
	return client, nil
}

// ResolveAPIKey returns the key from the environment, falling back to the
// parameter store under cfg.ParamPrefix. The factory is only called when
// the environment has no key.
func ResolveAPIKey(ctx context.Context, cfg *config.Config, newGetter GetterFactory) (string, error) {
	if cfg.LLM.APIKey != "" {
		return cfg.LLM.APIKey, nil
	}
	if cfg.ParamPrefix == "" {
		return "", errors.New("app: no LLM credential configured")
	}
	if newGetter == nil {
		return "", errors.New("app: parameter store getter factory is nil")
	}
	getter, err := newGetter(ctx)
	if err != nil {
		return "", err
	}
	key, err := paramstore.FetchToken(ctx, getter, paramstore.TokenName(cfg.ParamPrefix))
	if err != nil {
		return "", fmt.Errorf("app: resolve LLM credential: %w", err)
	}
	return key, nil
}

// NewLLMClient builds the completion client for the configured provider.
func NewLLMClient(ctx context.Context, llm config.LLMConfig, apiKey string) (usecase.LLMClient, error) {
	switch llm.Provider {
	case config.ProviderGemini:
		return langchain.NewGemini(ctx, apiKey, llm.Model)
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithModel(llm.Model)}
		if llm.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(llm.BaseURL))
		}
		return openai.NewClient(apiKey, opts...)
	case config.ProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithModel(llm.Model)}
		if llm.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(llm.BaseURL))
		}
		return anthropic.NewClient(apiKey, opts...)
	default:
		return nil, fmt.Errorf("app: unsupported LLM provider %q", llm.Provider)
	}
}

// NewStudyService resolves the credential, builds the provider client and
// wraps it in the study service.
func NewStudyService(ctx context.Context, cfg *config.Config, newGetter GetterFactory, logger *slog.Logger) (*usecase.StudyService, error) {
	apiKey, err := ResolveAPIKey(ctx, cfg, newGetter)
	if err != nil {
		return nil, err
	}
	llm, err := NewLLMClient(ctx, cfg.LLM, apiKey)
	if err != nil {
		return nil, fmt.Errorf("app: create LLM client: %w", err)
	}
	logger.Info("LLM client ready", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	return usecase.NewStudyService(llm, cfg.LLM.Timeout, logger)
}
