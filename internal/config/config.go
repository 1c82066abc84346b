// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names an LLM backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

var defaultModels = map[Provider]string{
	ProviderGemini:    "gemini-pro",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

var providerKeyEnv = map[Provider]string{
	ProviderGemini:    "GOOGLE_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// Config holds all application configuration.
type Config struct {
	Port        string
	LLM         LLMConfig
	ParamPrefix string
	Harness     HarnessConfig
	LogLevel    slog.Level
}

// LLMConfig selects and authenticates the completion backend.
type LLMConfig struct {
	Provider Provider
	Model    string
	APIKey   string // may be empty when ParamPrefix supplies it
	BaseURL  string
	Timeout  time.Duration
}

// HarnessConfig controls the self-test agent in the bureau.
type HarnessConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", string(ProviderGemini)))))

	apiKey := strings.TrimSpace(getEnv("LLM_API_KEY", ""))
	if apiKey == "" {
		if name, ok := providerKeyEnv[provider]; ok {
			apiKey = strings.TrimSpace(getEnv(name, ""))
		}
	}
	model := strings.TrimSpace(getEnv("LLM_MODEL", ""))
	if model == "" {
		model = defaultModels[provider]
	}

	timeout, err := getEnvDuration("LLM_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	harnessEnabled, err := getEnvBool("HARNESS_ENABLED", true)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	harnessInterval, err := getEnvDuration("HARNESS_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := parseLevel(getEnv("LOG_LEVEL", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		LLM: LLMConfig{
			Provider: provider,
			Model:    model,
			APIKey:   apiKey,
			BaseURL:  strings.TrimSpace(getEnv("LLM_BASE_URL", "")),
			Timeout:  timeout,
		},
		ParamPrefix: strings.TrimSpace(getEnv("PARAM_PREFIX", "")),
		Harness: HarnessConfig{
			Enabled:  harnessEnabled,
			Interval: harnessInterval,
		},
		LogLevel: level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("LLM_PROVIDER %q is not one of gemini, openai, anthropic", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be > 0")
	}
	if c.LLM.APIKey == "" && c.ParamPrefix == "" {
		return fmt.Errorf("no LLM credential: set LLM_API_KEY, %s or PARAM_PREFIX", providerKeyEnv[c.LLM.Provider])
	}
	if c.Harness.Enabled && c.Harness.Interval <= 0 {
		return fmt.Errorf("HARNESS_INTERVAL must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvBool returns fallback when key is unset or blank.
func getEnvBool(key string, fallback bool) (bool, error) {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "":
		return fallback, nil
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
}

// getEnvDuration accepts Go durations ("90s") or bare seconds ("90").
func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return 0, fmt.Errorf("%s: invalid duration %q", key, value)
}

// parseLevel defaults to info for an empty string.
func parseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: invalid level %q", s)
	}
	return level, nil
}
