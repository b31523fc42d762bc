// ABOUTME: Configuration management for the digest pipeline with environment variable support
// ABOUTME: Resolves the LLM provider from available API keys and holds timeouts and limits

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported LLM providers, in key-resolution order.
const (
	ProviderPerplexity = "perplexity"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
)

// PerplexityBaseURL is the OpenAI-compatible endpoint Perplexity exposes.
const PerplexityBaseURL = "https://api.perplexity.ai"

// Default models per provider.
const (
	defaultPerplexityModel = "sonar"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultAnthropicModel  = "claude-3-5-haiku-latest"
)

// Config holds all application configuration
type Config struct {
	// LLM contains the summarization backend configuration
	LLM LLMConfig

	// Pipeline contains run-level settings
	Pipeline PipelineConfig

	// HTTP contains per-stage timeout settings
	HTTP HTTPConfig

	// LogLevel sets the logger verbosity (debug/info/warn/error)
	LogLevel string
}

// LLMConfig holds the summarization backend configuration
type LLMConfig struct {
	// Provider is the backend to use (perplexity/openai/anthropic)
	Provider string

	// APIKey authenticates against the selected provider
	APIKey string

	// Model is the model identifier sent with each request
	Model string

	// MaxInputLength bounds article text submitted per request, in characters
	MaxInputLength int

	// RequestsPerMinute caps summarization calls; zero means unlimited
	RequestsPerMinute int

	// Timeout bounds each summarization request
	Timeout time.Duration
}

// PipelineConfig holds run-level settings
type PipelineConfig struct {
	// Workers bounds concurrent extraction and summarization
	Workers int

	// OutputPath is the report file location
	OutputPath string

	// SourcesFile optionally overrides the built-in source registry (YAML)
	SourcesFile string

	// RecencyHours is the article age cutoff; zero disables the cutoff
	RecencyHours int
}

// HTTPConfig holds per-stage HTTP timeout settings
type HTTPConfig struct {
	// FeedTimeout bounds each RSS feed fetch
	FeedTimeout time.Duration

	// PageTimeout bounds each article page fetch
	PageTimeout time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			Provider:          getEnvOrDefault("DIGEST_LLM_PROVIDER", ""),
			Model:             getEnvOrDefault("DIGEST_LLM_MODEL", ""),
			MaxInputLength:    getEnvAsIntOrDefault("DIGEST_MAX_INPUT_LENGTH", 8000),
			RequestsPerMinute: getEnvAsIntOrDefault("DIGEST_SUMMARY_RATE", 0),
			Timeout:           getEnvAsDurationOrDefault("DIGEST_LLM_TIMEOUT", 60*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:      getEnvAsIntOrDefault("DIGEST_WORKERS", 4),
			OutputPath:   getEnvOrDefault("DIGEST_OUTPUT", "ai_news_summary.html"),
			SourcesFile:  getEnvOrDefault("DIGEST_SOURCES_FILE", ""),
			RecencyHours: getEnvAsIntOrDefault("DIGEST_RECENCY_HOURS", 48),
		},
		HTTP: HTTPConfig{
			FeedTimeout: getEnvAsDurationOrDefault("DIGEST_FEED_TIMEOUT", 10*time.Second),
			PageTimeout: getEnvAsDurationOrDefault("DIGEST_PAGE_TIMEOUT", 15*time.Second),
		},
		LogLevel: getEnvOrDefault("DIGEST_LOG_LEVEL", "info"),
	}

	if err := cfg.resolveProvider(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveProvider picks the LLM backend. An explicit DIGEST_LLM_PROVIDER
// must have its key set; otherwise the first provider with a key wins,
// checked in perplexity, openai, anthropic order.
func (c *Config) resolveProvider() error {
	keys := map[string]string{
		ProviderPerplexity: os.Getenv("PERPLEXITY_API_KEY"),
		ProviderOpenAI:     os.Getenv("OPENAI_API_KEY"),
		ProviderAnthropic:  os.Getenv("ANTHROPIC_API_KEY"),
	}
	models := map[string]string{
		ProviderPerplexity: defaultPerplexityModel,
		ProviderOpenAI:     defaultOpenAIModel,
		ProviderAnthropic:  defaultAnthropicModel,
	}

	if c.LLM.Provider != "" {
		key, ok := keys[c.LLM.Provider]
		if !ok {
			return fmt.Errorf("unknown LLM provider %q", c.LLM.Provider)
		}
		if key == "" {
			return fmt.Errorf("no API key set for LLM provider %q", c.LLM.Provider)
		}
		c.LLM.APIKey = key
	} else {
		for _, provider := range []string{ProviderPerplexity, ProviderOpenAI, ProviderAnthropic} {
			if keys[provider] != "" {
				c.LLM.Provider = provider
				c.LLM.APIKey = keys[provider]
				break
			}
		}
		if c.LLM.Provider == "" {
			return errors.New("no LLM API key found; set PERPLEXITY_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY")
		}
	}

	if c.LLM.Model == "" {
		c.LLM.Model = models[c.LLM.Provider]
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("LLM API key cannot be empty")
	}

	if c.LLM.Model == "" {
		return errors.New("LLM model cannot be empty")
	}

	if c.LLM.MaxInputLength < 1 {
		return errors.New("max input length must be at least 1")
	}

	if c.LLM.RequestsPerMinute < 0 {
		return errors.New("summary rate cannot be negative")
	}

	if c.Pipeline.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if c.Pipeline.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	if c.Pipeline.RecencyHours < 0 {
		return errors.New("recency hours cannot be negative")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as seconds or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return time.Duration(intValue) * time.Second
		}
	}
	return defaultValue
}
