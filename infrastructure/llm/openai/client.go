// ABOUTME: LLM client implementation for OpenAI-compatible chat completion APIs
// ABOUTME: Also serves Perplexity by pointing the base URL at api.perplexity.ai

package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config holds the settings for an OpenAI-compatible endpoint.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint; empty means api.openai.com.
	BaseURL string

	// Timeout bounds each request; zero means the SDK default.
	Timeout time.Duration
}

// Client implements the LLMClient interface over the chat completions API
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates an LLM client for the configured endpoint. The SDK
// retries failed calls once before the error surfaces.
func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  cfg.Model,
	}
}

// Complete sends one system+user exchange and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}
