// ABOUTME: LLM client implementation for the Anthropic Messages API
// ABOUTME: Maps the system+user completion call onto a single-turn message

package anthropic

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxOutputTokens = 1024

// Config holds the settings for the Anthropic endpoint.
type Config struct {
	APIKey string
	Model  string

	// Timeout bounds each request; zero means the SDK default.
	Timeout time.Duration
}

// Client implements the LLMClient interface over the Messages API
type Client struct {
	client *anthropic.Client
	model  string
}

// NewClient creates an LLM client for the Anthropic API. The SDK retries
// failed calls once before the error surfaces.
func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := anthropic.NewClient(opts...)
	return &Client{
		client: &client,
		model:  cfg.Model,
	}
}

// Complete sends one system+user exchange and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxOutputTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no content blocks in message response")
	}

	return resp.Content[0].Text, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}
