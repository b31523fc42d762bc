// ABOUTME: Main entry point for the AI news digest CLI
// ABOUTME: Wires together all components and runs the pipeline once

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ai-news-digest/core/errors"
	"ai-news-digest/core/extract"
	"ai-news-digest/core/feed"
	"ai-news-digest/core/interfaces"
	"ai-news-digest/core/pipeline"
	"ai-news-digest/core/registry"
	"ai-news-digest/core/report"
	"ai-news-digest/core/summarize"
	"ai-news-digest/infrastructure/cache/memory"
	stdhttp "ai-news-digest/infrastructure/http/standard"
	anthropicllm "ai-news-digest/infrastructure/llm/anthropic"
	openaillm "ai-news-digest/infrastructure/llm/openai"
	logruslogger "ai-news-digest/infrastructure/logger/logrus"
	"ai-news-digest/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		sourceLimit int
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Generate an HTML digest of recent AI news",
		Long: `digest fetches recent articles from a set of AI news RSS feeds,
extracts their text, summarizes each one with an LLM, and writes a
self-contained HTML report.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("sources") && sourceLimit <= 0 {
				return &errors.ConfigurationError{Message: "--sources must be a positive number"}
			}
			return run(cmd.Context(), sourceLimit, outputPath)
		},
	}

	cmd.Flags().IntVar(&sourceLimit, "sources", 0, "process only the first N enabled sources")
	cmd.Flags().StringVar(&outputPath, "output", "", "report file path (default ai_news_summary.html)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd.SetContext(ctx)
	cobra.OnFinalize(stop)

	return cmd
}

func run(ctx context.Context, sourceLimit int, outputPath string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if outputPath != "" {
		cfg.Pipeline.OutputPath = outputPath
	}

	logger := logruslogger.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting digest run", map[string]interface{}{
		"provider": cfg.LLM.Provider,
		"model":    cfg.LLM.Model,
		"workers":  cfg.Pipeline.Workers,
	})

	reg, err := loadRegistry(cfg.Pipeline.SourcesFile)
	if err != nil {
		return err
	}

	cache := memory.NewMemoryCache()

	feedDeps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.FeedTimeout),
		Logger:     logger,
	}
	pageDeps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.PageTimeout),
		Logger:     logger,
	}

	llmClient, err := newLLMClient(cfg.LLM)
	if err != nil {
		return err
	}

	fetcher := feed.NewService(feedDeps, time.Duration(cfg.Pipeline.RecencyHours)*time.Hour)
	extractor := extract.NewService(pageDeps)
	summarizer := summarize.NewService(llmClient, logger, summarize.Config{
		MaxInputLength:    cfg.LLM.MaxInputLength,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	})

	renderer, err := report.NewRenderer()
	if err != nil {
		return err
	}

	driver := pipeline.NewDriver(reg, fetcher, extractor, summarizer, renderer, logger, pipeline.Config{
		SourceLimit: sourceLimit,
		Workers:     cfg.Pipeline.Workers,
		OutputPath:  cfg.Pipeline.OutputPath,
	})

	result, err := driver.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s (%d articles from %d sources)\n",
		cfg.Pipeline.OutputPath, len(result.Articles), result.SourceCount())

	return nil
}

// loadRegistry uses the built-in source table unless a YAML override is set.
func loadRegistry(sourcesFile string) (*registry.Registry, error) {
	if sourcesFile == "" {
		return registry.NewDefault(), nil
	}
	return registry.LoadFromYAML(sourcesFile)
}

// newLLMClient builds the summarization backend for the resolved provider.
// Perplexity speaks the OpenAI chat completions protocol, so it reuses
// that client with a different base URL.
func newLLMClient(cfg config.LLMConfig) (interfaces.LLMClient, error) {
	switch cfg.Provider {
	case config.ProviderPerplexity:
		return openaillm.NewClient(openaillm.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: config.PerplexityBaseURL,
			Timeout: cfg.Timeout,
		}), nil
	case config.ProviderOpenAI:
		return openaillm.NewClient(openaillm.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}), nil
	case config.ProviderAnthropic:
		return anthropicllm.NewClient(anthropicllm.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}), nil
	default:
		return nil, &errors.ConfigurationError{Message: fmt.Sprintf("unknown LLM provider %q", cfg.Provider)}
	}
}
