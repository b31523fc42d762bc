// ABOUTME: Pipeline driver orchestrates fetch, extract, summarize, render
// ABOUTME: Per-unit failures are logged and skipped; a report is always attempted

package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"ai-news-digest/core/domain"
	coreerrors "ai-news-digest/core/errors"
	"ai-news-digest/core/interfaces"
	"ai-news-digest/core/registry"
)

const (
	// defaultWorkers bounds extraction/summarization fan-out
	defaultWorkers = 4

	// defaultOutputPath is where the report lands when not overridden
	defaultOutputPath = "ai_news_summary.html"

	// executivePlaceholder replaces a failed executive-summary call
	executivePlaceholder = "Executive summary unavailable due to a processing error."
)

// Config holds driver settings for one run.
type Config struct {
	// SourceLimit keeps only the first N enabled sources; zero means all
	SourceLimit int

	// Workers bounds the concurrent extraction and summarization calls
	Workers int

	// OutputPath is the report file location, overwritten each run
	OutputPath string
}

// Driver runs the whole pipeline once. Stages execute in dependency order;
// articles fan out through a bounded worker pool with results written to
// index-addressed slots, so the final order is always registry-then-feed
// order regardless of which calls complete first.
type Driver struct {
	registry   *registry.Registry
	fetcher    interfaces.FeedFetcher
	extractor  interfaces.ContentExtractor
	summarizer interfaces.Summarizer
	renderer   interfaces.ReportRenderer
	logger     interfaces.Logger
	cfg        Config

	now func() time.Time
}

// NewDriver creates a pipeline driver
func NewDriver(
	reg *registry.Registry,
	fetcher interfaces.FeedFetcher,
	extractor interfaces.ContentExtractor,
	summarizer interfaces.Summarizer,
	renderer interfaces.ReportRenderer,
	logger interfaces.Logger,
	cfg Config,
) *Driver {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}

	return &Driver{
		registry:   reg,
		fetcher:    fetcher,
		extractor:  extractor,
		summarizer: summarizer,
		renderer:   renderer,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run executes one pipeline pass and writes the report file. It returns the
// run result for logging. The returned error is non-nil only for the fatal
// cases: registry/configuration failure or a render/write failure.
func (d *Driver) Run(ctx context.Context) (*domain.RunResult, error) {
	sources, err := d.registry.Enabled(d.cfg.SourceLimit)
	if err != nil {
		return nil, err
	}

	result := &domain.RunResult{}

	stubs := d.collectStubs(ctx, sources, result)
	d.logInfo("Collected article stubs", map[string]interface{}{
		"articles": len(stubs),
		"sources":  len(sources),
	})

	contents := d.extractAll(ctx, stubs, result)
	summaries := d.summarizeAll(ctx, contents, result)
	result.Articles = summaries

	if len(summaries) > 0 {
		executive, err := d.summarizer.ExecutiveSummary(ctx, summaries, d.now().Format("2006-01-02"))
		if err != nil {
			d.logWarn("Executive summary failed, using placeholder", map[string]interface{}{
				"error": err.Error(),
			})
			executive = executivePlaceholder
		}
		result.ExecutiveSummary = executive
	}

	result.GeneratedAt = d.now()

	html, err := d.renderer.Render(*result)
	if err != nil {
		return nil, coreerrors.WrapError(err, "render report")
	}

	if err := os.WriteFile(d.cfg.OutputPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write report to %s: %w", d.cfg.OutputPath, err)
	}

	d.logInfo("Report written", map[string]interface{}{
		"path":             d.cfg.OutputPath,
		"articles":         len(result.Articles),
		"skipped_sources":  result.SkippedSources,
		"skipped_articles": result.SkippedArticles,
	})

	return result, nil
}

// collectStubs fetches each source's feed sequentially in registry order.
// A failed source is logged and skipped, never fatal.
func (d *Driver) collectStubs(ctx context.Context, sources []domain.SourceConfig, result *domain.RunResult) []domain.ArticleStub {
	var stubs []domain.ArticleStub

	for _, source := range sources {
		d.logInfo("Fetching RSS feed", map[string]interface{}{
			"source": source.ID,
			"url":    source.RSSURL,
		})

		sourceStubs, err := d.fetcher.FetchArticles(ctx, source)
		if err != nil {
			d.logWarn("Skipping source after fetch failure", map[string]interface{}{
				"source": source.ID,
				"error":  err.Error(),
			})
			result.SkippedSources++
			continue
		}

		stubs = append(stubs, sourceStubs...)
		result.SourcesProcessed = append(result.SourcesProcessed, source.Name)
	}

	return stubs
}

// extractAll fans article extraction out over the worker pool. Slots are
// index-addressed so feed order survives concurrent completion. Articles
// with no usable text are dropped here.
func (d *Driver) extractAll(ctx context.Context, stubs []domain.ArticleStub, result *domain.RunResult) []domain.ArticleContent {
	slots := make([]domain.ArticleContent, len(stubs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)
	for i, stub := range stubs {
		i, stub := i, stub
		g.Go(func() error {
			slots[i] = d.extractor.Extract(gctx, stub)
			return nil
		})
	}
	_ = g.Wait()

	contents := make([]domain.ArticleContent, 0, len(slots))
	for _, content := range slots {
		if !content.Usable() {
			d.logWarn("Dropping article without usable content", map[string]interface{}{
				"url":    content.Link,
				"source": content.SourceID,
			})
			result.SkippedArticles++
			continue
		}
		contents = append(contents, content)
	}

	return contents
}

// summarizeAll fans summarization out over the worker pool, again with
// index-addressed slots. Failed units are logged and dropped.
func (d *Driver) summarizeAll(ctx context.Context, contents []domain.ArticleContent, result *domain.RunResult) []domain.ArticleSummary {
	slots := make([]*domain.ArticleSummary, len(contents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)
	for i, content := range contents {
		i, content := i, content
		g.Go(func() error {
			summary, err := d.summarizer.SummarizeArticle(gctx, content)
			if err != nil {
				d.logWarn("Skipping article after summarization failure", map[string]interface{}{
					"url":   content.Link,
					"error": err.Error(),
				})
				return nil
			}
			slots[i] = &summary
			return nil
		})
	}
	_ = g.Wait()

	summaries := make([]domain.ArticleSummary, 0, len(slots))
	for _, slot := range slots {
		if slot == nil {
			result.SkippedArticles++
			continue
		}
		summaries = append(summaries, *slot)
	}

	return summaries
}

func (d *Driver) logInfo(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Info(msg, fields)
	}
}

func (d *Driver) logWarn(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Warn(msg, fields)
	}
}
