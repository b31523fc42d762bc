// ABOUTME: Service interfaces for the pipeline stages
// ABOUTME: Defines contracts the driver orchestrates, one per stage

package interfaces

import (
	"context"

	"ai-news-digest/core/domain"
)

// FeedFetcher downloads and parses one source's RSS feed into article stubs,
// capped at the source's per-run limit, in feed order.
type FeedFetcher interface {
	FetchArticles(ctx context.Context, source domain.SourceConfig) ([]domain.ArticleStub, error)
}

// ContentExtractor recovers the main body text for one article stub.
// It never fails the run: a failed extraction yields content with the
// RSS-description fallback or no usable body at all.
type ContentExtractor interface {
	Extract(ctx context.Context, stub domain.ArticleStub) domain.ArticleContent
}

// Summarizer produces per-article summaries and the cross-article
// executive summary via a hosted LLM.
type Summarizer interface {
	SummarizeArticle(ctx context.Context, content domain.ArticleContent) (domain.ArticleSummary, error)
	ExecutiveSummary(ctx context.Context, articles []domain.ArticleSummary, date string) (string, error)
}

// ReportRenderer turns a run result into a self-contained HTML document.
type ReportRenderer interface {
	Render(result domain.RunResult) (string, error)
}
