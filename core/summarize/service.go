// ABOUTME: Summarizer service produces per-article and executive summaries
// ABOUTME: Calls the LLM capability with truncated input and validates output

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"ai-news-digest/core/domain"
	coreerrors "ai-news-digest/core/errors"
	"ai-news-digest/core/interfaces"
)

const (
	// defaultMaxInputLength bounds the article text submitted per call
	defaultMaxInputLength = 8000

	// truncationMarker is appended when a body had to be cut
	truncationMarker = "... [content truncated]"
)

const articleSystemPrompt = `You are a news editor. Summarize the given news article into a single, informative paragraph that captures the key points and significance. Respond with the paragraph only, no preamble, headings, or bullet points.`

const executiveSystemPrompt = `You are a news editor. Given the dated list of AI news article summaries below, write one executive-summary paragraph highlighting the key trends, developments, and insights across them. Respond with the paragraph only, no preamble, headings, or bullet points.`

// Config holds summarizer tuning knobs.
type Config struct {
	// MaxInputLength bounds the body text per summarization call,
	// including the truncation marker. Zero selects the default.
	MaxInputLength int

	// RequestsPerMinute caps the call rate against the provider.
	// Zero disables rate limiting.
	RequestsPerMinute int
}

// Service summarizes articles through an explicitly injected LLM client.
// Provider configuration is never ambient state.
type Service struct {
	llm      interfaces.LLMClient
	logger   interfaces.Logger
	maxInput int
	limiter  *rate.Limiter
}

// NewService creates a new summarizer service instance
func NewService(llm interfaces.LLMClient, logger interfaces.Logger, cfg Config) *Service {
	maxInput := cfg.MaxInputLength
	if maxInput <= 0 {
		maxInput = defaultMaxInputLength
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}

	return &Service{
		llm:      llm,
		logger:   logger,
		maxInput: maxInput,
		limiter:  limiter,
	}
}

// SummarizeArticle generates a single-paragraph summary for one article.
// The body is truncated to the configured bound before submission. Any API
// failure or malformed response is a SummarizationError; the caller drops
// the article and continues.
func (s *Service) SummarizeArticle(ctx context.Context, content domain.ArticleContent) (domain.ArticleSummary, error) {
	if !content.Usable() {
		return domain.ArticleSummary{}, &coreerrors.SummarizationError{
			Unit: content.Link,
			Err:  errors.New("no usable content"),
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return domain.ArticleSummary{}, &coreerrors.SummarizationError{Unit: content.Link, Err: err}
	}

	user := fmt.Sprintf("Title: %s\n\nContent: %s", content.Title, s.truncate(content.Body))

	raw, err := s.llm.Complete(ctx, articleSystemPrompt, user)
	if err != nil {
		return domain.ArticleSummary{}, &coreerrors.SummarizationError{Unit: content.Link, Err: err}
	}

	summary := cleanResponse(raw)
	if summary == "" {
		return domain.ArticleSummary{}, &coreerrors.SummarizationError{
			Unit: content.Link,
			Err:  errors.New("empty summary in response"),
		}
	}

	return domain.ArticleSummary{
		Title:      content.Title,
		Link:       content.Link,
		SourceName: content.SourceName,
		Published:  content.Published,
		Summary:    summary,
	}, nil
}

// ExecutiveSummary synthesizes one paragraph of cross-cutting trends from
// the ordered per-article summaries. On failure the caller substitutes a
// placeholder; article-level results are never blocked.
func (s *Service) ExecutiveSummary(ctx context.Context, articles []domain.ArticleSummary, date string) (string, error) {
	if len(articles) == 0 {
		return "", &coreerrors.SummarizationError{
			Unit: "executive",
			Err:  errors.New("no article summaries to synthesize"),
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", &coreerrors.SummarizationError{Unit: "executive", Err: err}
	}

	var digest strings.Builder
	fmt.Fprintf(&digest, "Report date: %s\n\n", date)
	for i, article := range articles {
		fmt.Fprintf(&digest, "%d. %s (%s): %s\n\n", i+1, article.Title, article.SourceName, article.Summary)
	}

	raw, err := s.llm.Complete(ctx, executiveSystemPrompt, digest.String())
	if err != nil {
		return "", &coreerrors.SummarizationError{Unit: "executive", Err: err}
	}

	summary := cleanResponse(raw)
	if summary == "" {
		return "", &coreerrors.SummarizationError{
			Unit: "executive",
			Err:  errors.New("empty summary in response"),
		}
	}

	return summary, nil
}

// truncate bounds the body so the submitted text, marker included, never
// exceeds the configured maximum input length.
func (s *Service) truncate(body string) string {
	if len(body) <= s.maxInput {
		return body
	}

	cut := s.maxInput - len(truncationMarker)
	if cut < 0 {
		cut = 0
	}
	return body[:cut] + truncationMarker
}

// cleanResponse strips markdown code fences and surrounding whitespace that
// some models wrap around otherwise usable output.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
