// ABOUTME: Article domain models for the stages of one summarizer run
// ABOUTME: Stub -> extracted content -> summary -> assembled run result

package domain

import "time"

// ArticleStub is the minimal metadata taken from one RSS entry before the
// full article page is fetched.
type ArticleStub struct {
	// Title is the article headline
	Title string

	// Link is the URL to the full article
	Link string

	// Published is when the entry was published
	Published time.Time

	// Description is the RSS-supplied summary, already stripped to plain text.
	// Used as a fallback body when page extraction fails.
	Description string

	// SourceID identifies the source the stub came from
	SourceID string

	// SourceName is the display name of that source
	SourceName string
}

// IsValid checks if the stub has all required fields
func (a *ArticleStub) IsValid() bool {
	if a.Title == "" {
		return false
	}

	if a.Link == "" {
		return false
	}

	return true
}

// ArticleContent is a stub plus the text recovered for it.
type ArticleContent struct {
	ArticleStub

	// Body is the text to summarize. It is the extracted page body when
	// extraction succeeded, the RSS description otherwise, or empty when
	// neither was available.
	Body string

	// Extracted reports whether Body came from the article page itself
	Extracted bool
}

// Usable reports whether the content carries any text worth summarizing.
// Articles with no usable content are excluded from summarization.
func (c *ArticleContent) Usable() bool {
	return c.Body != ""
}

// ArticleSummary is the per-article output of the summarization stage.
type ArticleSummary struct {
	// Title is the article headline
	Title string

	// Link is the URL to the full article
	Link string

	// SourceName is the display name of the originating source
	SourceName string

	// Published is the article publication time
	Published time.Time

	// Summary is the generated single-paragraph summary, never empty
	Summary string
}

// IsValid checks if the summary has all required fields
func (s *ArticleSummary) IsValid() bool {
	return s.Title != "" && s.Summary != ""
}

// RunResult holds everything one pipeline run produced, in processing order.
// It exists only for the duration of the run and is serialized to HTML.
type RunResult struct {
	// Articles are the per-article summaries in registry-then-feed order
	Articles []ArticleSummary

	// ExecutiveSummary is the synthesized cross-article paragraph
	ExecutiveSummary string

	// GeneratedAt is when the run produced its report
	GeneratedAt time.Time

	// SourcesProcessed lists the display names of sources that contributed
	SourcesProcessed []string

	// SkippedSources counts sources dropped by fetch/parse failures
	SkippedSources int

	// SkippedArticles counts articles dropped by extraction or
	// summarization failures
	SkippedArticles int
}

// SourceCount returns the number of distinct sources among the summaries.
func (r *RunResult) SourceCount() int {
	seen := make(map[string]struct{}, len(r.Articles))
	for _, a := range r.Articles {
		seen[a.SourceName] = struct{}{}
	}
	return len(seen)
}
