package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ai-news-digest/core/domain"
)

// mockFetcher serves canned stubs per source and records fetch order.
type mockFetcher struct {
	stubs       map[string][]domain.ArticleStub
	failSources map[string]bool
	fetched     []string
}

func (m *mockFetcher) FetchArticles(ctx context.Context, source domain.SourceConfig) ([]domain.ArticleStub, error) {
	m.fetched = append(m.fetched, source.ID)
	if m.failSources[source.ID] {
		return nil, errors.New("feed unreachable")
	}
	return m.stubs[source.ID], nil
}

// mockExtractor turns stubs into contents, optionally failing some links
// and delaying per call to shake out ordering bugs.
type mockExtractor struct {
	failLinks map[string]bool
	delays    map[string]time.Duration
}

func (m *mockExtractor) Extract(ctx context.Context, stub domain.ArticleStub) domain.ArticleContent {
	if delay, ok := m.delays[stub.Link]; ok {
		time.Sleep(delay)
	}
	content := domain.ArticleContent{ArticleStub: stub}
	if m.failLinks[stub.Link] {
		// Extraction failed; only the RSS description is left.
		content.Body = stub.Description
		return content
	}
	content.Body = "extracted body of " + stub.Title
	content.Extracted = true
	return content
}

// mockSummarizer produces deterministic summaries and records inputs.
type mockSummarizer struct {
	mu          sync.Mutex
	failLinks   map[string]bool
	failExec    bool
	execCalls   int
	summarized  []string
	delays      map[string]time.Duration
	execSummary string
}

func (m *mockSummarizer) SummarizeArticle(ctx context.Context, content domain.ArticleContent) (domain.ArticleSummary, error) {
	if delay, ok := m.delays[content.Link]; ok {
		time.Sleep(delay)
	}

	m.mu.Lock()
	m.summarized = append(m.summarized, content.Link)
	m.mu.Unlock()

	if m.failLinks[content.Link] {
		return domain.ArticleSummary{}, errors.New("API failure")
	}
	return domain.ArticleSummary{
		Title:      content.Title,
		Link:       content.Link,
		SourceName: content.SourceName,
		Published:  content.Published,
		Summary:    "summary of " + content.Title,
	}, nil
}

func (m *mockSummarizer) ExecutiveSummary(ctx context.Context, articles []domain.ArticleSummary, date string) (string, error) {
	m.mu.Lock()
	m.execCalls++
	m.mu.Unlock()

	if m.failExec {
		return "", errors.New("API failure")
	}
	if m.execSummary != "" {
		return m.execSummary, nil
	}
	return fmt.Sprintf("executive summary of %d articles", len(articles)), nil
}

// mockRenderer emits a minimal document or fails on demand.
type mockRenderer struct {
	fail bool
}

func (m *mockRenderer) Render(result domain.RunResult) (string, error) {
	if m.fail {
		return "", errors.New("template blew up")
	}
	var b strings.Builder
	b.WriteString("<html>")
	for _, a := range result.Articles {
		fmt.Fprintf(&b, "<card>%s</card>", a.Title)
	}
	b.WriteString("</html>")
	return b.String(), nil
}

// mockLogger discards log output
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
