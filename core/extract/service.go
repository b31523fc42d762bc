// ABOUTME: Content extractor recovers the main body text of article pages
// ABOUTME: Readability first, then selector heuristics, then RSS fallback

package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"ai-news-digest/core/domain"
	"ai-news-digest/core/interfaces"
	"ai-news-digest/pkg/utils/htmltext"
)

const (
	// defaultMinBodyLength is the shortest extraction considered usable
	defaultMinBodyLength = 100

	// minParagraphLength filters boilerplate when harvesting <p> nodes
	minParagraphLength = 50

	// cacheTTL bounds the per-run page dedupe cache
	cacheTTL = 1 * time.Hour
)

// contentSelectors are tried in order against common article containers.
var contentSelectors = []string{
	"article",
	`[role="main"]`,
	".post-content",
	".article-content",
	".entry-content",
	".content",
	".post-body",
	".article-body",
	"main",
	".main-content",
}

// Service extracts article body text. It never fails the run: any failure
// degrades to the RSS description or to content with no usable body.
type Service struct {
	deps          interfaces.Dependencies
	minBodyLength int
}

// NewService creates a new extractor service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps:          deps,
		minBodyLength: defaultMinBodyLength,
	}
}

// Extract fetches the stub's page and recovers its main text. The returned
// content carries the extraction-success flag; on failure the body falls
// back to the stub's RSS description, possibly leaving it empty.
func (s *Service) Extract(ctx context.Context, stub domain.ArticleStub) domain.ArticleContent {
	content := domain.ArticleContent{ArticleStub: stub}

	// The same article can appear in several feeds; dedupe the page fetch.
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey(stub.Link)); err == nil && len(data) > 0 {
			content.Body = string(data)
			content.Extracted = true
			return content
		}
	}

	page, err := s.fetchPage(ctx, stub.Link)
	if err != nil {
		s.logWarn("Failed to fetch article page", stub.Link, err)
		return s.fallback(content)
	}

	text := s.extractBody(page, stub.Link)
	if len(text) < s.minBodyLength {
		s.logWarn("No usable text extracted from page", stub.Link,
			fmt.Errorf("extracted %d chars", len(text)))
		return s.fallback(content)
	}

	content.Body = text
	content.Extracted = true

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey(stub.Link), []byte(text), cacheTTL)
	}

	return content
}

// fetchPage downloads the article page with the shared bounded-timeout client.
func (s *Service) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode())
	}

	return io.ReadAll(resp.Body())
}

// extractBody runs the fallback chain over the fetched HTML: readability,
// known content containers, paragraph harvesting, then full-body text.
func (s *Service) extractBody(page []byte, pageURL string) string {
	if parsed, err := url.Parse(pageURL); err == nil {
		if article, err := readability.FromReader(bytes.NewReader(page), parsed); err == nil {
			text := htmltext.NormalizeWhitespace(article.TextContent)
			if len(text) >= s.minBodyLength {
				return text
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	doc.Find("script, style, nav, header, footer, aside, iframe").Remove()

	for _, selector := range contentSelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		text := htmltext.NormalizeWhitespace(node.Text())
		if len(text) >= s.minBodyLength {
			return text
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > minParagraphLength {
			paragraphs = append(paragraphs, text)
		}
	})
	if text := htmltext.NormalizeWhitespace(strings.Join(paragraphs, " ")); len(text) >= s.minBodyLength {
		return text
	}

	return htmltext.NormalizeWhitespace(doc.Find("body").Text())
}

// fallback fills the body from the RSS description when page extraction
// failed. Extracted stays false either way.
func (s *Service) fallback(content domain.ArticleContent) domain.ArticleContent {
	if content.Description != "" {
		content.Body = content.Description
	}
	return content
}

func cacheKey(pageURL string) string {
	return "page:" + pageURL
}

func (s *Service) logWarn(msg, pageURL string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"url":   pageURL,
		"error": err.Error(),
	})
}
