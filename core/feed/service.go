// ABOUTME: Feed service downloads and parses RSS/Atom feeds into article stubs
// ABOUTME: Applies per-source caps and the recency window, in feed order

package feed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"ai-news-digest/core/domain"
	coreerrors "ai-news-digest/core/errors"
	"ai-news-digest/core/interfaces"
	"ai-news-digest/pkg/utils/htmltext"
)

// Service fetches one source's feed and converts its entries to stubs.
type Service struct {
	deps interfaces.Dependencies

	// recency drops entries older than this window. Zero disables the
	// filter and takes the feed as-is.
	recency time.Duration
}

// NewService creates a new feed service instance
func NewService(deps interfaces.Dependencies, recency time.Duration) *Service {
	return &Service{
		deps:    deps,
		recency: recency,
	}
}

// FetchArticles downloads the source's RSS feed and returns up to
// MaxArticles stubs in feed-provided order. Any failure is returned as a
// FetchError; the caller skips the source and continues the run.
func (s *Service) FetchArticles(ctx context.Context, source domain.SourceConfig) ([]domain.ArticleStub, error) {
	if err := source.Validate(); err != nil {
		return nil, &coreerrors.FetchError{SourceID: source.ID, Err: err}
	}

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.FetchError{SourceID: source.ID, Err: errors.New("HTTP client not configured")}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, source.RSSURL)
	if err != nil {
		return nil, &coreerrors.FetchError{SourceID: source.ID, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.FetchError{
			SourceID: source.ID,
			Err:      errors.New("feed returned non-200 status code"),
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.FetchError{SourceID: source.ID, Err: err}
	}

	stubs, err := s.parseFeedContent(bodyBytes, source)
	if err != nil {
		return nil, &coreerrors.FetchError{SourceID: source.ID, Err: err}
	}

	return stubs, nil
}

// parseFeedContent parses feed bytes and converts entries to stubs.
// It scans up to twice the source cap so date filtering can still fill
// the cap, mirroring the feed-order truncation contract.
func (s *Service) parseFeedContent(content []byte, source domain.SourceConfig) ([]domain.ArticleStub, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	cutoff := time.Time{}
	if s.recency > 0 {
		cutoff = time.Now().Add(-s.recency)
	}

	scanLimit := source.MaxArticles * 2
	stubs := make([]domain.ArticleStub, 0, source.MaxArticles)

	for i, item := range parsedFeed.Items {
		if i >= scanLimit {
			break
		}

		published, ok := itemPublished(item)
		if !ok {
			s.logDebug("Skipping undated entry", source.ID, item.Title)
			continue
		}

		if !cutoff.IsZero() && published.Before(cutoff) {
			continue
		}

		stub := domain.ArticleStub{
			Title:       item.Title,
			Link:        resolveLink(item.Link, source.BaseURL),
			Published:   published,
			Description: htmltext.Strip(item.Description),
			SourceID:    source.ID,
			SourceName:  source.Name,
		}

		if !stub.IsValid() {
			s.logDebug("Skipping entry without title or link", source.ID, item.Title)
			continue
		}

		stubs = append(stubs, stub)
		if len(stubs) >= source.MaxArticles {
			break
		}
	}

	return stubs, nil
}

// itemPublished picks the entry timestamp, preferring the published date
// over the updated date.
func itemPublished(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	return time.Time{}, false
}

// resolveLink makes relative entry links absolute against the source's
// base URL. Absolute links pass through untouched.
func resolveLink(link, baseURL string) string {
	if link == "" || baseURL == "" {
		return link
	}

	parsed, err := url.Parse(link)
	if err != nil || parsed.IsAbs() {
		return link
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return link
	}

	return base.ResolveReference(parsed).String()
}

func (s *Service) logDebug(msg, sourceID, title string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Debug(msg, map[string]interface{}{
		"source": sourceID,
		"title":  title,
	})
}
