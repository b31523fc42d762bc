package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"ai-news-digest/core/domain"
	coreerrors "ai-news-digest/core/errors"
	"ai-news-digest/core/interfaces"
)

func testSource() domain.SourceConfig {
	return domain.SourceConfig{
		ID:          "test-blog",
		Name:        "Test Blog",
		RSSURL:      "https://test.example.com/feed.xml",
		BaseURL:     "https://test.example.com",
		Enabled:     true,
		MaxArticles: 3,
	}
}

// rssFeed builds a minimal RSS 2.0 document from item XML fragments.
func rssFeed(items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Blog</title>
<link>https://test.example.com</link>
%s
</channel>
</rss>`, strings.Join(items, "\n"))
}

func rssItem(title, link string, published time.Time) string {
	return fmt.Sprintf(`<item>
<title>%s</title>
<link>%s</link>
<pubDate>%s</pubDate>
<description>Summary of %s</description>
</item>`, title, link, published.Format(time.RFC1123Z), title)
}

func serviceWithFeed(feedXML string, recency time.Duration) *Service {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: feedXML}, nil
		},
	}
	deps := interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}}
	return NewService(deps, recency)
}

func TestFetchArticles_ConvertsEntries(t *testing.T) {
	now := time.Now()
	feedXML := rssFeed(
		rssItem("First post", "https://test.example.com/1", now.Add(-1*time.Hour)),
		rssItem("Second post", "https://test.example.com/2", now.Add(-2*time.Hour)),
	)
	service := serviceWithFeed(feedXML, 0)

	stubs, err := service.FetchArticles(context.Background(), testSource())
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(stubs) != 2 {
		t.Fatalf("FetchArticles returned %d stubs, want 2", len(stubs))
	}
	if stubs[0].Title != "First post" {
		t.Errorf("stubs[0].Title = %q, want %q", stubs[0].Title, "First post")
	}
	if stubs[0].Link != "https://test.example.com/1" {
		t.Errorf("stubs[0].Link = %q", stubs[0].Link)
	}
	if stubs[0].SourceID != "test-blog" || stubs[0].SourceName != "Test Blog" {
		t.Errorf("stubs[0] source back-reference = %q/%q", stubs[0].SourceID, stubs[0].SourceName)
	}
	if stubs[0].Published.IsZero() {
		t.Error("stubs[0].Published should be set")
	}
	if stubs[0].Description == "" {
		t.Error("stubs[0].Description should carry the RSS summary")
	}
}

func TestFetchArticles_PreservesFeedOrder(t *testing.T) {
	now := time.Now()
	feedXML := rssFeed(
		rssItem("One", "https://test.example.com/1", now.Add(-1*time.Hour)),
		rssItem("Two", "https://test.example.com/2", now.Add(-2*time.Hour)),
		rssItem("Three", "https://test.example.com/3", now.Add(-3*time.Hour)),
	)
	service := serviceWithFeed(feedXML, 0)

	stubs, err := service.FetchArticles(context.Background(), testSource())
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	want := []string{"One", "Two", "Three"}
	for i, title := range want {
		if stubs[i].Title != title {
			t.Errorf("stubs[%d].Title = %q, want %q", i, stubs[i].Title, title)
		}
	}
}

func TestFetchArticles_TruncatesAtSourceCap(t *testing.T) {
	now := time.Now()
	items := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		items = append(items, rssItem(
			fmt.Sprintf("Post %d", i),
			fmt.Sprintf("https://test.example.com/%d", i),
			now.Add(-time.Duration(i)*time.Hour),
		))
	}
	service := serviceWithFeed(rssFeed(items...), 0)

	source := testSource()
	source.MaxArticles = 2

	stubs, err := service.FetchArticles(context.Background(), source)
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(stubs) != 2 {
		t.Errorf("FetchArticles returned %d stubs, want cap of 2", len(stubs))
	}
}

func TestFetchArticles_SkipsUndatedEntries(t *testing.T) {
	now := time.Now()
	undated := `<item><title>No date</title><link>https://test.example.com/x</link></item>`
	feedXML := rssFeed(
		undated,
		rssItem("Dated", "https://test.example.com/1", now.Add(-1*time.Hour)),
	)
	service := serviceWithFeed(feedXML, 0)

	stubs, err := service.FetchArticles(context.Background(), testSource())
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(stubs) != 1 {
		t.Fatalf("FetchArticles returned %d stubs, want 1", len(stubs))
	}
	if stubs[0].Title != "Dated" {
		t.Errorf("stubs[0].Title = %q, want %q", stubs[0].Title, "Dated")
	}
}

func TestFetchArticles_RecencyWindow(t *testing.T) {
	now := time.Now()
	feedXML := rssFeed(
		rssItem("Fresh", "https://test.example.com/1", now.Add(-1*time.Hour)),
		rssItem("Stale", "https://test.example.com/2", now.Add(-90*24*time.Hour)),
	)
	service := serviceWithFeed(feedXML, 48*time.Hour)

	stubs, err := service.FetchArticles(context.Background(), testSource())
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(stubs) != 1 {
		t.Fatalf("FetchArticles returned %d stubs, want 1", len(stubs))
	}
	if stubs[0].Title != "Fresh" {
		t.Errorf("stubs[0].Title = %q, want %q", stubs[0].Title, "Fresh")
	}
}

func TestFetchArticles_RecencyDisabled(t *testing.T) {
	now := time.Now()
	feedXML := rssFeed(
		rssItem("Old but kept", "https://test.example.com/1", now.Add(-90*24*time.Hour)),
	)
	service := serviceWithFeed(feedXML, 0)

	stubs, err := service.FetchArticles(context.Background(), testSource())
	if err != nil {
		t.Fatalf("FetchArticles returned error: %v", err)
	}

	if len(stubs) != 1 {
		t.Errorf("FetchArticles returned %d stubs, want 1", len(stubs))
	}
}

func TestFetchArticles_HTTPError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	_, err := service.FetchArticles(context.Background(), testSource())
	if err == nil {
		t.Fatal("FetchArticles should return error on HTTP failure")
	}
	if !coreerrors.IsFetch(err) {
		t.Errorf("error should be a FetchError, got %T", err)
	}
}

func TestFetchArticles_Non200Status(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404, body: "not found"}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0)

	_, err := service.FetchArticles(context.Background(), testSource())
	if err == nil {
		t.Fatal("FetchArticles should return error for non-200 status")
	}
	if !coreerrors.IsFetch(err) {
		t.Errorf("error should be a FetchError, got %T", err)
	}
}

func TestFetchArticles_UnparseableFeed(t *testing.T) {
	service := serviceWithFeed("this is not XML", 0)

	_, err := service.FetchArticles(context.Background(), testSource())
	if err == nil {
		t.Fatal("FetchArticles should return error for unparseable feed")
	}
	if !coreerrors.IsFetch(err) {
		t.Errorf("error should be a FetchError, got %T", err)
	}
}

func TestFetchArticles_InvalidSource(t *testing.T) {
	service := serviceWithFeed(rssFeed(), 0)

	source := testSource()
	source.MaxArticles = 0

	_, err := service.FetchArticles(context.Background(), source)
	if err == nil {
		t.Fatal("FetchArticles should reject invalid source")
	}
}

func TestResolveLink_Relative(t *testing.T) {
	got := resolveLink("/posts/1", "https://test.example.com")
	if got != "https://test.example.com/posts/1" {
		t.Errorf("resolveLink = %q", got)
	}
}

func TestResolveLink_Absolute(t *testing.T) {
	link := "https://other.example.com/posts/1"
	if got := resolveLink(link, "https://test.example.com"); got != link {
		t.Errorf("resolveLink = %q, want %q", got, link)
	}
}
