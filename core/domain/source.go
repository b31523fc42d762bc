// ABOUTME: SourceConfig domain model describes a configured RSS news source
// ABOUTME: Provides validation logic to ensure source data integrity

package domain

import (
	"errors"
	"net/url"
)

// SourceConfig represents one configured RSS-publishing origin.
// Sources are loaded once at process start and never mutated.
type SourceConfig struct {
	// ID is the unique identifier for the source (e.g., "openai-blog")
	ID string

	// Name is the human-readable display name
	Name string

	// Description provides a brief description of the source's content
	Description string

	// RSSURL is the feed URL to fetch
	RSSURL string

	// BaseURL is the website URL associated with the source
	BaseURL string

	// Enabled marks whether this source participates in a run
	Enabled bool

	// Tags classify the source (e.g., "ai", "research")
	Tags []string

	// MaxArticles caps how many articles one run takes from this source
	MaxArticles int
}

// Validate checks if the source has valid required fields
func (s *SourceConfig) Validate() error {
	if s.ID == "" {
		return errors.New("source id cannot be empty")
	}

	if s.Name == "" {
		return errors.New("source name cannot be empty")
	}

	if s.RSSURL == "" {
		return errors.New("source RSS URL cannot be empty")
	}

	parsed, err := url.Parse(s.RSSURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("source RSS URL is not valid format")
	}

	if s.MaxArticles < 1 {
		return errors.New("source max articles must be at least 1")
	}

	return nil
}
