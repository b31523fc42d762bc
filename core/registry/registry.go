// ABOUTME: Feed registry returns the ordered set of configured news sources
// ABOUTME: Supports limiting to the first N enabled sources and YAML overrides

package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ai-news-digest/core/domain"
	coreerrors "ai-news-digest/core/errors"
)

// Registry holds the ordered set of configured sources for one process.
// It is immutable after construction and has no side effects.
type Registry struct {
	sources []domain.SourceConfig
}

// NewDefault creates a registry over the built-in source table.
func NewDefault() *Registry {
	sources := make([]domain.SourceConfig, len(defaultSources))
	copy(sources, defaultSources)
	return &Registry{sources: sources}
}

// NewFromSources creates a registry from an explicit source list,
// validating every entry.
func NewFromSources(sources []domain.SourceConfig) (*Registry, error) {
	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return nil, &coreerrors.ConfigurationError{
				Message: fmt.Sprintf("source %q: %v", sources[i].ID, err),
			}
		}
	}
	copied := make([]domain.SourceConfig, len(sources))
	copy(copied, sources)
	return &Registry{sources: copied}, nil
}

// sourcesFile is the YAML shape of an external sources override.
type sourcesFile struct {
	Sources []sourceEntry `yaml:"sources"`
}

type sourceEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	RSSURL      string   `yaml:"rss_url"`
	BaseURL     string   `yaml:"base_url"`
	Enabled     bool     `yaml:"enabled"`
	Tags        []string `yaml:"tags"`
	MaxArticles int      `yaml:"max_articles"`
}

// LoadFromYAML creates a registry from a YAML sources file, replacing the
// built-in table entirely.
func LoadFromYAML(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &coreerrors.ConfigurationError{
			Message: fmt.Sprintf("read sources file %s: %v", path, err),
		}
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &coreerrors.ConfigurationError{
			Message: fmt.Sprintf("parse sources file %s: %v", path, err),
		}
	}

	if len(file.Sources) == 0 {
		return nil, &coreerrors.ConfigurationError{
			Message: fmt.Sprintf("sources file %s defines no sources", path),
		}
	}

	sources := make([]domain.SourceConfig, 0, len(file.Sources))
	for _, entry := range file.Sources {
		sources = append(sources, domain.SourceConfig{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			RSSURL:      entry.RSSURL,
			BaseURL:     entry.BaseURL,
			Enabled:     entry.Enabled,
			Tags:        entry.Tags,
			MaxArticles: entry.MaxArticles,
		})
	}

	return NewFromSources(sources)
}

// All returns every configured source in registry order.
func (r *Registry) All() []domain.SourceConfig {
	sources := make([]domain.SourceConfig, len(r.sources))
	copy(sources, r.sources)
	return sources
}

// Enabled returns the enabled sources in registry order. A positive limit
// keeps only the first limit enabled sources; zero means no limit. A
// negative limit or an empty result is a configuration error.
func (r *Registry) Enabled(limit int) ([]domain.SourceConfig, error) {
	if limit < 0 {
		return nil, &coreerrors.ConfigurationError{
			Message: fmt.Sprintf("source limit must be positive, got %d", limit),
		}
	}

	enabled := make([]domain.SourceConfig, 0, len(r.sources))
	for _, source := range r.sources {
		if source.Enabled {
			enabled = append(enabled, source)
		}
	}

	if len(enabled) == 0 {
		return nil, &coreerrors.ConfigurationError{Message: "no enabled sources"}
	}

	if limit > 0 && limit < len(enabled) {
		enabled = enabled[:limit]
	}

	return enabled, nil
}
