package domain

import "testing"

func validSource() SourceConfig {
	return SourceConfig{
		ID:          "example-blog",
		Name:        "Example Blog",
		Description: "Example news",
		RSSURL:      "https://example.com/feed.xml",
		BaseURL:     "https://example.com",
		Enabled:     true,
		Tags:        []string{"ai"},
		MaxArticles: 5,
	}
}

func TestSourceConfig_Validate(t *testing.T) {
	source := validSource()

	if err := source.Validate(); err != nil {
		t.Errorf("Validate returned error for valid source: %v", err)
	}
}

func TestSourceConfig_Validate_EmptyID(t *testing.T) {
	source := validSource()
	source.ID = ""

	if err := source.Validate(); err == nil {
		t.Error("Validate should return error for empty id")
	}
}

func TestSourceConfig_Validate_EmptyRSSURL(t *testing.T) {
	source := validSource()
	source.RSSURL = ""

	if err := source.Validate(); err == nil {
		t.Error("Validate should return error for empty RSS URL")
	}
}

func TestSourceConfig_Validate_InvalidRSSURL(t *testing.T) {
	source := validSource()
	source.RSSURL = "not a url"

	if err := source.Validate(); err == nil {
		t.Error("Validate should return error for malformed RSS URL")
	}
}

func TestSourceConfig_Validate_NonPositiveCap(t *testing.T) {
	source := validSource()
	source.MaxArticles = 0

	if err := source.Validate(); err == nil {
		t.Error("Validate should return error for non-positive article cap")
	}
}
