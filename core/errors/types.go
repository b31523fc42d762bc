// ABOUTME: Custom error types for the summarizer pipeline stages
// ABOUTME: Distinguishes fatal configuration errors from per-unit skips

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents an invalid configuration detected before any
// network activity. It is the only error class that aborts a run outright.
type ConfigurationError struct {
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// FetchError represents a failure to download or parse one source's RSS feed.
// The source is skipped; the run continues.
type FetchError struct {
	SourceID string
	Err      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error for source %s: %v", e.SourceID, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a failure to retrieve or extract one article's
// page content. The article falls back to its RSS description or is dropped.
type ExtractionError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SummarizationError represents an API failure, timeout, or malformed
// response while summarizing one unit (an article or the executive step).
type SummarizationError struct {
	Unit string
	Err  error
}

// Error implements the error interface
func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization error for %s: %v", e.Unit, e.Err)
}

// Unwrap returns the underlying error
func (e *SummarizationError) Unwrap() error {
	return e.Err
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractErr *ExtractionError
	return errors.As(err, &extractErr)
}

// IsSummarization checks if an error is a SummarizationError
func IsSummarization(err error) bool {
	var sumErr *SummarizationError
	return errors.As(err, &sumErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
