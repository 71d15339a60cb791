package ytdlp

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound      = errors.New("yt-dlp binary not found")
	ErrSearchTimeout = errors.New("yt-dlp search timed out")
)

// SearchError represents a failed yt-dlp invocation
type SearchError struct {
	Query  string // The search query that failed
	Err    error  // The underlying error
	Stderr string // stderr output from yt-dlp
}

func (e *SearchError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("yt-dlp search failed for %q: %v (stderr: %s)", e.Query, e.Err, e.Stderr)
	}
	return fmt.Sprintf("yt-dlp search failed for %q: %v", e.Query, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError creates a new SearchError
func NewSearchError(query string, err error, stderr string) *SearchError {
	return &SearchError{
		Query:  query,
		Err:    err,
		Stderr: stderr,
	}
}
