package models

import (
	"fmt"
	"strings"
	"time"
)

// SearchRequest carries one incoming search. It is built per HTTP call
// and discarded when the call completes.
type SearchRequest struct {
	Query   string
	Season  int // 0 means not specified
	Episode int // 0 means not specified
	Limit   int
}

// EpisodeTag returns the season/episode hint as S00 or S00E00,
// or "" when no season was given.
func (r SearchRequest) EpisodeTag() string {
	if r.Season <= 0 {
		return ""
	}
	tag := fmt.Sprintf("S%02d", r.Season)
	if r.Episode > 0 {
		tag += fmt.Sprintf("E%02d", r.Episode)
	}
	return tag
}

// Keywords folds the season/episode hint into the free-text query.
// The external search tool has no native season/episode concept.
func (r SearchRequest) Keywords() string {
	tokens := []string{}
	if r.Query != "" {
		tokens = append(tokens, r.Query)
	}
	if tag := r.EpisodeTag(); tag != "" {
		tokens = append(tokens, tag)
	}
	return strings.Join(tokens, " ")
}

// VideoResult is one search hit, normalized from the external tool's
// output. Consumed once by the protocol layer; never persisted.
type VideoResult struct {
	ID              string
	Title           string
	URL             string
	Channel         string
	DurationSeconds int64
	ViewCount       int64
	PublishedAt     time.Time // zero when unknown
	SizeBytes       int64
}
