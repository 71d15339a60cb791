package search

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytznab/ytznab/internal/models"
	apperrors "github.com/ytznab/ytznab/pkg/errors"
	"github.com/ytznab/ytznab/pkg/ytdlp"
)

const (
	// Hard ceiling on results per request, matching the advertised caps limit
	maxResultLimit = 100

	// Rough size estimate: ~5 MB per minute of 720p video
	bytesPerMinute = 5 * 1024 * 1024

	// Placeholder duration when the tool reports none (10 minutes)
	assumedDurationSeconds = 600
)

// VideoSearcher is the subprocess dependency of the adapter
type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]ytdlp.Video, error)
}

// Service implements Searcher on top of yt-dlp
type Service struct {
	client     VideoSearcher
	maxResults int
}

// NewService creates a new search adapter.
// maxResults is the default result cap for requests that don't ask for one.
func NewService(client VideoSearcher, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = 20
	}
	return &Service{
		client:     client,
		maxResults: maxResults,
	}
}

// Search runs one external search and normalizes the output. A single
// invocation per request; no retries. Failures surface as AppErrors so
// the caller can distinguish an unreachable tool from a failed run.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) ([]models.VideoResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.maxResults
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}

	keywords := req.Keywords()

	videos, err := s.client.Search(ctx, keywords, limit)
	if err != nil {
		if errors.Is(err, ytdlp.ErrNotFound) {
			return nil, apperrors.ToolMissingError("yt-dlp", err)
		}
		if errors.Is(err, ytdlp.ErrSearchTimeout) {
			return nil, apperrors.ToolTimeoutError("yt-dlp", err)
		}
		return nil, apperrors.ExternalToolError("yt-dlp", err)
	}

	results := make([]models.VideoResult, 0, len(videos))
	for _, video := range videos {
		results = append(results, toVideoResult(video))
	}

	logrus.WithFields(logrus.Fields{
		"query":   keywords,
		"results": len(results),
	}).Debug("External search finished")

	return results, nil
}

// toVideoResult normalizes one yt-dlp entry
func toVideoResult(video ytdlp.Video) models.VideoResult {
	result := models.VideoResult{
		ID:              video.ID,
		Title:           video.Title,
		URL:             video.WatchURL(),
		Channel:         video.ChannelName(),
		DurationSeconds: int64(video.Duration),
		ViewCount:       video.ViewCount,
		SizeBytes:       estimateSize(video.Duration),
	}

	if video.UploadDate != "" {
		if published, err := time.Parse("20060102", video.UploadDate); err == nil {
			result.PublishedAt = published
		}
	}

	return result
}

// estimateSize approximates the download size from the duration.
// Flat extraction often omits the duration; assume a 10 minute video then.
func estimateSize(durationSeconds float64) int64 {
	if durationSeconds <= 0 {
		durationSeconds = assumedDurationSeconds
	}
	return int64(durationSeconds / 60.0 * bytesPerMinute)
}
