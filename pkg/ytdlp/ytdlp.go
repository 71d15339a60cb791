package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Flat search output lines carry full descriptions, so they can get large.
const maxLineSize = 1024 * 1024

// runner executes a command and returns its stdout and stderr.
// Tests swap this out to avoid spawning real subprocesses.
type runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// YTDLP wraps the yt-dlp command-line tool for flat metadata searches
type YTDLP struct {
	path    string
	timeout time.Duration
	run     runner
}

// Option configures a YTDLP instance
type Option func(*YTDLP)

// WithRunner replaces the subprocess runner (for tests)
func WithRunner(run func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)) Option {
	return func(y *YTDLP) {
		y.run = run
	}
}

// New creates a new YTDLP instance
func New(path string, timeout time.Duration, opts ...Option) *YTDLP {
	y := &YTDLP{
		path:    path,
		timeout: timeout,
		run:     execRunner,
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// ValidateBinary checks if yt-dlp is available on the PATH
func (y *YTDLP) ValidateBinary() error {
	if _, err := exec.LookPath(y.path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, y.path)
	}
	return nil
}

// Search runs a flat yt-dlp search for the query and parses the
// line-delimited JSON output. Nothing is downloaded. A malformed output
// line is logged and skipped; it never fails the batch. At most limit
// videos are returned, in the order yt-dlp produced them.
func (y *YTDLP) Search(ctx context.Context, query string, limit int) ([]Video, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []string{
		"--flat-playlist",
		"-j",
		"--no-warnings",
		"--skip-download",
		fmt.Sprintf("ytsearch%d:%s", limit, query),
	}

	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	stdout, stderr, err := y.run(ctx, y.path, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, y.path)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewSearchError(query, ErrSearchTimeout, strings.TrimSpace(string(stderr)))
		}
		return nil, NewSearchError(query, err, strings.TrimSpace(string(stderr)))
	}

	return y.parseVideos(stdout, query, limit), nil
}

// parseVideos decodes one Video per output line
func (y *YTDLP) parseVideos(output []byte, query string, limit int) []Video {
	videos := make([]Video, 0, limit)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if len(videos) >= limit {
			break
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var video Video
		if err := json.Unmarshal(line, &video); err != nil {
			logrus.WithFields(logrus.Fields{
				"query": query,
				"error": err,
			}).Warn("Skipping malformed yt-dlp output line")
			continue
		}
		if video.ID == "" {
			logrus.WithField("query", query).Warn("Skipping yt-dlp entry without an id")
			continue
		}

		videos = append(videos, video)
	}

	return videos
}

// execRunner is the default runner backed by os/exec
func execRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
