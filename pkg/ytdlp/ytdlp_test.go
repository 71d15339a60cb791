package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRunner(stdout, stderr string, err error) Option {
	return WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(stdout), []byte(stderr), err
	})
}

func TestNew(t *testing.T) {
	y := New("yt-dlp", 30*time.Second)
	assert.Equal(t, "yt-dlp", y.path)
	assert.Equal(t, 30*time.Second, y.timeout)
	assert.NotNil(t, y.run)
}

func TestSearch_ParsesFlatOutput(t *testing.T) {
	output := strings.Join([]string{
		`{"id":"abc123","title":"Clip A","url":"https://www.youtube.com/watch?v=abc123","channel":"Kurzgesagt","duration":512,"view_count":1000,"upload_date":"20240110"}`,
		`{"id":"def456","title":"Clip B","uploader":"Kurzgesagt","duration":618.5}`,
	}, "\n")

	y := New("yt-dlp", time.Second, fakeRunner(output, "", nil))
	videos, err := y.Search(context.Background(), "kurzgesagt", 20)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "abc123", videos[0].ID)
	assert.Equal(t, "Clip A", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].WatchURL())
	assert.Equal(t, "Kurzgesagt", videos[0].ChannelName())
	assert.Equal(t, "20240110", videos[0].UploadDate)

	// URL omitted in flat mode gets synthesized from the ID
	assert.Equal(t, "https://www.youtube.com/watch?v=def456", videos[1].WatchURL())
	assert.Equal(t, "Kurzgesagt", videos[1].ChannelName())
}

func TestSearch_SkipsMalformedLines(t *testing.T) {
	output := strings.Join([]string{
		`{"id":"v1","title":"One"}`,
		`{"id":"v2","title":"Two"}`,
		`{not valid json`,
		`{"id":"v3","title":"Three"}`,
		`{"id":"v4","title":"Four"}`,
	}, "\n")

	y := New("yt-dlp", time.Second, fakeRunner(output, "", nil))
	videos, err := y.Search(context.Background(), "query", 20)
	require.NoError(t, err)

	assert.Len(t, videos, 4)
	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, titlesOf(videos))
}

func TestSearch_CapsResults(t *testing.T) {
	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf(`{"id":"v%d","title":"Video %d"}`, i, i))
	}

	y := New("yt-dlp", time.Second, fakeRunner(strings.Join(lines, "\n"), "", nil))
	videos, err := y.Search(context.Background(), "query", 20)
	require.NoError(t, err)

	require.Len(t, videos, 20)
	// Order is preserved, the tail is dropped
	assert.Equal(t, "Video 0", videos[0].Title)
	assert.Equal(t, "Video 19", videos[19].Title)
}

func TestSearch_Timeout(t *testing.T) {
	y := New("yt-dlp", 50*time.Millisecond, WithRunner(
		func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			<-ctx.Done()
			return nil, nil, ctx.Err()
		}))

	start := time.Now()
	videos, err := y.Search(context.Background(), "query", 20)
	elapsed := time.Since(start)

	assert.Nil(t, videos)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearchTimeout)
	assert.Less(t, elapsed, time.Second, "search should return promptly after the timeout")

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "query", searchErr.Query)
}

func TestSearch_CommandFailure(t *testing.T) {
	y := New("yt-dlp", time.Second, fakeRunner("", "ERROR: rate limited", fmt.Errorf("exit status 1")))

	videos, err := y.Search(context.Background(), "query", 20)
	assert.Nil(t, videos)
	require.Error(t, err)

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Contains(t, searchErr.Stderr, "rate limited")
}

func TestSearch_BinaryMissing(t *testing.T) {
	y := New("yt-dlp-missing", time.Second, fakeRunner("", "", fmt.Errorf("exec: %w", exec.ErrNotFound)))

	videos, err := y.Search(context.Background(), "query", 20)
	assert.Nil(t, videos)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch_BuildsSearchDirective(t *testing.T) {
	var gotArgs []string
	y := New("yt-dlp", time.Second, WithRunner(
		func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			gotArgs = args
			return nil, nil, nil
		}))

	_, err := y.Search(context.Background(), "kurzgesagt S02E01", 15)
	require.NoError(t, err)

	assert.Contains(t, gotArgs, "--flat-playlist")
	assert.Contains(t, gotArgs, "--skip-download")
	assert.Contains(t, gotArgs, "ytsearch15:kurzgesagt S02E01")
}

func titlesOf(videos []Video) []string {
	titles := make([]string, 0, len(videos))
	for _, v := range videos {
		titles = append(titles, v.Title)
	}
	return titles
}
