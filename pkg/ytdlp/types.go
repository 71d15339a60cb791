package ytdlp

import "fmt"

// Video represents a single entry from yt-dlp's flat search output.
// Flat extraction omits many fields, so most of these are optional.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Channel     string  `json:"channel"`
	Uploader    string  `json:"uploader"`
	Duration    float64 `json:"duration"`
	ViewCount   int64   `json:"view_count"`
	UploadDate  string  `json:"upload_date"` // YYYYMMDD
	Description string  `json:"description"`
}

// WatchURL returns the video's URL, synthesizing the canonical watch URL
// from the ID when yt-dlp omitted it.
func (v Video) WatchURL() string {
	if v.URL != "" {
		return v.URL
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
}

// ChannelName returns the channel name, falling back to the uploader field.
func (v Video) ChannelName() string {
	if v.Channel != "" {
		return v.Channel
	}
	return v.Uploader
}
