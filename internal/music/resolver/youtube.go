package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	youtube "github.com/kkdai/youtube/v2"
	"github.com/wader/goutubedl"

	"mordomo/internal/logger"
	"mordomo/internal/music"
)

var (
	youtubeURLPattern = regexp.MustCompile(`(?:https?://)?(?:www\.|music\.)?(youtube\.com|youtu\.be)/\S+`)
	searchHitPattern  = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]{11})`)
)

// YouTube resolves video and playlist URLs plus free-text searches. Stream
// extraction goes through the native client first and falls back to yt-dlp
// when YouTube changes something the client does not understand yet.
type YouTube struct {
	client *youtube.Client
	http   *http.Client
	base   string
}

func NewYouTube() *YouTube {
	return &YouTube{
		client: &youtube.Client{
			HTTPClient: &http.Client{Timeout: 15 * time.Second},
		},
		http: &http.Client{Timeout: 10 * time.Second},
		base: "https://www.youtube.com",
	}
}

func (y *YouTube) Name() string { return "youtube" }

func (y *YouTube) Match(input string) bool {
	return youtubeURLPattern.MatchString(input)
}

func (y *YouTube) Resolve(ctx context.Context, input string) ([]*music.Track, error) {
	if isPlaylistURL(input) {
		return y.resolvePlaylist(ctx, input)
	}
	t, err := y.resolveVideo(ctx, cleanVideoURL(input))
	if err != nil {
		return nil, err
	}
	return []*music.Track{t}, nil
}

// Search scrapes the results page for the first video hit, then loads its
// metadata. Same approach as a plain browser search, no API key needed.
func (y *YouTube) Search(ctx context.Context, query string) ([]*music.Track, error) {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", y.base, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := y.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	m := searchHitPattern.FindStringSubmatch(string(body))
	if len(m) < 2 {
		return nil, ErrNoResults
	}
	t, err := y.resolveVideo(ctx, fmt.Sprintf("%s/watch?v=%s", y.base, m[1]))
	if err != nil {
		return nil, err
	}
	return []*music.Track{t}, nil
}

func (y *YouTube) resolveVideo(ctx context.Context, pageURL string) (*music.Track, error) {
	video, err := y.client.GetVideoContext(ctx, pageURL)
	if err != nil {
		// metadata through yt-dlp when the native client chokes
		return y.resolveVideoFallback(ctx, pageURL)
	}
	t := music.NewTrack(music.Track{
		Title:    video.Title,
		PageURL:  pageURL,
		Duration: video.Duration,
		Uploader: video.Author,
	})
	if len(video.Thumbnails) > 0 {
		t.Thumbnail = video.Thumbnails[len(video.Thumbnails)-1].URL
	}
	return t, nil
}

func (y *YouTube) resolveVideoFallback(ctx context.Context, pageURL string) (*music.Track, error) {
	result, err := goutubedl.New(ctx, pageURL, goutubedl.Options{Type: goutubedl.TypeSingle})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", pageURL, err)
	}
	info := result.Info
	return music.NewTrack(music.Track{
		Title:     info.Title,
		PageURL:   pageURL,
		Duration:  time.Duration(info.Duration) * time.Second,
		Uploader:  info.Uploader,
		Thumbnail: info.Thumbnail,
	}), nil
}

func (y *YouTube) resolvePlaylist(ctx context.Context, pageURL string) ([]*music.Track, error) {
	playlist, err := y.client.GetPlaylistContext(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("load playlist: %w", err)
	}
	tracks := make([]*music.Track, 0, len(playlist.Videos))
	for _, entry := range playlist.Videos {
		tracks = append(tracks, music.NewTrack(music.Track{
			Title:    entry.Title,
			PageURL:  fmt.Sprintf("%s/watch?v=%s", y.base, entry.ID),
			Duration: entry.Duration,
			Uploader: entry.Author,
		}))
	}
	if len(tracks) == 0 {
		return nil, ErrNoResults
	}
	return tracks, nil
}

// ResolveStream fills t.StreamURL for a YouTube page. The native client is
// cheaper; yt-dlp handles whatever it cannot.
func (y *YouTube) ResolveStream(ctx context.Context, t *music.Track) error {
	if streamURL, err := y.streamNative(ctx, t.PageURL); err == nil {
		t.StreamURL = streamURL
		t.Resolved = true
		return nil
	} else {
		logger.Debugf("resolver: native stream extraction failed for %s, trying yt-dlp: %v", t.PageURL, err)
	}

	streamURL, err := y.streamYTDLP(ctx, t.PageURL)
	if err != nil {
		return err
	}
	t.StreamURL = streamURL
	t.Resolved = true
	return nil
}

func (y *YouTube) streamNative(ctx context.Context, pageURL string) (string, error) {
	video, err := y.client.GetVideoContext(ctx, pageURL)
	if err != nil {
		return "", err
	}
	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return "", ErrNoStream
	}
	return y.client.GetStreamURLContext(ctx, video, &formats[0])
}

func (y *YouTube) streamYTDLP(ctx context.Context, pageURL string) (string, error) {
	result, err := goutubedl.New(ctx, pageURL, goutubedl.Options{Type: goutubedl.TypeSingle})
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}
	info := result.Info
	if u := strings.TrimSpace(info.URL); u != "" {
		return u, nil
	}
	for _, f := range info.Formats {
		if u := strings.TrimSpace(f.URL); u != "" {
			return u, nil
		}
	}
	return "", ErrNoStream
}

func isPlaylistURL(s string) bool {
	return strings.Contains(s, "/playlist?list=") ||
		(strings.Contains(s, "list=") && !strings.Contains(s, "watch?v="))
}

// cleanVideoURL strips tracking and playlist parameters down to the bare
// video reference.
func cleanVideoURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	switch u.Hostname() {
	case "youtu.be":
		vid := strings.Trim(u.Path, "/")
		if vid == "" {
			return raw
		}
		return "https://youtu.be/" + vid
	case "www.youtube.com", "youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			if vid := u.Query().Get("v"); vid != "" {
				return fmt.Sprintf("https://%s/watch?v=%s", u.Hostname(), vid)
			}
		}
		return raw
	default:
		return raw
	}
}
