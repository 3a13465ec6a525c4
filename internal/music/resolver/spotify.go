package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"mordomo/internal/music"
)

var spotifyURLPattern = regexp.MustCompile(`open\.spotify\.com/(?:intl-[a-z]+/)?(track|playlist|album)/([a-zA-Z0-9]+)`)

// Spotify resolves track, album and playlist links into metadata-only
// tracks. Spotify does not serve audio to bots, so the tracks come out with
// a title and no page URL; the stream resolver finds them on YouTube later.
type Spotify struct {
	auth *clientcredentials.Config
	yt   *YouTube
}

func NewSpotify(id, secret string, yt *YouTube) *Spotify {
	return &Spotify{
		auth: &clientcredentials.Config{
			ClientID:     id,
			ClientSecret: secret,
			TokenURL:     spotifyauth.TokenURL,
		},
		yt: yt,
	}
}

func (s *Spotify) Name() string { return "spotify" }

func (s *Spotify) Match(input string) bool {
	return spotifyURLPattern.MatchString(input)
}

func (s *Spotify) Resolve(ctx context.Context, input string) ([]*music.Track, error) {
	m := spotifyURLPattern.FindStringSubmatch(input)
	if len(m) < 3 {
		return nil, ErrNoMatch
	}
	kind, id := m[1], spotify.ID(m[2])

	client := spotify.New(s.auth.Client(ctx))

	switch kind {
	case "track":
		full, err := client.GetTrack(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load track: %w", err)
		}
		return []*music.Track{fromFullTrack(full)}, nil

	case "album":
		album, err := client.GetAlbum(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load album: %w", err)
		}
		var thumb string
		if len(album.Images) > 0 {
			thumb = album.Images[0].URL
		}
		tracks := make([]*music.Track, 0, len(album.Tracks.Tracks))
		for _, st := range album.Tracks.Tracks {
			tracks = append(tracks, music.NewTrack(music.Track{
				Title:     searchTitle(st.Artists, st.Name),
				Duration:  st.TimeDuration(),
				Uploader:  artistNames(st.Artists),
				Thumbnail: thumb,
			}))
		}
		if len(tracks) == 0 {
			return nil, ErrNoResults
		}
		return tracks, nil

	case "playlist":
		page, err := client.GetPlaylistItems(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load playlist: %w", err)
		}
		var tracks []*music.Track
		for {
			for _, item := range page.Items {
				if item.Track.Track == nil { // podcast episodes have no track
					continue
				}
				tracks = append(tracks, fromFullTrack(item.Track.Track))
			}
			if err := client.NextPage(ctx, page); err != nil {
				if err == spotify.ErrNoMorePages {
					break
				}
				return nil, fmt.Errorf("page playlist: %w", err)
			}
		}
		if len(tracks) == 0 {
			return nil, ErrNoResults
		}
		return tracks, nil
	}
	return nil, ErrNoMatch
}

func fromFullTrack(full *spotify.FullTrack) *music.Track {
	var thumb string
	if len(full.Album.Images) > 0 {
		thumb = full.Album.Images[0].URL
	}
	return music.NewTrack(music.Track{
		Title:     searchTitle(full.Artists, full.Name),
		Duration:  full.TimeDuration(),
		Uploader:  artistNames(full.Artists),
		Thumbnail: thumb,
	})
}

func artistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func searchTitle(artists []spotify.SimpleArtist, name string) string {
	if len(artists) == 0 {
		return name
	}
	return artists[0].Name + " - " + name
}
