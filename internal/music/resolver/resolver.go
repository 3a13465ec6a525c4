package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mordomo/internal/music"
)

var (
	ErrNoMatch    = errors.New("no source can handle this input")
	ErrNoStream   = errors.New("no playable stream found")
	ErrNoResults  = errors.New("no results for query")
	ErrUnresolved = errors.New("track has no page URL or title to resolve")
)

// Source turns one family of inputs (a URL shape, a station name) into
// tracks. Sources are consulted in registration order.
type Source interface {
	Name() string
	Match(input string) bool
	Resolve(ctx context.Context, input string) ([]*music.Track, error)
}

// Options configures the resolver. Spotify is only registered when both
// credentials are present.
type Options struct {
	SpotifyID     string
	SpotifySecret string
}

// Resolver routes input to sources and lazily fills stream URLs.
// It implements music.Resolver.
type Resolver struct {
	sources []Source
	yt      *YouTube
}

func New(opts Options) *Resolver {
	yt := NewYouTube()
	r := &Resolver{yt: yt}

	r.sources = append(r.sources, NewRadio())
	if opts.SpotifyID != "" && opts.SpotifySecret != "" {
		r.sources = append(r.sources, NewSpotify(opts.SpotifyID, opts.SpotifySecret, yt))
	}
	r.sources = append(r.sources, yt)
	return r
}

// Resolve accepts a URL or free text. URLs are routed to the first source
// whose Match accepts them; anything else is a YouTube title search.
func (r *Resolver) Resolve(ctx context.Context, input string) ([]*music.Track, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrNoResults
	}

	if !isURL(input) {
		return r.yt.Search(ctx, input)
	}

	for _, s := range r.sources {
		if s.Match(input) {
			tracks, err := s.Resolve(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.Name(), err)
			}
			return tracks, nil
		}
	}
	return nil, ErrNoMatch
}

// ResolveStream fills t.StreamURL right before playback. Radio tracks come
// pre-resolved; Spotify-born tracks carry only a title and get a YouTube
// page first.
func (r *Resolver) ResolveStream(ctx context.Context, t *music.Track) error {
	if t.Resolved && t.StreamURL != "" {
		return nil
	}
	if t.PageURL == "" {
		if t.Title == "" {
			return ErrUnresolved
		}
		found, err := r.yt.Search(ctx, t.Title)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return ErrNoResults
		}
		t.PageURL = found[0].PageURL
		if t.Thumbnail == "" {
			t.Thumbnail = found[0].Thumbnail
		}
	}
	return r.yt.ResolveStream(ctx, t)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
