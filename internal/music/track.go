package music

import (
	"context"
	"sync/atomic"
	"time"
)

// Kind discriminates ordinary on-demand tracks from live radio streams,
// which have no duration and never end on their own.
type Kind int

const (
	KindTrack Kind = iota
	KindRadio
)

// Track is one playable audio item. StreamURL is resolved lazily: a track
// coming from a search or a page link carries only PageURL until the
// resolver fills in a playable stream reference right before playback.
type Track struct {
	Title       string
	PageURL     string
	StreamURL   string
	Resolved    bool
	Duration    time.Duration // zero = unknown
	Uploader    string
	Thumbnail   string
	RequestedBy string
	Kind        Kind

	seq int64
}

var trackSeq atomic.Int64

// NewTrack stamps a track with a process-unique sequence number, used to
// correlate playback-finished events with the track they belong to.
func NewTrack(t Track) *Track {
	t.seq = trackSeq.Add(1)
	return &t
}

// Seq returns the track's unique sequence number.
func (t *Track) Seq() int64 { return t.seq }

// Live reports whether the track is an endless live stream.
func (t *Track) Live() bool { return t.Kind == KindRadio }

// Resolver turns user input into tracks and lazily resolves stream URLs.
// Implemented by the resolver package; narrowed to an interface here so the
// session state machine stays testable without network access.
type Resolver interface {
	// Resolve accepts a URL or free-text query and returns one or more
	// unplayed tracks (playlists expand to many).
	Resolve(ctx context.Context, input string) ([]*Track, error)

	// ResolveStream fills t.StreamURL for an unresolved track. Idempotent:
	// resolving an already resolved track is a no-op.
	ResolveStream(ctx context.Context, t *Track) error
}
