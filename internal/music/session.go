package music

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// LoopMode governs what DequeueNext returns once the current track ends.
type LoopMode int

const (
	LoopNone LoopMode = iota
	LoopTrack
	LoopAll
)

func (m LoopMode) String() string {
	switch m {
	case LoopTrack:
		return "track"
	case LoopAll:
		return "all"
	default:
		return "off"
	}
}

// State is the session's playback state.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
)

var (
	ErrNoTrackPlaying   = errors.New("no track is currently playing")
	ErrNotPaused        = errors.New("playback is not paused")
	ErrQueueEmpty       = errors.New("no tracks in queue")
	ErrNoHistory        = errors.New("no previously played track")
	ErrNotConnected     = errors.New("not connected to a voice channel")
	ErrVolumeOutOfRange = errors.New("volume must be between 0.0 and 1.0")
	ErrBadIndex         = errors.New("no track at that queue position")
)

// Tracks popped from history beyond this are dropped.
const historyLimit = 50

// Session owns all mutable playback state for one guild voice session:
// the pending queue (FIFO), the played history (LIFO for "previous"),
// the current track, loop mode and volume. All exported methods are safe
// for concurrent use; the playback loop in playback.go serializes actual
// streaming against explicit commands through the same lock.
type Session struct {
	mu      sync.Mutex
	guildID string

	pending []*Track
	history []*Track
	current *Track
	loop    LoopMode
	volume  float64
	state   State
	ownerID string

	// restart makes the playback loop replay the current track instead of
	// dequeuing; set by Previous.
	restart bool

	dg            *discordgo.Session
	vc            *discordgo.VoiceConnection
	channelID     string
	textChannelID string
	resolver      Resolver
	idleTimeout   time.Duration

	// activityGen supersedes a pending idle disconnect whenever new
	// activity arrives; see armIdleTimer.
	activityGen uint64

	stopCur  chan struct{}
	stopOnce *sync.Once
	leaving  bool

	events chan Event
}

func newSession(dg *discordgo.Session, guildID string, resolver Resolver, idleTimeout time.Duration) *Session {
	return &Session{
		guildID:     guildID,
		dg:          dg,
		resolver:    resolver,
		idleTimeout: idleTimeout,
		volume:      1.0,
		events:      make(chan Event, 16),
	}
}

// GuildID returns the guild this session belongs to.
func (s *Session) GuildID() string { return s.guildID }

// SetTextChannel remembers where playback announcements should go, usually
// the channel the last play command came from.
func (s *Session) SetTextChannel(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textChannelID = channelID
}

// TextChannel returns the announcement channel, or "" if none was set.
func (s *Session) TextChannel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textChannelID
}

// Enqueue appends a track to the pending list. The requester of the first
// track of an idle session becomes the session owner.
func (s *Session) Enqueue(t *Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerID == "" {
		s.ownerID = t.RequestedBy
	}
	s.pending = append(s.pending, t)
	s.activityGen++
}

// DequeueNext returns the next track to play according to the loop mode,
// or nil when the queue is exhausted.
//
//   - LoopNone: pop the head of the pending list.
//   - LoopTrack: return the current track again without consuming the
//     pending list. No mirror copy is ever inserted, so leaving this mode
//     cannot strand a duplicate.
//   - LoopAll: move the outgoing current track to the tail first, then pop
//     the new head. When both the queue and the current track are spent but
//     history is not, the history is moved wholesale back into the pending
//     list to restart the cycle.
func (s *Session) DequeueNext() *Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dequeueNextLocked()
}

func (s *Session) dequeueNextLocked() *Track {
	switch s.loop {
	case LoopTrack:
		if s.current != nil {
			return s.current
		}
	case LoopAll:
		if s.current != nil {
			s.pending = append(s.pending, s.current)
			s.current = nil
		}
		if len(s.pending) == 0 && len(s.history) > 0 {
			s.pending = s.history
			s.history = nil
		}
	}

	if len(s.pending) == 0 {
		return nil
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	return next
}

// SetCurrent moves the previous current track (if any) onto the history
// list and makes t current. Called exactly once per actual transition.
func (s *Session) SetCurrent(t *Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCurrentLocked(t)
}

func (s *Session) setCurrentLocked(t *Track) {
	if s.current != nil {
		s.history = append(s.history, s.current)
		if len(s.history) > historyLimit {
			s.history = s.history[len(s.history)-historyLimit:]
		}
	}
	s.current = t
}

// Current returns the currently playing track, or nil.
func (s *Session) Current() *Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Previous pops the most recently played track off history, re-queues the
// outgoing current track at the head of the pending list and makes the
// popped track current. The playback loop then replays the new current
// track instead of dequeuing.
func (s *Session) Previous() (*Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return nil, ErrNoHistory
	}
	prev := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	if s.current != nil {
		s.pending = append([]*Track{s.current}, s.pending...)
	}
	s.current = prev
	s.restart = true
	s.activityGen++
	return prev, nil
}

// SetLoopMode transitions between loop modes. DequeueNext never inserts
// mirror copies for LoopTrack, so no cleanup is needed when toggling and
// the pending list is left exactly as it was.
func (s *Session) SetLoopMode(mode LoopMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop = mode
}

// LoopModeValue returns the active loop mode.
func (s *Session) LoopModeValue() LoopMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop
}

// ClearQueue empties the pending list, leaving the current track alone.
func (s *Session) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// ClearHistory empties the history list, leaving the current track alone.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Shuffle randomizes the order of the pending list.
func (s *Session) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	rand.Shuffle(len(s.pending), func(i, j int) {
		s.pending[i], s.pending[j] = s.pending[j], s.pending[i]
	})
}

// RemoveAt removes and returns the pending track at position i (0-based).
func (s *Session) RemoveAt(i int) (*Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.pending) {
		return nil, ErrBadIndex
	}
	t := s.pending[i]
	s.pending = append(s.pending[:i], s.pending[i+1:]...)
	return t, nil
}

// SetVolume stores a normalized volume and propagates it to the active
// stream (the streaming loop reads it per frame). Out-of-range input is
// rejected without mutating the stored value.
func (s *Session) SetVolume(v float64) error {
	if v < 0.0 || v > 1.0 {
		return ErrVolumeOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
	return nil
}

// Volume returns the normalized output volume.
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// TotalQueueDuration sums the durations of the pending list. Tracks with
// unknown duration contribute zero.
func (s *Session) TotalQueueDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total time.Duration
	for _, t := range s.pending {
		total += t.Duration
	}
	return total
}

// Idle reports whether nothing is current and the pending list is empty.
func (s *Session) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current == nil && len(s.pending) == 0
}

// StateValue returns the playback state.
func (s *Session) StateValue() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OwnerID returns the user who started the session, or "" when idle.
func (s *Session) OwnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownerID
}

// Queue returns a copy of the pending list.
func (s *Session) Queue() []*Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Track, len(s.pending))
	copy(out, s.pending)
	return out
}

// History returns a copy of the played-track history, oldest first.
func (s *Session) History() []*Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Track, len(s.history))
	copy(out, s.history)
	return out
}
