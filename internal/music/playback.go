package music

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"mordomo/internal/logger"
	"mordomo/internal/music/stream"
)

// Play remembers the voice channel to stream into and starts the playback
// loop if the session is idle. Any new activity supersedes a pending idle
// disconnect.
func (s *Session) Play(channelID string) {
	s.mu.Lock()
	if channelID != "" {
		s.channelID = channelID
	}
	s.activityGen++
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StatePlaying
	s.mu.Unlock()

	go s.run()
}

// run is the per-session playback loop. It is the only goroutine that
// advances tracks, so a natural track-finished advance can never interleave
// with itself; explicit commands talk to it through the stop channel and
// the state guarded by s.mu.
func (s *Session) run() {
	for {
		track := s.nextTrack()
		if track == nil {
			if !s.becomeIdle() {
				// a play command landed while the loop was winding
				// down; it is this loop's job to pick it up
				continue
			}
			s.emit(Event{Type: EventQueueEmpty})
			return
		}

		if err := s.resolver.ResolveStream(context.Background(), track); err != nil {
			logger.Warnf("music: skipping track %q: %v", track.Title, err)
			s.emit(Event{Type: EventTrackFailed, Track: track, Err: err})
			s.dropCurrent(track)
			continue
		}

		vc, err := s.ensureVoice()
		if err != nil {
			logger.Errorf("music: guild %s: %v", s.guildID, err)
			s.emit(Event{Type: EventDisconnected, Err: err})
			s.forceIdle()
			return
		}

		stop := s.newStop()
		s.emit(Event{Type: EventNowPlaying, Track: track})

		err = stream.Play(stream.Options{
			URL:    track.StreamURL,
			Live:   track.Live(),
			VC:     vc,
			Stop:   stop,
			Volume: s.Volume,
			Paused: func() bool { return s.StateValue() == StatePaused },
		})
		if err != nil {
			logger.Warnf("music: track %q ended with error: %v", track.Title, err)
			s.emit(Event{Type: EventTrackFailed, Track: track, Err: err})
			s.dropCurrent(track)
		}
	}
}

// nextTrack picks the track to play next under the session lock: a replay
// requested by Previous wins, then a pending explicit stop, then the loop
// mode via dequeueNextLocked.
func (s *Session) nextTrack() *Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.leaving {
		s.leaving = false
		return nil
	}
	if s.restart && s.current != nil {
		s.restart = false
		s.state = StatePlaying
		return s.current
	}

	next := s.dequeueNextLocked()
	if next == nil {
		return nil
	}
	if next != s.current {
		s.setCurrentLocked(next)
	}
	s.state = StatePlaying
	return next
}

// dropCurrent forgets a failed track so it cannot be replayed by
// LoopTrack. It is not pushed to history.
func (s *Session) dropCurrent(t *Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == t {
		s.current = nil
	}
}

// Skip aborts the current track; the playback loop advances on its own.
func (s *Session) Skip() error {
	s.mu.Lock()
	if s.state == StateIdle {
		s.mu.Unlock()
		return ErrNoTrackPlaying
	}
	s.state = StatePlaying // unpause so the stream loop can observe the stop
	s.activityGen++
	s.mu.Unlock()

	s.signalStop()
	return nil
}

// Stop aborts playback and clears the pending queue. The voice connection
// is kept; the idle timer will release it later.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state == StateIdle {
		s.mu.Unlock()
		return ErrNoTrackPlaying
	}
	s.pending = nil
	if s.current != nil {
		s.setCurrentLocked(nil)
	}
	s.leaving = true
	s.state = StatePlaying
	s.mu.Unlock()

	s.signalStop()
	s.emit(Event{Type: EventStopped})
	return nil
}

// Pause suspends streaming without losing position in the queue.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying || s.current == nil {
		return ErrNoTrackPlaying
	}
	s.state = StatePaused
	return nil
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return ErrNotPaused
	}
	s.state = StatePlaying
	return nil
}

// Join connects to a voice channel without starting playback.
func (s *Session) Join(channelID string) error {
	vc, err := s.dg.ChannelVoiceJoin(s.guildID, channelID, false, true)
	if err != nil {
		return fmt.Errorf("join voice channel: %w", err)
	}
	s.mu.Lock()
	s.vc = vc
	s.channelID = channelID
	s.activityGen++
	idle := s.state == StateIdle
	s.mu.Unlock()

	if idle {
		s.armIdleTimer()
	}
	return nil
}

// Disconnect stops playback, clears the queue and leaves the voice channel
// immediately.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.pending = nil
	if s.current != nil {
		s.setCurrentLocked(nil)
	}
	s.ownerID = ""
	wasActive := s.state != StateIdle
	if wasActive {
		s.leaving = true
		s.state = StatePlaying
	}
	vc := s.vc
	s.vc = nil
	s.channelID = ""
	s.mu.Unlock()

	if wasActive {
		s.signalStop()
	}
	if vc != nil {
		_ = vc.Disconnect()
		s.emit(Event{Type: EventDisconnected})
	}
}

// Connected reports whether the session holds a voice connection.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vc != nil
}

// newStop installs a fresh stop channel for the track about to play.
func (s *Session) newStop() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCur = make(chan struct{})
	s.stopOnce = &sync.Once{}
	return s.stopCur
}

func (s *Session) signalStop() {
	s.mu.Lock()
	stop, once := s.stopCur, s.stopOnce
	s.mu.Unlock()
	if stop != nil && once != nil {
		once.Do(func() { close(stop) })
	}
}

// ensureVoice returns a live voice connection, reusing the held one when it
// still points at the right channel. Connection loss is treated as
// recoverable: one reconnect attempt to the last known channel before
// giving up.
func (s *Session) ensureVoice() (*discordgo.VoiceConnection, error) {
	s.mu.Lock()
	vc, channelID := s.vc, s.channelID
	s.mu.Unlock()

	if channelID == "" {
		return nil, ErrNotConnected
	}
	if vc != nil && vc.ChannelID == channelID {
		return vc, nil
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			logger.Warnf("music: guild %s: retrying voice join to %s", s.guildID, channelID)
			time.Sleep(time.Second)
		}
		vc, err = s.dg.ChannelVoiceJoin(s.guildID, channelID, false, true)
		if err == nil {
			s.mu.Lock()
			s.vc = vc
			s.mu.Unlock()
			return vc, nil
		}
	}
	return nil, fmt.Errorf("join voice channel %s: %w", channelID, err)
}

// becomeIdle marks the session idle and arms the inactivity disconnect.
// It refuses (returns false) when tracks were enqueued after the drain the
// caller observed: Play sees a non-idle state and starts no loop of its
// own, so the running loop must keep going or the queue is stranded.
func (s *Session) becomeIdle() bool {
	s.mu.Lock()
	if len(s.pending) > 0 {
		s.leaving = false
		s.state = StatePlaying
		s.mu.Unlock()
		return false
	}
	s.state = StateIdle
	if s.current != nil {
		s.setCurrentLocked(nil)
	}
	s.ownerID = ""
	s.mu.Unlock()

	s.armIdleTimer()
	return true
}

// forceIdle abandons whatever is still queued and goes idle. Used when the
// voice connection cannot be established, where retrying the queue would
// only fail the same way.
func (s *Session) forceIdle() {
	s.mu.Lock()
	s.pending = nil
	s.leaving = false
	s.state = StateIdle
	if s.current != nil {
		s.setCurrentLocked(nil)
	}
	s.ownerID = ""
	s.mu.Unlock()

	s.armIdleTimer()
}

// armIdleTimer schedules the voice-connection release. The disconnect is a
// timeout race against any new play command: the captured generation is
// re-checked under the lock right before disconnecting, so activity that
// arrived first always supersedes the teardown.
func (s *Session) armIdleTimer() {
	if s.idleTimeout <= 0 {
		return
	}
	s.mu.Lock()
	gen := s.activityGen
	s.mu.Unlock()

	time.AfterFunc(s.idleTimeout, func() {
		s.mu.Lock()
		if s.activityGen != gen || s.state != StateIdle || len(s.pending) > 0 {
			s.mu.Unlock()
			return
		}
		vc := s.vc
		s.vc = nil
		s.channelID = ""
		s.mu.Unlock()

		if vc != nil {
			logger.Infof("music: guild %s: idle for %s, releasing voice connection", s.guildID, s.idleTimeout)
			_ = vc.Disconnect()
			s.emit(Event{Type: EventDisconnected})
		}
	})
}
