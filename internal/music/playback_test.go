package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markPlaying puts the session in the state the run loop holds while a
// track is streaming, without a real voice connection.
func markPlaying(s *Session) {
	s.mu.Lock()
	s.state = StatePlaying
	s.mu.Unlock()
}

func TestPlayAfterStopKeepsFreshTrack(t *testing.T) {
	s := testSession(t)
	s.Enqueue(track("old", 0))
	markPlaying(s)
	require.NoError(t, s.Stop())

	// the play command lands while the loop is still winding down, so it
	// sees a non-idle state and starts no loop of its own
	fresh := track("fresh", 0)
	s.Enqueue(fresh)
	s.Play("voice-1")

	// the pending stop still wins this round
	assert.Nil(t, s.nextTrack())

	// but the loop must not go idle with the fresh track queued
	require.False(t, s.becomeIdle())
	assert.Equal(t, StatePlaying, s.StateValue())

	got := s.nextTrack()
	require.NotNil(t, got)
	assert.Equal(t, "fresh", got.Title)
}

func TestIdleHandoffRechecksQueue(t *testing.T) {
	s := testSession(t)
	markPlaying(s)

	// natural drain: the loop saw an empty queue
	require.Nil(t, s.nextTrack())

	// a track is enqueued in the window before the loop commits idle
	s.Enqueue(track("late", 0))

	require.False(t, s.becomeIdle())
	got := s.nextTrack()
	require.NotNil(t, got)
	assert.Equal(t, "late", got.Title)
}

func TestBecomeIdleWithEmptyQueue(t *testing.T) {
	s := testSession(t)
	markPlaying(s)
	s.SetCurrent(track("a", 0))

	require.True(t, s.becomeIdle())
	assert.Equal(t, StateIdle, s.StateValue())
	assert.Nil(t, s.Current())
	assert.Empty(t, s.OwnerID())
}
