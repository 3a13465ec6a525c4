package music

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return newSession(nil, "guild-1", nil, 0)
}

func track(title string, d time.Duration) *Track {
	return &Track{Title: title, PageURL: "https://example.com/" + title, Duration: d}
}

func TestDequeueFIFO(t *testing.T) {
	s := testSession(t)
	a, b, c := track("a", 0), track("b", 0), track("c", 0)
	s.Enqueue(a)
	s.Enqueue(b)
	s.Enqueue(c)

	for _, want := range []*Track{a, b, c} {
		got := s.DequeueNext()
		require.NotNil(t, got)
		assert.Equal(t, want.Title, got.Title)
		s.SetCurrent(got)
	}
	assert.Nil(t, s.DequeueNext())
}

func TestLoopTrackRepeatsWithoutConsuming(t *testing.T) {
	s := testSession(t)
	a, b := track("a", 0), track("b", 0)
	s.Enqueue(a)
	s.Enqueue(b)

	s.SetCurrent(s.DequeueNext())
	require.Equal(t, "a", s.Current().Title)
	s.SetLoopMode(LoopTrack)

	for i := 0; i < 5; i++ {
		got := s.DequeueNext()
		require.NotNil(t, got)
		assert.Equal(t, "a", got.Title)
	}

	// leaving the mode must not have polluted the pending list
	s.SetLoopMode(LoopNone)
	assert.Len(t, s.Queue(), 1)
	assert.Equal(t, "b", s.Queue()[0].Title)
}

func TestLoopAllCyclesWithoutLossOrDuplication(t *testing.T) {
	s := testSession(t)
	a, b := track("a", 0), track("b", 0)
	s.Enqueue(a)
	s.Enqueue(b)
	s.SetLoopMode(LoopAll)

	var seen []string
	for i := 0; i < 6; i++ {
		got := s.DequeueNext()
		require.NotNil(t, got)
		if got != s.Current() {
			s.SetCurrent(got)
		}
		seen = append(seen, got.Title)
	}
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, seen)

	// the pair is still the whole universe: pending + current == {a, b}
	total := len(s.Queue())
	if s.Current() != nil {
		total++
	}
	assert.Equal(t, 2, total)
	assert.Empty(t, s.History())
}

func TestLoopAllRecyclesHistoryWhenDrained(t *testing.T) {
	s := testSession(t)
	a, b := track("a", 0), track("b", 0)
	s.Enqueue(a)
	s.Enqueue(b)

	// play both through under normal mode, landing them in history
	s.SetCurrent(s.DequeueNext())
	s.SetCurrent(s.DequeueNext())
	s.SetCurrent(nil)
	require.Empty(t, s.Queue())
	require.Len(t, s.History(), 2)

	s.SetLoopMode(LoopAll)
	got := s.DequeueNext()
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Title)
	assert.Empty(t, s.History())
}

func TestPrevious(t *testing.T) {
	s := testSession(t)
	a, b, c := track("a", 0), track("b", 0), track("c", 0)
	s.Enqueue(a)
	s.Enqueue(b)
	s.Enqueue(c)

	s.SetCurrent(s.DequeueNext()) // a
	s.SetCurrent(s.DequeueNext()) // b, a in history

	prev, err := s.Previous()
	require.NoError(t, err)
	assert.Equal(t, "a", prev.Title)
	assert.Equal(t, "a", s.Current().Title)

	// b went back to the head of pending, c after it
	q := s.Queue()
	require.Len(t, q, 2)
	assert.Equal(t, "b", q[0].Title)
	assert.Equal(t, "c", q[1].Title)
	assert.Empty(t, s.History())
}

func TestPreviousWithoutHistory(t *testing.T) {
	s := testSession(t)
	_, err := s.Previous()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestSetVolumeRejectsOutOfRange(t *testing.T) {
	s := testSession(t)
	require.NoError(t, s.SetVolume(0.5))

	assert.ErrorIs(t, s.SetVolume(-0.1), ErrVolumeOutOfRange)
	assert.ErrorIs(t, s.SetVolume(1.5), ErrVolumeOutOfRange)
	assert.Equal(t, 0.5, s.Volume())
}

func TestTotalQueueDuration(t *testing.T) {
	s := testSession(t)
	assert.Equal(t, time.Duration(0), s.TotalQueueDuration())

	s.Enqueue(track("a", 300*time.Second))
	s.Enqueue(track("b", 100*time.Second))
	s.Enqueue(track("c", 0)) // unknown duration counts as zero
	assert.Equal(t, 400*time.Second, s.TotalQueueDuration())

	s.DequeueNext()
	assert.Equal(t, 100*time.Second, s.TotalQueueDuration())
	s.DequeueNext()
	s.DequeueNext()
	assert.Equal(t, time.Duration(0), s.TotalQueueDuration())
}

func TestShuffleKeepsMultiset(t *testing.T) {
	s := testSession(t)
	titles := map[string]int{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		s.Enqueue(track(name, 0))
		titles[name]++
	}
	s.Shuffle()

	got := map[string]int{}
	for _, tr := range s.Queue() {
		got[tr.Title]++
	}
	assert.Equal(t, titles, got)
}

func TestRemoveAt(t *testing.T) {
	s := testSession(t)
	s.Enqueue(track("a", 0))
	s.Enqueue(track("b", 0))
	s.Enqueue(track("c", 0))

	removed, err := s.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Title)
	require.Len(t, s.Queue(), 2)
	assert.Equal(t, "a", s.Queue()[0].Title)
	assert.Equal(t, "c", s.Queue()[1].Title)

	_, err = s.RemoveAt(5)
	assert.ErrorIs(t, err, ErrBadIndex)
	_, err = s.RemoveAt(-1)
	assert.ErrorIs(t, err, ErrBadIndex)
}

func TestOwnerIsFirstRequester(t *testing.T) {
	s := testSession(t)
	first := track("a", 0)
	first.RequestedBy = "user-1"
	second := track("b", 0)
	second.RequestedBy = "user-2"

	s.Enqueue(first)
	s.Enqueue(second)
	assert.Equal(t, "user-1", s.OwnerID())
}

func TestHistoryLimit(t *testing.T) {
	s := testSession(t)
	for i := 0; i < historyLimit+10; i++ {
		s.SetCurrent(track("t", 0))
	}
	assert.Len(t, s.History(), historyLimit)
}

func TestClearQueueLeavesCurrent(t *testing.T) {
	s := testSession(t)
	s.Enqueue(track("a", 0))
	s.SetCurrent(s.DequeueNext())
	s.Enqueue(track("b", 0))

	s.ClearQueue()
	assert.Empty(t, s.Queue())
	require.NotNil(t, s.Current())
	assert.Equal(t, "a", s.Current().Title)
}

func TestEventsDropWhenFull(t *testing.T) {
	s := testSession(t)
	for i := 0; i < cap(s.events)+5; i++ {
		s.emit(Event{Type: EventNowPlaying})
	}
	// emit never blocks; the channel simply holds its capacity
	assert.Len(t, s.events, cap(s.events))
}
