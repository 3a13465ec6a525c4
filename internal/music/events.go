package music

// EventType tags session events consumed by the command layer for user
// feedback.
type EventType int

const (
	EventNowPlaying EventType = iota
	EventTrackFailed
	EventQueueEmpty
	EventStopped
	EventDisconnected
)

// Event is emitted by the playback loop. Track and Err may be nil
// depending on the type.
type Event struct {
	Type  EventType
	Track *Track
	Err   error
}

// Events returns the session's event stream. The channel is buffered and
// events are dropped rather than ever blocking playback.
func (s *Session) Events() <-chan Event {
	return s.events
}

func (s *Session) emit(e Event) {
	select {
	case s.events <- e:
	default:
	}
}
