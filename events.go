package vitrine

// SessionEventType identifies a change in inspection state.
type SessionEventType uint8

const (
	SessionEntered  SessionEventType = iota // a session opened from the museum
	SessionReplaced                         // the active session switched exhibits
	SessionExited                           // the user returned to the museum
)

// String returns the event name.
func (t SessionEventType) String() string {
	switch t {
	case SessionEntered:
		return "entered"
	case SessionReplaced:
		return "replaced"
	case SessionExited:
		return "exited"
	default:
		return "unknown"
	}
}

// SessionEvent carries session data to a presentation layer or ECS.
// Title and Description are passed through from the exhibit descriptor.
type SessionEvent struct {
	Type        SessionEventType
	Title       string
	Description string
	InstanceID  uint32
	SavedPose   Pose
	Zoom        float64
}

// EventSink receives session events. Optional; see Config.Events.
type EventSink interface {
	EmitSessionEvent(event SessionEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(SessionEvent)

// EmitSessionEvent calls f.
func (f EventSinkFunc) EmitSessionEvent(event SessionEvent) { f(event) }

// EventSinks fans each event out to every non-nil sink in order.
type EventSinks []EventSink

// EmitSessionEvent forwards event to every sink.
func (s EventSinks) EmitSessionEvent(event SessionEvent) {
	for _, sink := range s {
		if sink != nil {
			sink.EmitSessionEvent(event)
		}
	}
}
