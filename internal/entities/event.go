package entities

type EventKind int

const (
	EventActionReady EventKind = iota + 1
	EventStateChanged
	EventTimedOut
)

func (k EventKind) String() string {
	switch k {
	case EventActionReady:
		return "action ready"
	case EventStateChanged:
		return "state changed"
	case EventTimedOut:
		return "timed out"
	}

	return "unknown"
}

// Event is consumed by the orchestrator step function.
type Event struct {
	Kind   EventKind
	Change StateChange
}

func NewActionReadyEvent() Event {
	return Event{Kind: EventActionReady}
}

func NewStateChangedEvent(change StateChange) Event {
	return Event{
		Kind:   EventStateChanged,
		Change: change,
	}
}

func NewTimedOutEvent() Event {
	return Event{Kind: EventTimedOut}
}
