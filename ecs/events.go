package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventStarted CollisionEventKind = "started"
	CollisionEventStopped CollisionEventKind = "stopped"
)

const EventCollision = "collision"

// CollisionEvent is emitted once per entity pair when a contact begins or
// ends during a step. Entity is the smaller of the two handles.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
}

// EventQueue is a FIFO queue cleared at the start of every scheduler tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed so far this tick without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return append([]Event(nil), q.items...)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
