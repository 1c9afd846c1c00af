package ecs

import "github.com/jblob-devs/rymech-sub001/serpent"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventSerpentPhase    = "serpent_phase"
	EventSerpentDefeated = "serpent_defeated"
	EventPlayerHit       = "player_hit"
)

// SerpentPhaseEvent is the payload of EventSerpentPhase.
type SerpentPhaseEvent struct {
	Entity Entity
	From   serpent.PhaseKind
	To     serpent.PhaseKind
}

// PlayerHitEvent is the payload of EventPlayerHit. Source is one of "body",
// "tendril" or "breath".
type PlayerHitEvent struct {
	Player Entity
	Boss   Entity
	Source string
	Damage float64
}

// EventQueue collects events for the current frame. Every system can read
// them; the scheduler clears the queue once all systems have run.
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

// Items returns this frame's events in push order.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
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
