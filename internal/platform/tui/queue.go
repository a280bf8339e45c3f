package tui

import "github.com/vovakirdan/tui-snake/internal/core"

// EventQueue buffers input events between ticks. Bubble Tea delivers key
// and resize messages as they arrive; the game drains them on its tick
// with Poll, which never waits.
type EventQueue struct {
	events []core.Event
}

// Push appends an event.
func (q *EventQueue) Push(ev core.Event) {
	q.events = append(q.events, ev)
}

// Poll removes and returns the oldest event, or ok=false if none is pending.
func (q *EventQueue) Poll() (core.Event, bool, error) {
	if len(q.events) == 0 {
		return core.Event{}, false, nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true, nil
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
