package eventsource

import (
	"sync"

	"github.com/streamkit/eventsource/internal/parser"
)

// An EventSource is a handle to one server-sent-events stream. Listeners
// may be registered from any goroutine at any time, before or after the
// connection opens; a listener registered after an event was dispatched
// simply misses that event. Dispatch happens one event at a time on a
// single background goroutine, in the order the events' terminating blank
// lines were read from the transport.
//
// The zero value is not usable; obtain an EventSource from Open.
type EventSource struct {
	conn      Conn
	listeners *registry

	mu    sync.Mutex
	state ReadyState
}

// OnOpen registers a callback invoked once, when the response headers end
// and the stream switches to delivering events. A callback registered
// after that point is never invoked.
func (es *EventSource) OnOpen(cb func()) {
	es.listeners.addOpenListener(cb)
}

// OnMessage registers a callback for events of the default "message" type,
// i.e. events the server sends without an "event" field. It is shorthand
// for AddEventListener(DefaultEventType, cb).
func (es *EventSource) OnMessage(cb EventCallback) {
	es.AddEventListener(DefaultEventType, cb)
}

// AddEventListener registers a callback for events of the given type.
// Event types are case-sensitive. Callbacks for one type run in
// registration order; listeners for different types are independent.
// Listeners cannot be removed.
func (es *EventSource) AddEventListener(eventType string, cb EventCallback) {
	es.listeners.addListener(eventType, cb)
}

// ReadyState returns a snapshot of the connection's state.
func (es *EventSource) ReadyState() ReadyState {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.state
}

// Close shuts the transport down in both directions and moves the state to
// Closed, which terminates the background worker. An event already being
// dispatched may still be delivered. Close is idempotent: calls after the
// first are no-ops returning nil.
func (es *EventSource) Close() error {
	es.mu.Lock()
	alreadyClosed := es.state == StateClosed
	es.state = StateClosed
	es.mu.Unlock()

	if alreadyClosed {
		return nil
	}
	return es.conn.Close()
}

// markOpen advances Connecting to Open. It reports false when the state
// was already past Connecting, in which case open callbacks must not fire.
func (es *EventSource) markOpen() bool {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.state != StateConnecting {
		return false
	}
	es.state = StateOpen
	return true
}

// run is the background worker: it reads the stream one line at a time,
// drives the header-skip/body state machine and dispatches completed
// events. It exits when the stream ends, errors or the EventSource is
// closed. End of stream does not change the ready state; only Close does.
func (es *EventSource) run() {
	lines := parser.NewLineScanner(es.conn)

	var pending *Event
	for lines.Scan() {
		line := lines.Line()

		switch es.ReadyState() {
		case StateConnecting:
			// Header lines are skipped; the first blank line opens the stream.
			if line == "" && es.markOpen() {
				es.listeners.dispatchOpen()
			}
		case StateOpen:
			pending = es.handleBodyLine(pending, line)
		case StateClosed:
			return
		}
	}
}

// handleBodyLine folds one line into the pending event: a blank line
// finalizes and dispatches it, comment lines are skipped entirely and field
// lines update it. A pending event is never flushed by end of stream, only
// by its terminating blank line.
func (es *EventSource) handleBodyLine(pending *Event, line string) *Event {
	switch {
	case line == "":
		// Consecutive blank lines leave no pending event and dispatch nothing.
		if pending != nil {
			es.listeners.dispatch(*pending)
		}
		return nil
	case parser.IsComment(line):
		return pending
	default:
		return updateEvent(pending, parser.ParseField(line))
	}
}

// updateEvent applies a parsed field to the pending event, creating it with
// the default type on first touch. Unknown field names still start an event
// but change nothing on it.
func updateEvent(pending *Event, f parser.Field) *Event {
	ev := pending
	if ev == nil {
		ev = &Event{Type: DefaultEventType}
	}

	switch f.Name {
	case "event":
		ev.Type = f.Value
	case "data":
		ev.Data = f.Value
	}

	return ev
}
