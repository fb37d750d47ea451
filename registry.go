package eventsource

import "sync"

// EventCallback is invoked with a copy of each dispatched event.
type EventCallback func(Event)

// registry holds the listeners registered on an EventSource: an ordered
// callback list per event type plus a separate list of open callbacks.
// Registration order is invocation order. The structure is append-only.
type registry struct {
	mu            sync.Mutex
	listeners     map[string][]EventCallback
	openListeners []func()
}

func newRegistry() *registry {
	return &registry{listeners: map[string][]EventCallback{}}
}

func (r *registry) addListener(eventType string, cb EventCallback) {
	r.mu.Lock()
	r.listeners[eventType] = append(r.listeners[eventType], cb)
	r.mu.Unlock()
}

func (r *registry) addOpenListener(cb func()) {
	r.mu.Lock()
	r.openListeners = append(r.openListeners, cb)
	r.mu.Unlock()
}

// dispatch invokes every callback registered for the event's type, in
// registration order. An event type nobody listens for is dropped silently.
// The lock is released before any callback runs, so listeners may register
// further listeners or query the EventSource without deadlocking.
func (r *registry) dispatch(ev Event) {
	r.mu.Lock()
	registered := r.listeners[ev.Type]
	callbacks := make([]EventCallback, len(registered))
	copy(callbacks, registered)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb(ev)
	}
}

// dispatchOpen invokes every open callback in registration order.
func (r *registry) dispatchOpen() {
	r.mu.Lock()
	callbacks := make([]func(), len(r.openListeners))
	copy(callbacks, r.openListeners)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}
