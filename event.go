package eventsource

// DefaultEventType is the type assigned to events the server sends without
// an "event" field.
const DefaultEventType = "message"

// The Event struct represents an event sent to the client by a server.
// Callbacks receive their own copy, so an Event may be retained or modified
// freely.
type Event struct {
	// The event's type. Defaults to "message" when the server sends none.
	Type string
	// The event's payload.
	Data string
}
