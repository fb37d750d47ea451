package eventsource

// ReadyState describes the lifecycle stage of an EventSource. It only ever
// advances: Connecting, then Open, then Closed.
type ReadyState int

const (
	// StateConnecting is the initial state: the transport is connected but
	// the response headers have not been fully received yet.
	StateConnecting ReadyState = iota
	// StateOpen means the blank line ending the headers was received.
	// It is entered exactly once, right before the open callbacks fire.
	StateOpen
	// StateClosed means Close was called. No state follows it.
	StateClosed
)

func (s ReadyState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
