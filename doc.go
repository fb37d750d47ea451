/*
Package eventsource implements a client for the server-sent-events (SSE)
protocol: it opens a long-lived connection to an endpoint, reconstructs
events from the newline-delimited text stream and dispatches them to
registered callbacks on a background goroutine, while the caller's goroutine
continues unblocked.

Open a stream and register listeners:

	es, err := eventsource.Open("http://localhost:8080/events")
	if err != nil {
		// the endpoint was malformed or the connection failed
	}
	defer es.Close()

	es.OnOpen(func() { fmt.Println("connected") })
	es.OnMessage(func(ev eventsource.Event) { fmt.Println(ev.Data) })
	es.AddEventListener("tick", func(ev eventsource.Event) { fmt.Println("tick:", ev.Data) })

Listeners for one event type run in registration order; listeners for
different types are independent. Events whose type has no listener are
silently dropped. Registration is append-only: there is no way to remove a
listener.

The client does not reconnect. When the server ends the stream the
background worker stops silently and the ready state stays Open; poll
ReadyState and open a new connection if you need to detect that. Only Close
moves the state to Closed.
*/
package eventsource
