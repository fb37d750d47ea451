package eventsource

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/url"
)

// Conn is the duplex byte stream an EventSource reads its lines from.
// Close must shut the transport down in both directions, so that pending
// and future reads fail and the background worker terminates.
type Conn interface {
	io.Reader
	io.Closer
}

// A Connector establishes the transport connection for a parsed endpoint.
// The returned stream must deliver the server's response as newline
// terminated lines, headers first, then a blank line, then the event body.
type Connector func(u *url.URL) (Conn, error)

// DefaultConnector dials the endpoint over TCP ("http") or TLS ("https")
// and writes a minimal GET request for the endpoint's path. The raw
// response, status line and header lines included, is what the returned
// Conn reads; the client's header-skip phase consumes those lines.
func DefaultConnector(u *url.URL) (Conn, error) {
	var (
		conn net.Conn
		err  error
	)
	if u.Scheme == "https" {
		conn, err = tls.Dial("tcp", hostPort(u), nil)
	} else {
		conn, err = net.Dial("tcp", hostPort(u))
	}
	if err != nil {
		return nil, err
	}

	_, err = fmt.Fprintf(conn, "GET %s HTTP/1.1\r\nHost: %s\r\nAccept: text/event-stream\r\nCache-Control: no-cache\r\nConnection: keep-alive\r\n\r\n", u.RequestURI(), u.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func hostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	port := "80"
	if u.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(u.Hostname(), port)
}
