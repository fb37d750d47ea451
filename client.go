package eventsource

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// The Client struct is used to open connections to different servers.
// It is safe for concurrent use.
type Client struct {
	// The connector used to establish transport connections.
	// Defaults to DefaultConnector.
	Connector Connector
	// A callback that's executed whenever a dial attempt fails and is
	// going to be retried.
	OnRetry backoff.Notify
	// The maximum number of additional dial attempts made when
	// establishing the connection fails. If MaxRetries is negative (-1),
	// dialing is retried indefinitely. Defaults to 0, i.e. a single
	// attempt. Only errors that report themselves as temporary or as
	// timeouts are retried; an established stream is never redialed.
	MaxRetries int
	// The wait between dial attempts. Defaults to 2 seconds.
	RetryInterval time.Duration
}

// Open parses and validates the endpoint, establishes the transport
// connection and starts the background worker that reads the stream. The
// returned EventSource is in the Connecting state; it may still be observed
// as Connecting for a short while even if the server already sent its
// headers, purely due to scheduling.
//
// A malformed endpoint yields an *EndpointError and a failed connection a
// *ConnectionError. In both cases no background worker is started.
func (c *Client) Open(endpoint string) (*EventSource, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	cfg := *c // copy so the config cannot be modified mid-dial from outside
	mergeDefaults(&cfg)

	conn, err := cfg.dial(u, endpoint)
	if err != nil {
		return nil, err
	}

	es := &EventSource{
		conn:      conn,
		state:     StateConnecting,
		listeners: newRegistry(),
	}

	go es.run()

	return es, nil
}

func (c *Client) dial(u *url.URL, endpoint string) (Conn, error) {
	var b backoff.BackOff = backoff.NewConstantBackOff(c.RetryInterval)
	if c.MaxRetries >= 0 {
		b = backoff.WithMaxRetries(b, uint64(c.MaxRetries))
	}

	op := func() (Conn, error) {
		conn, err := c.Connector(u)
		if err != nil {
			e := &ConnectionError{Endpoint: endpoint, Err: err}
			return nil, e.toPermanent()
		}
		return conn, nil
	}

	// backoff unwraps Permanent errors on return, so callers always see
	// the *ConnectionError itself.
	return backoff.RetryNotifyWithData(op, b, c.OnRetry)
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &EndpointError{Endpoint: endpoint, Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &EndpointError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("scheme %q and host %q do not form an http(s) endpoint", u.Scheme, u.Host),
		}
	}
	return u, nil
}

// DefaultClient is the client used by the package-level Open function.
// Unset properties on other clients are replaced with the ones set for it.
var DefaultClient = &Client{
	Connector:     DefaultConnector,
	RetryInterval: time.Second * 2,
}

// Open opens a connection to the given endpoint using the default client.
func Open(endpoint string) (*EventSource, error) {
	return DefaultClient.Open(endpoint)
}

func mergeDefaults(c *Client) {
	if c.Connector == nil {
		c.Connector = DefaultClient.Connector
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultClient.MaxRetries
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = DefaultClient.RetryInterval
	}
}
