// internal/poller/statushttp/client.go
package statushttp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// DialFunc opens one connection attempt to endpoint.
type DialFunc func(endpoint string, timeout time.Duration) (net.Conn, error)

// Config is the minimal runtime config the client needs.
type Config struct {
	Host           string
	Port           int
	Path           string
	ConnectRetries int           // total connection attempts per cycle
	ConnectTimeout time.Duration // per attempt
	ResponseWait   time.Duration // dead-time budget per read
	Capacity       int           // max extracted payload bytes
}

// Client fetches one raw status object per call. Each call opens a
// fresh connection and closes it before returning (Connection: close);
// nothing persists across cycles.
type Client struct {
	cfg  Config
	dial DialFunc
}

// New creates a client with immutable config.
// A nil dial uses net.DialTimeout.
func New(cfg Config, dial DialFunc) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("statushttp: host required")
	}
	if cfg.ConnectRetries < 1 {
		return nil, errors.New("statushttp: at least one connection attempt required")
	}
	if cfg.Capacity < 1 {
		return nil, errors.New("statushttp: capacity must be > 0")
	}
	if dial == nil {
		dial = func(endpoint string, timeout time.Duration) (net.Conn, error) {
			return net.DialTimeout("tcp", endpoint, timeout)
		}
	}
	return &Client{cfg: cfg, dial: dial}, nil
}

// Fetch performs one request cycle: connect with retries, send the
// fixed request, and extract the embedded JSON object from the raw
// response stream.
func (c *Client) Fetch() ([]byte, error) {
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(c.cfg.ConnectTimeout))
	if err := writeAll(conn, c.request()); err != nil {
		return nil, fmt.Errorf("statushttp: write request: %w", err)
	}

	// Every read carries the same dead-time budget; the first-byte
	// wait and mid-body stalls hit the identical bound.
	br := bufio.NewReader(&idleConn{conn: conn, timeout: c.cfg.ResponseWait})

	obj, err := extractObject(br, c.cfg.Capacity)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: no data within %s", ErrResponseTimeout, c.cfg.ResponseWait)
		}
		return nil, err
	}

	return obj, nil
}

func (c *Client) connect() (net.Conn, error) {
	endpoint := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	var lastErr error
	for attempt := 0; attempt < c.cfg.ConnectRetries; attempt++ {
		conn, err := c.dial(endpoint, c.cfg.ConnectTimeout)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf(
		"%w: %d attempts to %s: %v",
		ErrConnectionFailed, c.cfg.ConnectRetries, endpoint, lastErr,
	)
}

// request builds the fixed-shape HTTP/1.1 request. No other headers,
// no TLS, no chunked decoding: this is not a general HTTP client.
func (c *Client) request() []byte {
	return []byte(
		"GET " + c.cfg.Path + " HTTP/1.1\r\n" +
			"Host: " + c.cfg.Host + "\r\n" +
			"Connection: close\r\n" +
			"\r\n",
	)
}

// idleConn stamps the dead-time budget onto every read.
type idleConn struct {
	conn    net.Conn
	timeout time.Duration
}

func (c *idleConn) Read(p []byte) (int, error) {
	_ = c.conn.SetReadDeadline(time.Now().Add(c.timeout))
	return c.conn.Read(p)
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
