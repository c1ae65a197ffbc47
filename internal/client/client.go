// Package client provides a one-shot client for the router's admin socket.
package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/13werwolf13/Yggdrasil-ng/internal/admin"
)

// Client exchanges single requests with an admin socket. The protocol is one
// request per connection, so every Call dials afresh; instances hold no
// connection state and are safe to reuse.
type Client struct {
	endpoint string
	timeout  time.Duration
	log      *slog.Logger
}

// New creates a client for the given endpoint. The endpoint is either
// tcp://host:port or a bare host:port.
func New(endpoint string) *Client {
	return NewWithTimeout(endpoint, 0)
}

// NewWithTimeout creates a client whose dial and I/O are bounded by timeout.
// A zero timeout waits forever, matching the router's own unbounded reads.
func NewWithTimeout(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		log:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger installs a wire-trace logger. Passing nil restores the default
// discarding logger.
func (c *Client) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c.log = log
}

// Endpoint returns the endpoint string the client was created with.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Addr returns the dialable host:port form of the endpoint, with a tcp://
// scheme stripped if present.
func (c *Client) Addr() string {
	return strings.TrimPrefix(c.endpoint, "tcp://")
}

// Call sends one request and reads exactly one response line. The connection
// is opened for this call alone and closed before returning. Failures are
// terminal: a *ConnectError when dialing fails, a *TimeoutError when the
// configured bound elapses, ErrEmptyResponse when the socket closes without
// sending a line, and parse failures from the response itself.
func (c *Client) Call(req *admin.Request) (*admin.Response, error) {
	conn, err := c.dial()
	if err != nil {
		return nil, &ConnectError{Endpoint: c.endpoint, Err: err}
	}
	defer conn.Close()

	if c.timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(c.timeout))
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	c.log.Debug("sending request", "command", req.Request, "arguments", len(req.Arguments), "bytes", len(data))

	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return nil, c.wireErr("write request", err)
	}

	// One line is the entire response. A close before the newline still
	// yields whatever arrived; an empty line is its own error condition.
	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, c.wireErr("read response", err)
	}
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		c.log.Debug("socket closed without a response")
		return nil, ErrEmptyResponse
	}

	resp, err := admin.ParseResponse(line)
	if err != nil {
		c.log.Debug("response did not parse", "bytes", len(line), "err", err)
		return nil, err
	}
	c.log.Debug("response received", "status", resp.Status, "bytes", len(line))

	return resp, nil
}

func (c *Client) dial() (net.Conn, error) {
	if c.timeout > 0 {
		return net.DialTimeout("tcp", c.Addr(), c.timeout)
	}
	return net.Dial("tcp", c.Addr())
}

// wireErr wraps a post-connect failure, promoting deadline expiries to the
// distinct timeout kind.
func (c *Client) wireErr(op string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Endpoint: c.endpoint, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
