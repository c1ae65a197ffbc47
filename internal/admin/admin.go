// Package admin defines the line-delimited JSON protocol spoken over the
// router's admin socket.
package admin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Request represents one admin command sent to the router.
type Request struct {
	Request   string            `json:"request"`
	Arguments map[string]string `json:"arguments"`
	Keepalive bool              `json:"keepalive"`
}

// Response represents the wrapper object the router replies with. Payload
// carries the command-specific "response" value untouched; Raw keeps the
// exact line received so raw JSON output can show the whole wrapper,
// unknown fields included.
type Response struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"response,omitempty"`
	Error   string          `json:"error,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// Status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Command names understood by the router's built-in handlers. Anything else
// is still sent as-is; these exist for help text and completion.
const (
	CmdList       = "list"
	CmdGetSelf    = "getSelf"
	CmdGetPeers   = "getPeers"
	CmdGetTree    = "getTree"
	CmdAddPeer    = "addPeer"
	CmdRemovePeer = "removePeer"
)

// KnownCommands returns the command names advertised in help and completion.
func KnownCommands() []string {
	return []string{CmdList, CmdGetSelf, CmdGetPeers, CmdGetTree, CmdAddPeer, CmdRemovePeer}
}

// NewRequest creates a request for the given command. A nil arguments map is
// normalized to an empty one so the wire always carries "arguments": {}.
// Keepalive stays false: this client speaks one request per connection.
func NewRequest(command string, arguments map[string]string) *Request {
	if arguments == nil {
		arguments = map[string]string{}
	}
	return &Request{
		Request:   command,
		Arguments: arguments,
	}
}

// ParseResponse interprets one line received from the admin socket. Only
// invalid JSON is a parse error. A valid document that is not a response
// object (wrong top-level type, non-string fields) yields a response with an
// empty status, which Err reports as a protocol failure.
func ParseResponse(line []byte) (*Response, error) {
	resp := &Response{Raw: append(json.RawMessage(nil), line...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return resp, nil
		}
		return nil, fmt.Errorf("parse response: %w", err)
	}

	// Mismatched field types are ignored, not fatal: a non-string status is
	// simply not "success".
	if raw, ok := fields["status"]; ok {
		_ = json.Unmarshal(raw, &resp.Status)
	}
	if raw, ok := fields["error"]; ok {
		_ = json.Unmarshal(raw, &resp.Error)
	}
	resp.Payload = fields["response"]

	return resp, nil
}

// Err returns the failure carried by the response, or nil when the router
// reported success. A failure without an error message reads "unknown error".
func (r *Response) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	if r.Error != "" {
		return errors.New(r.Error)
	}
	return errors.New("unknown error")
}
