package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// field pairs a display label with the payload key that feeds it.
type field struct {
	label string
	key   string
}

var selfFields = []field{
	{"Build name", "build_name"},
	{"Build version", "build_version"},
	{"Public key", "key"},
	{"IPv6 address", "address"},
	{"IPv6 subnet", "subnet"},
	{"Routing entries", "routing_entries"},
}

var peerFields = []field{
	{"URI", "uri"},
	{"Up", "up"},
	{"Inbound", "inbound"},
	{"Public key", "key"},
	{"IPv6 address", "address"},
	{"IPv6 subnet", "subnet"},
	{"Priority", "priority"},
	{"Bytes received", "bytes_recvd"},
	{"Bytes sent", "bytes_sent"},
	{"RX rate", "rx_rate"},
	{"TX rate", "tx_rate"},
	{"Uptime", "uptime"},
	{"Last error", "last_error"},
}

var treeFields = []field{
	{"Public key", "key"},
	{"IPv6 address", "address"},
	{"Parent", "parent"},
	{"Sequence", "sequence"},
}

// RenderResponse pretty-prints a successful response payload for the given
// command. Commands are matched case-insensitively; unrecognized ones fall
// back to indented JSON of the payload.
func RenderResponse(command string, payload json.RawMessage) error {
	switch strings.ToLower(command) {
	case "list":
		renderList(payload)
		return nil
	case "getself":
		renderKV(decodeObject(payload), selfFields)
		return nil
	case "getpeers":
		renderEntries(payload, "peers", peerFields, "No peers connected.")
		return nil
	case "gettree":
		renderEntries(payload, "tree", treeFields, "No tree entries.")
		return nil
	default:
		return renderIndented(payload)
	}
}

// RenderRawJSON pretty-prints a raw response line, wrapper and all, without
// interpreting its status.
func RenderRawJSON(raw json.RawMessage) error {
	return renderIndented(raw)
}

// renderList prints the command names advertised by the router. Nothing is
// printed unless the payload carries a "list" array; non-string entries are
// skipped.
func renderList(payload json.RawMessage) {
	obj := decodeObject(payload)
	list, ok := obj["list"].([]any)
	if !ok {
		return
	}

	fmt.Fprintln(Output, Bold("Available commands:"))
	for _, item := range list {
		if s, ok := item.(string); ok {
			fmt.Fprintf(Output, "  %s\n", Cyan(s))
		}
	}
}

// renderEntries prints one labeled block per element of the named array,
// separated by blank lines. Nothing is printed unless the payload carries
// the array; an empty array prints emptyMsg instead.
func renderEntries(payload json.RawMessage, key string, fields []field, emptyMsg string) {
	obj := decodeObject(payload)
	entries, ok := obj[key].([]any)
	if !ok {
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(Output, emptyMsg)
		return
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(Output)
		}
		m, _ := entry.(map[string]any)
		renderKV(m, fields)
	}
}

// renderKV prints the fields present in obj, in table order, with labels
// left-aligned to the widest label in the table. Absent keys are omitted
// entirely; explicit nulls render as "n/a".
func renderKV(obj map[string]any, fields []field) {
	maxLabel := 0
	for _, f := range fields {
		if len(f.label) > maxLabel {
			maxLabel = len(f.label)
		}
	}

	for _, f := range fields {
		val, ok := obj[f.key]
		if !ok {
			continue
		}
		// Pad before colorizing so escape codes do not skew the column.
		label := fmt.Sprintf("%-*s", maxLabel+1, f.label+":")
		fmt.Fprintf(Output, "  %s  %s\n", Bold(label), formatValue(val))
	}
}

// formatValue renders a decoded JSON value the way it appears in a terminal
// listing: strings verbatim, null as "n/a", everything else as compact JSON.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return Dim("n/a")
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return compactJSON(v)
	}
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// renderIndented re-encodes raw JSON with two-space indentation and sorted
// object keys. An empty payload renders as null.
func renderIndented(raw json.RawMessage) error {
	value, err := decodeValue(raw)
	if err != nil {
		return fmt.Errorf("render response: %w", err)
	}

	enc := json.NewEncoder(Output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("render response: %w", err)
	}
	return nil
}

// decodeObject decodes raw into a string-keyed map, preserving numeric
// literals. Returns nil when raw is empty or not a JSON object.
func decodeObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var obj map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil
	}
	return obj
}

func decodeValue(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var value any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
