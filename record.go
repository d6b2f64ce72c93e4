// record.go — the cumulative error record for xgx-report core.
//
// Scope (tiny core):
//   - Record holds the events aggregated by Raise: a tag fixed by the first
//     event and two parallel, append-only sequences of rendered messages and
//     attached payloads.
//   - Implement the stdlib error interface so a Record travels through
//     ordinary (T, error) returns and errors.Is/As traversal.
//   - Accessors are bounds-checked: out-of-range indices and empty-record
//     reads return sentinel errors instead of panicking.
//
// Invariants:
//   - len(messages) == len(payloads) == Count() at all times.
//   - Once Count() > 0, the tag is non-empty and never changes again.
//   - Events are append-only; past events are never edited or removed.
//
// Ownership: a Record belongs to the call chain threading it through Raise.
// It is not internally synchronized; sharing one record across goroutines
// requires external coordination.
package xgxreport

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the bounds-checked accessors.
var (
	// ErrEmptyRecord is returned when a last-event accessor is called on a
	// record with no events.
	ErrEmptyRecord = errors.New("xgxreport: empty record")

	// ErrIndexOutOfRange is returned when an index-based accessor receives an
	// index outside 0..Count()-1.
	ErrIndexOutOfRange = errors.New("xgxreport: event index out of range")
)

// Record accumulates error events under a single tag. Create one explicitly
// with New, or implicitly by passing nil to Raise. Each event pairs a
// rendered message with an optional caller-supplied payload.
type Record struct {
	tag      Tag
	messages []string
	payloads []any
}

// New returns an empty record: zero events, no tag. The first Raise call
// against it fixes the tag.
func New() *Record { return &Record{} }

// Tag returns the tag fixed by the record's first event, or "" while the
// record is empty.
func (r *Record) Tag() Tag { return r.tag }

// Count returns the number of aggregated events.
func (r *Record) Count() int { return len(r.messages) }

// Error joins every recorded message with single spaces, in event order.
// An empty record yields "". This is the same text AbortIfError escalates
// with.
func (r *Record) Error() string { return strings.Join(r.messages, " ") }

// Render summarizes the record as one string: the most recent message, or ""
// for an empty record. Use LastMessage when absence should be an error.
func (r *Record) Render() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// LastMessage returns the most recently recorded message.
// Returns ErrEmptyRecord when the record has no events.
func (r *Record) LastMessage() (string, error) {
	if len(r.messages) == 0 {
		return "", ErrEmptyRecord
	}
	return r.messages[len(r.messages)-1], nil
}

// MessageAt returns the message of event i.
// Returns ErrIndexOutOfRange when i is outside 0..Count()-1.
func (r *Record) MessageAt(i int) (string, error) {
	if i < 0 || i >= len(r.messages) {
		return "", ErrIndexOutOfRange
	}
	return r.messages[i], nil
}

// AllMessages returns a copy of every recorded message in event order.
func (r *Record) AllMessages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// MessagesAt returns the messages at the given indices, in the order the
// indices were supplied. Any out-of-range index fails the whole call with
// ErrIndexOutOfRange.
func (r *Record) MessagesAt(indices ...int) ([]string, error) {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		m, err := r.MessageAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// LastPayload returns the payload attached to the most recent event.
// Returns ErrEmptyRecord when the record has no events. A nil payload is a
// valid stored value and returns (nil, nil).
func (r *Record) LastPayload() (any, error) {
	if len(r.payloads) == 0 {
		return nil, ErrEmptyRecord
	}
	return r.payloads[len(r.payloads)-1], nil
}

// PayloadAt returns the payload of event i.
// Returns ErrIndexOutOfRange when i is outside 0..Count()-1.
func (r *Record) PayloadAt(i int) (any, error) {
	if i < 0 || i >= len(r.payloads) {
		return nil, ErrIndexOutOfRange
	}
	return r.payloads[i], nil
}

// AllPayloads returns a copy of every attached payload in event order.
func (r *Record) AllPayloads() []any {
	out := make([]any, len(r.payloads))
	copy(out, r.payloads)
	return out
}

// PayloadsAt returns the payloads at the given indices, in the order the
// indices were supplied. Any out-of-range index fails the whole call with
// ErrIndexOutOfRange.
func (r *Record) PayloadsAt(indices ...int) ([]any, error) {
	out := make([]any, 0, len(indices))
	for _, i := range indices {
		p, err := r.PayloadAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Interface conformance guard.
var _ error = (*Record)(nil)
