// raise.go — create-or-aggregate entry points for xgx-report core.
//
// Purpose
//   - Raise is the single way events enter a Record: it resolves the tag
//     against a registry, renders the message, and appends the event to an
//     existing record (creating one when absent).
//   - Raise is total: a bad or missing tag never fails the call. It degrades
//     to the ETAG/ENOTAG pseudo-tags so the caller always gets back a usable
//     record.
//
// Fallback policy (normative):
//   • non-empty tag, registered      → tag and params used unchanged.
//   • non-empty tag, NOT registered  → ETAG, params = (original tag,
//                                      space-joined original params).
//   • empty tag                      → ENOTAG, params = (space-joined
//                                      original params).
//
// Parameters are an explicit ordered list ([]any, nil means empty); each
// value is stringified before substitution, so templates only ever see
// strings. Arity is the caller's responsibility; fmt surfaces mismatches as
// %! markers rather than failing.
package xgxreport

import (
	"fmt"
	"strings"
)

// Params builds the ordered parameter list for Raise from its arguments.
// Purely ergonomic: Params("a", 7) is []any{"a", 7}.
func Params(vs ...any) []any { return vs }

// Raise records one error event against r using the default registry,
// returning the record for chaining. A nil r creates a fresh record, so
// Raise(nil, ...) is the create-and-record form and the returned record's tag
// is fixed by its first event. payload may be nil; it is stored as-is and
// retrievable independently of the message text.
func Raise(r *Record, tag Tag, params []any, payload any) *Record {
	return defaultRegistry.Raise(r, tag, params, payload)
}

// Raise is the method form for chaining on an existing record:
//
//	r := xgxreport.New().
//		Raise(xgxreport.TagOpen, xgxreport.Params("a.cfg"), nil).
//		Raise(xgxreport.TagOpen, xgxreport.Params("b.cfg"), nil)
//
// It uses the default registry; use Registry.Raise for an explicit one.
func (r *Record) Raise(tag Tag, params []any, payload any) *Record {
	return defaultRegistry.Raise(r, tag, params, payload)
}

// Raise records one error event against r, resolving tag through g.
// See the package-level Raise for the full contract.
func (g *Registry) Raise(r *Record, tag Tag, params []any, payload any) *Record {
	if r == nil {
		r = New()
	}
	resolved, resolvedParams := g.resolve(tag, params)
	msg := formatMessage(resolved, g.templateFor(resolved), resolvedParams)
	if len(r.messages) == 0 {
		// The one and only point the record's tag is ever set.
		r.tag = resolved
	}
	r.messages = append(r.messages, msg)
	r.payloads = append(r.payloads, payload)
	return r
}

// resolve applies the fallback policy, returning the effective tag and the
// stringified parameter list to render with.
func (g *Registry) resolve(tag Tag, params []any) (Tag, []string) {
	strs := stringifyParams(params)
	if tag != "" {
		if _, ok := g.Template(tag); ok {
			return tag, strs
		}
		return TagInvalid, []string{string(tag), strings.Join(strs, " ")}
	}
	return TagNoTag, []string{strings.Join(strs, " ")}
}

// stringifyParams renders each parameter with fmt.Sprint so templates need
// only %s verbs regardless of the parameter's dynamic type.
func stringifyParams(params []any) []string {
	if len(params) == 0 {
		return nil
	}
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = fmt.Sprint(p)
	}
	return out
}
