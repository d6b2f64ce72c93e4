// format.go — message rendering and fmt.Formatter for xgx-report core.
//
// Behavior:
//
//   %s, %v   → concise string (Error(): space-joined messages).
//   %+v      → verbose, structured multi-line format:
//                tag=<tag> events=<n>
//                  [0] (TAG) rendered message payload=<payload>
//                  [1] ...
//   %q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
//   - Event order is the recorded order; payloads print only when non-nil.
package xgxreport

import (
	"fmt"
	"io"
)

// formatMessage renders one event message: the resolved tag in parentheses
// followed by the template with params substituted positionally. params have
// already been stringified, so built-in %s templates apply to any value.
// Arity mismatches are not validated; fmt's %! markers surface them.
func formatMessage(tag Tag, template string, params []string) string {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = p
	}
	return "(" + string(tag) + ") " + fmt.Sprintf(template, args...)
}

// formatConcise writes the one-line form (delegates to Error()).
func formatConcise(w io.Writer, r *Record) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, r.Error())
}

// formatVerbose writes a structured multi-line representation: a header with
// the fixed tag and event count, then one indexed line per event.
func formatVerbose(w io.Writer, r *Record) {
	_, _ = fmt.Fprintf(w, "tag=%s events=%d", r.tag, len(r.messages))
	for i, msg := range r.messages {
		_, _ = fmt.Fprintf(w, "\n  [%d] %s", i, msg)
		if p := r.payloads[i]; p != nil {
			_, _ = fmt.Fprintf(w, " payload=%v", p)
		}
	}
}

// Format implements fmt.Formatter.
//
//	%v, %s → concise (Error())
//	%+v    → verbose multi-line (tag, count, per-event message + payload)
//	%q     → quoted Error()
func (r *Record) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, r)
			return
		}
		formatConcise(s, r)
	case 's':
		formatConcise(s, r)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		formatConcise(s, r)
	}
}

var _ fmt.Formatter = (*Record)(nil)
