// predicates.go — minimal, stdlib-aligned predicates for xgx-report core.
//
// Scope:
//   • Zero-policy helpers that answer "did this function hand me a record?"
//     for the value-or-error return pattern.
//   • Interop-first: use errors.As so detection works on a bare *Record and
//     on any error chain that wraps one (fmt.Errorf %w, errors.Join).
//
// Out of scope (by design):
//   • Severity/retry policy, logging.
package xgxreport

import "errors"

// AsRecord extracts the *Record from err's unwrap chain. It returns
// (nil, false) for nil, for errors that neither are nor wrap a Record, and
// for a typed-nil *Record smuggled inside a non-nil error interface.
func AsRecord(err error) (*Record, bool) {
	if err == nil {
		return nil, false
	}
	var r *Record
	if errors.As(err, &r) && r != nil {
		return r, true
	}
	return nil, false
}

// IsRecord reports whether err is (or wraps) a *Record. It is the
// discriminant for functions whose error result may be an aggregated record:
// false means a plain result or ordinary error, true means an accumulation
// produced by Raise or New. Note that an empty record (Count()==0) still
// satisfies IsRecord.
func IsRecord(err error) bool {
	_, ok := AsRecord(err)
	return ok
}
