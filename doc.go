// doc.go — package documentation for xgx-report
//
// Package xgxreport provides a tiny, policy-free error-aggregation core: a
// cumulative Record of error events, a process-wide tag→template registry,
// and a total Raise operation that never fails on bad input. It is designed
// to be:
//   - Ergonomic at call sites (small surface, chainable Raise)
//   - Interoperable with the stdlib (*Record is an error; errors.As works)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Model
//
// A function that can fail in several accumulating ways returns an error that
// is (or wraps) a *Record. Each Raise call records one event: a message
// rendered from the tag's registered template plus an arbitrary payload. The
// record's tag is fixed by its FIRST event and never changes afterward, even
// when later events use different tags.
//
//	var r *xgxreport.Record
//	for _, f := range files {
//		if _, err := os.Stat(f); err != nil {
//			r = xgxreport.Raise(r, xgxreport.TagStat, xgxreport.Params(f), f)
//		}
//	}
//	if xgxreport.IsRecord(r) { ... } // or: xgxreport.AbortIfError(r)
//
// # Tags and Templates
//
// Tags are short identifiers keyed into a registry of positional message
// templates. The core ships a built-in table (EARG, ELIB, ENOTAG, EOPEN,
// ESTAT, ETAG); applications extend or overwrite it with RegisterTag:
//
//	xgxreport.RegisterTag("WARNING", "Some files could not be opened")
//	xgxreport.RegisterTag("WFILE", "\t%s")
//
// Every rendered message has the form "(TAG) template-with-params". Template
// parameters are stringified before substitution, so %s is the only verb a
// template needs regardless of parameter type. Arity is the caller's
// responsibility; no validation is performed.
//
// # Fallback Policy
//
// Raise is total — it degrades instead of failing:
//
//	+----------------------------+----------+-------------------------------------+
//	| Input                      | Tag used | Params used                         |
//	+----------------------------+----------+-------------------------------------+
//	| registered tag             | as given | as given                            |
//	| unregistered non-empty tag | ETAG     | (original tag, joined orig params)  |
//	| empty tag                  | ENOTAG   | (joined orig params)                |
//	+----------------------------+----------+-------------------------------------+
//
// The pseudo-tag events preserve everything the caller supplied, so nothing
// is lost when a tag is misspelled or missing.
//
// # Accessors
//
// Messages and payloads are parallel sequences of equal length Count().
// Indexed accessors are bounds-checked: MessageAt/PayloadAt/MessagesAt/
// PayloadsAt return ErrIndexOutOfRange, and LastMessage/LastPayload return
// ErrEmptyRecord on an empty record. Render gives the forgiving one-string
// summary (last message, or "" when empty); Error joins all messages with
// spaces.
//
// # Registries
//
// The package-level RegisterTag/Raise use a process-wide default registry,
// initialized once with the built-in table and internally synchronized, so
// concurrent registration and raising need no external locking. Applications
// that want isolated tag tables construct their own with NewRegistry and call
// its Register/Raise methods. Entries are never deleted.
//
// Records themselves are single-owner values: share one across goroutines
// only with external coordination.
//
// # Escalation
//
// AbortIfError is the single opt-in point where a value-based error becomes
// fatal: it panics with the space-joined messages when handed a record, and
// is a no-op otherwise. Note an empty record still triggers it; the
// discriminant is "is this a record", not "does it contain events".
//
// # Formatting
//
// *Record implements fmt.Formatter:
//   - %v, %s → concise, single-line Error()
//   - %+v    → verbose, multi-line (tag, count, per-event message + payload)
//   - %q     → quoted Error()
//
// See example_test.go for runnable demonstrations.
package xgxreport
