// abort.go — the one fatal escalation point in xgx-report.
package xgxreport

// AbortIfError escalates an aggregated record to a fatal signal: if err is
// (or wraps) a *Record it panics with the record's space-joined messages in
// event order; otherwise it is a no-op. This is the only place the library
// turns a value-based error into a process-fatal one — callers who want
// ordinary propagation should inspect the record themselves instead.
//
// An empty record still aborts (with an empty message): the trigger is the
// presence of a record, not its event count. Callers constructing records
// eagerly with New should check Count before calling this.
//
// Use sparingly — it is intended for program top levels where aggregated
// failures are unrecoverable, mirroring a fatal die. The panic value is the
// joined message string, so a deliberate recover can still intercept it.
func AbortIfError(err error) {
	if r, ok := AsRecord(err); ok {
		panic(r.Error())
	}
}
