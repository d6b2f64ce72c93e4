// tags.go — built-in tag and template definitions for xgx-report core.
//
// Intent:
//   - Provide the small set of tags the core ships with, plus their message
//     templates.
//   - Keep semantics open-ended: applications register their own tags freely;
//     the core reserves only the two fallback pseudo-tags (ETAG, ENOTAG) for
//     its own degradation policy.
//
// Conventions (documented, not enforced here):
//   - Tags are short uppercase ASCII identifiers.
//   - Avoid the empty string for custom tags; an empty tag always resolves to
//     ENOTAG.
//   - Templates use positional %s substitution; parameters are stringified
//     before rendering, so %s is the only verb built-ins need.
package xgxreport

// Tag names a class of error event. Tags are stringly-typed for stability
// across serialization boundaries and to avoid a central enum with breaking
// changes. Projects register their own tags via RegisterTag; the core does
// not reserve semantics beyond the fallback pseudo-tags.
type Tag string

// Built-in tags.
const (
	TagMissingArg Tag = "EARG"   // a required argument was absent
	TagLibrary    Tag = "ELIB"   // a library could not be used
	TagNoTag      Tag = "ENOTAG" // pseudo-tag: Raise was called without a tag
	TagOpen       Tag = "EOPEN"  // a file could not be opened
	TagStat       Tag = "ESTAT"  // a file could not be stat'ed
	TagInvalid    Tag = "ETAG"   // pseudo-tag: Raise was called with an unregistered tag
)

// builtinTemplates maps each built-in tag to its message template.
// The text is part of the public contract; applications may overwrite an
// entry through RegisterTag but the defaults are reproduced verbatim here.
var builtinTemplates = map[Tag]string{
	TagMissingArg: "Missing argument:[%s]",
	TagLibrary:    "Cannot use library:[%s] - %s",
	TagNoTag:      "Missing tag. Params:[%s]",
	TagOpen:       "Cannot open file:[%s]",
	TagStat:       "Cannot stat file:[%s]",
	TagInvalid:    "Invalid tag:[%s] %s",
}

// allBuiltinTags is the ordered set of tags the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable to minimize churn in docs/examples.
var allBuiltinTags = []Tag{
	TagMissingArg,
	TagLibrary,
	TagNoTag,
	TagOpen,
	TagStat,
	TagInvalid,
}

// BuiltinTags returns a defensive copy of the built-in tags in a stable order.
func BuiltinTags() []Tag {
	out := make([]Tag, len(allBuiltinTags))
	copy(out, allBuiltinTags)
	return out
}

// IsBuiltin reports whether t is one of the built-in core tags.
// This is ergonomics-only; projects may define and use custom tags freely.
func (t Tag) IsBuiltin() bool {
	_, ok := builtinTemplates[t]
	return ok
}
