// registry.go — tag→template registry for xgx-report core.
//
// Design:
//   • Registry is an explicit object (NewRegistry) so applications that want
//     isolated tag tables can have them; a package-level default registry
//     backs the process-wide ergonomics of RegisterTag/Raise.
//   • Internally synchronized with a sync.RWMutex: Register is
//     insert-or-overwrite under the write lock, Template is a pure read under
//     the read lock. Concurrent registration and raising need no external
//     locking.
//   • Entries are never deleted; a registry only grows for the process
//     lifetime.
//
// Rationale:
//   • Hidden global mutable state is kept to exactly one well-known value
//     (the default registry), initialized once and reachable via
//     DefaultRegistry for callers who prefer explicit plumbing.
package xgxreport

import (
	"sort"
	"sync"
)

// Registry maps tags to message templates. The zero value is not usable;
// construct with NewRegistry, which seeds the built-in table.
type Registry struct {
	mu      sync.RWMutex
	entries map[Tag]string
}

// NewRegistry returns a registry pre-populated with the built-in
// tag→template table.
func NewRegistry() *Registry {
	entries := make(map[Tag]string, len(allBuiltinTags))
	for tag, tmpl := range builtinTemplates {
		entries[tag] = tmpl
	}
	return &Registry{entries: entries}
}

// Register inserts or overwrites the template for tag and returns the tag for
// chaining convenience. It always succeeds.
func (g *Registry) Register(tag Tag, template string) Tag {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.entries == nil {
		g.entries = make(map[Tag]string)
	}
	g.entries[tag] = template
	return tag
}

// Template returns the template registered for tag and whether it exists.
func (g *Registry) Template(tag Tag) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	tmpl, ok := g.entries[tag]
	return tmpl, ok
}

// Tags returns a sorted snapshot of every registered tag. The returned slice
// is a copy; callers may mutate it freely.
func (g *Registry) Tags() []Tag {
	g.mu.RLock()
	out := make([]Tag, 0, len(g.entries))
	for tag := range g.entries {
		out = append(out, tag)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// templateFor resolves a tag's template, falling back to the built-in table
// so the pseudo-tags render even on a zero-value registry. resolve only
// calls this with tags known to exist or built in, so the final return is
// unreachable in practice.
func (g *Registry) templateFor(tag Tag) string {
	if tmpl, ok := g.Template(tag); ok {
		return tmpl
	}
	if tmpl, ok := builtinTemplates[tag]; ok {
		return tmpl
	}
	return ""
}

// defaultRegistry backs the package-level API. Initialized once at process
// start; mutated only through RegisterTag.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package-level
// RegisterTag and Raise.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterTag inserts or overwrites tag's template in the default registry
// and returns the tag. It always succeeds.
func RegisterTag(tag Tag, template string) Tag {
	return defaultRegistry.Register(tag, template)
}
