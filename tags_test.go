// tags_test.go — verification of built-in tags and their template table.
package xgxreport

import "testing"

func TestBuiltinTemplates_Verbatim(t *testing.T) {
	t.Parallel()

	want := map[Tag]string{
		TagMissingArg: "Missing argument:[%s]",
		TagLibrary:    "Cannot use library:[%s] - %s",
		TagNoTag:      "Missing tag. Params:[%s]",
		TagOpen:       "Cannot open file:[%s]",
		TagStat:       "Cannot stat file:[%s]",
		TagInvalid:    "Invalid tag:[%s] %s",
	}
	if len(builtinTemplates) != len(want) {
		t.Fatalf("builtin table size: want=%d got=%d", len(want), len(builtinTemplates))
	}
	for tag, tmpl := range want {
		got, ok := builtinTemplates[tag]
		if !ok {
			t.Fatalf("builtin table missing %s", tag)
		}
		if got != tmpl {
			t.Fatalf("template for %s: want=%q got=%q", tag, tmpl, got)
		}
	}
}

func TestBuiltinTags_StableOrderAndDefensiveCopy(t *testing.T) {
	t.Parallel()

	first := BuiltinTags()
	wantOrder := []Tag{TagMissingArg, TagLibrary, TagNoTag, TagOpen, TagStat, TagInvalid}
	if len(first) != len(wantOrder) {
		t.Fatalf("BuiltinTags length: want=%d got=%d", len(wantOrder), len(first))
	}
	for i, tag := range wantOrder {
		if first[i] != tag {
			t.Fatalf("BuiltinTags[%d]: want=%s got=%s", i, tag, first[i])
		}
	}

	// Mutating the returned slice must not affect later calls.
	first[0] = Tag("CLOBBERED")
	second := BuiltinTags()
	if second[0] != TagMissingArg {
		t.Fatalf("BuiltinTags must return a defensive copy; got %s", second[0])
	}
}

func TestTag_IsBuiltin(t *testing.T) {
	t.Parallel()

	for _, tag := range BuiltinTags() {
		if !tag.IsBuiltin() {
			t.Fatalf("%s should be builtin", tag)
		}
	}
	if Tag("EWHATEVER").IsBuiltin() {
		t.Fatal("EWHATEVER should not be builtin")
	}
	if Tag("").IsBuiltin() {
		t.Fatal("empty tag should not be builtin")
	}
}
