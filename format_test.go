// format_test.go — verification of message rendering and Record's fmt.Formatter.
package xgxreport

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatMessage_TagPrefixAndSubstitution(t *testing.T) {
	t.Parallel()

	got := formatMessage(TagOpen, "Cannot open file:[%s]", []string{"a.cfg"})
	if want := "(EOPEN) Cannot open file:[a.cfg]"; got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}

	got = formatMessage(TagLibrary, "Cannot use library:[%s] - %s", []string{"libz", "missing"})
	if want := "(ELIB) Cannot use library:[libz] - missing"; got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}
}

func TestFormatMessage_NoValidation(t *testing.T) {
	t.Parallel()

	// Too few params: fmt surfaces a MISSING marker rather than failing.
	got := formatMessage(TagOpen, "Cannot open file:[%s]", nil)
	if !strings.Contains(got, "%!s(MISSING)") {
		t.Fatalf("expected fmt MISSING marker; got %q", got)
	}

	// Too many params: fmt surfaces an EXTRA marker.
	got = formatMessage(TagOpen, "Cannot open file:[%s]", []string{"a", "b"})
	if !strings.Contains(got, "%!(EXTRA") {
		t.Fatalf("expected fmt EXTRA marker; got %q", got)
	}
}

func TestFormat_ConciseVerbs(t *testing.T) {
	t.Parallel()

	g := NewRegistry()
	r := g.Raise(nil, TagStat, Params("a.nofile"), nil)
	r = g.Raise(r, TagStat, Params("b.nofile"), nil)

	want := "(ESTAT) Cannot stat file:[a.nofile] (ESTAT) Cannot stat file:[b.nofile]"
	if got := fmt.Sprintf("%v", r); got != want {
		t.Fatalf("%%v: want=%q got=%q", want, got)
	}
	if got := fmt.Sprintf("%s", r); got != want {
		t.Fatalf("%%s: want=%q got=%q", want, got)
	}
	if got := fmt.Sprintf("%q", r); got != fmt.Sprintf("%q", want) {
		t.Fatalf("%%q: want=%q got=%q", fmt.Sprintf("%q", want), got)
	}
}

func TestFormat_VerboseListsEvents(t *testing.T) {
	t.Parallel()

	g := NewRegistry()
	r := g.Raise(nil, TagStat, Params("a.nofile"), "a.nofile")
	r = g.Raise(r, TagOpen, Params("b.cfg"), nil)

	out := fmt.Sprintf("%+v", r)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("verbose form: want 3 lines got %d:\n%s", len(lines), out)
	}
	if lines[0] != "tag=ESTAT events=2" {
		t.Fatalf("header: got %q", lines[0])
	}
	if want := "  [0] (ESTAT) Cannot stat file:[a.nofile] payload=a.nofile"; lines[1] != want {
		t.Fatalf("event 0: want=%q got=%q", want, lines[1])
	}
	// nil payload omitted
	if want := "  [1] (EOPEN) Cannot open file:[b.cfg]"; lines[2] != want {
		t.Fatalf("event 1: want=%q got=%q", want, lines[2])
	}
}

func TestFormat_VerboseEmptyRecord(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf("%+v", New())
	if want := "tag= events=0"; out != want {
		t.Fatalf("empty verbose: want=%q got=%q", want, out)
	}
}
