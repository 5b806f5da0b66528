package diag

import (
	"strings"
	"testing"
)

func TestSpanContains(t *testing.T) {
	outer := NewSpan("doc", 0, 10)
	inner := NewSpan("doc", 2, 5)
	if !outer.Contains(inner) {
		t.Fatalf("expected %v to contain %v", outer, inner)
	}
	if inner.Contains(outer) {
		t.Fatalf("did not expect %v to contain %v", inner, outer)
	}
}

func TestSpanJoin(t *testing.T) {
	a := NewSpan("doc", 5, 8)
	b := NewSpan("doc", 2, 6)
	j := Join(a, b)
	if j.Start != 2 || j.End != 8 {
		t.Fatalf("Join(%v, %v) = %v, want [2, 8)", a, b, j)
	}
}

func TestLineIndexLineCol(t *testing.T) {
	src := []byte("abc\ndef\nghi")
	idx := NewLineIndex("doc", src)

	cases := []struct {
		off        int
		line, col int
	}{
		{0, 1, 0},
		{2, 1, 2},
		{4, 2, 0},
		{7, 2, 3},
		{8, 3, 0},
	}
	for _, c := range cases {
		line, col := idx.LineCol(c.off)
		if line != c.line || col != c.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", c.off, line, col, c.line, c.col)
		}
	}
}

func TestCollectorHasErrors(t *testing.T) {
	var c Collector
	c.Add(New(Warning, "markdoll::lang::bad-escape", "unrecognized escape", Label{Span: NewSpan("doc", 0, 1)}))
	if c.HasErrors() {
		t.Fatalf("warning alone should not count as an error")
	}
	c.Add(New(Error, "markdoll::tag::unknown", "unknown tag", Label{Span: NewSpan("doc", 1, 2)}))
	if !c.HasErrors() {
		t.Fatalf("expected HasErrors after adding an Error diagnostic")
	}
	if len(c.Diagnostics()) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(c.Diagnostics()))
	}
}

func TestRenderIncludesLocationAndHelp(t *testing.T) {
	sources := MapSourceSet{"doc": []byte("&\n")}
	d := New(Warning, "markdoll::lang::unexpected", "empty heading", Label{
		Span: NewSpan("doc", 0, 1),
		Text: "heading text is empty",
	}).WithHelp("give the section a heading")

	rendered := Render(d, sources)
	if !strings.Contains(rendered, "doc:1:0") {
		t.Fatalf("expected rendered diagnostic to contain location, got %q", rendered)
	}
	if !strings.Contains(rendered, "give the section a heading") {
		t.Fatalf("expected rendered diagnostic to contain help text, got %q", rendered)
	}
}
