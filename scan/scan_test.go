package scan

import (
	"testing"

	"markdoll/diag"
)

func TestCheckNoCR(t *testing.T) {
	if _, found := CheckNoCR([]byte("ok\n")); found {
		t.Fatalf("did not expect a CR in clean input")
	}
	off, found := CheckNoCR([]byte("ok\r\n"))
	if !found || off != 2 {
		t.Fatalf("CheckNoCR = (%d, %v), want (2, true)", off, found)
	}
}

func TestIndentDepthAndBlank(t *testing.T) {
	if d := IndentDepth([]byte("\t\tfoo")); d != 2 {
		t.Fatalf("IndentDepth = %d, want 2", d)
	}
	if !IsBlank([]byte("   ")) {
		t.Fatalf("expected whitespace-only line to be blank")
	}
	if !IsBlank([]byte("\t\t")) {
		t.Fatalf("expected all-tabs line to be blank")
	}
	if IsBlank([]byte("\tx")) {
		t.Fatalf("did not expect a line with content to be blank")
	}
}

func TestEndsWithLineBreak(t *testing.T) {
	rest, ok := EndsWithLineBreak([]byte(`foo\`))
	if !ok || string(rest) != "foo" {
		t.Fatalf("EndsWithLineBreak = (%q, %v), want (\"foo\", true)", rest, ok)
	}
	if _, ok := EndsWithLineBreak([]byte(`foo\\`)); ok {
		t.Fatalf("doubled backslash should not trigger a line break")
	}
}

func TestDecodeEscapes(t *testing.T) {
	var c diag.Collector
	got := DecodeEscapes("doc", 0, []byte(`a\[b\]c\\d`), &c)
	if got != "a[b]c\\d" {
		t.Fatalf("DecodeEscapes = %q", got)
	}
	if len(c.Diagnostics()) != 0 {
		t.Fatalf("did not expect diagnostics for valid escapes")
	}

	c = diag.Collector{}
	got = DecodeEscapes("doc", 0, []byte(`a\qb`), &c)
	if got != "aqb" {
		t.Fatalf("DecodeEscapes bad escape = %q", got)
	}
	diags := c.Diagnostics()
	if len(diags) != 1 || diags[0].Code != "markdoll::lang::bad-escape" {
		t.Fatalf("expected one bad-escape warning, got %+v", diags)
	}
}

func TestScanTagHeadArgFlagsProps(t *testing.T) {
	var c diag.Collector
	src := []byte(`[link(https://x)(head)(lang=go):text]`)
	head, ok := ScanTagHead("doc", src, 0, &c)
	if !ok {
		t.Fatalf("ScanTagHead failed: %+v", c.Diagnostics())
	}
	if head.Name != "link" || !head.HasArg || head.Arg != "https://x" {
		t.Fatalf("unexpected head: %+v", head)
	}
	if len(head.Flags) != 1 || head.Flags[0].Name != "head" {
		t.Fatalf("unexpected flags: %+v", head.Flags)
	}
	if len(head.Props) != 1 || head.Props[0].Key != "lang" || head.Props[0].Value != "go" {
		t.Fatalf("unexpected props: %+v", head.Props)
	}
	if head.Content != ContentInline {
		t.Fatalf("expected ContentInline, got %v", head.Content)
	}
}

func TestScanInlineBodyBalancing(t *testing.T) {
	var c diag.Collector
	src := []byte(`[em:[a]]`)
	head, ok := ScanTagHead("doc", src, 0, &c)
	if !ok {
		t.Fatalf("head scan failed")
	}
	body, end, ok := ScanInlineBody("doc", src, head.End, &c)
	if !ok || string(body) != "[a]" {
		t.Fatalf("body = %q, ok=%v, want [a]", body, ok)
	}
	if end != len(src) {
		t.Fatalf("end = %d, want %d", end, len(src))
	}
}

func TestScanInlineBodyStrayBracket(t *testing.T) {
	var c diag.Collector
	src := []byte(`[em:]]`)
	head, ok := ScanTagHead("doc", src, 0, &c)
	if !ok {
		t.Fatalf("head scan failed")
	}
	body, end, ok := ScanInlineBody("doc", src, head.End, &c)
	if !ok || string(body) != "" {
		t.Fatalf("body = %q, ok=%v, want empty", body, ok)
	}
	if end >= len(src) {
		t.Fatalf("expected a stray ']' left after the tag, end=%d len=%d", end, len(src))
	}
}

func TestScanBlockBody(t *testing.T) {
	lines := SplitLines([]byte("[code::\n\tfoo\n\t\tbar\nbaz\n"))
	// tag head is on lines[0], its own indent depth is 0.
	body, consumed := ScanBlockBody(lines, 1, 0)
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
	if body != "foo\n\tbar" {
		t.Fatalf("body = %q, want %q", body, "foo\n\tbar")
	}
}
