package diag

import (
	"fmt"
	"strings"
)

// SourceSet resolves a source name to its bytes so Render can build a
// LineIndex on demand. The engine façade owns one of these, keyed by every
// source name a document or embedded parse has touched.
type SourceSet interface {
	Source(name string) ([]byte, bool)
}

// MapSourceSet is the simplest SourceSet: a plain map of name to bytes.
type MapSourceSet map[string][]byte

func (m MapSourceSet) Source(name string) ([]byte, bool) {
	b, ok := m[name]
	return b, ok
}

// Render pretty-prints a Diagnostic as a multi-line, human-readable report:
// severity and code, message, each label with its resolved location, help
// text, url, and the cause chain. This is the string the CLI's JSON
// envelope puts in a diagnostic's "rendered" field, and what the CLI
// prints directly to stderr in non-JSON mode (colorized separately by
// cmd/markdoll).
func Render(d Diagnostic, sources SourceSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s[%s]: %s\n", strings.ToUpper(d.Severity.String()[:1])+d.Severity.String()[1:], d.Code, d.Message)

	for _, l := range d.Labels {
		loc := l.Span.Source
		if src, ok := sources.Source(l.Span.Source); ok {
			loc = NewLineIndex(l.Span.Source, src).Location(l.Span)
		}
		marker := "  -"
		if l.Primary {
			marker = "  >"
		}
		if l.Text != "" {
			fmt.Fprintf(&b, "%s %s: %s\n", marker, loc, l.Text)
		} else {
			fmt.Fprintf(&b, "%s %s\n", marker, loc)
		}
	}

	if d.Help != "" {
		fmt.Fprintf(&b, "  help: %s\n", d.Help)
	}
	if d.URL != "" {
		fmt.Fprintf(&b, "  see: %s\n", d.URL)
	}
	for _, cause := range d.CauseChain {
		fmt.Fprintf(&b, "  caused by: %s\n", cause)
	}

	return strings.TrimRight(b.String(), "\n")
}
