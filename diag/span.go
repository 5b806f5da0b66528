// Package diag holds the span and diagnostic model shared by the parser,
// the tag dispatch runtime, and the emitter pipeline.
package diag

import "fmt"

// Span is a half-open byte range over a named source. Spans are immutable
// once constructed.
type Span struct {
	Source string
	Start  int
	End    int
}

// NewSpan builds a Span, panicking if the range is inverted. Parser and
// dispatch code should never construct an inverted span; this is a
// programmer error, not a diagnostic.
func NewSpan(source string, start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("diag: inverted span [%d, %d) in %q", start, end, source))
	}
	return Span{Source: source, Start: start, End: end}
}

// Join returns the smallest span containing both a and b. Both must share
// the same source.
func Join(a, b Span) Span {
	if a.Source != b.Source {
		panic(fmt.Sprintf("diag: cannot join spans from %q and %q", a.Source, b.Source))
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Span{Source: a.Source, Start: start, End: end}
}

// Contains reports whether s fully contains other (same source, other's
// range within s's range).
func (s Span) Contains(other Span) bool {
	return s.Source == other.Source && other.Start >= s.Start && other.End <= s.End
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.Source, s.Start, s.End)
}
