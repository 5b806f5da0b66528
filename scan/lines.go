// Package scan implements markdoll's lexical primitives and tag-body
// scanner: indentation measurement, line classification, escape decoding,
// and the balanced-bracket / dedent extraction rules that hand a tag's raw
// body to the dispatch runtime. It mirrors the byte-offset-tracking style
// of a token.PosDoc-shaped lexer, but reports positions as diag.Span
// rather than a bespoke Pos type.
package scan

import "markdoll/diag"

// Line is one line of source, split on '\n', with the trailing newline
// removed and its starting byte offset recorded.
type Line struct {
	Start int    // byte offset of Text[0] in the source
	Text  []byte // line content, without the trailing '\n'
}

// SplitLines splits src into Lines. src must already have passed
// CheckNoCR.
func SplitLines(src []byte) []Line {
	lines := make([]Line, 0, 64)
	start := 0
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, Line{Start: start, Text: src[start:i]})
			start = i + 1
		}
	}
	if start <= len(src) {
		lines = append(lines, Line{Start: start, Text: src[start:]})
	}
	return lines
}

// CheckNoCR reports the byte offset of the first CR byte in src, if any.
// A CR anywhere in the source is the one condition the parser treats as
// fatal rather than diagnosable.
func CheckNoCR(src []byte) (offset int, found bool) {
	for i, b := range src {
		if b == '\r' {
			return i, true
		}
	}
	return 0, false
}

// IndentDepth returns the count of leading TAB characters in a line's
// text. Spaces never contribute to indentation.
func IndentDepth(text []byte) int {
	depth := 0
	for depth < len(text) && text[depth] == '\t' {
		depth++
	}
	return depth
}

// Dedent returns the line's text with up to n leading TABs stripped.
func Dedent(text []byte, n int) []byte {
	i := 0
	for i < n && i < len(text) && text[i] == '\t' {
		i++
	}
	return text[i:]
}

// TrimTrailing drops trailing spaces and tabs: trailing whitespace on any
// line is ignored.
func TrimTrailing(text []byte) []byte {
	end := len(text)
	for end > 0 && (text[end-1] == ' ' || text[end-1] == '\t') {
		end--
	}
	return text[:end]
}

// IsBlank reports whether a line carries no significant content: once its
// leading TABs are stripped and its trailing whitespace is trimmed,
// nothing remains.
func IsBlank(text []byte) bool {
	rest := text[IndentDepth(text):]
	return len(TrimTrailing(rest)) == 0
}

// EndsWithLineBreak reports whether a (trailing-whitespace-trimmed) line
// ends with the single backslash that triggers an explicit LineBreak, and
// returns the text with that backslash removed.
func EndsWithLineBreak(text []byte) (rest []byte, ok bool) {
	trimmed := TrimTrailing(text)
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != '\\' {
		return text, false
	}
	// A doubled backslash at end of line is an escaped backslash, not a
	// line-break marker.
	if len(trimmed) >= 2 && trimmed[len(trimmed)-2] == '\\' {
		return text, false
	}
	return trimmed[:len(trimmed)-1], true
}

// Span builds a diag.Span for a byte range within the named source.
func Span(source string, start, end int) diag.Span {
	return diag.NewSpan(source, start, end)
}
