package diag

import (
	"sort"
	"strconv"
)

// LineIndex maps byte offsets within one named source to 1-based line and
// 0-based column numbers, the way token.PosDoc does for a tokenizer's
// own position tracking. It is built once per source and reused for every span that
// needs to be rendered.
type LineIndex struct {
	source string
	starts []int
}

// NewLineIndex scans src for newline positions. src must be LF-only;
// callers are responsible for rejecting CR bytes before indexing (see
// scan.CheckNoCR).
func NewLineIndex(source string, src []byte) *LineIndex {
	idx := &LineIndex{source: source, starts: []int{0}}
	for i, b := range src {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// LineCol returns the 1-based line and 0-based column for a byte offset.
func (idx *LineIndex) LineCol(off int) (line, col int) {
	i := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, off - idx.starts[i]
}

// Location renders "<source>:<line>:<col>" for the start of a span, the
// format the CLI's JSON diagnostic envelope uses for a label's location.
func (idx *LineIndex) Location(sp Span) string {
	line, col := idx.LineCol(sp.Start)
	return formatLocation(idx.source, line, col)
}

func formatLocation(source string, line, col int) string {
	return source + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(col)
}
