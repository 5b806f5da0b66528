package scan

// ScanBlockBody collects a block tag's body: all lines following the
// tag's own line whose indent depth is strictly greater than d, ending at
// the first non-blank line with indent depth <= d (or end of input).
// lines[startIdx] is the first candidate body line. It returns the
// dedented body (each non-blank line's leading d+1 TABs stripped, blank
// lines dedented by whatever TABs they have up to d+1) joined with '\n',
// and the count of lines consumed.
func ScanBlockBody(lines []Line, startIdx, d int) (body string, consumed int) {
	end := startIdx
	for end < len(lines) {
		l := lines[end]
		if !IsBlank(l.Text) && IndentDepth(l.Text) <= d {
			break
		}
		end++
	}

	out := make([]byte, 0, 64)
	for i := startIdx; i < end; i++ {
		if i > startIdx {
			out = append(out, '\n')
		}
		out = append(out, Dedent(lines[i].Text, d+1)...)
	}
	return string(out), end - startIdx
}
