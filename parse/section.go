package parse

import (
	"markdoll/ast"
	"markdoll/diag"
	"markdoll/scan"
)

// parseSection handles a "& heading text" line: the heading runs to end of
// line (escape-decoded, no inline tags), and its children are every
// following line more deeply indented than depth (blanks included),
// recursively parsed one indent level down.
func (p *parser) parseSection(i, end, depth int) (*ast.Node, int) {
	line := p.lines[i]
	rest := scan.Dedent(line.Text, depth)

	hs := 1
	for hs < len(rest) && (rest[hs] == ' ' || rest[hs] == '\t') {
		hs++
	}
	headingBytes := scan.TrimTrailing(rest[hs:])
	headingAbsStart := line.Start + depth + hs
	heading := scan.DecodeEscapes(p.source, headingAbsStart, headingBytes, p.diags)
	headingSpan := scan.Span(p.source, headingAbsStart, headingAbsStart+len(headingBytes))

	if len(headingBytes) == 0 {
		p.diags.Add(diag.New(diag.Warning, "markdoll::lang::unexpected", "section has an empty heading",
			diag.Label{Span: headingSpan, Text: "expected heading text after '&'"}))
	}

	j := i + 1
	for j < end && (scan.IsBlank(p.lines[j].Text) || scan.IndentDepth(p.lines[j].Text) > depth) {
		j++
	}
	children := p.parseBlocks(i+1, j, depth+1)

	return &ast.Node{
		Kind:        ast.Section,
		Span:        p.blockSpan(i, j),
		Heading:     heading,
		HeadingSpan: headingSpan,
		Depth:       depth,
		Children:    children,
	}, j
}
