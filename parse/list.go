package parse

import (
	"markdoll/ast"
	"markdoll/scan"
)

// parseList gathers one run of items sharing the same marker byte ('-' for
// Unordered, '=' for Ordered) at exactly depth, where each item claims
// every following line indented deeper than depth. A blank line never
// extends an item: it always ends the list (two adjacent same-marker runs
// separated by a blank line parse as two Lists, not one).
func (p *parser) parseList(i, end, depth int) (*ast.Node, int) {
	marker := scan.Dedent(p.lines[i].Text, depth)[0]

	var items []*ast.Node
	j := i
	for {
		itemEnd := j + 1
		for itemEnd < end && !scan.IsBlank(p.lines[itemEnd].Text) && scan.IndentDepth(p.lines[itemEnd].Text) > depth {
			itemEnd++
		}
		items = append(items, p.parseListItem(j, itemEnd, depth))
		j = itemEnd

		if j >= end || scan.IndentDepth(p.lines[j].Text) != depth {
			break
		}
		r := scan.Dedent(p.lines[j].Text, depth)
		if len(r) == 0 || r[0] != marker || !isListMarker(r) {
			break
		}
	}

	kind := ast.Unordered
	if marker == '=' {
		kind = ast.Ordered
	}
	return &ast.Node{
		Kind:       ast.List,
		Span:       p.blockSpan(i, j),
		ListKind:   kind,
		ItemIndent: depth,
		Children:   items,
	}, j
}

// parseListItem builds one item spanning p.lines[i:end]: the marker line's
// remainder becomes a leading Paragraph of inline content (when
// non-empty), followed by any deeper-indented lines parsed as ordinary
// nested blocks one indent level in.
func (p *parser) parseListItem(i, end, depth int) *ast.Node {
	line := p.lines[i]
	remainder := scan.TrimTrailing(scan.Dedent(line.Text, depth)[2:])
	absStart := line.Start + depth + 2

	var children []*ast.Node
	if len(remainder) > 0 {
		text, brk := scan.EndsWithLineBreak(remainder)
		inline := p.parseInlineRun(absStart, text)
		if brk {
			inline = append(inline, &ast.Node{
				Kind: ast.LineBreak,
				Span: scan.Span(p.source, absStart+len(text), absStart+len(remainder)),
			})
		}
		children = append(children, &ast.Node{
			Kind:     ast.Paragraph,
			Span:     scan.Span(p.source, absStart, absStart+len(remainder)),
			Children: inline,
		})
	}
	children = append(children, p.parseBlocks(i+1, end, depth+1)...)

	return &ast.Node{Kind: ast.ListItem, Span: p.blockSpan(i, end), Children: children}
}
