package parse

import (
	"markdoll/ast"
	"markdoll/diag"
	"markdoll/scan"
)

// parseBlocks parses the contiguous region p.lines[start:end] as a sequence
// of blocks, where every block-starting line is expected at exactly the
// given indent depth. Blank lines and lines indented deeper than depth
// belong to whichever block they were already claimed by; this function is
// only ever called with ranges a caller has already bounded that way.
func (p *parser) parseBlocks(start, end, depth int) []*ast.Node {
	var out []*ast.Node
	i := start
	for i < end {
		if scan.IsBlank(p.lines[i].Text) {
			i++
			continue
		}
		indent := scan.IndentDepth(p.lines[i].Text)
		if indent != depth {
			l := p.lines[i]
			p.diags.Add(diag.New(diag.Warning, "markdoll::lang::unexpected", "unexpected indentation",
				diag.Label{Span: scan.Span(p.source, l.Start, l.Start+len(l.Text))}))
			i++
			continue
		}

		rest := scan.Dedent(p.lines[i].Text, depth)
		var node *ast.Node
		var next int
		switch {
		case isSectionMarker(rest):
			node, next = p.parseSection(i, end, depth)
		case isListMarker(rest):
			node, next = p.parseList(i, end, depth)
		case len(rest) > 0 && rest[0] == '[':
			node, next = p.parseStandaloneTag(i, end, depth)
		default:
			node, next = p.parseParagraph(i, end, depth)
		}
		out = append(out, node)
		i = next
	}
	return out
}

func isSectionMarker(rest []byte) bool {
	return len(rest) >= 1 && rest[0] == '&' && (len(rest) == 1 || rest[1] == ' ' || rest[1] == '\t')
}

func isListMarker(rest []byte) bool {
	return len(rest) >= 2 && (rest[0] == '-' || rest[0] == '=') && rest[1] == '\t'
}

// blockSpan builds a span covering p.lines[i:j], trimming trailing blank
// lines from the end so a block's span hugs its own content.
func (p *parser) blockSpan(i, j int) diag.Span {
	lastIdx := j - 1
	if lastIdx < i {
		lastIdx = i
	}
	for lastIdx > i && scan.IsBlank(p.lines[lastIdx].Text) {
		lastIdx--
	}
	startOff := p.lines[i].Start
	endOff := p.lines[lastIdx].Start + len(p.lines[lastIdx].Text)
	return scan.Span(p.source, startOff, endOff)
}

// parseStandaloneTag handles a block-level line beginning with '['. Only a
// "[name::" invocation that is alone on its line (nothing follows the
// "::") is treated as its own block, consuming subsequent deeper-indented
// lines as its raw body; anything else (a "[name(...)]" or "[name:...]"
// invocation, or a "::" invocation with trailing text) is ordinary
// paragraph content and is handed to parseParagraph instead, where inline
// scanning will dispatch it.
func (p *parser) parseStandaloneTag(i, end, depth int) (*ast.Node, int) {
	line := p.lines[i]
	lineEnd := line.Start + len(line.Text)
	absStart := line.Start + depth

	head, ok := scan.ScanTagHead(p.source, p.src, absStart, p.diags)
	if ok && head.Content == scan.ContentBlock {
		if len(scan.TrimTrailing(p.src[head.End:lineEnd])) == 0 {
			body, consumed := scan.ScanBlockBody(p.lines, i+1, depth)
			var bodySpan diag.Span
			if consumed > 0 {
				lastIdx := i + consumed
				bodySpan = scan.Span(p.source, p.lines[i+1].Start, p.lines[lastIdx-1].Start+len(p.lines[lastIdx-1].Text))
			} else {
				bodySpan = scan.Span(p.source, lineEnd, lineEnd)
			}
			fullSpan := p.blockSpan(i, i+1+consumed)
			node := p.dispatchTag(head, ast.ContentBlock, body, bodySpan, fullSpan)
			return node, i + 1 + consumed
		}
	}
	return p.parseParagraph(i, end, depth)
}

func (p *parser) dispatchTag(head scan.TagHead, content ast.ContentKind, body string, bodySpan, fullSpan diag.Span) *ast.Node {
	inv := RawInvocation{
		Name:     head.Name,
		NameSpan: head.NameSpan,
		HasArg:   head.HasArg,
		Arg:      head.Arg,
		ArgSpan:  head.ArgSpan,
		Flags:    convertFlags(head.Flags),
		Props:    convertProps(head.Props),
		Content:  content,
		Body:     body,
		BodySpan: bodySpan,
		Span:     fullSpan,
	}
	node := p.disp.Dispatch(inv)
	if node == nil {
		return ast.NewError(fullSpan, "tag dispatch returned no node")
	}
	return node
}

func convertFlags(flags []scan.Flag) []ast.FlagToken {
	if len(flags) == 0 {
		return nil
	}
	out := make([]ast.FlagToken, len(flags))
	for i, f := range flags {
		out[i] = ast.FlagToken{Name: f.Name, Span: f.Span}
	}
	return out
}

func convertProps(props []scan.Prop) []ast.PropToken {
	if len(props) == 0 {
		return nil
	}
	out := make([]ast.PropToken, len(props))
	for i, pr := range props {
		out[i] = ast.PropToken{Name: pr.Key, Value: pr.Value, Span: pr.Span}
	}
	return out
}

// parseParagraph gathers the maximal contiguous run of non-blank lines at
// exactly depth, stopping before a line that starts a section or list, and
// folds them into one Paragraph of inline nodes: each source line
// contributes its own inline run, joined to the next either by an explicit
// LineBreak node (trailing '\') or by a single synthetic space Text node.
func (p *parser) parseParagraph(i, end, depth int) (*ast.Node, int) {
	j := i
	for j < end {
		if scan.IsBlank(p.lines[j].Text) {
			break
		}
		if scan.IndentDepth(p.lines[j].Text) != depth {
			break
		}
		rest := scan.Dedent(p.lines[j].Text, depth)
		if isSectionMarker(rest) || isListMarker(rest) {
			break
		}
		j++
	}
	if j == i {
		j = i + 1
	}

	var children []*ast.Node
	for k := i; k < j; k++ {
		line := p.lines[k]
		rest := scan.TrimTrailing(scan.Dedent(line.Text, depth))
		lineAbsStart := line.Start + depth
		text, brk := scan.EndsWithLineBreak(rest)
		children = append(children, p.parseInlineRun(lineAbsStart, text)...)
		if brk {
			children = append(children, &ast.Node{
				Kind: ast.LineBreak,
				Span: scan.Span(p.source, lineAbsStart+len(text), lineAbsStart+len(rest)),
			})
		} else if k < j-1 {
			sepOff := lineAbsStart + len(rest)
			children = append(children, &ast.Node{Kind: ast.Text, Text: " ", Span: scan.Span(p.source, sepOff, sepOff)})
		}
	}
	return &ast.Node{Kind: ast.Paragraph, Span: p.blockSpan(i, j), Children: children}, j
}
