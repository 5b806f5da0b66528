package parse

import (
	"markdoll/ast"
	"markdoll/diag"
	"markdoll/scan"
)

// parseInlineRun scans one line's worth of already-dedented, already
// trailing-whitespace-trimmed text (text[0] sits at byte offset absStart
// in the source) into a run of Text and TagInvocation nodes, decoding
// escapes in plain text and dispatching every "[...]" it finds.
func (p *parser) parseInlineRun(absStart int, text []byte) []*ast.Node {
	var out []*ast.Node
	runStart := 0

	flush := func(to int) {
		if to <= runStart {
			return
		}
		raw := text[runStart:to]
		decoded := scan.DecodeEscapes(p.source, absStart+runStart, raw, p.diags)
		if decoded != "" {
			out = append(out, &ast.Node{
				Kind: ast.Text,
				Text: decoded,
				Span: scan.Span(p.source, absStart+runStart, absStart+to),
			})
		}
	}

	i := 0
	for i < len(text) {
		b := text[i]
		if b == '\\' {
			i += 2
			if i > len(text) {
				i = len(text)
			}
			continue
		}
		if b != '[' {
			i++
			continue
		}

		flush(i)
		tagStart := i
		head, ok := scan.ScanTagHead(p.source, p.src, absStart+i, p.diags)
		if !ok {
			out = append(out, ast.NewError(scan.Span(p.source, absStart+i, absStart+i+1), "malformed inline tag"))
			i++
			runStart = i
			continue
		}

		var node *ast.Node
		switch head.Content {
		case scan.ContentNone:
			node = p.dispatchTag(head, ast.ContentNone, "", diag.Span{}, scan.Span(p.source, absStart+tagStart, head.End))
			i = head.End - absStart

		case scan.ContentInline:
			body, bodyEnd, _ := scan.ScanInlineBody(p.source, p.src, head.End, p.diags)
			bodySpan := scan.Span(p.source, head.End, bodyEnd-1)
			fullSpan := scan.Span(p.source, absStart+tagStart, bodyEnd)
			node = p.dispatchTag(head, ast.ContentInline, string(body), bodySpan, fullSpan)
			i = bodyEnd - absStart

		default: // scan.ContentBlock
			fullSpan := scan.Span(p.source, absStart+tagStart, head.End)
			p.diags.Add(diag.New(diag.Error, "markdoll::lang::unexpected", "a block-content tag cannot appear inline",
				diag.Label{Span: fullSpan, Text: "use '::' only on a line by itself"}))
			node = ast.NewError(fullSpan, "block-content tag used inline")
			i = head.End - absStart
		}

		out = append(out, node)
		runStart = i
	}
	flush(len(text))
	return out
}
