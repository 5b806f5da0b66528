// Package parse implements markdoll's document parser: section hierarchy,
// lists, paragraphs, inline tag invocation, and frontmatter recognition.
// It is line-oriented and indentation-driven, in the spirit of a
// tokenize-then-recursive-descend parser, but working directly over
// scan.Line values instead of a separate token stream, since markdoll's
// grammar is driven by raw indentation rather than bracket/brace tokens.
package parse

import (
	"bytes"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/internal/debug"
	"markdoll/scan"
)

type parser struct {
	source string
	src    []byte
	lines  []scan.Line
	disp   Dispatcher
	diags  *diag.Collector
}

// ParseDocument parses source as a full document, recognizing a leading
// frontmatter fence.
func ParseDocument(sourceName string, src []byte, disp Dispatcher, diags *diag.Collector) *ast.Node {
	return parseTop(sourceName, src, disp, diags, true)
}

// ParseEmbedded parses source without frontmatter recognition, as used
// when a tag's content kind is ContentEmbedded.
func ParseEmbedded(sourceName string, src []byte, disp Dispatcher, diags *diag.Collector) *ast.Node {
	return parseTop(sourceName, src, disp, diags, false)
}

func parseTop(sourceName string, src []byte, disp Dispatcher, diags *diag.Collector, allowFrontmatter bool) *ast.Node {
	if off, found := scan.CheckNoCR(src); found {
		diags.Fatal(diag.New(diag.Error, "markdoll::lang::cr", "carriage return byte in source",
			diag.Label{Span: scan.Span(sourceName, off, off+1), Text: "CR bytes are not permitted; source must be LF-terminated"}))
		return &ast.Node{Kind: ast.Document, Span: scan.Span(sourceName, 0, 0)}
	}

	full := scan.Span(sourceName, 0, len(src))
	if debug.Scan() {
		debug.Logf("scan: %d bytes %q\n", len(src), sourceName)
	}
	lines := scan.SplitLines(src)
	if debug.Parse() {
		debug.Logf("parse: %d lines %q\n", len(lines), sourceName)
	}
	p := &parser{source: sourceName, src: src, lines: lines, disp: disp, diags: diags}

	doc := &ast.Node{Kind: ast.Document, Span: full}

	lineIdx := 0
	for lineIdx < len(p.lines) && scan.IsBlank(p.lines[lineIdx].Text) {
		lineIdx++
	}
	if allowFrontmatter && lineIdx < len(p.lines) && isFence(p.lines[lineIdx].Text) {
		fmText, next := p.scanFrontmatter(lineIdx)
		doc.Frontmatter = fmText
		doc.HasFrontmatter = true
		lineIdx = next
	}

	doc.Children = p.parseBlocks(lineIdx, len(p.lines), 0)
	return doc
}

func isFence(text []byte) bool {
	return bytes.Equal(bytes.TrimSpace(text), []byte("---"))
}

// scanFrontmatter consumes the fence at p.lines[start] and everything up
// to (and including) the closing fence, returning the frontmatter body
// and the index of the first line after it.
func (p *parser) scanFrontmatter(start int) (string, int) {
	contentStart := start + 1
	i := contentStart
	for i < len(p.lines) && !isFence(p.lines[i].Text) {
		i++
	}
	if i >= len(p.lines) {
		end := len(p.lines[len(p.lines)-1].Text) + p.lines[len(p.lines)-1].Start
		p.diags.Add(diag.New(diag.Error, "markdoll::lang::unterminated", "unterminated frontmatter fence",
			diag.Label{Span: scan.Span(p.source, p.lines[start].Start, end), Text: "no closing '---' found"}))
		return joinLines(p.lines[contentStart:]), len(p.lines)
	}
	return joinLines(p.lines[contentStart:i]), i + 1
}

func joinLines(lines []scan.Line) string {
	var b bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(l.Text)
	}
	return b.String()
}
