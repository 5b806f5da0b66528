// Package emit renders a parsed AST to a target format. Built-in node
// kinds (Section, Paragraph, List, Text, ...) are rendered by the emitter
// itself; TagInvocation nodes are handed to their tag.Def's EmitFunc for
// the requested target. This mirrors the Colors.Get/Colorable
// pattern in encode/encode_colors.go — a lookup keyed on (identity,
// target) that falls back cleanly when nothing is registered for the key
// — but keyed on tag name and emit target instead of ir.Type/ColorAttr.
package emit

import (
	"bytes"
	"fmt"
	"strings"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/internal/debug"
	"markdoll/tag"
)

// Sentinel errors for programmer-usage mistakes made from Go code driving
// the engine. Diagnostics, not errors, carry document-content problems
// such as a tag with no emitter for the requested target.
var (
	ErrUnknownTarget = fmt.Errorf("emit: unknown target")
)

// Options configures one Emit call.
type Options struct {
	Target string
	// CodeLanguages maps a code tag's language argument to a display
	// label used as the class attribute of the HTML target's <code> element.
	CodeLanguages map[string]string
}

type context struct {
	target  string
	buf     *bytes.Buffer
	diags   *diag.Collector
	options Options
	emit    *Emitter
	node    *ast.Node
	// inParagraph is set while a Paragraph's children are being rendered.
	inParagraph bool
}

func (c *context) Target() string { return c.target }

func (c *context) Write(p []byte) (int, error) { return c.buf.Write(p) }

func (c *context) WriteString(s string) (int, error) { return c.buf.WriteString(s) }

func (c *context) Diag(d diag.Diagnostic) { c.diags.Add(d) }

func (c *context) Children() []*ast.Node {
	if c.node == nil {
		return nil
	}
	return c.node.Children
}

func (c *context) CodeLanguage(lang string) (string, bool) {
	label, ok := c.options.CodeLanguages[lang]
	return label, ok
}

func (c *context) EmitChildren(children []*ast.Node) error {
	for _, ch := range children {
		if err := c.emit.emitNode(c, ch); err != nil {
			return err
		}
	}
	return nil
}

var _ tag.EmitContext = (*context)(nil)

// Emitter renders documents for one registry of tag definitions. Build one
// per markdoll.Engine and reuse it across Emit calls; it holds no
// per-document state.
type Emitter struct {
	registry *tag.Registry
}

// NewEmitter builds an Emitter bound to a sealed tag registry.
func NewEmitter(registry *tag.Registry) *Emitter {
	return &Emitter{registry: registry}
}

// Emit renders root for the target named in opts, returning the rendered
// bytes and every diagnostic recorded along the way. Emission problems are
// diagnostics, not errors, except for an empty target requested from Go
// code, which is a programmer mistake; any non-empty target is accepted.
func (e *Emitter) Emit(root *ast.Node, opts Options) ([]byte, []diag.Diagnostic, error) {
	if opts.Target == "" {
		return nil, nil, fmt.Errorf("%w: empty target", ErrUnknownTarget)
	}
	if debug.Emit() {
		debug.Logf("emit: target %q\n", opts.Target)
	}
	diags := &diag.Collector{}
	buf := &bytes.Buffer{}
	c := &context{target: opts.Target, buf: buf, diags: diags, options: opts, emit: e}
	if err := e.emitNode(c, root); err != nil {
		return nil, diags.Diagnostics(), err
	}
	return buf.Bytes(), diags.Diagnostics(), nil
}

func (e *Emitter) emitNode(c *context, n *ast.Node) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ast.Document:
		return c.EmitChildren(n.Children)
	case ast.Section:
		return e.emitSection(c, n)
	case ast.Paragraph:
		return e.emitParagraph(c, n)
	case ast.List:
		return e.emitList(c, n)
	case ast.ListItem:
		c.WriteString("<li>")
		if err := c.EmitChildren(n.Children); err != nil {
			return err
		}
		c.WriteString("</li>\n")
		return nil
	case ast.Text:
		c.WriteString(EscapeHTML(n.Text))
		return nil
	case ast.LineBreak:
		c.WriteString("<br>\n")
		return nil
	case ast.TagInvocation:
		return e.emitTag(c, n)
	case ast.Error:
		// The originating failure was already reported as a diagnostic
		// when this subtree failed to parse or dispatch; skip silently.
		return nil
	default:
		return fmt.Errorf("emit: unhandled node kind %v", n.Kind)
	}
}

func (e *Emitter) emitSection(c *context, n *ast.Node) error {
	level := n.Depth + 1
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(c.buf, "<section><h%d>%s</h%d>\n", level, EscapeHTML(n.Heading), level)
	if err := c.EmitChildren(n.Children); err != nil {
		return err
	}
	c.WriteString("</section>\n")
	return nil
}

func (e *Emitter) emitParagraph(c *context, n *ast.Node) error {
	// A paragraph reached inside another one (the embedded body of an
	// inline tag) renders its inline children without a second <p>.
	if c.inParagraph {
		return c.EmitChildren(n.Children)
	}
	c.inParagraph = true
	c.WriteString("<p>")
	err := c.EmitChildren(n.Children)
	c.inParagraph = false
	if err != nil {
		return err
	}
	c.WriteString("</p>\n")
	return nil
}

func (e *Emitter) emitList(c *context, n *ast.Node) error {
	tagName := "ul"
	if n.ListKind == ast.Ordered {
		tagName = "ol"
	}
	fmt.Fprintf(c.buf, "<%s>\n", tagName)
	if err := c.EmitChildren(n.Children); err != nil {
		return err
	}
	fmt.Fprintf(c.buf, "</%s>\n", tagName)
	return nil
}

func (e *Emitter) emitTag(c *context, n *ast.Node) error {
	def, ok := e.registry.Lookup(n.Name)
	if !ok {
		c.Diag(diag.New(diag.Error, "markdoll::tag::unknown",
			fmt.Sprintf("no definition registered for tag %q", n.Name),
			diag.Label{Span: n.NameSpan}))
		return nil
	}
	fn, ok := def.Emitters[c.target]
	if !ok {
		c.Diag(diag.New(diag.Warning, "markdoll::emit::no-target",
			fmt.Sprintf("tag %q has no emitter for target %q", n.Name, c.target),
			diag.Label{Span: n.Span}))
		return nil
	}
	prevNode := c.node
	c.node = n
	err := fn(n.Payload, c)
	c.node = prevNode
	return err
}

// EscapeHTML escapes the five bytes meaningful to HTML text content,
// grounded in original_source's HTML emit target.
func EscapeHTML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
