// Package ast defines markdoll's AST node kinds: a single tagged-variant
// Node type, following ir.Node's shape (one struct, a Kind enum, and a
// handful of kind-specific fields) rather than a Go interface hierarchy.
// A TagInvocation node carries a boxed parsed payload once its definition's
// parser has run, so downstream stages never re-parse a tag's body.
package ast

import "markdoll/diag"

// Kind discriminates which fields of a Node are meaningful.
type Kind int

const (
	Document Kind = iota
	Section
	Paragraph
	List
	ListItem
	Text
	LineBreak
	TagInvocation
	Error
)

func (k Kind) String() string {
	switch k {
	case Document:
		return "Document"
	case Section:
		return "Section"
	case Paragraph:
		return "Paragraph"
	case List:
		return "List"
	case ListItem:
		return "ListItem"
	case Text:
		return "Text"
	case LineBreak:
		return "LineBreak"
	case TagInvocation:
		return "TagInvocation"
	case Error:
		return "Error"
	default:
		return "<unknown kind>"
	}
}

// ListKind distinguishes ordered from unordered List nodes.
type ListKind int

const (
	Unordered ListKind = iota
	Ordered
)

// ContentKind mirrors scan.ContentKind for a dispatched tag's body, kept
// here (rather than importing scan into ast) so ast has no dependency on
// the scanner.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentInline
	ContentBlock
)

// FlagToken is a resolved (name, span) flag on a TagInvocation.
type FlagToken struct {
	Name string
	Span diag.Span
}

// PropToken is a resolved (name, value, span) property on a TagInvocation.
type PropToken struct {
	Name, Value string
	Span        diag.Span
}

// Node is one node of the AST. Every node carries a Span fully contained
// in its parent's span. Which fields are meaningful depends on Kind.
type Node struct {
	Kind Kind
	Span diag.Span

	// Document
	Frontmatter    string
	HasFrontmatter bool

	// Section
	Heading     string
	HeadingSpan diag.Span
	Depth       int

	// Document, Section, Paragraph, ListItem: block/inline children in
	// source order. Document/Section/ListItem hold block children;
	// Paragraph holds inline children (Text, LineBreak, TagInvocation,
	// Error).
	Children []*Node

	// List
	ListKind ListKind
	// List's Children are ListItem nodes; a List's items must share the
	// same leading indentation width, recorded here for diagnostics and
	// idempotence checks.
	ItemIndent int

	// Text
	Text string

	// TagInvocation
	Name     string
	NameSpan diag.Span
	HasArg   bool
	Arg      string
	ArgSpan  diag.Span
	Flags    []FlagToken
	Props    []PropToken
	Content  ContentKind
	Body     string
	BodySpan diag.Span
	// Payload is set exactly once, by the dispatch runtime, iff the
	// tag's definition parser succeeded.
	Payload any

	// Error
	Cause string
}

// NewError builds a placeholder Error node at sp, replacing a subtree
// that failed to parse or dispatch, so emission can continue past it.
func NewError(sp diag.Span, cause string) *Node {
	return &Node{Kind: Error, Span: sp, Cause: cause}
}

// Walk calls visit for n and, depth-first left-to-right, every descendant.
// visit returning false stops descending into that node's children (but
// sibling traversal continues).
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
