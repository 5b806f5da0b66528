package parse

import (
	"markdoll/ast"
	"markdoll/diag"
)

// RawInvocation is everything the scanner extracted from one tag
// invocation's source text, before name resolution. It is handed to a
// Dispatcher, which resolves the name against a registry, validates the
// shape, runs the definition's parser, and returns the finished node.
type RawInvocation struct {
	Name     string
	NameSpan diag.Span
	HasArg   bool
	Arg      string
	ArgSpan  diag.Span
	Flags    []ast.FlagToken
	Props    []ast.PropToken
	Content  ast.ContentKind
	Body     string
	BodySpan diag.Span
	Span     diag.Span
}

// Dispatcher is the thin interface the document parser depends on to
// resolve a tag invocation as soon as it is scanned. Its only
// implementation lives in package dispatch; defining the interface here
// (rather than in dispatch) breaks the cyclic dependency between the
// parser and the dispatch runtime: the parser needs to invoke dispatch to
// get a finished node, and dispatch needs to invoke the parser again for
// ContentEmbedded tags.
type Dispatcher interface {
	Dispatch(inv RawInvocation) *ast.Node
}
