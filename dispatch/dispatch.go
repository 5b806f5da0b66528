// Package dispatch implements the runtime that turns a parse.RawInvocation
// into a finished ast.Node: resolving the tag name against a tag.Registry,
// validating the invocation's shape against the tag.Def, running the
// definition's parser, and (for embedded content) recursing back into
// package parse. It is the single type that closes the cyclic dependency
// between the parser and tag dispatch, implementing both parse.Dispatcher
// and tag.Handle.
package dispatch

import (
	"fmt"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/internal/debug"
	"markdoll/parse"
	"markdoll/tag"
)

// Sentinel errors for dispatch-time programmer mistakes: these are never
// shown to a document author, only ever returned to Go code driving the
// engine. Document content problems are always diagnostics, never errors.
var (
	ErrUnknownTarget = fmt.Errorf("dispatch: unknown emit target")
)

// Runtime resolves tag invocations for one parse run. Construct a fresh
// Runtime per ParseDocument/ParseEmbedded call; it is not safe for
// concurrent use — one document, one goroutine.
type Runtime struct {
	registry *tag.Registry
	diags    *diag.Collector
	source   string
	target   string
}

// NewRuntime builds a Runtime bound to a sealed registry, a diagnostic
// collector shared with the parser, and the name of the source currently
// being parsed. target is the emit target the caller ultimately intends
// to render to, or "" if none has been chosen yet; tag parsers may consult
// it via Handle.Target to refuse up front when no renderer exists for it.
func NewRuntime(registry *tag.Registry, diags *diag.Collector, source, target string) *Runtime {
	return &Runtime{registry: registry, diags: diags, source: source, target: target}
}

var _ parse.Dispatcher = (*Runtime)(nil)
var _ tag.Handle = (*Runtime)(nil)

// Diag implements tag.Handle.
func (r *Runtime) Diag(d diag.Diagnostic) { r.diags.Add(d) }

// Target implements tag.Handle.
func (r *Runtime) Target() string { return r.target }

// ParseEmbedded implements tag.Handle by recursing into package parse with
// a fresh Runtime that shares this one's registry, collector and target.
func (r *Runtime) ParseEmbedded(src string) *ast.Node {
	child := NewRuntime(r.registry, r.diags, r.source, r.target)
	return parse.ParseEmbedded(r.source, []byte(src), child, r.diags)
}

// Dispatch implements parse.Dispatcher: it resolves inv.Name, validates
// the invocation against the definition, and either runs the definition's
// parser (attaching its payload to the returned node) or records a
// diagnostic and returns an ast.Error node in its place.
func (r *Runtime) Dispatch(inv parse.RawInvocation) *ast.Node {
	if debug.Dispatch() {
		debug.Logf("dispatch: %s %q\n", inv.Name, r.source)
	}
	def, ok := r.registry.Lookup(inv.Name)
	if !ok {
		r.diags.Add(diag.New(diag.Error, "markdoll::tag::unknown",
			fmt.Sprintf("unknown tag %q", inv.Name),
			diag.Label{Span: inv.NameSpan, Text: "no tag registered under this name"}))
		return ast.NewError(inv.Span, "unknown tag")
	}

	r.warnUnknownFlags(inv, def)

	if code, err := r.validateShape(inv, def); err != nil {
		r.diags.Add(diag.New(diag.Error, code, err.Error(),
			diag.Label{Span: inv.Span}))
		return ast.NewError(inv.Span, err.Error())
	}

	node := &ast.Node{
		Kind:     ast.TagInvocation,
		Span:     inv.Span,
		Name:     inv.Name,
		NameSpan: inv.NameSpan,
		HasArg:   inv.HasArg,
		Arg:      inv.Arg,
		ArgSpan:  inv.ArgSpan,
		Flags:    inv.Flags,
		Props:    inv.Props,
		Content:  inv.Content,
		Body:     inv.Body,
		BodySpan: inv.BodySpan,
	}

	if def.Content == tag.ContentEmbedded && inv.Body != "" {
		node.Children = []*ast.Node{r.ParseEmbedded(inv.Body)}
	}

	if def.Parser != nil {
		invocation := tag.Invocation{
			Name:    inv.Name,
			Arg:     inv.Arg,
			HasArg:  inv.HasArg,
			Flags:   inv.Flags,
			Props:   inv.Props,
			Content: inv.Content,
			Body:    inv.Body,
			Span:    inv.Span,
		}
		payload, err := def.Parser(invocation, r)
		if err != nil {
			return ast.NewError(inv.Span, err.Error())
		}
		node.Payload = payload
	}

	return node
}

// warnUnknownFlags records a markdoll::tag::flag warning for every flag on
// inv that def does not declare. Unlike the other shape mismatches, an
// unknown flag never fails dispatch: the tag still parses and renders with
// the flags it does recognize.
func (r *Runtime) warnUnknownFlags(inv parse.RawInvocation, def *tag.Def) {
	for _, f := range inv.Flags {
		if _, ok := def.Flags[f.Name]; !ok {
			r.diags.Add(diag.New(diag.Warning, "markdoll::tag::flag",
				fmt.Sprintf("tag %q does not recognize flag %q", inv.Name, f.Name),
				diag.Label{Span: f.Span, Text: "unknown flag"}))
		}
	}
}

// validateShape checks inv against def, returning the stable diagnostic
// code for the first mismatch found (markdoll::tag::arg / ::prop / ::body
// — one category per invocation part) alongside the error, or ("", nil) if
// the shape is valid. Unknown flags are handled separately by
// warnUnknownFlags since they warn rather than fail dispatch.
func (r *Runtime) validateShape(inv parse.RawInvocation, def *tag.Def) (string, error) {
	switch def.Arg {
	case tag.ArgNone:
		if inv.HasArg {
			return "markdoll::tag::arg", fmt.Errorf("tag %q does not accept an argument", inv.Name)
		}
	case tag.ArgRequiredString:
		if !inv.HasArg {
			return "markdoll::tag::arg", fmt.Errorf("tag %q requires an argument", inv.Name)
		}
	}

	for _, p := range inv.Props {
		pd, ok := def.Props[p.Name]
		if !ok {
			return "markdoll::tag::prop", fmt.Errorf("tag %q does not recognize property %q", inv.Name, p.Name)
		}
		if pd.Kind == tag.PropEnum {
			valid := false
			for _, e := range pd.Enum {
				if e == p.Value {
					valid = true
					break
				}
			}
			if !valid {
				return "markdoll::tag::prop", fmt.Errorf("tag %q property %q: %q is not one of %v", inv.Name, p.Name, p.Value, pd.Enum)
			}
		}
	}

	if err := validateContentKind(inv.Name, def.Content, inv.Content); err != nil {
		return "markdoll::tag::body", err
	}
	return "", nil
}

func validateContentKind(name string, declared tag.ContentKind, actual ast.ContentKind) error {
	switch declared {
	case tag.ContentNone:
		if actual != ast.ContentNone {
			return fmt.Errorf("tag %q does not accept content", name)
		}
	case tag.ContentRawInline:
		if actual != ast.ContentInline {
			return fmt.Errorf("tag %q requires inline content (':')", name)
		}
	case tag.ContentRawBlock:
		if actual != ast.ContentBlock {
			return fmt.Errorf("tag %q requires block content ('::')", name)
		}
	case tag.ContentRawAny:
		if actual == ast.ContentNone {
			return fmt.Errorf("tag %q requires content", name)
		}
	case tag.ContentEmbedded, tag.ContentCustom:
		if actual == ast.ContentNone {
			return fmt.Errorf("tag %q requires content", name)
		}
	}
	return nil
}
