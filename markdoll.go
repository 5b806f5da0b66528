// Package markdoll is the public engine façade: construct an Engine,
// register tags against it, then call ParseDocument/ParseEmbedded/Emit.
// It wires package parse's document parser to package dispatch's runtime
// and package emit's renderer through a shared tag.Registry. An Engine
// holds no per-document state and is safe to reuse across documents,
// though not to use concurrently on the same document.
package markdoll

import (
	"fmt"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/dispatch"
	"markdoll/emit"
	"markdoll/parse"
	"markdoll/stdtags"
	"markdoll/tag"
)

// Engine bundles a tag registry with the emitter built on top of it.
type Engine struct {
	registry *tag.Registry
	emitter  *emit.Emitter
	sealed   bool
}

// New builds an Engine with the standard tag set already registered.
// Additional tags may be registered with Register before the first parse;
// RegisterDanger-gated tags (see stdtags.RegisterDanger, only compiled
// in under the "danger" build tag) are the caller's responsibility to add.
func New() (*Engine, error) {
	reg := tag.NewRegistry()
	if err := stdtags.Register(reg); err != nil {
		return nil, fmt.Errorf("markdoll: registering standard tags: %w", err)
	}
	return &Engine{registry: reg}, nil
}

// Registry exposes the underlying tag registry for callers that need to
// register a tag definition built by another package (e.g. cmd/markdoll's
// build-tag-gated danger tag set) rather than constructing a *tag.Def
// inline. It is still a usage error to register after the first Parse.
func (e *Engine) Registry() *tag.Registry { return e.registry }

// Register adds a custom tag definition. It is a usage error to call this
// after the first Parse call.
func (e *Engine) Register(def *tag.Def) error {
	if e.sealed {
		return fmt.Errorf("markdoll: cannot register %q: engine has already parsed a document", def.Name)
	}
	return e.registry.Register(def)
}

func (e *Engine) seal() {
	if !e.sealed {
		e.registry.Seal()
		e.emitter = emit.NewEmitter(e.registry)
		e.sealed = true
	}
}

// Result is the outcome of a parse: the finished AST plus every
// diagnostic recorded along the way. Diagnostics are always returned,
// never swallowed, and a fatal one leaves Doc as an empty placeholder
// rather than nil.
type Result struct {
	Doc         *ast.Node
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any diagnostic in the result is Error
// severity or worse.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}

// ParseDocument parses src as a full document (frontmatter recognized),
// with target set to the emit target the caller intends to render to
// (or "" if none is chosen yet — tag parsers may consult it via
// tag.Handle.Target to refuse up front).
func (e *Engine) ParseDocument(source string, src []byte, target string) Result {
	e.seal()
	diags := &diag.Collector{}
	rt := dispatch.NewRuntime(e.registry, diags, source, target)
	doc := parse.ParseDocument(source, src, rt, diags)
	return Result{Doc: doc, Diagnostics: diags.Diagnostics()}
}

// ParseEmbedded parses src as an embedded fragment (no frontmatter
// recognition), as used for a top-level document rather than the body of
// a ContentEmbedded tag (which package dispatch handles internally).
func (e *Engine) ParseEmbedded(source string, src []byte, target string) Result {
	e.seal()
	diags := &diag.Collector{}
	rt := dispatch.NewRuntime(e.registry, diags, source, target)
	doc := parse.ParseEmbedded(source, src, rt, diags)
	return Result{Doc: doc, Diagnostics: diags.Diagnostics()}
}

// Emit renders doc for the given target, returning the rendered bytes and
// any diagnostics recorded during emission (missing per-tag emitters,
// unknown tags reached only via a hand-built AST, etc).
func (e *Engine) Emit(doc *ast.Node, opts emit.Options) ([]byte, []diag.Diagnostic, error) {
	e.seal()
	return e.emitter.Emit(doc, opts)
}
