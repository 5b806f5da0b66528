// Package tag declares the tag definition schema and the registry that
// resolves invocation names to definitions. It is adapted from a
// schema.Registry shape (a name-keyed map guarded by a mutex), turned
// into a value type rather than a package-level global: the engine keeps
// no process-wide state, so every Engine owns its own Registry.
package tag

import (
	"fmt"
	"sync"

	"markdoll/ast"
	"markdoll/diag"
)

// ArgKind declares what argument shape a tag invocation may carry.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgOptionalString
	ArgRequiredString
)

// ContentKind declares how a tag's body must be written and handled.
type ContentKind int

const (
	// ContentNone: no ':' and no '::' permitted.
	ContentNone ContentKind = iota
	// ContentRawInline: inline body taken literally.
	ContentRawInline
	// ContentRawBlock: block body only, taken literally.
	ContentRawBlock
	// ContentRawAny: either inline or block form accepted, taken
	// literally either way (e.g. a "code" tag short enough to write
	// inline but also usable as a block for longer snippets).
	ContentRawAny
	// ContentEmbedded: body (inline or block) is re-parsed as embedded
	// markdoll.
	ContentEmbedded
	// ContentCustom: the tag supplies its own body parser.
	ContentCustom
)

// PropValueKind declares how a prop's value string is parsed.
type PropValueKind int

const (
	PropString PropValueKind = iota
	PropInt
	PropEnum
)

// PropDef declares one recognized "key=value" property.
type PropDef struct {
	Kind PropValueKind
	// Enum lists the accepted values when Kind is PropEnum.
	Enum []string
}

// Handle is the dispatch handle a tag's Parser callback receives. Its
// sole implementation lives in package dispatch; tag definitions depend on
// this interface, not on dispatch, breaking the cyclic dependency between
// the parser and the dispatch runtime.
type Handle interface {
	// Diag records a diagnostic against the invocation's source.
	Diag(d diag.Diagnostic)
	// ParseEmbedded parses src as an embedded markdoll fragment (no
	// frontmatter recognition), translating spans back through the
	// enclosing document.
	ParseEmbedded(src string) *ast.Node
	// Target returns the emit target identifier the caller intends to
	// render to, or "" if emission hasn't been requested yet (e.g.
	// during a parse-only run). A tag's parser may use this to refuse
	// when no renderer exists for the target.
	Target() string
}

// Invocation is the parsed shape of one tag invocation, handed to a
// definition's Parser.
type Invocation struct {
	Name    string
	Arg     string
	HasArg  bool
	Flags   []ast.FlagToken
	Props   []ast.PropToken
	Content ast.ContentKind
	Body    string
	Span    diag.Span
}

// ParserFunc parses an Invocation into an opaque payload. Returning a
// non-nil error means dispatch should not attach a payload and should
// leave the diagnostic reporting to the parser (it has already recorded
// one on h); the node becomes an ast.Error.
type ParserFunc func(inv Invocation, h Handle) (payload any, err error)

// EmitFunc renders a tag's parsed payload for one target.
type EmitFunc func(payload any, ctx EmitContext) error

// EmitContext is the subset of the emitter pipeline a tag's emitter needs.
// Its concrete implementation lives in package emit.
type EmitContext interface {
	Target() string
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	Diag(d diag.Diagnostic)
	// EmitChildren renders an embedded sub-AST previously produced during
	// parsing (see Def.Content == ContentEmbedded).
	EmitChildren(children []*ast.Node) error
	// Children returns the invocation node's own children, i.e. the
	// embedded sub-AST dispatch attached for a ContentEmbedded tag. An
	// emitter for such a tag renders it with EmitChildren(ctx.Children()).
	Children() []*ast.Node
	// CodeLanguage looks up a highlight label for a code tag's language
	// argument in the emit run's code-block-language table, returning
	// ok=false when the run configured none for lang.
	CodeLanguage(lang string) (string, bool)
}

// Def declares one tag, statically: its name, argument/flag/prop shape,
// content kind, and its parser plus one emitter per target.
type Def struct {
	Name    string
	Arg     ArgKind
	Flags   map[string]struct{}
	Props   map[string]PropDef
	Content ContentKind
	Parser  ParserFunc
	// Emitters maps an emit target identifier (e.g. "html") to the
	// renderer for that target. A target absent from this map yields a
	// markdoll::emit::no-target warning at emit time.
	Emitters map[string]EmitFunc
}

// Registry holds a set of Defs, keyed by name. It is a plain value:
// construct one, populate it before parsing, and pass it to the engine
// façade. Names are case-sensitive.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]*Def
	sealed bool
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]*Def{}}
}

// Register adds a definition. It is a usage error to register after
// Seal has been called (i.e. after parsing has begun).
func (r *Registry) Register(def *Def) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("tag: cannot register %q: registry is sealed (parsing has begun)", def.Name)
	}
	if def.Name == "" {
		return fmt.Errorf("tag: definition must have a name")
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("tag: %q already registered", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// Lookup resolves a tag name, returning (nil, false) on a miss.
func (r *Registry) Lookup(name string) (*Def, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.defs[name]
	return d, ok
}

// Iterate returns every registered definition, in no particular order.
func (r *Registry) Iterate() []*Def {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

// Seal marks the registry read-only. The engine façade calls this before
// the first parse.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}
