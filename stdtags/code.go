package stdtags

import (
	"fmt"

	"markdoll/emit"
	"markdoll/tag"
)

type codePayload struct {
	lang string
	code string
}

// codeDef is grounded in original_source/src/ext/code.rs: an optional
// argument names a highlight language, looked up in the emit run's
// code-block-language table; the body is taken literally, inline or
// block.
func codeDef() *tag.Def {
	return &tag.Def{
		Name:    "code",
		Arg:     tag.ArgOptionalString,
		Content: tag.ContentRawAny,
		Parser: func(inv tag.Invocation, h tag.Handle) (any, error) {
			return codePayload{lang: inv.Arg, code: inv.Body}, nil
		},
		Emitters: map[string]tag.EmitFunc{
			"html": func(payload any, ctx tag.EmitContext) error {
				p := payload.(codePayload)
				class := ""
				if p.lang != "" {
					if label, ok := ctx.CodeLanguage(p.lang); ok {
						class = fmt.Sprintf(" class=%q", label)
					} else {
						class = fmt.Sprintf(" class=\"language-%s\"", emit.EscapeHTML(p.lang))
					}
				}
				fmt.Fprintf(ctx, "<pre><code%s>%s</code></pre>", class, emit.EscapeHTML(p.code))
				return nil
			},
		},
	}
}
