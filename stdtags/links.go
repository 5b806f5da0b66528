package stdtags

import (
	"fmt"

	"markdoll/emit"
	"markdoll/tag"
)

type linkPayload struct {
	href string
}

// linkDef is grounded in original_source/src/ext/links.rs: a required URL
// argument, with the link text as embedded content.
func linkDef() *tag.Def {
	return &tag.Def{
		Name:    "link",
		Arg:     tag.ArgRequiredString,
		Content: tag.ContentEmbedded,
		Parser: func(inv tag.Invocation, h tag.Handle) (any, error) {
			return linkPayload{href: inv.Arg}, nil
		},
		Emitters: map[string]tag.EmitFunc{
			"html": func(payload any, ctx tag.EmitContext) error {
				p := payload.(linkPayload)
				fmt.Fprintf(ctx, "<a href=%q>", emit.EscapeHTML(p.href))
				if err := ctx.EmitChildren(ctx.Children()); err != nil {
					return err
				}
				ctx.WriteString("</a>")
				return nil
			},
		},
	}
}
