package stdtags

import (
	"fmt"

	"markdoll/tag"
)

// formattingDef builds a no-arg, no-flag, embedded-content tag that wraps
// its rendered children in a single HTML element, grounded in
// original_source/src/ext/formatting.rs's em/b/i handling.
func formattingDef(name, htmlElement string) *tag.Def {
	return &tag.Def{
		Name:    name,
		Arg:     tag.ArgNone,
		Content: tag.ContentEmbedded,
		Emitters: map[string]tag.EmitFunc{
			"html": func(_ any, ctx tag.EmitContext) error {
				fmt.Fprintf(ctx, "<%s>", htmlElement)
				if err := ctx.EmitChildren(ctx.Children()); err != nil {
					return err
				}
				fmt.Fprintf(ctx, "</%s>", htmlElement)
				return nil
			},
		},
	}
}
