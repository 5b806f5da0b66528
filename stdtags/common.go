package stdtags

import "markdoll/tag"

// quoteDef is grounded in original_source/src/ext/common.rs: embedded
// content wrapped in a <blockquote>.
func quoteDef() *tag.Def {
	return &tag.Def{
		Name:    "quote",
		Arg:     tag.ArgNone,
		Content: tag.ContentEmbedded,
		Emitters: map[string]tag.EmitFunc{
			"html": func(_ any, ctx tag.EmitContext) error {
				ctx.WriteString("<blockquote>")
				if err := ctx.EmitChildren(ctx.Children()); err != nil {
					return err
				}
				ctx.WriteString("</blockquote>")
				return nil
			},
		},
	}
}

// commentDef is grounded in original_source/src/ext/common.rs: a
// raw-block tag that exists purely so authors can leave source comments.
// Its emitter is a no-op on every target it's registered for.
func commentDef() *tag.Def {
	noop := func(_ any, _ tag.EmitContext) error { return nil }
	return &tag.Def{
		Name:    "comment",
		Arg:     tag.ArgNone,
		Content: tag.ContentRawBlock,
		Emitters: map[string]tag.EmitFunc{
			"html": noop,
		},
	}
}
