// Package stdtags supplies markdoll's standard tag set: formatting
// (em/b/i), code, link, table, quote/comment. Register attaches all of
// them to a tag.Registry; RegisterDanger (danger.go, build-tag gated)
// adds the expression-evaluation tag separately, since it only exists
// when explicitly opted into.
package stdtags

import "markdoll/tag"

// Register adds every standard, always-available tag to reg. It is a
// usage error (see tag.Registry.Register) to call this after reg has
// been sealed.
func Register(reg *tag.Registry) error {
	defs := []*tag.Def{
		formattingDef("em", "em"),
		formattingDef("b", "strong"),
		formattingDef("i", "i"),
		codeDef(),
		linkDef(),
		tableDef(),
		quoteDef(),
		commentDef(),
	}
	for _, d := range defs {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}
