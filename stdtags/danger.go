//go:build danger

package stdtags

import (
	"fmt"

	"markdoll/diag"
	"markdoll/emit"
	"markdoll/tag"

	"github.com/expr-lang/expr"
)

// RegisterDanger adds the danger-zone tag set, only compiled in under the
// "danger" build tag (cmd/markdoll's --danger flag is accepted in every
// build but only calls this in that same build). It exists solely for danger.eval,
// grounded in original_source/src/ext/danger.rs: the tag's argument is
// compiled and run as an expr-lang expression, with the tag's properties
// as the expression's variable environment.
func RegisterDanger(reg *tag.Registry) error {
	return reg.Register(dangerEvalDef())
}

func dangerEvalDef() *tag.Def {
	return &tag.Def{
		Name:    "danger.eval",
		Arg:     tag.ArgRequiredString,
		Content: tag.ContentRawInline,
		Parser: func(inv tag.Invocation, h tag.Handle) (any, error) {
			env := map[string]any{}
			for _, p := range inv.Props {
				env[p.Name] = p.Value
			}
			env["body"] = inv.Body
			program, err := expr.Compile(inv.Arg, expr.Env(env))
			if err != nil {
				msg := fmt.Sprintf("danger.eval: compiling %q: %s", inv.Arg, err)
				h.Diag(diag.New(diag.Error, "markdoll::tag::arg", msg,
					diag.Label{Span: inv.Span, Text: "expression"}))
				return nil, fmt.Errorf("%s", msg)
			}
			result, err := expr.Run(program, env)
			if err != nil {
				msg := fmt.Sprintf("danger.eval: running %q: %s", inv.Arg, err)
				h.Diag(diag.New(diag.Error, "markdoll::tag::arg", msg,
					diag.Label{Span: inv.Span, Text: "expression"}))
				return nil, fmt.Errorf("%s", msg)
			}
			return fmt.Sprint(result), nil
		},
		Emitters: map[string]tag.EmitFunc{
			"html": func(payload any, ctx tag.EmitContext) error {
				ctx.WriteString(emit.EscapeHTML(payload.(string)))
				return nil
			},
		},
	}
}
