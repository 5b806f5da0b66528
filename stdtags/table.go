package stdtags

import (
	"fmt"
	"strings"

	"markdoll/diag"
	"markdoll/emit"
	"markdoll/tag"

	"gopkg.in/yaml.v3"
)

type tablePayload struct {
	rows [][]string
}

// tableDef is grounded in original_source/src/ext/table.rs: a custom
// content kind with its own row grammar. Content is either '|'-delimited
// cells, one row per body line, or a rows=[[a,b],[c,d]] property decoded
// as a compact YAML flow sequence — the same job cmd/markdoll's
// goccy/go-yaml does for process config, done here at dispatch time for
// document content instead.
func tableDef() *tag.Def {
	return &tag.Def{
		Name:    "table",
		Arg:     tag.ArgNone,
		Content: tag.ContentCustom,
		Props: map[string]tag.PropDef{
			"rows": {Kind: tag.PropString},
		},
		Parser: func(inv tag.Invocation, h tag.Handle) (any, error) {
			for _, p := range inv.Props {
				if p.Name != "rows" {
					continue
				}
				var rows [][]string
				if err := yaml.Unmarshal([]byte(p.Value), &rows); err != nil {
					msg := fmt.Sprintf("table: invalid rows= YAML: %s", err)
					h.Diag(diag.New(diag.Error, "markdoll::tag::prop", msg,
						diag.Label{Span: inv.Span, Text: "rows="}))
					return nil, fmt.Errorf("%s", msg)
				}
				return tablePayload{rows: rows}, nil
			}
			return tablePayload{rows: parsePipeRows(inv.Body)}, nil
		},
		Emitters: map[string]tag.EmitFunc{
			"html": func(payload any, ctx tag.EmitContext) error {
				p := payload.(tablePayload)
				ctx.WriteString("<table>\n")
				for _, row := range p.rows {
					ctx.WriteString("<tr>")
					for _, cell := range row {
						fmt.Fprintf(ctx, "<td>%s</td>", emit.EscapeHTML(cell))
					}
					ctx.WriteString("</tr>\n")
				}
				ctx.WriteString("</table>")
				return nil
			},
		},
	}
}

func parsePipeRows(body string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.Trim(line, "|")
		var cells []string
		for _, c := range strings.Split(line, "|") {
			cells = append(cells, strings.TrimSpace(c))
		}
		rows = append(rows, cells)
	}
	return rows
}
