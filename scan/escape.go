package scan

import "markdoll/diag"

// DecodeEscapes decodes backslash escapes in text, which begins at byte
// offset `base` within `source`. Recognized sequences are \\, \], \[; an
// unrecognized escape is reported as a markdoll::lang::bad-escape warning
// and the backslash is dropped, emitting the following byte verbatim.
func DecodeEscapes(source string, base int, text []byte, diags *diag.Collector) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b != '\\' {
			out = append(out, b)
			continue
		}
		if i+1 >= len(text) {
			out = append(out, b)
			continue
		}
		next := text[i+1]
		switch next {
		case '\\', ']', '[':
			out = append(out, next)
			i++
		default:
			if diags != nil {
				diags.Add(diag.New(diag.Warning, "markdoll::lang::bad-escape",
					"unrecognized escape sequence",
					diag.Label{Span: Span(source, base+i, base+i+2), Text: "escape not recognized; backslash dropped"}))
			}
			out = append(out, next)
			i++
		}
	}
	return string(out)
}
