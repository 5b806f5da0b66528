package markdoll

import (
	"strings"
	"testing"

	"markdoll/emit"
)

func TestEndToEndParseAndEmit(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	src := "& Title\n\tHello [b:world]!\n\n\t-\titem one\n\t-\titem two\n"
	res := e.ParseDocument("doc.md", []byte(src), "html")
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	out, diags, err := e.Emit(res.Doc, emit.Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected emit diagnostics: %v", diags)
	}
	rendered := string(out)
	for _, want := range []string{"<h1>Title</h1>", "<strong>world</strong>", "<ul>", "<li>"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected output to contain %q, got: %s", want, rendered)
		}
	}
}

func TestUnknownTagProducesDiagnosticNotPanic(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	res := e.ParseDocument("doc.md", []byte("[nope:x]\n"), "html")
	if !res.HasErrors() {
		t.Fatal("expected a diagnostic for an unknown tag")
	}
}
