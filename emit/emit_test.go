package emit

import (
	"strings"
	"testing"

	"markdoll/ast"
	"markdoll/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// assertHTMLEqual reports a readable diff on mismatch, in the style of
// libdiff.DiffString built on the same library.
func assertHTMLEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("rendered HTML mismatch (want -> got):\n%s", dmp.DiffPrettyText(diffs))
}

func TestEmitParagraphAndText(t *testing.T) {
	reg := tag.NewRegistry()
	reg.Seal()
	e := NewEmitter(reg)

	doc := &ast.Node{Kind: ast.Document, Children: []*ast.Node{
		{Kind: ast.Paragraph, Children: []*ast.Node{
			{Kind: ast.Text, Text: "hi <there>"},
		}},
	}}

	out, diags, err := e.Emit(doc, Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !strings.Contains(string(out), "<p>hi &lt;there&gt;</p>") {
		t.Fatalf("unexpected output: %s", out)
	}
	assertHTMLEqual(t, "<p>hi &lt;there&gt;</p>", string(out))
}

func TestEmitUnknownTagIsDiagnostic(t *testing.T) {
	reg := tag.NewRegistry()
	reg.Seal()
	e := NewEmitter(reg)

	doc := &ast.Node{Kind: ast.Document, Children: []*ast.Node{
		{Kind: ast.TagInvocation, Name: "mystery"},
	}}

	_, diags, err := e.Emit(doc, Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Code != "markdoll::tag::unknown" {
		t.Fatalf("expected an unknown-tag diagnostic, got %v", diags)
	}
}

func TestEmitMissingTargetEmitterWarns(t *testing.T) {
	reg := tag.NewRegistry()
	if err := reg.Register(&tag.Def{Name: "x", Emitters: map[string]tag.EmitFunc{}}); err != nil {
		t.Fatal(err)
	}
	reg.Seal()
	e := NewEmitter(reg)

	doc := &ast.Node{Kind: ast.Document, Children: []*ast.Node{
		{Kind: ast.TagInvocation, Name: "x"},
	}}
	_, diags, err := e.Emit(doc, Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Code != "markdoll::emit::no-target" {
		t.Fatalf("expected a no-target diagnostic, got %v", diags)
	}
}

func TestEmitEmptyTargetIsError(t *testing.T) {
	reg := tag.NewRegistry()
	reg.Seal()
	e := NewEmitter(reg)
	if _, _, err := e.Emit(&ast.Node{Kind: ast.Document}, Options{}); err == nil {
		t.Fatal("expected an error for an empty target")
	}
}
