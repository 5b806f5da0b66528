package stdtags

import (
	"strings"
	"testing"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/emit"
	"markdoll/tag"
)

// recordingHandle is a minimal tag.Handle that only records diagnostics,
// enough to drive a tag Parser's error paths without a full dispatch.Runtime.
type recordingHandle struct {
	diags []diag.Diagnostic
}

func (h *recordingHandle) Diag(d diag.Diagnostic) { h.diags = append(h.diags, d) }

func (h *recordingHandle) ParseEmbedded(string) *ast.Node { return nil }

func (h *recordingHandle) Target() string { return "" }

func newRegistry(t *testing.T) *tag.Registry {
	t.Helper()
	reg := tag.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatal(err)
	}
	reg.Seal()
	return reg
}

func TestFormattingWrapsChildren(t *testing.T) {
	reg := newRegistry(t)
	e := emit.NewEmitter(reg)
	node := &ast.Node{
		Kind: ast.TagInvocation, Name: "b",
		Children: []*ast.Node{{Kind: ast.Text, Text: "hi"}},
	}
	out, diags, err := e.Emit(&ast.Node{Kind: ast.Document, Children: []*ast.Node{node}}, emit.Options{Target: "html"})
	if err != nil || len(diags) != 0 {
		t.Fatalf("err=%v diags=%v", err, diags)
	}
	if string(out) != "<strong>hi</strong>" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestCodeEmitsPre(t *testing.T) {
	reg := newRegistry(t)
	def, _ := reg.Lookup("code")
	payload, err := def.Parser(tag.Invocation{Arg: "go", Body: "a<b"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	e := emit.NewEmitter(reg)
	node := &ast.Node{Kind: ast.TagInvocation, Name: "code", Payload: payload}
	out, _, err := e.Emit(&ast.Node{Kind: ast.Document, Children: []*ast.Node{node}}, emit.Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "a&lt;b") || !strings.Contains(string(out), "language-go") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestTableParsesPipeRows(t *testing.T) {
	reg := newRegistry(t)
	def, _ := reg.Lookup("table")
	payload, err := def.Parser(tag.Invocation{Body: "a|b\nc|d\n"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := payload.(tablePayload)
	if len(p.rows) != 2 || p.rows[0][0] != "a" || p.rows[1][1] != "d" {
		t.Fatalf("unexpected rows: %+v", p.rows)
	}
}

func TestTableParsesYAMLRowsProp(t *testing.T) {
	reg := newRegistry(t)
	def, _ := reg.Lookup("table")
	payload, err := def.Parser(tag.Invocation{
		Props: []ast.PropToken{{Name: "rows", Value: "[[a,b],[c,d]]"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := payload.(tablePayload)
	if len(p.rows) != 2 || p.rows[0][1] != "b" {
		t.Fatalf("unexpected rows: %+v", p.rows)
	}
}

func TestTableBadYAMLRowsRecordsDiagnostic(t *testing.T) {
	reg := newRegistry(t)
	def, _ := reg.Lookup("table")
	h := &recordingHandle{}
	_, err := def.Parser(tag.Invocation{
		Props: []ast.PropToken{{Name: "rows", Value: "not: [valid, rows"}},
	}, h)
	if err == nil {
		t.Fatal("expected an error for malformed rows= YAML")
	}
	if len(h.diags) != 1 || h.diags[0].Code != "markdoll::tag::prop" {
		t.Fatalf("expected a markdoll::tag::prop diagnostic, got %+v", h.diags)
	}
}

func TestCommentEmitsNothing(t *testing.T) {
	reg := newRegistry(t)
	e := emit.NewEmitter(reg)
	node := &ast.Node{Kind: ast.TagInvocation, Name: "comment", Body: "shh"}
	out, diags, err := e.Emit(&ast.Node{Kind: ast.Document, Children: []*ast.Node{node}}, emit.Options{Target: "html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics for a comment, got %v", diags)
	}
	if len(out) != 0 {
		t.Fatalf("expected no output for a comment, got %q", out)
	}
}
