package dispatch

import (
	"testing"

	"markdoll/ast"
	"markdoll/diag"
	"markdoll/parse"
	"markdoll/tag"
)

func newTestRegistry(t *testing.T) *tag.Registry {
	t.Helper()
	reg := tag.NewRegistry()
	if err := reg.Register(&tag.Def{
		Name:    "b",
		Arg:     tag.ArgNone,
		Content: tag.ContentEmbedded,
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(&tag.Def{
		Name:    "code",
		Arg:     tag.ArgOptionalString,
		Content: tag.ContentRawInline,
	}); err != nil {
		t.Fatal(err)
	}
	reg.Seal()
	return reg
}

func TestDispatchUnknownTag(t *testing.T) {
	reg := newTestRegistry(t)
	diags := &diag.Collector{}
	rt := NewRuntime(reg, diags, "t.md", "")
	node := rt.Dispatch(parse.RawInvocation{Name: "nope"})
	if node.Kind != ast.Error {
		t.Fatalf("expected an error node, got %v", node.Kind)
	}
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for the unknown tag")
	}
}

func TestDispatchEmbeddedContentReparsed(t *testing.T) {
	reg := newTestRegistry(t)
	diags := &diag.Collector{}
	rt := NewRuntime(reg, diags, "t.md", "")
	node := rt.Dispatch(parse.RawInvocation{
		Name:    "b",
		Content: ast.ContentInline,
		Body:    "hello",
	})
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	if len(node.Children) != 1 || node.Children[0].Kind != ast.Document {
		t.Fatalf("expected the embedded body to be reparsed as a Document, got %+v", node.Children)
	}
}

func TestDispatchWarnsOnUnknownFlag(t *testing.T) {
	reg := newTestRegistry(t)
	diags := &diag.Collector{}
	rt := NewRuntime(reg, diags, "t.md", "")
	node := rt.Dispatch(parse.RawInvocation{
		Name:    "code",
		Content: ast.ContentInline,
		Flags:   []ast.FlagToken{{Name: "bogus"}},
	})
	if node.Kind == ast.Error {
		t.Fatalf("unknown flag must not fail dispatch, got an error node")
	}
	if diags.HasErrors() {
		t.Fatalf("unknown flag must warn, not error: %v", diags.Diagnostics())
	}
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Code == "markdoll::tag::flag" && d.Severity == diag.Warning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a markdoll::tag::flag warning, got %v", diags.Diagnostics())
	}
}

func TestDispatchRejectsWrongContentKind(t *testing.T) {
	reg := newTestRegistry(t)
	diags := &diag.Collector{}
	rt := NewRuntime(reg, diags, "t.md", "")
	node := rt.Dispatch(parse.RawInvocation{
		Name:    "code",
		Content: ast.ContentBlock,
	})
	if node.Kind != ast.Error {
		t.Fatalf("expected an error node: code requires inline content, got block")
	}
}
