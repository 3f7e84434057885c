package mlbind

import (
	"context"
	"strings"
	"testing"

	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/sink"
)

func TestGenerateToWritesArtifacts(t *testing.T) {
	decls := []ir.Decl{
		ir.Module(`"my-mod"`, ir.Var("count", ir.Number())),
		ir.Var("ignored", ir.Number()), // unsupported top-level shape
	}

	out := sink.NewMemorySink()
	result, err := GenerateTo(context.Background(), decls, &Config{}, out)
	if err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("wrote %d files, want 1: %+v", len(result.Files), result.Files)
	}
	if result.Files[0].Path != "my_mod.re" {
		t.Errorf("path = %q, want my_mod.re", result.Files[0].Path)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}

	content := string(out.Get("my_mod.re"))
	if !strings.Contains(content, `external count: float = "count";`) {
		t.Errorf("generated content missing binding:\n%s", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("generated file does not end with a newline")
	}
}

func TestGenerateToBareTypeDecl(t *testing.T) {
	out := sink.NewMemorySink()
	result, err := GenerateTo(context.Background(),
		[]ir.Decl{ir.TypeAlias("Color", ir.Number())}, &Config{}, out)
	if err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}
	if len(result.Files) != 1 || result.Files[0].Path != "types.re" {
		t.Fatalf("files = %+v, want a single types.re", result.Files)
	}
	if got := string(out.Get("types.re")); got != "type color = float;\n" {
		t.Errorf("content = %q", got)
	}
}

func TestGenerateToRejectsBadExtension(t *testing.T) {
	out := sink.NewMemorySink()
	_, err := GenerateTo(context.Background(), nil, &Config{Extension: "re"}, out)
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("error = %v, want invalid config", err)
	}
}

func TestGenerateRequiresOutDir(t *testing.T) {
	if _, err := Generate(nil, &Config{}); err == nil {
		t.Fatal("Generate succeeded without OutDir")
	}
}

func TestBuilderFromJSON(t *testing.T) {
	doc := []byte(`{"kind": "module", "name": "\"my-mod\"", "statements": [
		{"kind": "var", "name": "count", "type": {"kind": "number"}}
	]}`)

	out := sink.NewMemorySink()
	result, err := FromJSON(doc).Extension(".rei").ToSink(context.Background(), out)
	if err != nil {
		t.Fatalf("ToSink: %v", err)
	}
	if len(result.Files) != 1 || result.Files[0].Path != "my_mod.rei" {
		t.Fatalf("files = %+v, want a single my_mod.rei", result.Files)
	}
}

func TestBuilderFromJSONDecodeErrorDeferred(t *testing.T) {
	out := sink.NewMemorySink()
	_, err := FromJSON([]byte(`{"kind": "starship"}`)).ToSink(context.Background(), out)
	if err == nil {
		t.Fatal("ToSink succeeded with undecodable document")
	}
}
