package ir

import (
	"strings"
	"testing"
)

func TestDecodeDeclModule(t *testing.T) {
	data := []byte(`{
		"kind": "module",
		"name": "\"my-mod\"",
		"statements": [
			{"kind": "var", "name": "count", "type": {"kind": "number"}},
			{"kind": "func", "name": "greet", "type": {
				"kind": "function",
				"params": [{"name": "name", "type": {"kind": "string"}}],
				"return": {"kind": "unit"}
			}},
			{"kind": "type", "name": "ID", "type": {"kind": "union", "members": [
				{"kind": "number"}, {"kind": "string"}
			]}},
			{"kind": "class", "name": "Widget", "type": {"kind": "class", "props": [
				{"name": "label", "type": {"kind": "string"}}
			]}},
			{"kind": "exports", "type": {"kind": "named", "name": "Widget"}},
			{"kind": "unknown", "raw": "declare global;"}
		]
	}`)

	decl, err := DecodeDecl(data)
	if err != nil {
		t.Fatalf("DecodeDecl: %v", err)
	}
	mod, ok := decl.(*ModuleDecl)
	if !ok {
		t.Fatalf("decoded %T, want *ModuleDecl", decl)
	}
	if mod.Name != `"my-mod"` {
		t.Errorf("module name = %q", mod.Name)
	}
	if len(mod.Statements) != 6 {
		t.Fatalf("decoded %d statements, want 6", len(mod.Statements))
	}

	wantKinds := []DeclKind{DeclVar, DeclFunc, DeclType, DeclClass, DeclExports, DeclUnknown}
	for i, want := range wantKinds {
		if got := mod.Statements[i].DeclKind(); got != want {
			t.Errorf("statement %d kind = %s, want %s", i, got, want)
		}
	}

	fn := mod.Statements[1].(*FuncDecl).Type.(*FunctionType)
	if len(fn.Params) != 1 || fn.Params[0].Name != "name" {
		t.Errorf("function params = %+v", fn.Params)
	}
	if fn.Return.Kind() != KindPrimitive {
		t.Errorf("function return kind = %s", fn.Return.Kind())
	}

	union := mod.Statements[2].(*TypeDecl).Type.(*UnionType)
	if len(union.Members) != 2 {
		t.Errorf("union members = %d, want 2", len(union.Members))
	}
}

func TestDecodeTypeShapes(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind TypeKind
	}{
		{"dict", `{"kind": "dict", "elem": {"kind": "number"}}`, KindDict},
		{"array", `{"kind": "array", "elem": {"kind": "string"}}`, KindArray},
		{"tuple", `{"kind": "tuple", "elems": [{"kind": "number"}, {"kind": "string"}]}`, KindTuple},
		{"object", `{"kind": "object", "props": [{"name": "x", "type": {"kind": "number"}}]}`, KindObject},
		{"named", `{"kind": "named", "name": "Foo"}`, KindNamed},
		{"optional", `{"kind": "optional", "elem": {"kind": "boolean"}}`, KindOptional},
		{"regex", `{"kind": "regex"}`, KindPrimitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := DecodeType([]byte(tt.json))
			if err != nil {
				t.Fatalf("DecodeType: %v", err)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", typ.Kind(), tt.kind)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantSub string
	}{
		{"bad declaration kind", `{"kind": "import"}`, "unrecognized declaration kind"},
		{"bad type kind", `{"kind": "var", "name": "x", "type": {"kind": "vector"}}`, "unrecognized type kind"},
		{"missing type", `{"kind": "var", "name": "x"}`, "missing type node"},
		{"empty union", `{"kind": "type", "name": "U", "type": {"kind": "union", "members": []}}`, "at least one member"},
		{"not json", `nope`, "invalid declaration document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDecl([]byte(tt.json))
			if err == nil {
				t.Fatal("DecodeDecl succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}
