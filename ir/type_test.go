package ir

import "testing"

func TestTypeKindString(t *testing.T) {
	tests := []struct {
		kind TypeKind
		want string
	}{
		{KindPrimitive, "Primitive"},
		{KindDict, "Dict"},
		{KindArray, "Array"},
		{KindTuple, "Tuple"},
		{KindObject, "Object"},
		{KindClass, "Class"},
		{KindFunction, "Function"},
		{KindNamed, "Named"},
		{KindUnion, "Union"},
		{KindOptional, "Optional"},
		{TypeKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TypeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstructorsReportKinds(t *testing.T) {
	tests := []struct {
		typ  Type
		want TypeKind
	}{
		{Number(), KindPrimitive},
		{Dict(Number()), KindDict},
		{Array(Number()), KindArray},
		{Tuple(Number(), String()), KindTuple},
		{Object(), KindObject},
		{Class(), KindClass},
		{Function(nil, Unit()), KindFunction},
		{Named("X"), KindNamed},
		{Union(Number()), KindUnion},
		{Optional(Number()), KindOptional},
	}
	for _, tt := range tests {
		if got := tt.typ.Kind(); got != tt.want {
			t.Errorf("Kind() = %s, want %s", got, tt.want)
		}
	}
}

func TestDeclKinds(t *testing.T) {
	tests := []struct {
		decl Decl
		want DeclKind
	}{
		{Var("x", Number()), DeclVar},
		{Func("f", Function(nil, Unit())), DeclFunc},
		{TypeAlias("T", Number()), DeclType},
		{ClassOf("C", Class()), DeclClass},
		{Exports(Number()), DeclExports},
		{Module("m"), DeclModule},
		{&UnknownDecl{}, DeclUnknown},
	}
	for _, tt := range tests {
		if got := tt.decl.DeclKind(); got != tt.want {
			t.Errorf("DeclKind() = %s, want %s", got, tt.want)
		}
	}
}
