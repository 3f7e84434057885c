package translate

import (
	"errors"
	"testing"

	"github.com/mlbind/mlbind/ir"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.Type
		want string
	}{
		{"number", ir.Number(), "number"},
		{"string", ir.String(), "string"},
		{"boolean", ir.Boolean(), "bool"},
		{"unit", ir.Unit(), "unit"},
		{"null", ir.Null(), "null"},
		{"any", ir.Any(), "any"},
		{"unknown", ir.Unknown(), "unknown"},
		{"regex", ir.Regex(), "regex"},
		{"dict", ir.Dict(ir.Number()), "dict_number"},
		{"array", ir.Array(ir.String()), "array_string"},
		{"nested array", ir.Array(ir.Array(ir.Number())), "array_array_number"},
		{"tuple", ir.Tuple(ir.Number(), ir.String()), "tuple_of_number_string"},
		{"object", ir.Object(ir.Prop{Name: "x", Type: ir.Number()}), "object"},
		{"function", ir.Function(nil, ir.Unit()), "func"},
		{"named", ir.Named("Color"), "color"},
		{"union", ir.Union(ir.Number(), ir.String()), "number_or_string"},
		{"union of three", ir.Union(ir.Boolean(), ir.Null(), ir.Named("Foo")), "bool_or_null_or_foo"},
		{"optional", ir.Optional(ir.Number()), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := typeName(tt.typ)
			if err != nil {
				t.Fatalf("typeName: %v", err)
			}
			if got != tt.want {
				t.Errorf("typeName = %q, want %q", got, tt.want)
			}

			// Naming is a pure function of shape: a second call agrees.
			again, err := typeName(tt.typ)
			if err != nil || again != got {
				t.Errorf("typeName not stable: %q then %q (err %v)", got, again, err)
			}
		})
	}
}

func TestTypeNameClassFails(t *testing.T) {
	classes := []ir.Type{
		ir.Class(),
		ir.Class(ir.Prop{Name: "x", Type: ir.Number()}),
	}
	for _, c := range classes {
		if _, err := typeName(c); !errors.Is(err, ErrUnnameable) {
			t.Errorf("typeName(%v) error = %v, want ErrUnnameable", c, err)
		}
	}

	// The error surfaces through composite shapes too.
	if _, err := typeName(ir.Array(ir.Class())); !errors.Is(err, ErrUnnameable) {
		t.Errorf("typeName(array of class) error = %v, want ErrUnnameable", err)
	}
}
