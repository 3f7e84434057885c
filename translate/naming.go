package translate

import (
	"fmt"
	"strings"

	"github.com/mlbind/mlbind/ir"
)

// typeName derives the deterministic identifier for a type from its shape.
// It names hoisted union aliases and every reference to them, so alias
// declaration and use agree bit for bit.
//
// Class types have no structural name; naming one returns ErrUnnameable.
// They are only nameable through their owning declaration's identifier.
func typeName(t ir.Type) (string, error) {
	switch t := t.(type) {
	case *ir.PrimitiveType:
		return primitiveName(t.PrimitiveKind), nil
	case *ir.DictType:
		n, err := typeName(t.Elem)
		if err != nil {
			return "", err
		}
		return "dict_" + n, nil
	case *ir.ArrayType:
		n, err := typeName(t.Elem)
		if err != nil {
			return "", err
		}
		return "array_" + n, nil
	case *ir.TupleType:
		names, err := typeNames(t.Elems)
		if err != nil {
			return "", err
		}
		return "tuple_of_" + strings.Join(names, "_"), nil
	case *ir.ObjectType:
		return "object", nil
	case *ir.ClassType:
		return "", fmt.Errorf("naming a class type: %w", ErrUnnameable)
	case *ir.FunctionType:
		return "func", nil
	case *ir.NamedType:
		return lowerFirst(t.Name), nil
	case *ir.UnionType:
		names, err := typeNames(t.Members)
		if err != nil {
			return "", err
		}
		return strings.Join(names, "_or_"), nil
	case *ir.OptionalType:
		// Optionals are always embedded and never named on their own.
		return "", nil
	default:
		return "", fmt.Errorf("naming unsupported type kind %s: %w", t.Kind(), ErrUnnameable)
	}
}

func typeNames(types []ir.Type) ([]string, error) {
	names := make([]string, len(types))
	for i, t := range types {
		n, err := typeName(t)
		if err != nil {
			return nil, err
		}
		names[i] = n
	}
	return names, nil
}

func primitiveName(k ir.PrimitiveKind) string {
	switch k {
	case ir.PrimitiveNumber:
		return "number"
	case ir.PrimitiveString:
		return "string"
	case ir.PrimitiveBoolean:
		return "bool"
	case ir.PrimitiveUnit:
		return "unit"
	case ir.PrimitiveNull:
		return "null"
	case ir.PrimitiveAny:
		return "any"
	case ir.PrimitiveUnknown:
		return "unknown"
	case ir.PrimitiveRegex:
		return "regex"
	default:
		return "unknown"
	}
}
