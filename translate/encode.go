package translate

import (
	"fmt"

	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/reason"
)

// encodeType renders a type into Reason type syntax. Structural layout
// (tuples, objects, functions) is delegated to the reason package.
func (tr *Translator) encodeType(t ir.Type) (string, error) {
	switch t := t.(type) {
	case *ir.PrimitiveType:
		return encodePrimitive(t.PrimitiveKind), nil

	case *ir.DictType:
		elem, err := tr.encodeType(t.Elem)
		if err != nil {
			return "", err
		}
		return "Js.Dict.t(" + elem + ")", nil

	case *ir.ArrayType:
		elem, err := tr.encodeType(t.Elem)
		if err != nil {
			return "", err
		}
		return "array(" + elem + ")", nil

	case *ir.TupleType:
		members := make([]string, len(t.Elems))
		for i, elem := range t.Elems {
			m, err := tr.encodeType(elem)
			if err != nil {
				return "", err
			}
			members[i] = m
		}
		return reason.TupleType(members), nil

	case *ir.ObjectType:
		fields, err := tr.encodeFields(t.Props, false)
		if err != nil {
			return "", err
		}
		return reason.ObjectType(fields), nil

	case *ir.ClassType:
		fields, err := tr.encodeFields(t.Props, true)
		if err != nil {
			return "", err
		}
		return reason.ObjectType(fields), nil

	case *ir.FunctionType:
		return tr.encodeFunction(t)

	case *ir.NamedType:
		return lowerFirst(t.Name), nil

	case *ir.UnionType:
		// Only a reference: the alias definition is hoisted by precode.
		return typeName(t)

	case *ir.OptionalType:
		elem, err := tr.encodeType(t.Elem)
		if err != nil {
			return "", err
		}
		return elem + "=?", nil

	default:
		return "", fmt.Errorf("encoding unsupported type kind %s", t.Kind())
	}
}

// encodeFields encodes object or class props. For classes the prop literally
// named "constructor" is excluded (it belongs to the constructor binding) and
// function-typed props carry the foreign method calling convention.
func (tr *Translator) encodeFields(props []ir.Prop, class bool) ([]reason.Field, error) {
	fields := make([]reason.Field, 0, len(props))
	for _, p := range props {
		if class && p.Name == "constructor" {
			continue
		}
		typ, err := tr.encodeType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", p.Name, err)
		}
		if class {
			if _, isFunc := p.Type.(*ir.FunctionType); isFunc {
				typ = "[@bs.meth] " + typ
			}
		}
		fields = append(fields, reason.Field{Name: p.Name, Type: typ})
	}
	return fields, nil
}

func (tr *Translator) encodeFunction(t *ir.FunctionType) (string, error) {
	params := make([]reason.ParamText, len(t.Params))
	hasOptional := false
	for i, p := range t.Params {
		typ, err := tr.encodeType(p.Type)
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		if _, ok := p.Type.(*ir.OptionalType); ok {
			hasOptional = true
		}
		params[i] = reason.ParamText{Name: p.Name, Type: typ}
	}
	ret, err := tr.encodeType(t.Return)
	if err != nil {
		return "", fmt.Errorf("return type: %w", err)
	}
	return reason.FunctionType(params, hasOptional, ret), nil
}

func encodePrimitive(k ir.PrimitiveKind) string {
	switch k {
	case ir.PrimitiveNumber:
		return "float"
	case ir.PrimitiveString:
		return "string"
	case ir.PrimitiveBoolean:
		return "bool"
	case ir.PrimitiveUnit:
		return "unit"
	case ir.PrimitiveNull:
		return "Js.null(unit)"
	case ir.PrimitiveAny:
		return "'a"
	case ir.PrimitiveUnknown:
		// Marker for a manual-fix site, deliberately not valid syntax.
		return "$$unknown$$"
	case ir.PrimitiveRegex:
		return "Js.Re.t"
	default:
		return "$$unknown$$"
	}
}
