package translate

import (
	"fmt"
	"strings"

	"github.com/mlbind/mlbind/ir"
)

// declPrecode collects the hoisted alias declarations a declaration's bodies
// reference by name, in traversal order. The caller deduplicates the result
// keeping first occurrences.
func (tr *Translator) declPrecode(d ir.Decl) ([]string, error) {
	switch d := d.(type) {
	case *ir.VarDecl:
		return tr.typePrecode(d.Type)
	case *ir.FuncDecl:
		return tr.typePrecode(d.Type)
	case *ir.ClassDecl:
		return tr.typePrecode(d.Type)
	case *ir.ExportsDecl:
		return tr.typePrecode(d.Type)
	case *ir.TypeDecl:
		// A declared alias contributes its own definition ahead of any
		// aliases nested inside its underlying type.
		encoded, err := tr.encodeType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("type alias %q: %w", d.Name, err)
		}
		own := fmt.Sprintf("type %s = %s;", lowerFirst(d.Name), encoded)
		nested, err := tr.typePrecode(d.Type)
		if err != nil {
			return nil, err
		}
		return append([]string{own}, nested...), nil
	case *ir.ModuleDecl:
		var out []string
		for _, stmt := range d.Statements {
			pre, err := tr.declPrecode(stmt)
			if err != nil {
				return nil, err
			}
			out = append(out, pre...)
		}
		return out, nil
	case *ir.UnknownDecl:
		return nil, nil
	default:
		return nil, nil
	}
}

// typePrecode walks a type for embedded unions, emitting one alias per union
// shape encountered.
//
// Function walks visit parameter types in declaration order but not the
// return type: a union appearing only in return position is never hoisted.
// That asymmetry is preserved deliberately and can be disabled with the
// HoistReturnUnions option.
func (tr *Translator) typePrecode(t ir.Type) ([]string, error) {
	switch t := t.(type) {
	case *ir.UnionType:
		alias, err := tr.unionAlias(t)
		if err != nil {
			return nil, err
		}
		return []string{alias}, nil

	case *ir.FunctionType:
		var out []string
		for _, p := range t.Params {
			pre, err := tr.typePrecode(p.Type)
			if err != nil {
				return nil, err
			}
			out = append(out, pre...)
		}
		if tr.opts.HoistReturnUnions {
			pre, err := tr.typePrecode(t.Return)
			if err != nil {
				return nil, err
			}
			out = append(out, pre...)
		}
		return out, nil

	case *ir.ObjectType:
		return tr.propsPrecode(t.Props)

	case *ir.ClassType:
		return tr.propsPrecode(t.Props)

	case *ir.OptionalType:
		return tr.typePrecode(t.Elem)

	case *ir.ArrayType:
		return tr.typePrecode(t.Elem)

	case *ir.DictType:
		return tr.typePrecode(t.Elem)

	default:
		return nil, nil
	}
}

func (tr *Translator) propsPrecode(props []ir.Prop) ([]string, error) {
	var out []string
	for _, p := range props {
		pre, err := tr.typePrecode(p.Type)
		if err != nil {
			return nil, err
		}
		out = append(out, pre...)
	}
	return out, nil
}

// unionAlias renders the hoisted tagged-choice alias for a union. Each member
// becomes one variant named by capitalizing the member's shape name and
// carrying the encoded member as payload.
func (tr *Translator) unionAlias(u *ir.UnionType) (string, error) {
	name, err := typeName(u)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("type ")
	b.WriteString(name)
	b.WriteString(" =")
	for _, member := range u.Members {
		memberName, err := typeName(member)
		if err != nil {
			return "", err
		}
		encoded, err := tr.encodeType(member)
		if err != nil {
			return "", err
		}
		b.WriteString("\n  | ")
		b.WriteString(capitalize(memberName))
		b.WriteString("(")
		b.WriteString(encoded)
		b.WriteString(")")
	}
	b.WriteString(";")
	return b.String(), nil
}
