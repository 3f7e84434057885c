// Package reason renders BuckleScript-flavoured Reason binding syntax.
// It provides the layout templates consumed by the translate package: each
// function takes already-encoded type text and returns final source text.
// No type knowledge lives here; this package only arranges strings.
package reason

import (
	"fmt"
	"strings"
)

// VariableDeclaration renders an external value binding.
//
// A default-export binding binds the module itself:
//
//	[@bs.module] external myMod: t = "my-mod";
//
// A named binding qualifies the source module:
//
//	[@bs.module "my-mod"] external count: float = "count";
func VariableDeclaration(name, moduleID, typ string, defaultExport bool) string {
	if defaultExport {
		return fmt.Sprintf("[@bs.module] external %s: %s = %q;", name, typ, moduleID)
	}
	return fmt.Sprintf("[@bs.module %q] external %s: %s = %q;", moduleID, name, typ, name)
}

// ModuleDeclaration renders a module wrapper around already-rendered child
// declarations, indenting each child line by one level.
func ModuleDeclaration(name string, children []string) string {
	var b strings.Builder
	b.WriteString("module ")
	b.WriteString(name)
	b.WriteString(" = {\n")
	for _, child := range children {
		b.WriteString(indent(child, "  "))
		b.WriteString("\n")
	}
	b.WriteString("};")
	return b.String()
}

// ClassDeclaration renders a class as a structural type plus a [@bs.new]
// constructor binding. The constructor external is named after the exported
// class name so multiple classes in one module do not collide.
func ClassDeclaration(name, exportedName, moduleID, classType, ctorType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s = %s;\n", name, classType)
	fmt.Fprintf(&b, "[@bs.new] [@bs.module %q] external new%s: %s = %q;",
		moduleID, exportedName, ctorType, exportedName)
	return b.String()
}

// Field is one already-encoded field of a structural object type.
type Field struct {
	Name string
	Type string
}

// ObjectType renders an anonymous structural record type.
func ObjectType(fields []Field) string {
	if len(fields) == 0 {
		return "Js.t({.})"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%q: %s", f.Name, f.Type)
	}
	return "Js.t({. " + strings.Join(parts, ", ") + "})"
}

// TupleType renders a fixed-arity product type over encoded member types.
func TupleType(members []string) string {
	return "(" + strings.Join(members, ", ") + ")"
}

// ParamText is one already-encoded function parameter. An optional parameter
// arrives with the optional marker already suffixed to its type text.
type ParamText struct {
	Name string
	Type string
}

// FunctionType renders a function type. When any parameter is optional the
// labelled calling form is used, with a trailing unit so application can be
// completed; otherwise parameters are positional.
func FunctionType(params []ParamText, hasOptional bool, ret string) string {
	if len(params) == 0 {
		return "unit => " + ret
	}
	parts := make([]string, 0, len(params)+1)
	if hasOptional {
		for _, p := range params {
			parts = append(parts, fmt.Sprintf("~%s: %s", p.Name, p.Type))
		}
		parts = append(parts, "unit")
	} else {
		for _, p := range params {
			parts = append(parts, p.Type)
		}
	}
	return "(" + strings.Join(parts, ", ") + ") => " + ret
}

// indent prefixes every non-empty line of s with the given prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
