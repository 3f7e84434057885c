package translate

import (
	"fmt"

	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/reason"
)

// unknownStatement marks input the parser could not classify. Emitting it is
// never an error; the marker survives into generated output as a fix site.
const unknownStatement = "/* unknown statement */"

// emitDecl renders one declaration body. moduleID is the normalized
// identifier of the owning module, used to qualify external bindings.
// Type declarations emit nothing here: their whole contribution was already
// produced by the precode pass.
func (tr *Translator) emitDecl(d ir.Decl, moduleID string) (string, error) {
	switch d := d.(type) {
	case *ir.VarDecl:
		return tr.emitBinding(d.Name, d.Type, moduleID)

	case *ir.FuncDecl:
		return tr.emitBinding(d.Name, d.Type, moduleID)

	case *ir.ExportsDecl:
		// The default export binds under the module's own name.
		encoded, err := tr.encodeType(d.Type)
		if err != nil {
			return "", fmt.Errorf("default export: %w", err)
		}
		return reason.VariableDeclaration(moduleID, moduleID, encoded, true), nil

	case *ir.ModuleDecl:
		childID := normalizeIdent(d.Name)
		children := make([]string, 0, len(d.Statements))
		for _, stmt := range d.Statements {
			child, err := tr.emitDecl(stmt, childID)
			if err != nil {
				return "", fmt.Errorf("module %q: %w", d.Name, err)
			}
			children = append(children, child)
		}
		return reason.ModuleDeclaration(d.Name, children), nil

	case *ir.TypeDecl:
		return "", nil

	case *ir.ClassDecl:
		name := lowerFirst(d.Name)
		ctor, err := tr.constructorType(d.Name, d.Type)
		if err != nil {
			return "", err
		}
		classType, err := tr.encodeType(d.Type)
		if err != nil {
			return "", fmt.Errorf("class %q: %w", d.Name, err)
		}
		return reason.ClassDeclaration(name, d.Name, moduleID, classType, ctor), nil

	case *ir.UnknownDecl:
		return unknownStatement, nil

	default:
		return unknownStatement, nil
	}
}

func (tr *Translator) emitBinding(name string, t ir.Type, moduleID string) (string, error) {
	encoded, err := tr.encodeType(t)
	if err != nil {
		return "", fmt.Errorf("binding %q: %w", name, err)
	}
	return reason.VariableDeclaration(normalizeIdent(name), moduleID, encoded, false), nil
}
