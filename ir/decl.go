package ir

// DeclKind identifies the category of a declaration.
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclFunc
	DeclType
	DeclClass
	DeclExports // Anonymous default export of a module
	DeclModule  // The only recursive container
	DeclUnknown // Sentinel for unrecognized input
)

// String returns the string representation of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "Var"
	case DeclFunc:
		return "Func"
	case DeclType:
		return "Type"
	case DeclClass:
		return "Class"
	case DeclExports:
		return "Exports"
	case DeclModule:
		return "Module"
	case DeclUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Decl is the sealed interface over all declaration nodes.
type Decl interface {
	// DeclKind returns the declaration kind for type switching.
	DeclKind() DeclKind

	sealedDecl()
}

// VarDecl is a named variable binding.
type VarDecl struct {
	Name string
	Type Type
}

// DeclKind returns DeclVar.
func (d *VarDecl) DeclKind() DeclKind { return DeclVar }

// FuncDecl is a named function binding.
type FuncDecl struct {
	Name string
	Type Type
}

// DeclKind returns DeclFunc.
func (d *FuncDecl) DeclKind() DeclKind { return DeclFunc }

// TypeDecl is a named type alias.
type TypeDecl struct {
	Name string
	Type Type
}

// DeclKind returns DeclType.
func (d *TypeDecl) DeclKind() DeclKind { return DeclType }

// ClassDecl is a named class declaration. Type is always Class-shaped.
type ClassDecl struct {
	Name string
	Type Type
}

// DeclKind returns DeclClass.
func (d *ClassDecl) DeclKind() DeclKind { return DeclClass }

// ExportsDecl is the module's anonymous default export.
type ExportsDecl struct {
	Type Type
}

// DeclKind returns DeclExports.
func (d *ExportsDecl) DeclKind() DeclKind { return DeclExports }

// ModuleDecl is a module with ordered statements.
type ModuleDecl struct {
	Name       string
	Statements []Decl
}

// DeclKind returns DeclModule.
func (d *ModuleDecl) DeclKind() DeclKind { return DeclModule }

// UnknownDecl marks input the parser could not classify.
// Raw optionally carries the unparsed source text for diagnostics.
type UnknownDecl struct {
	Raw string
}

// DeclKind returns DeclUnknown.
func (d *UnknownDecl) DeclKind() DeclKind { return DeclUnknown }

func (*VarDecl) sealedDecl()     {}
func (*FuncDecl) sealedDecl()    {}
func (*TypeDecl) sealedDecl()    {}
func (*ClassDecl) sealedDecl()   {}
func (*ExportsDecl) sealedDecl() {}
func (*ModuleDecl) sealedDecl()  {}
func (*UnknownDecl) sealedDecl() {}

// Var returns a VarDecl.
func Var(name string, typ Type) *VarDecl { return &VarDecl{Name: name, Type: typ} }

// Func returns a FuncDecl.
func Func(name string, typ Type) *FuncDecl { return &FuncDecl{Name: name, Type: typ} }

// TypeAlias returns a TypeDecl.
func TypeAlias(name string, typ Type) *TypeDecl { return &TypeDecl{Name: name, Type: typ} }

// ClassOf returns a ClassDecl.
func ClassOf(name string, typ Type) *ClassDecl { return &ClassDecl{Name: name, Type: typ} }

// Exports returns an ExportsDecl.
func Exports(typ Type) *ExportsDecl { return &ExportsDecl{Type: typ} }

// Module returns a ModuleDecl with ordered statements.
func Module(name string, stmts ...Decl) *ModuleDecl {
	return &ModuleDecl{Name: name, Statements: stmts}
}
