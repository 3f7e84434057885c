// Package ir defines the declaration and type trees produced by the upstream
// declaration parser. These are language-neutral descriptions of a JavaScript
// module's public surface that the translate package turns into binding source.
//
// All nodes are immutable once built and are consumed read-only.
package ir

// TypeKind identifies the category of a type node.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindDict                // String-keyed map of a value type
	KindArray               // Homogeneous ordered collection
	KindTuple               // Fixed-length heterogeneous sequence
	KindObject              // Structural record with ordered named fields
	KindClass               // Like Object, but a "constructor" field is special
	KindFunction            // Function with named parameters and a return type
	KindNamed               // Reference to a declared type by identifier
	KindUnion               // Non-empty, order-significant union of types
	KindOptional            // Optional function parameter wrapper
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindDict:
		return "Dict"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindObject:
		return "Object"
	case KindClass:
		return "Class"
	case KindFunction:
		return "Function"
	case KindNamed:
		return "Named"
	case KindUnion:
		return "Union"
	case KindOptional:
		return "Optional"
	default:
		return "Unknown"
	}
}

// Type is the sealed interface over all type nodes.
type Type interface {
	// Kind returns the type kind for type switching.
	Kind() TypeKind

	// Ensure only types in this package can implement Type.
	sealed()
}

// PrimitiveKind identifies a built-in primitive type.
type PrimitiveKind int

const (
	PrimitiveNumber PrimitiveKind = iota
	PrimitiveString
	PrimitiveBoolean
	PrimitiveUnit
	PrimitiveNull
	PrimitiveAny     // Unconstrained type
	PrimitiveUnknown // Untranslatable input; encodes to a manual-fix marker
	PrimitiveRegex
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveNumber:
		return "Number"
	case PrimitiveString:
		return "String"
	case PrimitiveBoolean:
		return "Boolean"
	case PrimitiveUnit:
		return "Unit"
	case PrimitiveNull:
		return "Null"
	case PrimitiveAny:
		return "Any"
	case PrimitiveUnknown:
		return "Unknown"
	case PrimitiveRegex:
		return "Regex"
	default:
		return "Invalid"
	}
}

// PrimitiveType represents a built-in primitive type.
type PrimitiveType struct {
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (t *PrimitiveType) Kind() TypeKind { return KindPrimitive }

// DictType represents a string-keyed map of Elem values.
type DictType struct {
	Elem Type
}

// Kind returns KindDict.
func (t *DictType) Kind() TypeKind { return KindDict }

// ArrayType represents an ordered collection of Elem values.
type ArrayType struct {
	Elem Type
}

// Kind returns KindArray.
func (t *ArrayType) Kind() TypeKind { return KindArray }

// TupleType represents a fixed-length heterogeneous sequence.
type TupleType struct {
	Elems []Type
}

// Kind returns KindTuple.
func (t *TupleType) Kind() TypeKind { return KindTuple }

// Prop is a named field of an Object or Class type.
// Field order is declaration order and affects generated layout.
type Prop struct {
	Name string
	Type Type
}

// ObjectType represents an anonymous structural record type.
type ObjectType struct {
	Props []Prop
}

// Kind returns KindObject.
func (t *ObjectType) Kind() TypeKind { return KindObject }

// ClassType represents a class body. A prop literally named "constructor"
// carries the constructor's function type; it must be Function-shaped, but
// this is not validated here.
type ClassType struct {
	Props []Prop
}

// Kind returns KindClass.
func (t *ClassType) Kind() TypeKind { return KindClass }

// Param is a named function parameter.
type Param struct {
	Name string
	Type Type
}

// FunctionType represents a function with ordered parameters.
type FunctionType struct {
	Params []Param
	Return Type
}

// Kind returns KindFunction.
func (t *FunctionType) Kind() TypeKind { return KindFunction }

// NamedType is a reference to a declared type by identifier.
type NamedType struct {
	Name string
}

// Kind returns KindNamed.
func (t *NamedType) Kind() TypeKind { return KindNamed }

// UnionType represents a union of types. Members must be non-empty; member
// order defines generated variant order and naming.
type UnionType struct {
	Members []Type
}

// Kind returns KindUnion.
func (t *UnionType) Kind() TypeKind { return KindUnion }

// OptionalType marks a function parameter type as optional. It is only
// meaningful as a parameter type and has no name of its own.
type OptionalType struct {
	Elem Type
}

// Kind returns KindOptional.
func (t *OptionalType) Kind() TypeKind { return KindOptional }

func (*PrimitiveType) sealed() {}
func (*DictType) sealed()      {}
func (*ArrayType) sealed()     {}
func (*TupleType) sealed()     {}
func (*ObjectType) sealed()    {}
func (*ClassType) sealed()     {}
func (*FunctionType) sealed()  {}
func (*NamedType) sealed()     {}
func (*UnionType) sealed()     {}
func (*OptionalType) sealed()  {}

// Convenience constructors for common nodes.

// Number returns a PrimitiveType for numbers.
func Number() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveNumber} }

// String returns a PrimitiveType for strings.
func String() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveString} }

// Boolean returns a PrimitiveType for booleans.
func Boolean() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveBoolean} }

// Unit returns a PrimitiveType for the unit type.
func Unit() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveUnit} }

// Null returns a PrimitiveType for null.
func Null() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveNull} }

// Any returns a PrimitiveType for the unconstrained type.
func Any() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveAny} }

// Unknown returns a PrimitiveType for untranslatable input.
func Unknown() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveUnknown} }

// Regex returns a PrimitiveType for regular expressions.
func Regex() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveRegex} }

// Dict returns a DictType with the given value type.
func Dict(elem Type) *DictType { return &DictType{Elem: elem} }

// Array returns an ArrayType with the given element type.
func Array(elem Type) *ArrayType { return &ArrayType{Elem: elem} }

// Tuple returns a TupleType over the given member types.
func Tuple(elems ...Type) *TupleType { return &TupleType{Elems: elems} }

// Object returns an ObjectType over the given props.
func Object(props ...Prop) *ObjectType { return &ObjectType{Props: props} }

// Class returns a ClassType over the given props.
func Class(props ...Prop) *ClassType { return &ClassType{Props: props} }

// Function returns a FunctionType with the given parameters and return type.
func Function(params []Param, ret Type) *FunctionType {
	return &FunctionType{Params: params, Return: ret}
}

// Named returns a NamedType referencing the given identifier.
func Named(name string) *NamedType { return &NamedType{Name: name} }

// Union returns a UnionType over the given members.
func Union(members ...Type) *UnionType { return &UnionType{Members: members} }

// Optional returns an OptionalType wrapping the given parameter type.
func Optional(elem Type) *OptionalType { return &OptionalType{Elem: elem} }
