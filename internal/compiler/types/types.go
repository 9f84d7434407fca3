// Package types models the AtomC type value: a base kind, an optional
// struct reference, and an array-shape marker.
package types

// Base is the scalar/aggregate kind a Type is built on.
type Base int

const (
	INT Base = iota
	DOUBLE
	CHAR
	STRUCT
	VOID
)

func (b Base) String() string {
	switch b {
	case INT:
		return "int"
	case DOUBLE:
		return "double"
	case CHAR:
		return "char"
	case STRUCT:
		return "struct"
	case VOID:
		return "void"
	default:
		return "unknown"
	}
}

// Array-shape sentinels for Type.NElements.
const (
	Scalar    = -1 // not an array
	OpenArray = 0  // T[]  — unspecified extent
)

// Type is a value type: copying it copies the shape, not the struct it
// points into. StructRef is only meaningful when Base == STRUCT.
type Type struct {
	Base      Base
	StructRef StructRef // non-nil iff Base == STRUCT and resolved
	NElements int       // Scalar, OpenArray, or >0 for a sized array
}

// StructRef is the minimal view of a struct symbol that the type system
// needs: its name. symbols.Symbol implements it through its StructName
// method; kept as an interface here so this package does not import
// symbols (which imports types for Symbol.Type).
type StructRef interface {
	StructName() string
}

func (t Type) IsArray() bool {
	return t.NElements >= OpenArray
}

func (t Type) String() string {
	s := t.Base.String()
	if t.Base == STRUCT && t.StructRef != nil {
		s = "struct " + t.StructRef.StructName()
	}
	switch {
	case t.NElements == Scalar:
		return s
	case t.NElements == OpenArray:
		return s + "[]"
	default:
		return s
	}
}
