// Package symbols implements the Symbol/Scope Manager: a flat, ordered
// symbol table with depth-tagged entries and marker-based scope teardown.
//
// The table is an append-only slab. A scope is never a distinct object —
// entering one just remembers the current tail length (a Marker); leaving
// it truncates the slab back to that length. Handles into the slab
// (pointers returned by Add) stay valid until a DeleteAfter call truncates
// past them, per the portability note in the spec this package implements.
package symbols

import "github.com/EmanuelBits/atomc/internal/compiler/types"

// Class is the kind of declaration a Symbol records.
type Class int

const (
	VAR Class = iota
	FUNC
	EXTFUNC
	STRUCT
)

func (c Class) String() string {
	switch c {
	case VAR:
		return "VAR"
	case FUNC:
		return "FUNC"
	case EXTFUNC:
		return "EXTFUNC"
	case STRUCT:
		return "STRUCT"
	default:
		return "UNKNOWN"
	}
}

// Mem is the storage class of a Symbol. Only meaningful for VAR/FUNC/EXTFUNC.
type Mem int

const (
	GLOBAL Mem = iota
	ARG
	LOCAL
)

func (m Mem) String() string {
	switch m {
	case GLOBAL:
		return "GLOBAL"
	case ARG:
		return "ARG"
	case LOCAL:
		return "LOCAL"
	default:
		return "UNKNOWN"
	}
}

// Symbol is one entry in the table, or one member/argument hanging off a
// STRUCT/FUNC symbol. Args is populated only while parsing a function
// header (Cls == FUNC); Members only while parsing a struct body
// (Cls == STRUCT). Those slices are owned by the Symbol, not by the Table.
type Symbol struct {
	Name  string
	Cls   Class
	Mem   Mem
	Type  types.Type
	Depth int

	Args    []*Symbol // only for Cls == FUNC
	Members []*Symbol // only for Cls == STRUCT
}

// StructName implements types.StructRef so a Type can point back at the
// struct Symbol it was resolved against without an import cycle.
func (s *Symbol) StructName() string { return s.Name }

// FindMember scans a struct's member list for name, newest-first — mirrors
// Table.Find but over a private slice rather than the shared table.
func (s *Symbol) FindMember(name string) *Symbol {
	for i := len(s.Members) - 1; i >= 0; i-- {
		if s.Members[i].Name == name {
			return s.Members[i]
		}
	}
	return nil
}

// Marker is an opaque handle to a point in the table's history, used to
// truncate back to on scope exit. The zero Marker denotes the empty table.
type Marker int

// Table is the single owner of symbol storage for one compilation.
type Table struct {
	symbols []*Symbol
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Add appends a new symbol and returns it. It performs no uniqueness
// check — enforcing redefinition policy is the parser's job (spec 4.3/4.4).
func (t *Table) Add(name string, cls Class, depth int) *Symbol {
	sym := &Symbol{Name: name, Cls: cls, Depth: depth, Type: types.Type{NElements: types.Scalar}}
	t.symbols = append(t.symbols, sym)
	return sym
}

// Find scans newest-to-oldest and returns the first symbol named name, or
// nil. This realizes shadowing: an inner redeclaration is found before an
// outer one until the inner scope is torn down.
func (t *Table) Find(name string) *Symbol {
	for i := len(t.symbols) - 1; i >= 0; i-- {
		if t.symbols[i].Name == name {
			return t.symbols[i]
		}
	}
	return nil
}

// FindInDepth returns the symbol named name whose Depth equals depth, if
// one exists at exactly that depth — used by redefinition checks, which
// care about same-depth collisions and not shadowing from an outer depth.
func (t *Table) FindInDepth(name string, depth int) *Symbol {
	for i := len(t.symbols) - 1; i >= 0; i-- {
		if t.symbols[i].Depth < depth {
			break
		}
		if t.symbols[i].Depth == depth && t.symbols[i].Name == name {
			return t.symbols[i]
		}
	}
	return nil
}

// Mark returns a handle to the table's current tail, to later DeleteAfter.
func (t *Table) Mark() Marker {
	return Marker(len(t.symbols))
}

// DeleteAfter truncates the table back to marker, discarding every symbol
// added since. Symbol handles held by callers for anything at or before
// marker remain valid.
func (t *Table) DeleteAfter(marker Marker) {
	if int(marker) < len(t.symbols) {
		t.symbols = t.symbols[:marker]
	}
}

// Last returns the most recently added symbol, or nil if the table is
// empty. Equivalent to resolving the symbol at the position Mark() would
// return.
func (t *Table) Last() *Symbol {
	if len(t.symbols) == 0 {
		return nil
	}
	return t.symbols[len(t.symbols)-1]
}

// All returns the table's symbols in insertion order. The returned slice
// is owned by the table; callers must not mutate it.
func (t *Table) All() []*Symbol {
	return t.symbols
}
