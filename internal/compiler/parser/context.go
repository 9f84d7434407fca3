package parser

import "github.com/EmanuelBits/atomc/internal/compiler/symbols"

// Context is the Semantic Context of spec section 3: the symbol table plus
// the ambient state the parser threads through a descent — current depth,
// and at most one of the enclosing function or struct being parsed.
//
// It is passed explicitly rather than held as process-wide state (spec
// section 9, Design Notes): a fresh Context belongs to exactly one
// compilation.
type Context struct {
	Symbols   *symbols.Table
	CrtDepth  int
	CrtFunc   *symbols.Symbol
	CrtStruct *symbols.Symbol
}

// NewContext returns a Context over a fresh, empty symbol table.
func NewContext() *Context {
	return &Context{Symbols: symbols.New()}
}

func (c *Context) enterScope() symbols.Marker {
	c.CrtDepth++
	return c.Symbols.Mark()
}

func (c *Context) leaveScope(marker symbols.Marker) {
	c.CrtDepth--
	c.Symbols.DeleteAfter(marker)
}
