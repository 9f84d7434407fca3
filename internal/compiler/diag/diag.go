// Package diag implements the Diagnostics sink: categorized, positioned
// error reporting that never aborts analysis. Every analyzer return value
// still carries success/failure; diag is only the user-visible side effect.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Category is one of the four diagnostic channels from spec section 4.5.
type Category int

const (
	Lexical Category = iota
	Syntax
	Semantic
	SemanticDefinition
)

func (c Category) label() string {
	switch c {
	case Lexical:
		return "Lexical Error"
	case Syntax:
		return "Syntax Error"
	case Semantic:
		return "Semantic Error"
	case SemanticDefinition:
		return "Semantic Error (Definition)"
	default:
		return "Error"
	}
}

func (c Category) color() *color.Color {
	switch c {
	case Lexical:
		return color.New(color.FgYellow)
	case Syntax:
		return color.New(color.FgRed)
	case Semantic, SemanticDefinition:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgRed)
	}
}

// Diagnostic is one reported error, positioned where possible.
type Diagnostic struct {
	Category Category
	Message  string
	Line     int // 0 if not positioned (SemanticDefinition)
	Column   int
	Symbol   string // set for SemanticDefinition
}

func (d Diagnostic) String() string {
	if d.Category == SemanticDefinition {
		return fmt.Sprintf("%s: %s -> '%s'", d.Category.label(), d.Message, d.Symbol)
	}
	return fmt.Sprintf("%s at line %d, column %d: %s", d.Category.label(), d.Line, d.Column, d.Message)
}

// Bag accumulates diagnostics in report order and writes them to w as a
// colorized categorized line each, matching the original ErrorHandler's
// per-category ANSI tags. Reporting and writing are split into two steps
// (report/Flush) rather than one: a parser backtracking alternative can
// Rollback diagnostics a speculative parse already reported before they
// ever reach w, so a discarded attempt never shows up in the output.
type Bag struct {
	w       io.Writer
	all     []Diagnostic
	flushed int
	NoColor bool
}

// NewBag returns a Bag that writes to w on Flush.
func NewBag(w io.Writer) *Bag {
	return &Bag{w: w}
}

func (b *Bag) report(d Diagnostic) {
	b.all = append(b.all, d)
}

// Mark returns a checkpoint into the diagnostic history, for a parser
// backtracking alternative that may need to discard diagnostics a
// speculative parse already reported (spec section 4.3, Backtracking
// points) — mirrors symbols.Table's Mark/DeleteAfter.
func (b *Bag) Mark() int {
	return len(b.all)
}

// Rollback discards every diagnostic reported since mark. Safe any time
// before the next Flush: nothing reported since mark has reached w yet,
// so a rolled-back diagnostic never appears in the output at all.
func (b *Bag) Rollback(mark int) {
	if mark < len(b.all) {
		b.all = b.all[:mark]
	}
	if b.flushed > len(b.all) {
		b.flushed = len(b.all)
	}
}

// Flush writes every diagnostic reported since the last Flush to w, in
// report order, each one colorized by category.
func (b *Bag) Flush() {
	for _, d := range b.all[b.flushed:] {
		c := d.Category.color()
		c.EnableColor()
		if b.NoColor {
			c.DisableColor()
		}
		fmt.Fprintln(b.w, c.Sprint(d.String()))
	}
	b.flushed = len(b.all)
}

// Lexical reports an unknown character, invalid octal digit, malformed
// exponent, bad escape, unterminated block comment, or stray '|'.
func (b *Bag) Lexical(line, col int, format string, args ...any) {
	b.report(Diagnostic{Category: Lexical, Message: fmt.Sprintf(format, args...), Line: line, Column: col})
}

// Syntax reports a missing expected terminal after a commit point.
func (b *Bag) Syntax(line, col int, format string, args ...any) {
	b.report(Diagnostic{Category: Syntax, Message: fmt.Sprintf(format, args...), Line: line, Column: col})
}

// Semantic reports a positioned declaration-time semantic error.
func (b *Bag) Semantic(line, col int, format string, args ...any) {
	b.report(Diagnostic{Category: Semantic, Message: fmt.Sprintf(format, args...), Line: line, Column: col})
}

// SemanticDefinitionError reports a redefinition/uniqueness error keyed by
// symbol name rather than position (spec's "semantic-definition" channel).
func (b *Bag) SemanticDefinitionError(symbolName string, format string, args ...any) {
	b.report(Diagnostic{Category: SemanticDefinition, Message: fmt.Sprintf(format, args...), Symbol: symbolName})
}

// All returns every diagnostic reported so far, in report order.
func (b *Bag) All() []Diagnostic {
	return b.all
}

// HasErrors reports whether any diagnostic has been recorded.
func (b *Bag) HasErrors() bool {
	return len(b.all) > 0
}

// CountCategory returns how many diagnostics of cat have been reported.
func (b *Bag) CountCategory(cat Category) int {
	n := 0
	for _, d := range b.all {
		if d.Category == cat {
			n++
		}
	}
	return n
}
