// Package compiler wires the Character Source, Lexical Scanner, and
// Parser+Semantics together into one file-at-a-time analysis run, and
// renders its output the way spec.md section 6 describes.
package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/EmanuelBits/atomc/internal/compiler/diag"
	"github.com/EmanuelBits/atomc/internal/compiler/lexer"
	"github.com/EmanuelBits/atomc/internal/compiler/lib"
	"github.com/EmanuelBits/atomc/internal/compiler/parser"
	"github.com/EmanuelBits/atomc/internal/compiler/source"
	"github.com/EmanuelBits/atomc/internal/compiler/symbols"
)

// Result is the outcome of analyzing one source file: token/error counts
// plus pass/fail for each analysis stage, independent of one another —
// a file can be lexically clean but syntactically broken, or vice versa.
type Result struct {
	Path string

	TokenCount int
	LexErrors  int

	LexPassed    bool
	SyntaxPassed bool

	Symbols *symbols.Table
}

// AnalyzeFile runs the full pipeline over path and writes human-readable
// output to out (tokens, status lines, symbol listing); bag accumulates
// diagnostics during the run and is flushed to its own sink before
// AnalyzeFile returns. It never returns an error for malformed AtomC
// source — only an I/O failure opening path does (spec.md section 7).
func AnalyzeFile(path string, out io.Writer, bag *diag.Bag) (Result, error) {
	res := Result{Path: path}

	src, err := source.Open(path)
	if err != nil {
		return res, fmt.Errorf("opening %s: %w", path, err)
	}

	lx := lexer.New(src, bag)
	tokens := lx.Tokenize()
	res.TokenCount, res.LexErrors = lx.Stats()
	res.LexPassed = res.LexErrors == 0

	for _, tok := range tokens {
		fmt.Fprintln(out, tok.String())
	}
	fmt.Fprintf(out, "%d tokens, %d lexical errors\n", res.TokenCount, res.LexErrors)
	printStatus(out, "Lexical", res.LexPassed)

	before := bag.CountCategory(diag.Syntax)
	ctx := parser.NewContext()
	p := parser.New(tokens, bag, ctx)
	p.Parse()
	res.SyntaxPassed = bag.CountCategory(diag.Syntax) == before
	printStatus(out, "Syntax", res.SyntaxPassed)

	res.Symbols = ctx.Symbols
	if res.SyntaxPassed {
		printSymbols(out, ctx.Symbols)
	}

	bag.Flush()
	return res, nil
}

func printStatus(out io.Writer, stage string, passed bool) {
	verdict := "PASSED!"
	if !passed {
		verdict = "FAILED!"
	}
	fmt.Fprintf(out, "%s Analysis %s\n", stage, verdict)
}

// printSymbols renders the table the way the original's SymbolManager
// does: numeric CLS/MEM/DEPTH, not names — see DESIGN.md. The DEPTH column
// is padded to the widest depth value in the table, the one place this
// front-end still uses the teacher's column-width helper.
func printSymbols(out io.Writer, tbl *symbols.Table) {
	all := tbl.All()
	maxDepth := 0
	for _, sym := range all {
		if sym.Depth > maxDepth {
			maxDepth = sym.Depth
		}
	}
	depthWidth := lib.DigitWidth(maxDepth)

	for _, sym := range all {
		fmt.Fprintf(out, "  - %s [CLS=%d, MEM=%d, DEPTH=%*d]\n", sym.Name, int(sym.Cls), int(sym.Mem), depthWidth, sym.Depth)
	}
}

// SourceFiles returns every ".c" file directly under dir, sorted by name —
// the set the driver processes in either CLI mode (spec.md section 6).
func SourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".c" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// RunAutomatic processes every source file under dir uninterrupted.
func RunAutomatic(dir string, out io.Writer, bag *diag.Bag) error {
	files, err := SourceFiles(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(out, "--- %s ---\n", f)
		if _, err := AnalyzeFile(f, out, bag); err != nil {
			fmt.Fprintf(out, "skipping %s: %v\n", f, err)
		}
	}
	return nil
}

// RunInteractive processes every source file under dir, pausing after each
// one to ask next whether to continue. next receives the prompt to show
// and returns the line read and whether one was read at all (a
// *liner.State in cmd/repl.go supplies this; plain tests can stub it).
func RunInteractive(dir string, out io.Writer, bag *diag.Bag, next func(prompt string) (string, bool)) error {
	files, err := SourceFiles(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(out, "--- %s ---\n", f)
		if _, err := AnalyzeFile(f, out, bag); err != nil {
			fmt.Fprintf(out, "skipping %s: %v\n", f, err)
		}
		line, ok := next("press enter to continue, or type exit: ")
		if !ok || line == "exit" {
			return nil
		}
	}
	return nil
}
