package parser

import (
	"bytes"
	"testing"

	"github.com/EmanuelBits/atomc/internal/compiler/diag"
	"github.com/EmanuelBits/atomc/internal/compiler/lexer"
	"github.com/EmanuelBits/atomc/internal/compiler/source"
	"github.com/EmanuelBits/atomc/internal/compiler/symbols"
)

func parse(t *testing.T, src string) (*Parser, *diag.Bag) {
	t.Helper()
	var buf bytes.Buffer
	bag := diag.NewBag(&buf)
	bag.NoColor = true
	l := lexer.New(source.FromString(src), bag)
	p := New(l.Tokenize(), bag, NewContext())
	p.Parse()
	return p, bag
}

func TestDeclVarGlobalAndLocal(t *testing.T) {
	p, bag := parse(t, `
int x;
void f() {
	int y;
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}

	x := p.ctx.Symbols.Find("x")
	if x == nil || x.Mem != symbols.GLOBAL {
		t.Fatalf("x = %v, want a GLOBAL var", x)
	}
	f := p.ctx.Symbols.Find("f")
	if f == nil || f.Cls != symbols.FUNC {
		t.Fatalf("f = %v, want a FUNC symbol", f)
	}
	// f's body scope was torn down after the function closed.
	if p.ctx.Symbols.Find("y") != nil {
		t.Fatal("local y should not be visible after its enclosing function closed")
	}
}

func TestStructDeclarationAndMemberRedefinition(t *testing.T) {
	_, bag := parse(t, `
struct Point {
	int x;
	int x;
};
`)
	if bag.CountCategory(diag.SemanticDefinition) != 1 {
		t.Fatalf("member redefinition diagnostics = %d, want 1 (diagnostics: %v)", bag.CountCategory(diag.SemanticDefinition), bag.All())
	}
}

func TestStructIdAsTypeUsageAfterDefinition(t *testing.T) {
	p, bag := parse(t, `
struct Point {
	int x;
	int y;
};
struct Point p;
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	sym := p.ctx.Symbols.Find("p")
	if sym == nil || sym.Type.StructRef == nil || sym.Type.StructRef.StructName() != "Point" {
		t.Fatalf("p = %v, want a resolved struct-Point variable", sym)
	}
}

func TestUndefinedStructNameIsSemanticError(t *testing.T) {
	_, bag := parse(t, `struct Missing v;`)
	if bag.CountCategory(diag.Semantic) != 1 {
		t.Fatalf("semantic error count = %d, want 1 (diagnostics: %v)", bag.CountCategory(diag.Semantic), bag.All())
	}
}

func TestFunctionArgsScopedToBody(t *testing.T) {
	p, bag := parse(t, `
int add(int a, int b) {
	return a + b;
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	add := p.ctx.Symbols.Find("add")
	if add == nil || len(add.Args) != 2 {
		t.Fatalf("add = %v, want a FUNC with 2 args", add)
	}
	if p.ctx.Symbols.Find("a") != nil {
		t.Fatal("argument 'a' should not be visible after the function closed")
	}
}

func TestSymbolRedefinitionAtSameDepth(t *testing.T) {
	_, bag := parse(t, `
int x;
int x;
`)
	if bag.CountCategory(diag.SemanticDefinition) != 1 {
		t.Fatalf("redefinition diagnostics = %d, want 1 (diagnostics: %v)", bag.CountCategory(diag.SemanticDefinition), bag.All())
	}
}

func TestShadowingInNestedScopeIsNotARedefinition(t *testing.T) {
	_, bag := parse(t, `
int x;
void f() {
	int x;
}
`)
	if bag.HasErrors() {
		t.Fatalf("shadowing a global in a nested scope should not error: %v", bag.All())
	}
}

// Backtracking point 2: declFunc declines a type+name prefix that is not
// followed by '(' (checked by lookahead, nothing consumed), so the same
// prefix parses as declVar (spec.md section 4.3/8).
func TestDeclFuncBacktracksIntoDeclVar(t *testing.T) {
	p, bag := parse(t, `int notAFunction;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	sym := p.ctx.Symbols.Find("notAFunction")
	if sym == nil || sym.Cls != symbols.VAR {
		t.Fatalf("notAFunction = %v, want a VAR", sym)
	}
}

// Backtracking point 1: declStruct reverts 'struct' ID when not followed
// by '{', so the same prefix parses as a type usage via typeBase.
func TestDeclStructBacktracksIntoTypeUsage(t *testing.T) {
	p, bag := parse(t, `
struct Point { int x; };
struct Point origin;
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	origin := p.ctx.Symbols.Find("origin")
	if origin == nil || origin.Type.StructRef == nil {
		t.Fatalf("origin = %v, want a resolved struct variable", origin)
	}
}

// Backtracking point 3: exprAssign tries exprUnary '=' exprAssign first,
// then falls back to exprOr when there's no '='.
func TestExprAssignBacktracksIntoExprOr(t *testing.T) {
	_, bag := parse(t, `
void f() {
	int x;
	if (x < 1 || x > 10) {
		x = 2;
	}
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}

// Backtracking point 4: exprCast tries '(' typeName ')' first, then falls
// back to a parenthesized exprUnary when what follows isn't a type.
func TestExprCastBacktracksIntoParenthesizedExpr(t *testing.T) {
	_, bag := parse(t, `
void f() {
	int x;
	int y;
	y = (x + 1) * 2;
	y = (int) y;
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}

// Backtracking point 3, regression: exprUnary's call-argument path reports
// "expected ')'" and continues rather than failing outright, so a failed
// speculative parse used to leave that diagnostic behind when exprAssign
// rewound into exprOr, which reparsed the same unbalanced call and reported
// it a second time.
func TestExprAssignBacktrackDoesNotDuplicateDiagnosticFromUnbalancedCall(t *testing.T) {
	_, bag := parse(t, `f(x;`)
	if n := bag.CountCategory(diag.Syntax); n != 1 {
		t.Fatalf("syntax diagnostics = %d, want 1 (diagnostics: %v)", n, bag.All())
	}
}

func TestArraySizeLiteralIsRecordedOnDecl(t *testing.T) {
	p, bag := parse(t, `int v[10];`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	v := p.ctx.Symbols.Find("v")
	if v == nil || v.Type.NElements != 10 {
		t.Fatalf("v.Type = %+v, want NElements == 10", v.Type)
	}
}

func TestOpenArrayDeclaration(t *testing.T) {
	p, bag := parse(t, `int v[];`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
	v := p.ctx.Symbols.Find("v")
	if v == nil || !v.Type.IsArray() || v.Type.NElements != 0 {
		t.Fatalf("v.Type = %+v, want an open array", v.Type)
	}
}

func TestMissingSemicolonReportsSyntaxErrorAndResyncs(t *testing.T) {
	_, bag := parse(t, `
int x
int y;
`)
	if bag.CountCategory(diag.Syntax) == 0 {
		t.Fatal("expected a syntax error for the missing ';'")
	}
}

func TestControlFlowStatements(t *testing.T) {
	_, bag := parse(t, `
int f(int n) {
	int i;
	int total;
	for (i = 0; i < n; i = i + 1) {
		if (i == 0) {
			total = 0;
		} else {
			total = total + i;
		}
	}
	while (total > 100) {
		total = total - 1;
		break;
	}
	return total;
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.All())
	}
}
