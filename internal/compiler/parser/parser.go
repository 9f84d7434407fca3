// Package parser implements the AtomC recursive-descent parser: an
// LL(1)-with-backtracking grammar recognizer wired to the symbol/scope
// manager for declaration-time semantic checks.
package parser

import (
	"github.com/EmanuelBits/atomc/internal/compiler/diag"
	"github.com/EmanuelBits/atomc/internal/compiler/token"
)

// Checkpoint is a saved token index plus a saved diagnostic-bag mark,
// restored together on a failed backtracking alternative (spec section
// 4.3, Backtracking points). Restoring the cursor alone isn't enough: a
// speculative parse can walk through a sub-production that reports a
// diagnostic and continues rather than failing outright (e.g. a missing
// ')' after call arguments), and that diagnostic must not survive a
// restore — otherwise the alternative that gets tried next reparses the
// same tokens and reports it again.
type Checkpoint struct {
	pos     int
	diagPos int
}

// Parser recognizes the AtomC grammar over a fixed token sequence,
// reporting through diag and mutating ctx as it goes.
type Parser struct {
	tokens []token.Token
	pos    int

	diag *diag.Bag
	ctx  *Context
}

// New returns a Parser over tokens, reporting through bag and mutating a
// fresh Context — or the caller's, if it wants to inspect it afterwards.
func New(tokens []token.Token, bag *diag.Bag, ctx *Context) *Parser {
	return &Parser{tokens: tokens, diag: bag, ctx: ctx}
}

// Context returns the semantic context the parser populated.
func (p *Parser) Context() *Context { return p.ctx }

// --- token cursor ---

func (p *Parser) crtTok() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Kind: token.EOF}
}

// consume advances past the current token iff it has kind k.
func (p *Parser) consume(k token.Kind) bool {
	if p.crtTok().Kind == k {
		p.pos++
		return true
	}
	return false
}

// tokenAt peeks the kind of the token at absolute index i without moving
// the cursor, for lookahead that must not trigger any semantic action.
func (p *Parser) tokenAt(i int) token.Kind {
	if i < len(p.tokens) {
		return p.tokens[i].Kind
	}
	return token.EOF
}

// looksLikeFuncHeader reports whether, starting at the cursor, the raw
// token stream matches (typeBase | 'void') ['*'] ID '(' — the prefix
// declFunc and declVar share. It never calls typeBase, so it never
// triggers the struct-name resolution diagnostic that production carries.
func (p *Parser) looksLikeFuncHeader() bool {
	i := p.pos
	switch p.tokenAt(i) {
	case token.VOID, token.INT, token.DOUBLE, token.CHAR:
		i++
	case token.STRUCT:
		if p.tokenAt(i+1) != token.ID {
			return false
		}
		i += 2
	default:
		return false
	}
	if p.tokenAt(i) == token.MUL {
		i++
	}
	if p.tokenAt(i) != token.ID {
		return false
	}
	i++
	return p.tokenAt(i) == token.LPAR
}

// checkpoint snapshots the cursor and diagnostic history for a
// backtracking alternative.
func (p *Parser) checkpoint() Checkpoint {
	return Checkpoint{pos: p.pos, diagPos: p.diag.Mark()}
}

// restore rewinds the cursor to a prior checkpoint and discards any
// diagnostics a speculative parse reported since then.
func (p *Parser) restore(c Checkpoint) {
	p.pos = c.pos
	p.diag.Rollback(c.diagPos)
}

// tkerr reports a syntax error positioned at the current token (or at the
// last token's position, past EOF) and never aborts: callers either
// return false to let an alternative be tried, or call sync to resume
// after the error (spec section 4.3, Error reporting vs. recovery).
func (p *Parser) tkerr(format string, args ...any) {
	tok := p.crtTok()
	line, col := tok.Line, tok.Column
	if tok.Kind == token.EOF && len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		line, col = last.Line, last.Column
	}
	p.diag.Syntax(line, col, format, args...)
}

// sync skips tokens up to and including the next ';' or up to (but not
// including) the next '}', the parser's error-recovery synchronization
// points (spec section 4.3/7).
func (p *Parser) sync() {
	for {
		k := p.crtTok().Kind
		if k == token.EOF || k == token.RACC {
			return
		}
		if k == token.SEMICOLON {
			p.pos++
			return
		}
		p.pos++
	}
}

// Parse runs the unit production to EOF and reports whether the program
// was syntactically well-formed (no syntax errors were raised). Analysis
// always runs to completion; a false return just means syntax diagnostics
// were emitted along the way — semantic diagnostics alone do not make it
// false (spec section 6/7).
func (p *Parser) Parse() bool {
	before := p.diag.CountCategory(diag.Syntax)
	p.unit()
	return p.diag.CountCategory(diag.Syntax) == before
}

// unit := { declStruct | declFunc | declVar | stm }
//
// Every iteration either consumes at least one token via a recognized
// production or skips exactly one token on an unrecognized prefix, so the
// cursor is strictly monotone and the loop always terminates (spec
// section 8, Parser invariants).
func (p *Parser) unit() {
	for p.crtTok().Kind != token.EOF {
		if p.declStruct() || p.declFunc() || p.declVar() || p.stm() {
			continue
		}
		p.tkerr("unexpected token %q", p.crtTok().Lexeme)
		p.pos++
	}
}
