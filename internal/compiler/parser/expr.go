package parser

import "github.com/EmanuelBits/atomc/internal/compiler/token"

// expr is the grammar's entry point for an expression: exprAssign.
func (p *Parser) expr() bool { return p.exprAssign() }

// exprAssign := exprUnary '=' exprAssign | exprOr
//
// Backtracking point 3: exprUnary is tried first; if it isn't followed by
// '=', it's rewound and reparsed as the left end of exprOr.
func (p *Parser) exprAssign() bool {
	cp := p.checkpoint()
	if p.exprUnary() && p.consume(token.ASSIGN) {
		if !p.exprAssign() {
			p.tkerr("expected expression after '='")
		}
		return true
	}
	p.restore(cp)
	return p.exprOr()
}

// exprOr := exprAnd { '||' exprAnd }
func (p *Parser) exprOr() bool {
	if !p.exprAnd() {
		return false
	}
	for p.consume(token.OR) {
		if !p.exprAnd() {
			p.tkerr("expected expression after '||'")
		}
	}
	return true
}

// exprAnd := exprEq { '&&' exprEq }
func (p *Parser) exprAnd() bool {
	if !p.exprEq() {
		return false
	}
	for p.consume(token.AND) {
		if !p.exprEq() {
			p.tkerr("expected expression after '&&'")
		}
	}
	return true
}

// exprEq := exprRel { ('=='|'!=') exprRel }
func (p *Parser) exprEq() bool {
	if !p.exprRel() {
		return false
	}
	for p.consume(token.EQUAL) || p.consume(token.NOTEQ) {
		if !p.exprRel() {
			p.tkerr("expected expression after equality operator")
		}
	}
	return true
}

// exprRel := exprAdd { ('<'|'<='|'>'|'>=') exprAdd }
func (p *Parser) exprRel() bool {
	if !p.exprAdd() {
		return false
	}
	for p.consume(token.LESS) || p.consume(token.LESSEQ) || p.consume(token.GREATER) || p.consume(token.GREATEREQ) {
		if !p.exprAdd() {
			p.tkerr("expected expression after relational operator")
		}
	}
	return true
}

// exprAdd := exprMul { ('+'|'-') exprMul }
func (p *Parser) exprAdd() bool {
	if !p.exprMul() {
		return false
	}
	for p.consume(token.ADD) || p.consume(token.SUB) {
		if !p.exprMul() {
			p.tkerr("expected expression after '+' or '-'")
		}
	}
	return true
}

// exprMul := exprCast { ('*'|'/') exprCast }
func (p *Parser) exprMul() bool {
	if !p.exprCast() {
		return false
	}
	for p.consume(token.MUL) || p.consume(token.DIV) {
		if !p.exprCast() {
			p.tkerr("expected expression after '*' or '/'")
		}
	}
	return true
}

// exprCast := '(' typeName ')' exprCast | exprUnary
//
// Backtracking point 4: '(' is tried as the start of a cast; if what
// follows isn't a typeName, it's rewound and reparsed as a parenthesized
// exprUnary (via exprPrimary).
func (p *Parser) exprCast() bool {
	if p.crtTok().Kind == token.LPAR {
		cp := p.checkpoint()
		p.consume(token.LPAR)
		if _, ok := p.typeName(); ok {
			if !p.consume(token.RPAR) {
				p.tkerr("expected ')' after type cast")
			}
			if !p.exprCast() {
				p.tkerr("expected expression after type cast")
			}
			return true
		}
		p.restore(cp)
	}
	return p.exprUnary()
}

// exprUnary := ('-'|'!') exprUnary | exprPostfix
func (p *Parser) exprUnary() bool {
	if p.consume(token.SUB) || p.consume(token.NOT) {
		if !p.exprUnary() {
			p.tkerr("expected expression after unary operator")
		}
		return true
	}
	return p.exprPostfix()
}

// exprPostfix := exprPrimary { '[' expr ']' | '.' ID }
func (p *Parser) exprPostfix() bool {
	if !p.exprPrimary() {
		return false
	}
	for {
		if p.consume(token.LBRACKET) {
			if !p.expr() {
				p.tkerr("expected expression inside '[]'")
			}
			if !p.consume(token.RBRACKET) {
				p.tkerr("expected ']'")
			}
			continue
		}
		if p.consume(token.DOT) {
			if !p.consume(token.ID) {
				p.tkerr("expected member name after '.'")
			}
			continue
		}
		break
	}
	return true
}

// exprPrimary := ID ['(' [expr {',' expr}] ')']
//
//	| CT_INT | CT_REAL | CT_CHAR | CT_STRING
//	| '(' expr ')'
func (p *Parser) exprPrimary() bool {
	if p.consume(token.ID) {
		if p.consume(token.LPAR) {
			if p.expr() {
				for p.consume(token.COMMA) {
					if !p.expr() {
						p.tkerr("expected expression after ','")
					}
				}
			}
			if !p.consume(token.RPAR) {
				p.tkerr("expected ')' after function call arguments")
			}
		}
		return true
	}
	if p.consume(token.CT_INT) || p.consume(token.CT_REAL) || p.consume(token.CT_CHAR) || p.consume(token.CT_STRING) {
		return true
	}
	if p.consume(token.LPAR) {
		if !p.expr() {
			p.tkerr("expected expression after '('")
		}
		if !p.consume(token.RPAR) {
			p.tkerr("expected ')' after expression")
		}
		return true
	}
	return false
}
