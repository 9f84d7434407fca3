// Package token defines the closed set of AtomC token kinds and the Token
// value the lexer emits.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	UNKNOWN Kind = iota

	// Keywords
	BREAK
	CHAR
	DOUBLE
	ELSE
	FOR
	IF
	INT
	RETURN
	STRUCT
	VOID
	WHILE
	FLOAT // reserved: never produced by the scanner, never accepted by typeBase

	// Literals
	ID
	CT_INT
	CT_REAL
	CT_CHAR
	CT_STRING

	// Delimiters
	COMMA
	SEMICOLON
	LPAR
	RPAR
	LBRACKET
	RBRACKET
	LACC
	RACC
	DOT

	// Operators
	ADD
	SUB
	MUL
	DIV
	AND
	OR
	NOT
	ASSIGN
	EQUAL
	NOTEQ
	LESS
	LESSEQ
	GREATER
	GREATEREQ

	EOF
)

var names = map[Kind]string{
	UNKNOWN:   "UNKNOWN",
	BREAK:     "BREAK",
	CHAR:      "CHAR",
	DOUBLE:    "DOUBLE",
	ELSE:      "ELSE",
	FOR:       "FOR",
	IF:        "IF",
	INT:       "INT",
	RETURN:    "RETURN",
	STRUCT:    "STRUCT",
	VOID:      "VOID",
	WHILE:     "WHILE",
	FLOAT:     "FLOAT",
	ID:        "ID",
	CT_INT:    "CT_INT",
	CT_REAL:   "CT_REAL",
	CT_CHAR:   "CT_CHAR",
	CT_STRING: "CT_STRING",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAR:      "LPAR",
	RPAR:      "RPAR",
	LBRACKET:  "LBRACKET",
	RBRACKET:  "RBRACKET",
	LACC:      "LACC",
	RACC:      "RACC",
	DOT:       "DOT",
	ADD:       "ADD",
	SUB:       "SUB",
	MUL:       "MUL",
	DIV:       "DIV",
	AND:       "AND",
	OR:        "OR",
	NOT:       "NOT",
	ASSIGN:    "ASSIGN",
	EQUAL:     "EQUAL",
	NOTEQ:     "NOTEQ",
	LESS:      "LESS",
	LESSEQ:    "LESSEQ",
	GREATER:   "GREATER",
	GREATEREQ: "GREATEREQ",
	EOF:       "EOF",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps reserved lexemes to their Kind. FLOAT is intentionally
// absent: the scanner never recognizes it by lexeme (spec section 9).
var Keywords = map[string]Kind{
	"break":  BREAK,
	"char":   CHAR,
	"double": DOUBLE,
	"else":   ELSE,
	"for":    FOR,
	"if":     IF,
	"int":    INT,
	"return": RETURN,
	"struct": STRUCT,
	"void":   VOID,
	"while":  WHILE,
}

// Token is a tagged value carrying its kind, the exact source text it was
// recognized from, and the 1-based line/column of its first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, type: %s, line: %d, column: %d)", t.Lexeme, t.Kind, t.Line, t.Column)
}
