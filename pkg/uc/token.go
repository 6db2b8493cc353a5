package uc

import (
	"fmt"
	"strings"
)

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF TokenKind = iota // sentinel: end of input

	// Identifiers and literals
	ID             // variable / function name
	INT_CONST      // decimal integer literal
	CHAR_CONST     // 'c' or L'c', kept verbatim
	STRING_LITERAL // "..." with the quotes stripped

	// Keywords
	ASSERT // "assert"
	BREAK  // "break"
	CHAR   // "char"
	ELSE   // "else"
	FOR    // "for"
	IF     // "if"
	INT    // "int"
	PRINT  // "print"
	READ   // "read"
	RETURN // "return"
	VOID   // "void"
	WHILE  // "while"

	// Arithmetic operators
	PLUS   // +
	MINUS  // -
	TIMES  // *
	DIVIDE // /
	MOD    // %

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]

	// Punctuation
	SEMI  // ;
	COMMA // ,

	// Assignment / comparison / logical
	EQUALS // =
	EQ     // ==
	NE     // !=
	NOT    // !
	LT     // <
	LE     // <=
	GT     // >
	GE     // >=
	AND    // &&
	OR     // ||
)

var tokenNames = [...]string{
	EOF:            "EOF",
	ID:             "ID",
	INT_CONST:      "INT_CONST",
	CHAR_CONST:     "CHAR_CONST",
	STRING_LITERAL: "STRING_LITERAL",
	ASSERT:         "ASSERT",
	BREAK:          "BREAK",
	CHAR:           "CHAR",
	ELSE:           "ELSE",
	FOR:            "FOR",
	IF:             "IF",
	INT:            "INT",
	PRINT:          "PRINT",
	READ:           "READ",
	RETURN:         "RETURN",
	VOID:           "VOID",
	WHILE:          "WHILE",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	TIMES:          "TIMES",
	DIVIDE:         "DIVIDE",
	MOD:            "MOD",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	SEMI:           "SEMI",
	COMMA:          "COMMA",
	EQUALS:         "EQUALS",
	EQ:             "EQ",
	NE:             "NE",
	NOT:            "NOT",
	LT:             "LT",
	LE:             "LE",
	GT:             "GT",
	GE:             "GE",
	AND:            "AND",
	OR:             "OR",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsTypeSpecifier reports whether k starts a declaration.
func (k TokenKind) IsTypeSpecifier() bool {
	return k == VOID || k == CHAR || k == INT
}

// keywords maps reserved words to their kind. It is never written after
// package initialisation.
var keywords = map[string]TokenKind{
	"assert": ASSERT,
	"break":  BREAK,
	"char":   CHAR,
	"else":   ELSE,
	"for":    FOR,
	"if":     IF,
	"int":    INT,
	"print":  PRINT,
	"read":   READ,
	"return": RETURN,
	"void":   VOID,
	"while":  WHILE,
}

// LookupKeyword classifies an identifier-shaped lexeme.
func LookupKeyword(lexeme string) TokenKind {
	if kw, ok := keywords[lexeme]; ok {
		return kw
	}
	return ID
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind   TokenKind
	Value  string // source text, or the string body for STRING_LITERAL
	Line   int    // 1-based source line
	Column int    // 1-based column within Line
	Offset int    // byte offset of the first character in the buffer
}

// Coord returns the position of the token.
func (t Token) Coord() Coord {
	return Coord{Line: t.Line, Column: t.Column}
}

// String renders the token as kind, value, line and raw offset.
//
//	LexToken(ID,'a',1,0)
func (t Token) String() string {
	return fmt.Sprintf("LexToken(%s,%s,%d,%d)", t.Kind, quote(t.Value), t.Line, t.Offset)
}

// quote renders s as a single-quoted literal, switching to double quotes
// when s contains a single quote but no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == q || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
