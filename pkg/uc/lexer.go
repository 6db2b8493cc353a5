package uc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer holds all mutable state for a single scanning pass over src.
// Tokens are produced on demand by Next; a Lexer is not safe for concurrent
// use, but independent Lexers share nothing.
type Lexer struct {
	src       string
	pos       int // offset of the next byte to consume
	line      int // current 1-based source line
	lineStart int // offset of the newline that ends the previous line, or -1
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	l := &Lexer{src: src}
	l.Reset()
	return l
}

// Reset rewinds the lexer to offset 0 and line 1. Scanning the same buffer
// again reproduces the same token sequence.
func (l *Lexer) Reset() {
	l.pos = 0
	l.line = 1
	l.lineStart = -1
}

// peek2 returns the byte one position ahead of the current position.
func (l *Lexer) peek2() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// column converts a buffer offset on the current line to a 1-based column.
func (l *Lexer) column(offset int) int {
	return offset - l.lineStart
}

// newline records a '\n' found at offset.
func (l *Lexer) newline(offset int) {
	l.line++
	l.lineStart = offset
}

func (l *Lexer) token(kind TokenKind, value string, start int) Token {
	return Token{Kind: kind, Value: value, Line: l.line, Column: l.column(start), Offset: start}
}

func (l *Lexer) errorAt(kind LexErrorKind, start int, msg string) *LexError {
	return &LexError{Kind: kind, Msg: msg, Line: l.line, Column: l.column(start), Offset: start}
}

// skipBlockComment discards a "/* ... */" comment starting at the current
// position. The line counter advances past every newline inside it.
func (l *Lexer) skipBlockComment() error {
	start := l.pos
	end := strings.Index(l.src[start+2:], "*/")
	if end < 0 {
		err := l.errorAt(UnterminatedComment, start, "Unterminated comment")
		l.pos++
		return err
	}
	end += start + 2
	for i := start; i < end; i++ {
		if l.src[i] == '\n' {
			l.newline(i)
		}
	}
	l.pos = end + 2
	return nil
}

// skipLineComment discards everything from the current position up to,
// but not including, the next newline.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

// skipIgnored consumes whitespace and comments.
func (l *Lexer) skipIgnored() error {
	for l.pos < len(l.src) {
		switch ch := l.src[l.pos]; {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.pos++
		case ch == '\n':
			l.newline(l.pos)
			l.pos++
		case ch == '/' && l.peek2() == '/':
			l.skipLineComment()
		case ch == '/' && l.peek2() == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// scanIdent collects an identifier and classifies it through the keyword table.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	return l.token(LookupKeyword(lexeme), lexeme, start)
}

// scanInt collects a run of decimal digits.
func (l *Lexer) scanInt() Token {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	return l.token(INT_CONST, l.src[start:l.pos], start)
}

// quotedEnd returns the offset just past the closing quote of a literal
// whose opening quote is at open, or -1 when the literal is not closed on
// the same line. Backslash escapes any character except a newline.
func (l *Lexer) quotedEnd(open int, delim byte) int {
	for i := open + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case delim:
			return i + 1
		case '\n':
			return -1
		case '\\':
			if i+1 >= len(l.src) || l.src[i+1] == '\n' {
				return -1
			}
			i++
		}
	}
	return -1
}

// scanChar collects a character constant, optionally prefixed by L. The
// value keeps the prefix and quotes.
func (l *Lexer) scanChar() (Token, bool) {
	start := l.pos
	open := start
	if l.src[open] == 'L' {
		open++
	}
	end := l.quotedEnd(open, '\'')
	if end < 0 {
		return Token{}, false
	}
	l.pos = end
	return l.token(CHAR_CONST, l.src[start:end], start), true
}

// scanString collects a string literal; the value is the text between the
// quotes with escapes left as written.
func (l *Lexer) scanString() (Token, bool) {
	start := l.pos
	end := l.quotedEnd(start, '"')
	if end < 0 {
		return Token{}, false
	}
	l.pos = end
	return l.token(STRING_LITERAL, l.src[start+1:end-1], start), true
}

// illegal reports the character at the current position and skips it.
func (l *Lexer) illegal() error {
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[start:])
	text := string(r)
	if r == utf8.RuneError && size <= 1 {
		text = l.src[start : start+1]
		size = 1
	}
	err := l.errorAt(IllegalCharacter, start, fmt.Sprintf("Illegal character %s", quote(text)))
	l.pos += size
	return err
}

// op emits an operator of width n starting at the current position.
func (l *Lexer) op(kind TokenKind, n int) Token {
	start := l.pos
	l.pos += n
	return l.token(kind, l.src[start:l.pos], start)
}

// Next skips whitespace and comments and returns the next token. On a
// lexical error it returns a *LexError after skipping one character, so
// the caller may keep calling Next to resynchronise. At end of input it
// keeps returning an EOF token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipIgnored(); err != nil {
		return Token{}, err
	}
	if l.pos >= len(l.src) {
		return l.token(EOF, "", len(l.src)), nil
	}

	ch := l.src[l.pos]
	switch {
	case ch == 'L' && l.peek2() == '\'':
		if tok, ok := l.scanChar(); ok {
			return tok, nil
		}
		return l.scanIdent(), nil
	case isIdentStart(ch):
		return l.scanIdent(), nil
	case isDigit(ch):
		return l.scanInt(), nil
	case ch == '\'':
		if tok, ok := l.scanChar(); ok {
			return tok, nil
		}
		return Token{}, l.illegal()
	case ch == '"':
		if tok, ok := l.scanString(); ok {
			return tok, nil
		}
		return Token{}, l.illegal()
	}

	next := l.peek2()
	switch ch {
	case '+':
		return l.op(PLUS, 1), nil
	case '-':
		return l.op(MINUS, 1), nil
	case '*':
		return l.op(TIMES, 1), nil
	case '/':
		return l.op(DIVIDE, 1), nil
	case '%':
		return l.op(MOD, 1), nil
	case '(':
		return l.op(LPAREN, 1), nil
	case ')':
		return l.op(RPAREN, 1), nil
	case '{':
		return l.op(LBRACE, 1), nil
	case '}':
		return l.op(RBRACE, 1), nil
	case '[':
		return l.op(LBRACKET, 1), nil
	case ']':
		return l.op(RBRACKET, 1), nil
	case ';':
		return l.op(SEMI, 1), nil
	case ',':
		return l.op(COMMA, 1), nil
	case '=':
		if next == '=' { // lookahead: distinguish = vs ==
			return l.op(EQ, 2), nil
		}
		return l.op(EQUALS, 1), nil
	case '!':
		if next == '=' {
			return l.op(NE, 2), nil
		}
		return l.op(NOT, 1), nil
	case '<':
		if next == '=' {
			return l.op(LE, 2), nil
		}
		return l.op(LT, 1), nil
	case '>':
		if next == '=' {
			return l.op(GE, 2), nil
		}
		return l.op(GT, 1), nil
	case '&':
		if next == '&' {
			return l.op(AND, 2), nil
		}
	case '|':
		if next == '|' {
			return l.op(OR, 2), nil
		}
	}
	return Token{}, l.illegal()
}

// Tokenize scans src to the end in standalone mode: every lexical error is
// collected and scanning resumes after the offending character. The token
// slice always ends with an EOF token.
func Tokenize(src string) ([]Token, ErrorList) {
	l := NewLexer(src)
	var tokens []Token
	var errs ErrorList
	for {
		tok, err := l.Next()
		if err != nil {
			errs.Add(err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, errs
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
