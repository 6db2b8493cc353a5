package uc

import "fmt"

// Coord is the source position attached to tokens, AST nodes and errors.
// A zero Column means the coordinate carries a line only.
type Coord struct {
	Line   int
	Column int
}

// String renders "@ line:col", "@ line", or "" when the coordinate is unset.
func (c Coord) String() string {
	switch {
	case c.Line > 0 && c.Column > 0:
		return fmt.Sprintf("@ %d:%d", c.Line, c.Column)
	case c.Line > 0:
		return fmt.Sprintf("@ %d", c.Line)
	default:
		return ""
	}
}

// IsValid reports whether the coordinate names a line.
func (c Coord) IsValid() bool { return c.Line > 0 }

// LexErrorKind classifies lexical errors.
type LexErrorKind int

const (
	IllegalCharacter LexErrorKind = iota
	UnterminatedComment
)

func (k LexErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "IllegalCharacter"
	case UnterminatedComment:
		return "UnterminatedComment"
	}
	return fmt.Sprintf("LexErrorKind(%d)", int(k))
}

// LexError is reported by the Lexer. The offending character has already
// been skipped when it is returned, so scanning may continue.
type LexError struct {
	Kind   LexErrorKind
	Msg    string
	Line   int
	Column int
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Column)
}

// Coord returns the position of the error.
func (e *LexError) Coord() Coord { return Coord{Line: e.Line, Column: e.Column} }

// SyntaxErrorKind classifies parse errors.
type SyntaxErrorKind int

const (
	UnexpectedToken SyntaxErrorKind = iota
	UnexpectedEndOfInput
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	}
	return fmt.Sprintf("SyntaxErrorKind(%d)", int(k))
}

// SyntaxError is returned by the Parser. Parsing stops at the first one.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Msg   string
	Coord Coord // unset for UnexpectedEndOfInput
	Token Token // the token that could not extend the production
}

func (e *SyntaxError) Error() string {
	if s := e.Coord.String(); s != "" {
		return e.Msg + " " + s
	}
	return e.Msg
}

// ErrorList accumulates diagnostics for callers that keep going after an
// error instead of aborting.
type ErrorList []error

// Add appends err; nil is ignored.
func (l *ErrorList) Add(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// Len returns the number of collected errors.
func (l ErrorList) Len() int { return len(l) }

// Err returns nil for an empty list and the list itself otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error { return l }
