package uc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format renders err as the single diagnostic line printed by the tools:
//
//	LexerError: Illegal character '@' at 1:3
//	ParserError: Before } @ 4:1
//	ParserError: At the end of input (prog.uc)
//
// Errors of any other type are rendered by their Error method.
func Format(err error) string {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return "LexerError: " + lexErr.Error()
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return "ParserError: " + synErr.Error()
	}
	return err.Error()
}

// Report writes Format(err) followed by a newline to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, Format(err))
}

// ErrorCoord returns the source position carried by a lexical or syntax
// error. The result is the zero Coord for other errors and for errors at
// end of input.
func ErrorCoord(err error) Coord {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Coord()
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Coord
	}
	return Coord{}
}

// WriteSnippet writes the given 1-based line of src with a caret under
// column col:
//
//	  |> int a = 1 @ 2;
//	  |>           ^
//
// Tabs before the caret are kept so it lines up in a terminal. Nothing is
// written when line is out of range; the caret is omitted when col < 1.
func WriteSnippet(w io.Writer, src string, line, col int) {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	text := strings.TrimRight(lines[line-1], "\r")
	fmt.Fprintf(w, "  |> %s\n", text)
	if col < 1 {
		return
	}

	var pad strings.Builder
	for i := 0; i < col-1 && i < len(text); i++ {
		if text[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	fmt.Fprintf(w, "  |> %s^\n", pad.String())
}
