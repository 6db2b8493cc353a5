// Command uclex prints the token stream of a uC source file, one token per
// line. Lexical errors are reported in place and scanning continues.
//
//	uclex [-v] FILE
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gouc/pkg/uc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uclex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "show the source line and a caret under each error on stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: uclex [-v] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: uclex [-v] FILE")
		return 1
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(stderr, "Input", path, "not found")
		} else {
			fmt.Fprintln(stderr, "read error:", err)
		}
		return 1
	}
	src := string(data)

	l := uc.NewLexer(src)
	for {
		tok, err := l.Next()
		if err != nil {
			fmt.Fprintln(stdout, "Lexical error:", err)
			var lexErr *uc.LexError
			if *verbose && errors.As(err, &lexErr) {
				uc.WriteSnippet(stderr, src, lexErr.Line, lexErr.Column)
			}
			continue
		}
		if tok.Kind == uc.EOF {
			return 0
		}
		fmt.Fprintln(stdout, tok)
	}
}
