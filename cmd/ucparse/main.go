// Command ucparse parses a uC source file and prints its syntax tree.
//
//	ucparse [-v] [-coords=false] [-format tree|yaml] FILE
//
// On the first lexical or syntax error it prints a single diagnostic line
// on stdout and exits with status 1.
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
	fs := flag.NewFlagSet("ucparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "show the source line and a caret under the error on stderr")
	coords := fs.Bool("coords", true, "print node coordinates in tree output")
	format := fs.String("format", "tree", "output format: tree or yaml")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ucparse [-v] [-coords=false] [-format tree|yaml] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *format != "tree" && *format != "yaml" {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		fs.Usage()
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: ucparse [-v] [-coords=false] [-format tree|yaml] FILE")
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

	prog, err := uc.Parse(path, src)
	if err != nil {
		uc.Report(stdout, err)
		if c := uc.ErrorCoord(err); *verbose && c.IsValid() {
			uc.WriteSnippet(stderr, src, c.Line, c.Column)
		}
		return 1
	}

	if *format == "yaml" {
		out, err := uc.MarshalYAML(prog)
		if err != nil {
			fmt.Fprintln(stderr, "yaml error:", err)
			return 1
		}
		if _, err := stdout.Write(out); err != nil {
			fmt.Fprintln(stderr, "write error:", err)
			return 1
		}
		return 0
	}
	if err := uc.Show(stdout, prog, *coords); err != nil {
		fmt.Fprintln(stderr, "write error:", err)
		return 1
	}
	return 0
}
