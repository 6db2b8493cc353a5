package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.uc")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Tree(t *testing.T) {
	path := writeSource(t, "int a;")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "With Coordinates",
			args: []string{path},
			want: "Program: @ 1:1\n" +
				"    GlobalDecl: @ 1:1\n" +
				"        Decl: a @ 1:5\n" +
				"            VarDecl: a @ 1:5\n" +
				"                Type: int @ 1:1\n",
		},
		{
			name: "Without Coordinates",
			args: []string{"-coords=false", path},
			want: "Program:\n" +
				"    GlobalDecl:\n" +
				"        Decl: a\n" +
				"            VarDecl: a\n" +
				"                Type: int\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRun_YAML(t *testing.T) {
	path := writeSource(t, "int main() { return 0; }")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-format", "yaml", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"kind: Program\n", "kind: FuncDef", "kind: Return", "name: main"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // %s is replaced by the input path
	}{
		{name: "Syntax", src: "int x = ;", want: "ParserError: Before ; @ 1:9\n"},
		{name: "End Of Input", src: "int x", want: "ParserError: At the end of input (%s)\n"},
		{name: "Lexical", src: "int a = 1 @ 2;", want: "LexerError: Illegal character '@' at 1:11\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, tt.src)
			var stdout, stderr bytes.Buffer
			if code := run([]string{path}, &stdout, &stderr); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			want := strings.ReplaceAll(tt.want, "%s", path)
			if got := stdout.String(); got != want {
				t.Errorf("stdout = %q, want %q", got, want)
			}
		})
	}
}

func TestRun_VerboseSnippet(t *testing.T) {
	path := writeSource(t, "int x = ;")

	var stdout, stderr bytes.Buffer
	run([]string{"-v", path}, &stdout, &stderr)
	if want := "  |> int x = ;\n  |>         ^\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "No File", args: nil, code: 1},
		{name: "Missing File", args: []string{filepath.Join(t.TempDir(), "nope.uc")}, code: 1},
		{name: "Unknown Format", args: []string{"-format", "xml", "a.uc"}, code: 2},
		{name: "Unknown Flag", args: []string{"-x", "a.uc"}, code: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if stderr.Len() == 0 {
				t.Error("expected a message on stderr")
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	path := writeSource(t, "int a;")
	for _, format := range []string{"tree", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run([]string{"-format", format, path}, failingWriter{}, &stderr); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "write error: disk full") {
				t.Errorf("stderr = %q, want a write error", stderr.String())
			}
		})
	}
}

func TestRun_ReadError(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{dir}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := stderr.String(); !strings.HasPrefix(got, "read error:") {
		t.Errorf("stderr = %q, want a read error rather than not found", got)
	}

	stderr.Reset()
	missing := filepath.Join(dir, "nope.uc")
	run([]string{missing}, &stdout, &stderr)
	if want := "Input " + missing + " not found\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}
