package uc

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestSpec is one case from testdata/parse.yaml.
type TestSpec struct {
	Name  string  `yaml:"name"`
	Input string  `yaml:"input"`
	AST   ASTSpec `yaml:"ast"`
}

// ASTSpec mirrors the mapping written by MarshalYAML.
type ASTSpec struct {
	Kind     string    `yaml:"kind"`
	Name     string    `yaml:"name,omitempty"`
	DeclName string    `yaml:"declname,omitempty"`
	Type     string    `yaml:"type,omitempty"`
	Value    string    `yaml:"value,omitempty"`
	Op       string    `yaml:"op,omitempty"`
	Coord    string    `yaml:"coord,omitempty"`
	Children []ASTSpec `yaml:"children,omitempty"`
}

// TestFile is the layout of testdata/parse.yaml.
type TestFile struct {
	Tests []TestSpec `yaml:"tests"`
}

func TestParseYAML(t *testing.T) {
	data, err := os.ReadFile("testdata/parse.yaml")
	if err != nil {
		t.Fatalf("failed to read parse.yaml: %v", err)
	}

	var testFile TestFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse parse.yaml: %v", err)
	}
	if len(testFile.Tests) == 0 {
		t.Fatal("parse.yaml has no tests")
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			prog, err := Parse("fixture.uc", tc.Input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			out, err := MarshalYAML(prog)
			if err != nil {
				t.Fatalf("MarshalYAML() error: %v", err)
			}

			var got ASTSpec
			if err := yaml.Unmarshal(out, &got); err != nil {
				t.Fatalf("MarshalYAML() produced invalid YAML: %v\n%s", err, out)
			}
			verifyAST(t, "ast", got, tc.AST)
		})
	}
}

// verifyAST compares the fields set in want against got.
func verifyAST(t *testing.T, path string, got, want ASTSpec) {
	t.Helper()

	check := func(field, g, w string) {
		if w != "" && g != w {
			t.Errorf("%s.%s: expected %q, got %q", path, field, w, g)
		}
	}
	check("kind", got.Kind, want.Kind)
	check("name", got.Name, want.Name)
	check("declname", got.DeclName, want.DeclName)
	check("type", got.Type, want.Type)
	check("value", got.Value, want.Value)
	check("op", got.Op, want.Op)
	check("coord", got.Coord, want.Coord)

	if want.Children == nil {
		return
	}
	if len(got.Children) != len(want.Children) {
		t.Errorf("%s (%s): expected %d children, got %d", path, got.Kind, len(want.Children), len(got.Children))
		return
	}
	for i := range want.Children {
		verifyAST(t, fmt.Sprintf("%s.children[%d]", path, i), got.Children[i], want.Children[i])
	}
}

func TestMarshalYAML_Layout(t *testing.T) {
	prog, err := Parse("layout.uc", "int x = -1;")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	out, err := MarshalYAML(prog)
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "kind: Program\n") {
		t.Errorf("document should start with the root kind:\n%s", text)
	}
	// Keys appear in a fixed order: kind, attributes, coord, children.
	kind := strings.Index(text, "kind: UnaryOp")
	if kind < 0 {
		t.Fatalf("no UnaryOp in:\n%s", text)
	}
	rest := text[kind:]
	op := strings.Index(rest, "op:")
	coord := strings.Index(rest, "coord:")
	children := strings.Index(rest, "children:")
	if !(0 < op && op < coord && coord < children) {
		t.Errorf("unexpected key order:\n%s", text)
	}
}
