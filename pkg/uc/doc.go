// Package uc provides the front end for uC, a small C-like teaching
// language: a pull-based tokenizer, a declarator resolver and a
// recursive-descent parser that builds an abstract syntax tree.
//
// Pipeline: source text → Lexer → Parser (→ Resolve for declarators) → *Program
//
// Later stages (semantic analysis, code generation) are not part of this
// package; they consume the *Program returned by Parse.
package uc
