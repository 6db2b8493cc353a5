package uc

import (
	"bufio"
	"io"
	"strings"
)

// KindOf returns the node kind name used in tree and YAML output.
func KindOf(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *GlobalDecl:
		return "GlobalDecl"
	case *FuncDef:
		return "FuncDef"
	case *Decl:
		return "Decl"
	case *DeclList:
		return "DeclList"
	case *Type:
		return "Type"
	case *VarDecl:
		return "VarDecl"
	case *ArrayDecl:
		return "ArrayDecl"
	case *FuncDecl:
		return "FuncDecl"
	case *ParamList:
		return "ParamList"
	case *InitList:
		return "InitList"
	case *Compound:
		return "Compound"
	case *If:
		return "If"
	case *While:
		return "While"
	case *For:
		return "For"
	case *Break:
		return "Break"
	case *Return:
		return "Return"
	case *Assert:
		return "Assert"
	case *Print:
		return "Print"
	case *Read:
		return "Read"
	case *EmptyStatement:
		return "EmptyStatement"
	case *ExprList:
		return "ExprList"
	case *Assignment:
		return "Assignment"
	case *BinaryOp:
		return "BinaryOp"
	case *UnaryOp:
		return "UnaryOp"
	case *ArrayRef:
		return "ArrayRef"
	case *FuncCall:
		return "FuncCall"
	case *Ident:
		return "ID"
	case *Constant:
		return "Constant"
	}
	return "Unknown"
}

// attributes returns the non-child fields of n rendered as text.
func attributes(n Node) []string {
	switch n := n.(type) {
	case *Decl:
		if n.Name != nil {
			return []string{n.Name.Name}
		}
	case *VarDecl:
		if n.DeclName != nil {
			return []string{n.DeclName.Name}
		}
	case *Type:
		return []string{n.Name}
	case *Ident:
		return []string{n.Name}
	case *Constant:
		return []string{n.Type, n.Value}
	case *BinaryOp:
		return []string{n.Op}
	case *UnaryOp:
		return []string{n.Op}
	case *Assignment:
		return []string{n.Op}
	}
	return nil
}

// Show writes the tree rooted at n, one node per line, children indented
// four spaces below their parent:
//
//	Decl: a
//	    ArrayDecl: @ 1:5
//	        VarDecl: a @ 1:5
//	            Type: int @ 1:1
//	        Constant: int, 10 @ 1:7
func Show(w io.Writer, n Node, showCoord bool) error {
	bw := bufio.NewWriter(w)
	show(bw, n, 0, showCoord)
	return bw.Flush()
}

func show(w *bufio.Writer, n Node, depth int, showCoord bool) {
	w.WriteString(strings.Repeat("    ", depth))
	w.WriteString(KindOf(n))
	w.WriteByte(':')
	if attrs := attributes(n); len(attrs) > 0 {
		w.WriteByte(' ')
		w.WriteString(strings.Join(attrs, ", "))
	}
	if showCoord {
		if c := n.Pos().String(); c != "" {
			w.WriteByte(' ')
			w.WriteString(c)
		}
	}
	w.WriteByte('\n')
	for _, c := range Children(n) {
		show(w, c, depth+1, showCoord)
	}
}

// ShowString returns the Show rendering of n as a string.
func ShowString(n Node, showCoord bool) string {
	var b strings.Builder
	Show(&b, n, showCoord)
	return b.String()
}
