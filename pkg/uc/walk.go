package uc

// Children returns the direct children of n in source order, skipping
// absent optional children.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil || isNilNode(c) {
			return
		}
		out = append(out, c)
	}

	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			add(d)
		}
	case *GlobalDecl:
		for _, d := range n.Decls {
			add(d)
		}
	case *FuncDef:
		add(n.Spec)
		add(n.Decl)
		add(n.ParamDecls)
		add(n.Body)
	case *Decl:
		add(n.Type)
		add(n.Init)
	case *DeclList:
		for _, d := range n.Decls {
			add(d)
		}
	case *VarDecl:
		add(n.Type)
	case *ArrayDecl:
		add(n.Type)
		add(n.Dim)
	case *FuncDecl:
		add(n.Params)
		add(n.Type)
	case *ParamList:
		for _, d := range n.Params {
			add(d)
		}
	case *InitList:
		for _, e := range n.Exprs {
			add(e)
		}
	case *Compound:
		for _, item := range n.Items {
			add(item)
		}
	case *If:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *While:
		add(n.Cond)
		add(n.Body)
	case *For:
		add(n.Init)
		add(n.Cond)
		add(n.Next)
		add(n.Body)
	case *Return:
		add(n.Expr)
	case *Assert:
		add(n.Expr)
	case *Print:
		add(n.Expr)
	case *Read:
		for _, e := range n.Args {
			add(e)
		}
	case *ExprList:
		for _, e := range n.Exprs {
			add(e)
		}
	case *Assignment:
		add(n.LValue)
		add(n.RValue)
	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	case *UnaryOp:
		add(n.Expr)
	case *ArrayRef:
		add(n.Name)
		add(n.Subscript)
	case *FuncCall:
		add(n.Name)
		for _, e := range n.Args {
			add(e)
		}
	}
	return out
}

// isNilNode catches typed nil pointers stored in interface fields.
func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Type:
		return n == nil
	case *Decl:
		return n == nil
	case *DeclList:
		return n == nil
	case *ParamList:
		return n == nil
	case *Compound:
		return n == nil
	case *Ident:
		return n == nil
	}
	return false
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node before its children. If f returns false the children of
// that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || isNilNode(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
