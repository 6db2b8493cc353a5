package uc

// Declarator
// ----------
//
// A declarator is the part of a declaration that names the entity being
// declared together with its array and function modifiers. The base type
// is written separately:
//
//	int a, b[10], f(int x), (g[2])();
//	    ^  ^^^^^  ^^^^^^^^  ^^^^^^^^
//
// The parser records each declarator as a Shape tree exactly as written,
// with suffixes wrapping what they follow. Resolve then turns the shape
// and its base type into the nested type chain, independent of the order
// in which the parser recognised the pieces.

// Shape is a declarator as written in the source.
type Shape interface {
	Pos() Coord
	shape()
}

// IdentShape is the declared identifier itself.
type IdentShape struct {
	Name *Ident
}

// ParenShape is a parenthesised declarator: "(" Inner ")".
type ParenShape struct {
	Inner Shape
	Coord Coord
}

// ArrayShape is Inner "[" Size "]". Size is nil for "[]".
type ArrayShape struct {
	Inner Shape
	Size  Expr
	Coord Coord
}

// FuncShape is Inner "(" Params ")". Params is nil for "()".
type FuncShape struct {
	Inner  Shape
	Params *ParamList
	Coord  Coord
}

func (s *IdentShape) Pos() Coord {
	if s.Name == nil {
		return Coord{}
	}
	return s.Name.Coord
}
func (s *ParenShape) Pos() Coord { return s.Coord }
func (s *ArrayShape) Pos() Coord { return s.Coord }
func (s *FuncShape) Pos() Coord  { return s.Coord }

func (*IdentShape) shape() {}
func (*ParenShape) shape() {}
func (*ArrayShape) shape() {}
func (*FuncShape) shape()  {}

// Resolve combines a base type with a declarator shape into a Decl.
//
// Declarators read inside-out: the modifier written next to the identifier
// applies first, so it becomes the outermost link of the type chain and the
// base type ends up innermost, on the VarDecl.
//
//	int a[2][3]   ArrayDecl(2) → ArrayDecl(3) → VarDecl a → int
//	int f()[3]    FuncDecl     → ArrayDecl(3) → VarDecl f → int
//	int (g[2])()  ArrayDecl(2) → FuncDecl     → VarDecl g → int
//
// Parentheses only group. A shape with no identifier leaf resolves to an
// anonymous VarDecl. base is cloned, so the returned tree shares no node
// with it or with any other Resolve result.
func Resolve(base *Type, s Shape) *Decl {
	var name *Ident
	chain := resolve(s, nil, &name)

	var baseCopy *Type
	if base != nil {
		baseCopy = &Type{Name: base.Name, Coord: base.Coord}
	}
	leaf := &VarDecl{Type: baseCopy}
	if name != nil {
		leaf.DeclName = &Ident{Name: name.Name, Coord: name.Coord}
		leaf.Coord = name.Coord
	} else if s != nil {
		leaf.Coord = s.Pos()
	}

	var typ DeclType = leaf
	if chain != nil {
		attach(chain, leaf)
		typ = chain
	}

	d := &Decl{Name: name, Type: typ}
	switch {
	case s != nil && s.Pos().IsValid():
		d.Coord = s.Pos()
	case base != nil:
		d.Coord = base.Coord
	}
	return d
}

// resolve walks s from the outside in. Each array or function suffix takes
// the chain built so far (the modifiers written to its right) as its
// element or return type, and becomes the new head. The chain ends with a
// nil Type slot that attach fills with the VarDecl.
func resolve(s Shape, head DeclType, name **Ident) DeclType {
	switch s := s.(type) {
	case *IdentShape:
		*name = s.Name
		return head
	case *ParenShape:
		return resolve(s.Inner, head, name)
	case *ArrayShape:
		return resolve(s.Inner, &ArrayDecl{Type: head, Dim: s.Size, Coord: s.Coord}, name)
	case *FuncShape:
		return resolve(s.Inner, &FuncDecl{Type: head, Params: s.Params, Coord: s.Coord}, name)
	}
	return head
}

// attach stores leaf in the empty Type slot at the end of chain.
func attach(chain DeclType, leaf *VarDecl) {
	for {
		switch n := chain.(type) {
		case *ArrayDecl:
			if n.Type == nil {
				n.Type = leaf
				return
			}
			chain = n.Type
		case *FuncDecl:
			if n.Type == nil {
				n.Type = leaf
				return
			}
			chain = n.Type
		default:
			return
		}
	}
}
