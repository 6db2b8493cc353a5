package uc

// Node is implemented by every AST node. Pos returns the coordinate of the
// leftmost token that contributed to the node.
type Node interface {
	Pos() Coord
}

// Expr is implemented by every node that produces a value. Expressions may
// also appear directly in statement position.
type Expr interface {
	Stmt
	exprNode()
}

// Stmt is implemented by every node allowed in a compound statement body.
type Stmt interface {
	Node
	stmtNode()
}

// DeclType is implemented by the nodes a declarator resolves to: VarDecl,
// ArrayDecl and FuncDecl.
type DeclType interface {
	Node
	declType()
}

//  Top level

// Program is the root of a parsed translation unit. Decls holds
// *GlobalDecl and *FuncDef nodes in source order.
type Program struct {
	Decls []Node
	Coord Coord
}

// GlobalDecl groups the declarators of one file-scope declaration.
//
//	int a, b[3];
//	^^^^^^^^^^^^  GlobalDecl{Decls: [a, b]}
type GlobalDecl struct {
	Decls []*Decl
	Coord Coord
}

// FuncDef is a function definition. ParamDecls holds old-style parameter
// declarations written between the declarator and the body, and is nil
// when there are none.
//
//	int f(a) int a; { return a; }
type FuncDef struct {
	Spec       *Type
	Decl       *Decl
	ParamDecls *DeclList
	Body       *Compound
	Coord      Coord
}

//  Declarations

// Decl binds a name to a resolved type chain and an optional initializer.
type Decl struct {
	Name  *Ident
	Type  DeclType
	Init  Expr // may be nil; *InitList for brace initializers
	Coord Coord
}

// DeclList is a sequence of declarations, used for the init clause of a
// for statement and for old-style parameter declarations.
type DeclList struct {
	Decls []*Decl
	Coord Coord
}

// Type is a base type specifier: "void", "char" or "int".
type Type struct {
	Name  string
	Coord Coord
}

// VarDecl is the innermost link of a resolved type chain: the declared
// name together with its base type.
type VarDecl struct {
	DeclName *Ident
	Type     *Type
	Coord    Coord
}

// ArrayDecl is an "array of Type" link. Dim is nil for "[]".
type ArrayDecl struct {
	Type  DeclType
	Dim   Expr
	Coord Coord
}

// FuncDecl is a "function returning Type" link. Params is nil for "()".
type FuncDecl struct {
	Params *ParamList
	Type   DeclType
	Coord  Coord
}

// ParamList holds the parameter declarations of a function declarator.
type ParamList struct {
	Params []*Decl
	Coord  Coord
}

// InitList is a brace-enclosed initializer; elements may nest.
type InitList struct {
	Exprs []Expr
	Coord Coord
}

//  Statements

// Compound is a braced block. Items holds the block's declarations
// followed by its statements.
type Compound struct {
	Items []Node
	Coord Coord
}

// If represents if (Cond) Then [else Else].
type If struct {
	Cond  Expr
	Then  Stmt
	Else  Stmt // may be nil
	Coord Coord
}

// While represents while (Cond) Body.
type While struct {
	Cond  Expr
	Body  Stmt
	Coord Coord
}

// For represents for (Init; Cond; Next) Body. Init is an Expr, a
// *DeclList or nil; Cond and Next may be nil.
type For struct {
	Init  Node
	Cond  Expr
	Next  Expr
	Body  Stmt
	Coord Coord
}

// Break represents break;
type Break struct {
	Coord Coord
}

// Return represents return [Expr];
type Return struct {
	Expr  Expr // may be nil
	Coord Coord
}

// Assert represents assert Expr;
type Assert struct {
	Expr  Expr
	Coord Coord
}

// Print represents print([Expr]);
type Print struct {
	Expr  Expr // may be nil
	Coord Coord
}

// Read represents read(a, b[i], ...); every argument is an Ident or ArrayRef.
type Read struct {
	Args  []Expr
	Coord Coord
}

// EmptyStatement is a lone ";".
type EmptyStatement struct {
	Coord Coord
}

//  Expressions

// ExprList is a comma expression with at least two elements.
type ExprList struct {
	Exprs []Expr
	Coord Coord
}

// Assignment represents LValue = RValue.
type Assignment struct {
	Op     string
	LValue Expr
	RValue Expr
	Coord  Coord
}

// BinaryOp represents Left Op Right.
//
//	a + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
	Coord Coord
}

// UnaryOp represents Op Expr for the prefix operators + - !.
type UnaryOp struct {
	Op    string
	Expr  Expr
	Coord Coord
}

// ArrayRef represents Name[Subscript].
type ArrayRef struct {
	Name      Expr
	Subscript Expr
	Coord     Coord
}

// FuncCall represents Name(Args...). Args is empty for a zero-argument call.
type FuncCall struct {
	Name  Expr
	Args  []Expr
	Coord Coord
}

// Ident is a reference to a name.
type Ident struct {
	Name  string
	Coord Coord
}

// Constant is a literal. Type is "int", "char" or "string"; Value is the
// source text (quotes stripped for strings).
type Constant struct {
	Type  string
	Value string
	Coord Coord
}

func (n *Program) Pos() Coord        { return n.Coord }
func (n *GlobalDecl) Pos() Coord     { return n.Coord }
func (n *FuncDef) Pos() Coord        { return n.Coord }
func (n *Decl) Pos() Coord           { return n.Coord }
func (n *DeclList) Pos() Coord       { return n.Coord }
func (n *Type) Pos() Coord           { return n.Coord }
func (n *VarDecl) Pos() Coord        { return n.Coord }
func (n *ArrayDecl) Pos() Coord      { return n.Coord }
func (n *FuncDecl) Pos() Coord       { return n.Coord }
func (n *ParamList) Pos() Coord      { return n.Coord }
func (n *InitList) Pos() Coord       { return n.Coord }
func (n *Compound) Pos() Coord       { return n.Coord }
func (n *If) Pos() Coord             { return n.Coord }
func (n *While) Pos() Coord          { return n.Coord }
func (n *For) Pos() Coord            { return n.Coord }
func (n *Break) Pos() Coord          { return n.Coord }
func (n *Return) Pos() Coord         { return n.Coord }
func (n *Assert) Pos() Coord         { return n.Coord }
func (n *Print) Pos() Coord          { return n.Coord }
func (n *Read) Pos() Coord           { return n.Coord }
func (n *EmptyStatement) Pos() Coord { return n.Coord }
func (n *ExprList) Pos() Coord       { return n.Coord }
func (n *Assignment) Pos() Coord     { return n.Coord }
func (n *BinaryOp) Pos() Coord       { return n.Coord }
func (n *UnaryOp) Pos() Coord        { return n.Coord }
func (n *ArrayRef) Pos() Coord       { return n.Coord }
func (n *FuncCall) Pos() Coord       { return n.Coord }
func (n *Ident) Pos() Coord             { return n.Coord }
func (n *Constant) Pos() Coord       { return n.Coord }

func (*VarDecl) declType()   {}
func (*ArrayDecl) declType() {}
func (*FuncDecl) declType()  {}

func (*Compound) stmtNode()       {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*For) stmtNode()            {}
func (*Break) stmtNode()          {}
func (*Return) stmtNode()         {}
func (*Assert) stmtNode()         {}
func (*Print) stmtNode()          {}
func (*Read) stmtNode()           {}
func (*EmptyStatement) stmtNode() {}
func (*ExprList) stmtNode()       {}
func (*Assignment) stmtNode()     {}
func (*BinaryOp) stmtNode()       {}
func (*UnaryOp) stmtNode()        {}
func (*ArrayRef) stmtNode()       {}
func (*FuncCall) stmtNode()       {}
func (*Ident) stmtNode()             {}
func (*Constant) stmtNode()       {}

func (*ExprList) exprNode()   {}
func (*Assignment) exprNode() {}
func (*BinaryOp) exprNode()   {}
func (*UnaryOp) exprNode()    {}
func (*ArrayRef) exprNode()   {}
func (*FuncCall) exprNode()   {}
func (*Ident) exprNode()         {}
func (*Constant) exprNode()   {}
func (*InitList) exprNode()   {}
func (*InitList) stmtNode()   {}
