package uc

import (
	"fmt"
	"os"
)

// Parser pulls tokens from a Lexer one at a time and builds an AST.
//
// Grammar:
//
//	program         = global_decl { global_decl } EOF
//	global_decl     = type_spec ";"
//	                | type_spec declarator { declaration } compound
//	                | type_spec init_decl { "," init_decl } ";"
//	type_spec       = "void" | "char" | "int"
//	declarator      = ( ID | "(" declarator ")" ) { "[" [ binary ] "]" | "(" [ params ] ")" }
//	params          = type_spec declarator { "," type_spec declarator }
//	declaration     = type_spec [ init_decl { "," init_decl } ] ";"
//	init_decl       = declarator [ "=" initializer ]
//	initializer     = assignment | "{" [ initializer { "," initializer } [ "," ] ] "}"
//	compound        = "{" { declaration } { statement } "}"
//	statement       = [ expression ] ";" | compound
//	                | "if" "(" expression ")" statement [ "else" statement ]
//	                | "while" "(" expression ")" statement
//	                | "for" "(" ( declaration | [ expression ] ";" ) [ expression ] ";" [ expression ] ")" statement
//	                | "break" ";" | "return" [ expression ] ";" | "assert" expression ";"
//	                | "print" "(" [ expression ] ")" ";"
//	                | "read" "(" lvalue { "," lvalue } ")" ";"
//	expression      = assignment { "," assignment }
//	assignment      = binary [ "=" assignment ]        (left side must be an lvalue)
//	binary          = logical_or
//	logical_or      = logical_and { "||" logical_and }
//	logical_and     = equality { "&&" equality }
//	equality        = relational { ( "==" | "!=" ) relational }
//	relational      = additive { ( "<" | "<=" | ">" | ">=" ) additive }
//	additive        = multiplicative { ( "+" | "-" ) multiplicative }
//	multiplicative  = unary { ( "*" | "/" | "%" ) unary }
//	unary           = ( "+" | "-" | "!" ) unary | postfix
//	postfix         = primary { "[" expression "]" | "(" [ assignment { "," assignment } ] ")" }
//	primary         = ID | INT_CONST | CHAR_CONST | STRING_LITERAL | "(" expression ")"
//	lvalue          = an assignment that is an ID or an ArrayRef
//
// An else always binds to the nearest if, since parseIf consumes it before
// returning to any enclosing if.
type Parser struct {
	lx     *Lexer
	name   string
	tok    Token // current lookahead token
	lexErr error // first lexical error; the parser sees EOF from then on
}

// NewParser returns a parser reading from lx. name identifies the source
// in the end-of-input message.
func NewParser(name string, lx *Lexer) *Parser {
	return &Parser{lx: lx, name: name}
}

// Parse parses a whole program. It stops at the first lexical or syntax
// error and returns it as a *LexError or *SyntaxError; no partial tree is
// returned. Parse rewinds the lexer, so calling it again yields an equal
// tree.
func (p *Parser) Parse() (*Program, error) {
	p.lx.Reset()
	p.lexErr = nil
	p.next()

	prog, err := p.parseProgram()
	if p.lexErr != nil {
		return nil, p.lexErr
	}
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// Parse parses src; name is used in diagnostics.
func Parse(name, src string) (*Program, error) {
	return NewParser(name, NewLexer(src)).Parse()
}

// ParseFile reads the whole file at path and parses it.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// next advances to the following token. After a lexical error the parser
// only sees EOF, so the current production fails and Parse reports the
// lexical error.
func (p *Parser) next() {
	if p.lexErr != nil {
		return
	}
	tok, err := p.lx.Next()
	if err != nil {
		p.lexErr = err
		tok = Token{Kind: EOF}
	}
	p.tok = tok
}

// unexpected builds the error for a token that cannot extend the current
// production.
func (p *Parser) unexpected() error {
	if p.tok.Kind == EOF {
		return &SyntaxError{
			Kind:  UnexpectedEndOfInput,
			Msg:   fmt.Sprintf("At the end of input (%s)", p.name),
			Token: p.tok,
		}
	}
	return &SyntaxError{
		Kind:  UnexpectedToken,
		Msg:   fmt.Sprintf("Before %s", p.tok.Value),
		Coord: p.tok.Coord(),
		Token: p.tok,
	}
}

// expect consumes the current token if it is of kind k.
func (p *Parser) expect(k TokenKind) (Token, error) {
	if p.tok.Kind != k {
		return p.tok, p.unexpected()
	}
	tok := p.tok
	p.next()
	return tok, nil
}

//  Declarations

func (p *Parser) parseProgram() (*Program, error) {
	prog := &Program{Coord: p.tok.Coord()}
	for {
		d, err := p.parseGlobalDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, d)
		if p.tok.Kind == EOF {
			return prog, nil
		}
	}
}

// parseGlobalDecl parses a function definition or a file-scope declaration.
// The two share a prefix up to the first declarator; a following "{" or
// type specifier selects the function definition.
func (p *Parser) parseGlobalDecl() (Node, error) {
	spec, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == SEMI {
		p.next()
		return &GlobalDecl{Coord: spec.Coord}, nil
	}

	shape, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == LBRACE || p.tok.Kind.IsTypeSpecifier() {
		return p.parseFuncDef(spec, shape)
	}

	decls, err := p.parseInitDeclarators(spec, shape)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return &GlobalDecl{Decls: decls, Coord: spec.Coord}, nil
}

// parseFuncDef parses the optional parameter declarations and the body of
// a function whose specifier and declarator were already read.
func (p *Parser) parseFuncDef(spec *Type, shape Shape) (*FuncDef, error) {
	fn := &FuncDef{Spec: spec, Decl: Resolve(spec, shape), Coord: spec.Coord}

	if p.tok.Kind.IsTypeSpecifier() {
		fn.ParamDecls = &DeclList{Coord: p.tok.Coord()}
		for p.tok.Kind.IsTypeSpecifier() {
			decls, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			fn.ParamDecls.Decls = append(fn.ParamDecls.Decls, decls...)
		}
	}

	body, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (p *Parser) parseTypeSpec() (*Type, error) {
	if !p.tok.Kind.IsTypeSpecifier() {
		return nil, p.unexpected()
	}
	t := &Type{Name: p.tok.Value, Coord: p.tok.Coord()}
	p.next()
	return t, nil
}

// parseDeclarator reads a declarator into a Shape without interpreting it;
// Resolve combines it with the base type later.
func (p *Parser) parseDeclarator() (Shape, error) {
	var s Shape
	switch p.tok.Kind {
	case ID:
		s = &IdentShape{Name: &Ident{Name: p.tok.Value, Coord: p.tok.Coord()}}
		p.next()
	case LPAREN:
		start := p.tok.Coord()
		p.next()
		inner, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		s = &ParenShape{Inner: inner, Coord: start}
	default:
		return nil, p.unexpected()
	}

	start := s.Pos()
	for {
		switch p.tok.Kind {
		case LBRACKET:
			p.next()
			var size Expr
			if p.tok.Kind != RBRACKET {
				var err error
				if size, err = p.parseBinary(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(RBRACKET); err != nil {
				return nil, err
			}
			s = &ArrayShape{Inner: s, Size: size, Coord: start}
		case LPAREN:
			p.next()
			var params *ParamList
			if p.tok.Kind != RPAREN {
				var err error
				if params, err = p.parseParamList(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(RPAREN); err != nil {
				return nil, err
			}
			s = &FuncShape{Inner: s, Params: params, Coord: start}
		default:
			return s, nil
		}
	}
}

func (p *Parser) parseParamList() (*ParamList, error) {
	list := &ParamList{Coord: p.tok.Coord()}
	for {
		spec, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		shape, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		list.Params = append(list.Params, Resolve(spec, shape))
		if p.tok.Kind != COMMA {
			return list, nil
		}
		p.next()
	}
}

// parseDeclaration parses a full declaration including its terminating
// ";". A declaration without declarators ("int;") yields no Decls.
func (p *Parser) parseDeclaration() ([]*Decl, error) {
	spec, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == SEMI {
		p.next()
		return nil, nil
	}
	shape, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	decls, err := p.parseInitDeclarators(spec, shape)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return decls, nil
}

// parseInitDeclarators parses the comma-separated init-declarators of a
// declaration whose first declarator has already been read.
func (p *Parser) parseInitDeclarators(spec *Type, first Shape) ([]*Decl, error) {
	var decls []*Decl
	shape := first
	for {
		d := Resolve(spec, shape)
		if p.tok.Kind == EQUALS {
			p.next()
			val, err := p.parseInitializer()
			if err != nil {
				return nil, err
			}
			d.Init = val
		}
		decls = append(decls, d)

		if p.tok.Kind != COMMA {
			return decls, nil
		}
		p.next()
		var err error
		if shape, err = p.parseDeclarator(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseInitializer() (Expr, error) {
	if p.tok.Kind != LBRACE {
		return p.parseAssignment()
	}
	list := &InitList{Coord: p.tok.Coord()}
	p.next()
	for p.tok.Kind != RBRACE {
		e, err := p.parseInitializer()
		if err != nil {
			return nil, err
		}
		list.Exprs = append(list.Exprs, e)
		if p.tok.Kind != COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return list, nil
}

//  Statements

// parseCompound parses { declarations... statements... }.
func (p *Parser) parseCompound() (*Compound, error) {
	lbrace, err := p.expect(LBRACE)
	if err != nil {
		return nil, err
	}
	block := &Compound{Coord: lbrace.Coord()}

	for p.tok.Kind.IsTypeSpecifier() {
		decls, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		for _, d := range decls {
			block.Items = append(block.Items, d)
		}
	}
	for p.tok.Kind != RBRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, stmt)
	}
	p.next()
	return block, nil
}

// parseStatement dispatches to the correct sub-parser based on the leading token.
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Kind {
	case LBRACE:
		return p.parseCompound()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case FOR:
		return p.parseFor()
	case BREAK:
		kw := p.tok
		p.next()
		if _, err := p.expect(SEMI); err != nil {
			return nil, err
		}
		return &Break{Coord: kw.Coord()}, nil
	case RETURN:
		return p.parseReturn()
	case ASSERT:
		kw := p.tok
		p.next()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(SEMI); err != nil {
			return nil, err
		}
		return &Assert{Expr: e, Coord: kw.Coord()}, nil
	case PRINT:
		return p.parsePrint()
	case READ:
		return p.parseRead()
	case SEMI:
		semi := p.tok
		p.next()
		return &EmptyStatement{Coord: semi.Coord()}, nil
	}

	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return e, nil
}

// parseCondition parses "(" expression ")".
func (p *Parser) parseCondition() (Expr, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIf parses if ( cond ) then [ else otherwise ].
func (p *Parser) parseIf() (Stmt, error) {
	kw := p.tok
	p.next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &If{Cond: cond, Then: then, Coord: kw.Coord()}
	if p.tok.Kind == ELSE {
		p.next()
		if stmt.Else, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseWhile parses while ( cond ) body
func (p *Parser) parseWhile() (Stmt, error) {
	kw := p.tok
	p.next()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body, Coord: kw.Coord()}, nil
}

// parseFor parses for ( init; cond; next ) body, where init is empty, an
// expression, or a declaration (which brings its own ";").
func (p *Parser) parseFor() (Stmt, error) {
	kw := p.tok
	p.next()
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	stmt := &For{Coord: kw.Coord()}

	switch {
	case p.tok.Kind.IsTypeSpecifier():
		start := p.tok.Coord()
		decls, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmt.Init = &DeclList{Decls: decls, Coord: start}
	default:
		if p.tok.Kind != SEMI {
			first, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			stmt.Init = first
		}
		if _, err := p.expect(SEMI); err != nil {
			return nil, err
		}
	}

	if p.tok.Kind != SEMI {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}

	if p.tok.Kind != RPAREN {
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Next = next
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// parseReturn parses return [ expr ] ;
func (p *Parser) parseReturn() (Stmt, error) {
	kw := p.tok
	p.next()
	stmt := &Return{Coord: kw.Coord()}
	if p.tok.Kind != SEMI {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Expr = e
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parsePrint parses print ( [ expr ] ) ;
func (p *Parser) parsePrint() (Stmt, error) {
	kw := p.tok
	p.next()
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	stmt := &Print{Coord: kw.Coord()}
	if p.tok.Kind != RPAREN {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Expr = e
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseRead parses read ( lvalue { , lvalue } ) ;
func (p *Parser) parseRead() (Stmt, error) {
	kw := p.tok
	p.next()
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	stmt := &Read{Coord: kw.Coord()}
	for {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if !isLvalue(arg) {
			return nil, p.unexpected()
		}
		stmt.Args = append(stmt.Args, arg)
		if p.tok.Kind != COMMA {
			break
		}
		p.next()
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

//  Expressions

// parseExpression parses a comma expression. A single element is returned
// as is; two or more are wrapped in an ExprList.
func (p *Parser) parseExpression() (Expr, error) {
	first, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != COMMA {
		return first, nil
	}
	list := &ExprList{Exprs: []Expr{first}, Coord: first.Pos()}
	for p.tok.Kind == COMMA {
		p.next()
		e, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		list.Exprs = append(list.Exprs, e)
	}
	return list, nil
}

// parseAssignment parses lvalue = assignment, recursing on the right so
// that a = b = c groups as a = (b = c).
func (p *Parser) parseAssignment() (Expr, error) {
	left, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EQUALS {
		return left, nil
	}
	if !isLvalue(left) {
		return nil, p.unexpected()
	}
	op := p.tok
	p.next()
	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &Assignment{Op: op.Value, LValue: left, RValue: right, Coord: left.Pos()}, nil
}

// isLvalue reports whether e may be assigned to or read into.
func isLvalue(e Expr) bool {
	switch e.(type) {
	case *Ident, *ArrayRef:
		return true
	}
	return false
}

// parseBinary is the entry point of the binary operator ladder; it is also
// the grammar for array dimensions.
func (p *Parser) parseBinary() (Expr, error) {
	return p.parseLogicalOr()
}

// parseLeftAssoc parses operand { op operand } for the given operator kinds,
// grouping to the left.
func (p *Parser) parseLeftAssoc(operand func() (Expr, error), ops ...TokenKind) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for isOneOf(p.tok.Kind, ops) {
		op := p.tok
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op.Value, Left: expr, Right: right, Coord: expr.Pos()}
	}
	return expr, nil
}

func isOneOf(k TokenKind, kinds []TokenKind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// parseLogicalOr handles ||
func (p *Parser) parseLogicalOr() (Expr, error) {
	return p.parseLeftAssoc(p.parseLogicalAnd, OR)
}

// parseLogicalAnd handles &&
func (p *Parser) parseLogicalAnd() (Expr, error) {
	return p.parseLeftAssoc(p.parseEquality, AND)
}

// parseEquality handles == and !=
func (p *Parser) parseEquality() (Expr, error) {
	return p.parseLeftAssoc(p.parseRelational, EQ, NE)
}

// parseRelational handles < <= > >=
func (p *Parser) parseRelational() (Expr, error) {
	return p.parseLeftAssoc(p.parseAdditive, LT, LE, GT, GE)
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	return p.parseLeftAssoc(p.parseMultiplicative, PLUS, MINUS)
}

// parseMultiplicative handles * / %
func (p *Parser) parseMultiplicative() (Expr, error) {
	return p.parseLeftAssoc(p.parseUnary, TIMES, DIVIDE, MOD)
}

// parseUnary handles the prefix operators + - !
func (p *Parser) parseUnary() (Expr, error) {
	switch p.tok.Kind {
	case PLUS, MINUS, NOT:
		op := p.tok
		p.next()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: op.Value, Expr: e, Coord: op.Coord()}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles array indexing and calls, chained left to right.
func (p *Parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Kind {
		case LBRACKET:
			p.next()
			sub, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RBRACKET); err != nil {
				return nil, err
			}
			expr = &ArrayRef{Name: expr, Subscript: sub, Coord: expr.Pos()}
		case LPAREN:
			p.next()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &FuncCall{Name: expr, Args: args, Coord: expr.Pos()}
		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses the arguments after "(" up to and including ")".
func (p *Parser) parseCallArgs() ([]Expr, error) {
	var args []Expr
	if p.tok.Kind != RPAREN {
		for {
			arg, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.tok.Kind != COMMA {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary handles names, constants and parenthesised expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.tok
	switch tok.Kind {
	case ID:
		p.next()
		return &Ident{Name: tok.Value, Coord: tok.Coord()}, nil
	case INT_CONST:
		p.next()
		return &Constant{Type: "int", Value: tok.Value, Coord: tok.Coord()}, nil
	case CHAR_CONST:
		p.next()
		return &Constant{Type: "char", Value: tok.Value, Coord: tok.Coord()}, nil
	case STRING_LITERAL:
		p.next()
		return &Constant{Type: "string", Value: tok.Value, Coord: tok.Coord()}, nil
	case LPAREN:
		p.next()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.unexpected()
}
