package parser

import (
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func (p *parser) parseExpr() ast.Expr {
	if p.atLambda() {
		return p.parseLambda()
	}
	x := p.parseTernary()
	if k := p.tok().Kind; k.IsAssignOp() {
		op := p.next()
		return &ast.AssignExpr{Target: x, OpPos: op.Pos, Op: k, Value: p.parseExpr()}
	}
	return x
}

func (p *parser) parseExprList() []ast.Expr {
	list := []ast.Expr{p.parseExpr()}
	for p.got(token.COMMA) {
		list = append(list, p.parseExpr())
	}
	return list
}

func (p *parser) parseTernary() ast.Expr {
	cond := p.parseBinary(1)
	if !p.got(token.QUESTION) {
		return cond
	}
	then := p.parseExpr()
	p.expect(token.COLON)
	var els ast.Expr
	if p.atLambda() {
		els = p.parseLambda()
	} else {
		els = p.parseTernary()
	}
	return &ast.CondExpr{Cond: cond, Then: then, Else: els}
}

func precedence(k token.Kind) int {
	switch k {
	case token.LOR:
		return 1
	case token.LAND:
		return 2
	case token.OR:
		return 3
	case token.XOR:
		return 4
	case token.AND:
		return 5
	case token.EQL, token.NEQ:
		return 6
	case token.LT, token.GT, token.LEQ, token.GEQ, token.INSTANCEOF:
		return 7
	case token.SHL, token.SHR, token.USHR:
		return 8
	case token.ADD, token.SUB:
		return 9
	case token.MUL, token.QUO, token.REM:
		return 10
	}
	return 0
}

// binaryOp returns the operator at the current position and the number of
// tokens it spans. Adjacent '>' tokens form the shift operators.
func (p *parser) binaryOp() (token.Kind, int) {
	t := p.tok()
	if t.Kind != token.GT {
		return t.Kind, 1
	}
	n := 1
	for n < 3 {
		nt := p.peek(n)
		if nt.Kind != token.GT || nt.Pos.Offset != p.peek(n-1).End.Offset {
			break
		}
		n++
	}
	switch n {
	case 2:
		return token.SHR, 2
	case 3:
		return token.USHR, 3
	}
	return token.GT, 1
}

func (p *parser) parseBinary(prec1 int) ast.Expr {
	x := p.parseUnary()
	for {
		op, n := p.binaryOp()
		prec := precedence(op)
		if prec < prec1 {
			return x
		}
		opPos := p.tok().Pos
		for i := 0; i < n; i++ {
			p.next()
		}
		if op == token.INSTANCEOF {
			x = p.parseInstanceOfRest(x)
			continue
		}
		x = &ast.BinaryExpr{X: x, OpPos: opPos, Op: op, Y: p.parseBinary(prec + 1)}
	}
}

func (p *parser) parseInstanceOfRest(x ast.Expr) ast.Expr {
	e := &ast.InstanceOfExpr{X: x}
	e.Final = p.got(token.FINAL)
	e.Type = p.parseType()
	if p.at(token.IDENT) {
		name := p.next()
		e.Binding, e.BindingPos = name.Lit, name.Pos
	}
	e.EndPos = p.prev.End
	return e
}

func (p *parser) parseUnary() ast.Expr {
	t := p.tok()
	switch t.Kind {
	case token.ADD, token.SUB, token.INC, token.DEC, token.NOT, token.TILDE:
		p.next()
		return &ast.UnaryExpr{OpPos: t.Pos, Op: t.Kind, X: p.parseUnary()}
	case token.LPAREN:
		if x := p.tryCast(); x != nil {
			return x
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

// tryCast parses a cast if the parenthesised tokens ahead form one, and
// returns nil without consuming anything otherwise.
func (p *parser) tryCast() ast.Expr {
	m := p.mark()
	lparen := p.next()
	var types []*ast.Type
	ok := p.try(func() {
		types = append(types, p.parseType())
		for p.got(token.AND) {
			types = append(types, p.parseType())
		}
		p.expect(token.RPAREN)
	})
	if !ok {
		p.reset(m)
		return nil
	}

	primitive := len(types) == 1 && types[0].Primitive && types[0].Dims == 0
	switch {
	case p.atLambda():
		return &ast.CastExpr{Lparen: lparen.Pos, Types: types, X: p.parseLambda()}
	case primitive || startsOperand(p.tok().Kind):
		return &ast.CastExpr{Lparen: lparen.Pos, Types: types, X: p.parseUnary()}
	}
	p.reset(m)
	return nil
}

// startsOperand reports whether k can begin the operand of a reference
// type cast. Unary plus and minus are excluded: "(a) - b" is a subtraction.
func startsOperand(k token.Kind) bool {
	switch k {
	case token.IDENT, token.INT, token.FLOAT, token.CHARACTER, token.STRING, token.TEXTBLOCK,
		token.TRUE, token.FALSE, token.NULL, token.LPAREN, token.NOT, token.TILDE,
		token.THIS, token.SUPER, token.NEW, token.SWITCH:
		return true
	}
	return k.IsPrimitive()
}

// atLambda reports whether a lambda expression starts here.
func (p *parser) atLambda() bool {
	switch p.tok().Kind {
	case token.IDENT:
		return p.peek(1).Kind == token.ARROW
	case token.LPAREN:
		depth := 0
		for i := 0; ; i++ {
			switch p.peek(i).Kind {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
				if depth == 0 {
					return p.peek(i+1).Kind == token.ARROW
				}
			case token.EOF:
				return false
			}
		}
	}
	return false
}

func (p *parser) parseLambda() ast.Expr {
	l := &ast.LambdaExpr{Start: p.tok().Pos}
	if p.at(token.IDENT) {
		name := p.next()
		l.Params = []*ast.Param{{Name: name.Lit, NamePos: name.Pos, EndPos: name.End}}
	} else {
		p.expect(token.LPAREN)
		l.Parens = true
		for !p.at(token.RPAREN) {
			if k := p.peek(1).Kind; p.at(token.IDENT) && (k == token.COMMA || k == token.RPAREN) {
				name := p.next()
				l.Params = append(l.Params, &ast.Param{Name: name.Lit, NamePos: name.Pos, EndPos: name.End})
			} else {
				l.Params = append(l.Params, p.parseParam())
			}
			if !p.got(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	l.Arrow = p.expect(token.ARROW).Pos
	if p.at(token.LBRACE) {
		l.Body = p.parseBlock()
	} else {
		l.Body = p.parseExpr()
	}
	return l
}

func (p *parser) parseArgs() (lparen token.Pos, args []ast.Expr, rparen token.Pos) {
	lparen = p.expect(token.LPAREN).Pos
	for !p.at(token.RPAREN) {
		args = append(args, p.parseExpr())
		if !p.got(token.COMMA) {
			break
		}
	}
	rparen = p.expect(token.RPAREN).Pos
	return lparen, args, rparen
}

func (p *parser) parsePrimary() ast.Expr {
	t := p.tok()
	switch t.Kind {
	case token.INT, token.FLOAT, token.CHARACTER, token.STRING, token.TEXTBLOCK,
		token.TRUE, token.FALSE, token.NULL:
		p.next()
		return &ast.Literal{ValuePos: t.Pos, Kind: t.Kind, Value: t.Lit}

	case token.LPAREN:
		p.next()
		x := &ast.ParenExpr{Lparen: t.Pos, X: p.parseExpr()}
		x.Rparen = p.expect(token.RPAREN).Pos
		return x

	case token.THIS:
		p.next()
		if p.at(token.LPAREN) {
			return p.parseCallRest(nil, nil, t)
		}
		return &ast.ThisExpr{Start: t.Pos, EndPos: t.End}

	case token.SUPER:
		p.next()
		if p.at(token.LPAREN) {
			return p.parseCallRest(nil, nil, t)
		}
		return &ast.SuperExpr{Start: t.Pos, EndPos: t.End}

	case token.NEW:
		return p.parseNew(nil)

	case token.SWITCH:
		p.next()
		x := &ast.SwitchExpr{Switch: t.Pos}
		x.Tag, x.Cases, x.Rbrace = p.parseSwitchBody()
		return x

	case token.IDENT:
		generic := p.peek(1).Kind == token.LT
		array := p.peek(1).Kind == token.LBRACK && p.peek(2).Kind == token.RBRACK
		if generic || array {
			if x := p.tryTypeOperand(); x != nil {
				return x
			}
		}
		p.next()
		if p.at(token.LPAREN) {
			return p.parseCallRest(nil, nil, t)
		}
		return &ast.Name{NamePos: t.Pos, Name: t.Lit}
	}

	if t.Kind.IsPrimitive() || t.Kind == token.VOID {
		if x := p.tryTypeOperand(); x != nil {
			return x
		}
	}
	p.errorExpected("expression")
	return nil
}

// tryTypeOperand parses "Type.class" or "Type::name" where Type is written
// with type arguments, array dimensions or a primitive keyword.
func (p *parser) tryTypeOperand() ast.Expr {
	m := p.mark()
	var typ *ast.Type
	if !p.try(func() { typ = p.parseType() }) {
		return nil
	}
	switch {
	case p.at(token.DCOLON):
		return p.parseMethodRefRest(nil, typ)
	case p.at(token.DOT) && p.peek(1).Kind == token.CLASS:
		p.next()
		return &ast.ClassLit{Type: typ, EndPos: p.next().End}
	}
	p.reset(m)
	return nil
}

// parseCallRest parses the argument list of a call whose name token has
// been consumed.
func (p *parser) parseCallRest(x ast.Expr, targs []*ast.Type, name token.Token) *ast.MethodCall {
	c := &ast.MethodCall{X: x, TypeArgs: targs, Name: name.Lit, NamePos: name.Pos}
	c.Lparen, c.Args, c.Rparen = p.parseArgs()
	return c
}

func (p *parser) parseMethodRefRest(x ast.Expr, typ *ast.Type) *ast.MethodRef {
	p.expect(token.DCOLON)
	if p.at(token.LT) {
		p.parseTypeArgs(&ast.Type{})
	}
	r := &ast.MethodRef{X: x, Type: typ}
	if p.at(token.NEW) {
		r.Name = "new"
		r.EndPos = p.next().End
	} else {
		name := p.expect(token.IDENT)
		r.Name, r.EndPos = name.Lit, name.End
	}
	return r
}

func (p *parser) parseNew(outer ast.Expr) ast.Expr {
	newPos := p.expect(token.NEW).Pos
	if p.at(token.LT) {
		p.parseTypeArgs(&ast.Type{})
	}
	p.parseModifiers()
	typ := p.parseBaseType()

	if p.at(token.LBRACK) {
		a := &ast.NewArray{New: newPos, Elem: typ}
		for p.got(token.LBRACK) {
			if p.got(token.RBRACK) {
				a.Dims++
				continue
			}
			if a.Dims > 0 {
				p.errorExpected("']'")
			}
			a.DimExprs = append(a.DimExprs, p.parseExpr())
			p.expect(token.RBRACK)
		}
		if p.at(token.LBRACE) {
			a.Init = p.parseArrayInit(p.parseVarInit)
		}
		a.EndPos = p.prev.End
		return a
	}

	x := &ast.NewExpr{New: newPos, Outer: outer, Type: typ}
	_, x.Args, x.Rparen = p.parseArgs()
	if p.at(token.LBRACE) {
		x.Body = p.parseClassBody("")
	}
	return x
}

func (p *parser) parsePostfix(x ast.Expr) ast.Expr {
	for {
		t := p.tok()
		switch t.Kind {
		case token.DOT:
			p.next()
			x = p.parseSelector(x)
		case token.LBRACK:
			if p.peek(1).Kind == token.RBRACK {
				x = p.parseQualifiedTypeOperand(x)
				continue
			}
			p.next()
			idx := &ast.IndexExpr{X: x, Index: p.parseExpr()}
			idx.Rbrack = p.expect(token.RBRACK).Pos
			x = idx
		case token.DCOLON:
			x = p.parseMethodRefRest(x, nil)
		case token.INC, token.DEC:
			p.next()
			x = &ast.PostfixExpr{X: x, Op: t.Kind, EndPos: t.End}
		default:
			return x
		}
	}
}

// parseSelector parses what follows a '.' after x.
func (p *parser) parseSelector(x ast.Expr) ast.Expr {
	t := p.tok()
	switch t.Kind {
	case token.IDENT:
		p.next()
		if p.at(token.LPAREN) {
			return p.parseCallRest(x, nil, t)
		}
		return &ast.FieldAccess{X: x, Sel: t.Lit, SelPos: t.Pos}
	case token.LT:
		var generic ast.Type
		p.parseTypeArgs(&generic)
		return p.parseCallRest(x, generic.Args, p.expect(token.IDENT))
	case token.NEW:
		return p.parseNew(x)
	case token.THIS, token.SUPER, token.CLASS:
		qual, ok := qualifiedName(x)
		if !ok {
			p.errorExpected("identifier")
		}
		p.next()
		switch t.Kind {
		case token.THIS:
			return &ast.ThisExpr{Start: x.Pos(), Qualifier: qual, EndPos: t.End}
		case token.SUPER:
			return &ast.SuperExpr{Start: x.Pos(), Qualifier: qual, EndPos: t.End}
		}
		typ := &ast.Type{Start: x.Pos(), Name: qual, EndPos: x.End()}
		return &ast.ClassLit{Type: typ, EndPos: t.End}
	}
	p.errorExpected("identifier")
	return nil
}

// parseQualifiedTypeOperand handles "a.b.C[].class" and "a.b.C[]::new"
// once the qualified name has been parsed as an expression.
func (p *parser) parseQualifiedTypeOperand(x ast.Expr) ast.Expr {
	qual, ok := qualifiedName(x)
	if !ok {
		p.errorExpected("expression")
	}
	typ := &ast.Type{Start: x.Pos(), Name: qual}
	typ.Dims = p.parseDims()
	typ.EndPos = p.prev.End
	if p.at(token.DCOLON) {
		return p.parseMethodRefRest(nil, typ)
	}
	p.expect(token.DOT)
	return &ast.ClassLit{Type: typ, EndPos: p.expect(token.CLASS).End}
}

// qualifiedName returns the dotted name spelled by a chain of names and
// field accesses.
func qualifiedName(x ast.Expr) (string, bool) {
	switch x := x.(type) {
	case *ast.Name:
		return x.Name, true
	case *ast.FieldAccess:
		prefix, ok := qualifiedName(x.X)
		return prefix + "." + x.Sel, ok
	}
	return "", false
}
