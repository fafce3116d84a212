package parser

import (
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func (p *parser) parseBlock() *ast.Block {
	b := &ast.Block{Lbrace: p.expect(token.LBRACE).Pos}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		b.Stmts = append(b.Stmts, p.parseStmt())
	}
	b.Orphans = p.orphans(p.tok().Pos)
	b.Rbrace = p.expect(token.RBRACE).Pos
	return b
}

// parseStmt parses one block statement with its attached comments.
func (p *parser) parseStmt() ast.Stmt {
	lead := p.leading(p.tok().Pos)
	s := p.parseStmtBody()
	c := s.Comments()
	c.Leading, c.Trailing = lead, p.trailing()
	return s
}

// parseBody parses the body of a compound statement. A braced body takes
// no comments of its own; those around it belong to the enclosing
// statement.
func (p *parser) parseBody() ast.Stmt {
	if p.at(token.LBRACE) {
		return p.parseBlock()
	}
	return p.parseStmt()
}

func (p *parser) parseStmtBody() ast.Stmt {
	t := p.tok()
	switch t.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		return &ast.EmptyStmt{Semi: p.next().Pos}
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		p.next()
		s := &ast.WhileStmt{While: t.Pos, Cond: p.parseParenExpr()}
		s.Body = p.parseBody()
		return s
	case token.DO:
		p.next()
		s := &ast.DoStmt{Do: t.Pos, Body: p.parseBody()}
		p.expect(token.WHILE)
		s.Cond = p.parseParenExpr()
		s.Semi = p.expect(token.SEMICOLON).Pos
		return s
	case token.FOR:
		return p.parseFor()
	case token.TRY:
		return p.parseTry()
	case token.SWITCH:
		p.next()
		s := &ast.SwitchStmt{Switch: t.Pos}
		s.Tag, s.Cases, s.Rbrace = p.parseSwitchBody()
		return s
	case token.RETURN:
		p.next()
		s := &ast.ReturnStmt{Return: t.Pos}
		if !p.at(token.SEMICOLON) {
			s.X = p.parseExpr()
		}
		s.Semi = p.expect(token.SEMICOLON).Pos
		return s
	case token.BREAK, token.CONTINUE:
		p.next()
		s := &ast.BranchStmt{TokPos: t.Pos, Tok: t.Kind}
		if p.at(token.IDENT) {
			s.Label = p.next().Lit
		}
		s.Semi = p.expect(token.SEMICOLON).Pos
		return s
	case token.THROW:
		p.next()
		s := &ast.ThrowStmt{Throw: t.Pos, X: p.parseExpr()}
		s.Semi = p.expect(token.SEMICOLON).Pos
		return s
	case token.ASSERT:
		p.next()
		s := &ast.AssertStmt{Assert: t.Pos, Cond: p.parseExpr()}
		if p.got(token.COLON) {
			s.Msg = p.parseExpr()
		}
		s.Semi = p.expect(token.SEMICOLON).Pos
		return s
	case token.SYNCHRONIZED:
		if p.peek(1).Kind == token.LPAREN {
			p.next()
			s := &ast.SyncStmt{Sync: t.Pos, Lock: p.parseParenExpr()}
			s.Body = p.parseBlock()
			return s
		}
	case token.IDENT:
		switch {
		case p.peek(1).Kind == token.COLON:
			p.next()
			p.next()
			return &ast.LabeledStmt{LabelPos: t.Pos, Label: t.Lit, Stmt: p.parseStmt()}
		case t.Lit == "yield" && p.atYield():
			p.next()
			s := &ast.YieldStmt{Yield: t.Pos, X: p.parseExpr()}
			s.Semi = p.expect(token.SEMICOLON).Pos
			return s
		}
	}

	if t.Kind == token.AT || t.Kind.IsModifier() || p.atClassDecl() {
		mods := p.parseModifiers()
		if p.atClassDecl() {
			return &ast.ClassStmt{Decl: p.parseClassDecl(mods)}
		}
		return p.parseLocalVarDecl(mods)
	}
	if t.Kind.IsPrimitive() || p.atLocalVarDecl() {
		return p.parseLocalVarDecl(nil)
	}

	x := p.parseExpr()
	return &ast.ExprStmt{X: x, Semi: p.expect(token.SEMICOLON).Pos}
}

// atYield reports whether a leading "yield" starts a yield statement
// rather than an expression using a variable of that name.
func (p *parser) atYield() bool {
	switch k := p.peek(1).Kind; {
	case k.IsAssignOp(), k == token.DOT, k == token.LBRACK, k == token.LPAREN,
		k == token.SEMICOLON, k == token.INC, k == token.DEC, k == token.ARROW:
		return false
	}
	return true
}

// atLocalVarDecl reports whether the tokens ahead form "Type name" followed
// by a declarator continuation.
func (p *parser) atLocalVarDecl() bool {
	m := p.mark()
	defer p.reset(m)
	if !p.try(func() { p.parseType() }) {
		return false
	}
	if !p.at(token.IDENT) {
		return false
	}
	switch p.peek(1).Kind {
	case token.ASSIGN, token.SEMICOLON, token.COMMA, token.LBRACK, token.COLON:
		return true
	}
	return false
}

func (p *parser) parseLocalVarDecl(mods *ast.Modifiers) *ast.DeclStmt {
	decl := p.parseVarDeclRest(mods, p.parseType())
	return &ast.DeclStmt{Decl: decl, Semi: p.expect(token.SEMICOLON).Pos}
}

func (p *parser) parseParenExpr() ast.Expr {
	p.expect(token.LPAREN)
	x := p.parseExpr()
	p.expect(token.RPAREN)
	return x
}

func (p *parser) parseIf() *ast.IfStmt {
	s := &ast.IfStmt{If: p.expect(token.IF).Pos, Cond: p.parseParenExpr()}
	s.Then = p.parseBody()
	if p.got(token.ELSE) {
		if p.at(token.IF) {
			s.Else = p.parseIf()
		} else {
			s.Else = p.parseBody()
		}
	}
	return s
}

func (p *parser) parseFor() ast.Stmt {
	forPos := p.expect(token.FOR).Pos
	p.expect(token.LPAREN)

	var init []ast.Expr
	if !p.at(token.SEMICOLON) {
		t := p.tok()
		if t.Kind == token.AT || t.Kind == token.FINAL || t.Kind.IsPrimitive() || p.atLocalVarDecl() {
			mods := p.parseModifiers()
			typ := p.parseType()
			if p.at(token.IDENT) && p.peek(1).Kind == token.COLON {
				name := p.next()
				p.next()
				s := &ast.ForEachStmt{
					For: forPos,
					Var: &ast.VarDecl{
						Mods: mods,
						Type: typ,
						Vars: []*ast.Declarator{{Name: name.Lit, NamePos: name.Pos}},
					},
					Iterable: p.parseExpr(),
				}
				p.expect(token.RPAREN)
				s.Body = p.parseBody()
				return s
			}
			init = []ast.Expr{p.parseVarDeclRest(mods, typ)}
		} else {
			init = p.parseExprList()
		}
	}
	p.expect(token.SEMICOLON)

	s := &ast.ForStmt{For: forPos, Init: init}
	if !p.at(token.SEMICOLON) {
		s.Cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	if !p.at(token.RPAREN) {
		s.Update = p.parseExprList()
	}
	p.expect(token.RPAREN)
	s.Body = p.parseBody()
	return s
}

func (p *parser) parseTry() *ast.TryStmt {
	s := &ast.TryStmt{Try: p.expect(token.TRY).Pos}
	if p.got(token.LPAREN) {
		for !p.at(token.RPAREN) {
			s.Resources = append(s.Resources, p.parseResource())
			if !p.got(token.SEMICOLON) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	s.Body = p.parseBlock()

	for p.at(token.CATCH) {
		c := &ast.CatchClause{Catch: p.next().Pos}
		p.expect(token.LPAREN)
		c.Mods = p.parseModifiers()
		c.Types = []*ast.Type{p.parseType()}
		for p.got(token.OR) {
			c.Types = append(c.Types, p.parseType())
		}
		name := p.expect(token.IDENT)
		c.Name, c.NamePos = name.Lit, name.Pos
		p.expect(token.RPAREN)
		c.Body = p.parseBlock()
		s.Catches = append(s.Catches, c)
	}
	if p.got(token.FINALLY) {
		s.Finally = p.parseBlock()
	}
	if s.Resources == nil && s.Catches == nil && s.Finally == nil {
		p.errorf(s.Try, "try statement needs catch or finally")
	}
	return s
}

func (p *parser) parseResource() ast.Expr {
	t := p.tok()
	if t.Kind == token.FINAL || t.Kind == token.AT || p.atLocalVarDecl() {
		mods := p.parseModifiers()
		typ := p.parseType()
		name := p.expect(token.IDENT)
		p.expect(token.ASSIGN)
		return &ast.VarDecl{
			Mods: mods,
			Type: typ,
			Vars: []*ast.Declarator{{Name: name.Lit, NamePos: name.Pos, Init: p.parseExpr()}},
		}
	}
	return p.parseExpr()
}

// parseSwitchBody parses "(tag) { cases }" for switch statements and
// expressions.
func (p *parser) parseSwitchBody() (ast.Expr, []*ast.CaseClause, token.Pos) {
	tag := p.parseParenExpr()
	p.expect(token.LBRACE)
	var cases []*ast.CaseClause
	for p.at(token.CASE) || p.at(token.DEFAULT) {
		cases = append(cases, p.parseCase())
	}
	rbrace := p.expect(token.RBRACE).Pos
	return tag, cases, rbrace
}

func (p *parser) parseCase() *ast.CaseClause {
	lead := p.leading(p.tok().Pos)
	c := &ast.CaseClause{Case: p.tok().Pos}
	if p.got(token.DEFAULT) {
		c.Default = true
	} else {
		p.expect(token.CASE)
		for {
			if p.got(token.DEFAULT) {
				c.Default = true
			} else {
				c.Labels = append(c.Labels, p.parseTernary())
			}
			if !p.got(token.COMMA) {
				break
			}
		}
	}
	c.Leading = lead

	if p.got(token.ARROW) {
		c.Arrow = true
		c.Body = []ast.Stmt{p.parseArrowBody()}
		return c
	}
	p.expect(token.COLON)
	c.Trailing = p.trailing()
	for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.at(token.EOF) {
		c.Body = append(c.Body, p.parseStmt())
	}
	return c
}

func (p *parser) parseArrowBody() ast.Stmt {
	lead := p.leading(p.tok().Pos)
	var s ast.Stmt
	switch {
	case p.at(token.LBRACE):
		s = p.parseBlock()
	case p.at(token.THROW):
		s = p.parseStmtBody()
	default:
		x := p.parseExpr()
		s = &ast.ExprStmt{X: x, Semi: p.expect(token.SEMICOLON).Pos}
	}
	c := s.Comments()
	c.Leading, c.Trailing = lead, p.trailing()
	return s
}
