package printer

import (
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
)

// stmt prints s with its comments. The cursor is at the start of a line on
// entry and just after the statement (or its trailing comment) on exit.
func (p *printer) stmt(s ast.Stmt) {
	c := s.Comments()
	p.leading(c.Leading)
	p.pad()
	p.stmtBody(s)
	p.trailing(c.Trailing)
}

func (p *printer) block(b *ast.Block) {
	if len(b.Stmts) == 0 && len(b.Orphans) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent(func() {
		p.stmtList(b.Stmts)
		p.orphans(b.Orphans)
	})
	p.nl()
	p.pad()
	p.write("}")
}

func (p *printer) stmtList(list []ast.Stmt) {
	for i, s := range list {
		p.nl()
		if i > 0 && separated(list[i-1].End(), startOf(s, s.Comments())) {
			p.nl()
		}
		p.stmt(s)
	}
}

// body prints the body of a compound statement: a block on the same line,
// anything else indented on the next.
func (p *printer) body(s ast.Stmt) {
	if b, ok := s.(*ast.Block); ok {
		p.write(" ")
		p.block(b)
		p.trailing(b.Trailing)
		return
	}
	p.nl()
	p.indent(func() { p.stmt(s) })
}

// continuation starts the keyword that follows a body ("else", "while").
func (p *printer) continuation(body ast.Stmt, keyword string) {
	if _, ok := body.(*ast.Block); ok {
		p.write(" " + keyword)
		return
	}
	p.nl()
	p.pad()
	p.write(keyword)
}

func (p *printer) stmtBody(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		p.block(s)
	case *ast.DeclStmt:
		p.varDecl(s.Decl, false)
		p.write(";")
	case *ast.ClassStmt:
		p.classDecl(s.Decl)
	case *ast.ExprStmt:
		p.expr(s.X)
		p.write(";")
	case *ast.IfStmt:
		p.ifStmt(s)
	case *ast.WhileStmt:
		p.write("while (")
		p.expr(s.Cond)
		p.write(")")
		p.body(s.Body)
	case *ast.DoStmt:
		p.write("do")
		p.body(s.Body)
		p.continuation(s.Body, "while (")
		p.expr(s.Cond)
		p.write(");")
	case *ast.ForStmt:
		p.write("for (")
		p.exprList(s.Init)
		p.write(";")
		if s.Cond != nil {
			p.write(" ")
			p.expr(s.Cond)
		}
		p.write(";")
		if len(s.Update) > 0 {
			p.write(" ")
			p.exprList(s.Update)
		}
		p.write(")")
		p.body(s.Body)
	case *ast.ForEachStmt:
		p.write("for (")
		p.varDecl(s.Var, false)
		p.write(" : ")
		p.expr(s.Iterable)
		p.write(")")
		p.body(s.Body)
	case *ast.ReturnStmt:
		p.write("return")
		if s.X != nil {
			p.write(" ")
			p.expr(s.X)
		}
		p.write(";")
	case *ast.BranchStmt:
		p.write(s.Tok.String())
		if s.Label != "" {
			p.write(" " + s.Label)
		}
		p.write(";")
	case *ast.ThrowStmt:
		p.write("throw ")
		p.expr(s.X)
		p.write(";")
	case *ast.YieldStmt:
		p.write("yield ")
		p.expr(s.X)
		p.write(";")
	case *ast.TryStmt:
		p.tryStmt(s)
	case *ast.SwitchStmt:
		p.switchBody(s.Tag, s.Cases)
	case *ast.SyncStmt:
		p.write("synchronized (")
		p.expr(s.Lock)
		p.write(") ")
		p.block(s.Body)
	case *ast.LabeledStmt:
		p.write(s.Label + ":")
		if c := s.Stmt.Comments(); c.Leading != nil {
			p.nl()
			p.stmt(s.Stmt)
			return
		}
		p.write(" ")
		p.stmtBody(s.Stmt)
		p.trailing(s.Stmt.Comments().Trailing)
	case *ast.AssertStmt:
		p.write("assert ")
		p.expr(s.Cond)
		if s.Msg != nil {
			p.write(" : ")
			p.expr(s.Msg)
		}
		p.write(";")
	case *ast.EmptyStmt:
		p.write(";")
	}
}

func (p *printer) ifStmt(s *ast.IfStmt) {
	p.write("if (")
	p.expr(s.Cond)
	p.write(")")
	p.body(s.Then)
	if s.Else == nil {
		return
	}
	p.continuation(s.Then, "else")
	if elif, ok := s.Else.(*ast.IfStmt); ok && elif.Comments().Empty() {
		p.write(" ")
		p.ifStmt(elif)
		return
	}
	p.body(s.Else)
}

func (p *printer) tryStmt(s *ast.TryStmt) {
	p.write("try ")
	if len(s.Resources) > 0 {
		p.write("(")
		for i, r := range s.Resources {
			if i > 0 {
				p.write("; ")
			}
			if d, ok := r.(*ast.VarDecl); ok {
				p.varDecl(d, false)
			} else {
				p.expr(r)
			}
		}
		p.write(") ")
	}
	p.block(s.Body)
	for _, c := range s.Catches {
		p.write(" catch (")
		p.mods(c.Mods, false)
		for i, t := range c.Types {
			if i > 0 {
				p.write(" | ")
			}
			p.typ(t)
		}
		p.write(" " + c.Name + ") ")
		p.block(c.Body)
	}
	if s.Finally != nil {
		p.write(" finally ")
		p.block(s.Finally)
	}
}

func (p *printer) switchBody(tag ast.Expr, cases []*ast.CaseClause) {
	p.write("switch (")
	p.expr(tag)
	p.write(") {")
	p.indent(func() {
		for _, c := range cases {
			p.nl()
			p.caseClause(c)
		}
	})
	p.nl()
	p.pad()
	p.write("}")
}

func (p *printer) caseClause(c *ast.CaseClause) {
	p.leading(c.Leading)
	if c.Arrow && len(c.Body) == 1 {
		p.leading(c.Body[0].Comments().Leading)
	}
	p.pad()
	switch {
	case len(c.Labels) == 0:
		p.write("default")
	default:
		p.write("case ")
		p.exprList(c.Labels)
		if c.Default {
			p.write(", default")
		}
	}

	if c.Arrow {
		p.write(" -> ")
		if len(c.Body) == 1 {
			p.stmtBody(c.Body[0])
			p.trailing(c.Body[0].Comments().Trailing)
		}
		return
	}
	p.write(":")
	p.trailing(c.Trailing)
	p.indent(func() {
		for _, s := range c.Body {
			p.nl()
			p.stmt(s)
		}
	})
}
