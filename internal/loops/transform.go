package loops

import (
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

// Transform replaces the candidate in its block with the indexed loop
//
//	for (int counter = 0; counter < list.size(); counter = counter + 1) {
//	    T x = list.get(counter);
//	    ...original body...
//	}
//
// and returns the replacement. The element declaration keeps its
// modifiers and declared type. The body statements are moved unchanged and
// in order. Comments attached to the for-each statement move to the new
// loop. The candidate must have been admitted by Verify.
func Transform(c *Candidate, counter string) *ast.ForStmt {
	old := c.Stmt
	list := c.Name().Name
	elem := old.Var.Vars[0]

	access := &ast.DeclStmt{Decl: &ast.VarDecl{
		Mods: old.Var.Mods,
		Type: old.Var.Type,
		Vars: []*ast.Declarator{{
			Name:    elem.Name,
			NamePos: elem.NamePos,
			Dims:    elem.Dims,
			Init:    call(list, "get", ast.NewName(counter)),
		}},
	}}

	loop := &ast.ForStmt{
		For: old.For,
		Init: []ast.Expr{&ast.VarDecl{
			Type: &ast.Type{Name: "int", Primitive: true},
			Vars: []*ast.Declarator{{Name: counter, Init: intLit("0")}},
		}},
		Cond: &ast.BinaryExpr{X: ast.NewName(counter), Op: token.LT, Y: call(list, "size")},
		Update: []ast.Expr{&ast.AssignExpr{
			Target: ast.NewName(counter),
			Op:     token.ASSIGN,
			Value:  &ast.BinaryExpr{X: ast.NewName(counter), Op: token.ADD, Y: intLit("1")},
		}},
		Body: prepend(access, old.Body),
	}
	*loop.Comments() = *old.Comments()

	c.Block.Replace(old, loop)
	return loop
}

// prepend returns a block holding s followed by the statements of body.
// A body that is not a block becomes the block's second statement.
func prepend(s ast.Stmt, body ast.Stmt) *ast.Block {
	b, ok := body.(*ast.Block)
	if !ok {
		// The closing position keeps the blank-line layout around the loop.
		return &ast.Block{Stmts: []ast.Stmt{s, body}, Rbrace: body.End()}
	}
	return &ast.Block{
		Lbrace:   b.Lbrace,
		Stmts:    append([]ast.Stmt{s}, b.Stmts...),
		Rbrace:   b.Rbrace,
		Orphans:  b.Orphans,
		Attached: b.Attached,
	}
}

func call(recv, method string, args ...ast.Expr) *ast.MethodCall {
	return &ast.MethodCall{X: ast.NewName(recv), Name: method, Args: args}
}

func intLit(v string) *ast.Literal {
	return &ast.Literal{Kind: token.INT, Value: v}
}
