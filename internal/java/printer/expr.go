package printer

import (
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
)

func (p *printer) exprList(list []ast.Expr) {
	for i, x := range list {
		if i > 0 {
			p.write(", ")
		}
		p.expr(x)
	}
}

func (p *printer) expr(x ast.Expr) {
	switch x := x.(type) {
	case *ast.Name:
		p.write(x.Name)
	case *ast.Literal:
		p.write(x.Value)
	case *ast.FieldAccess:
		p.expr(x.X)
		p.write("." + x.Sel)
	case *ast.MethodCall:
		if x.X != nil {
			p.expr(x.X)
			p.write(".")
		}
		if len(x.TypeArgs) > 0 {
			p.write("<")
			for i, t := range x.TypeArgs {
				if i > 0 {
					p.write(", ")
				}
				p.typ(t)
			}
			p.write(">")
		}
		p.write(x.Name + "(")
		p.exprList(x.Args)
		p.write(")")
	case *ast.NewExpr:
		if x.Outer != nil {
			p.expr(x.Outer)
			p.write(".")
		}
		p.write("new ")
		p.typ(x.Type)
		p.write("(")
		p.exprList(x.Args)
		p.write(")")
		if x.Body != nil {
			p.write(" ")
			p.classBody(x.Body, false, nil)
		}
	case *ast.NewArray:
		p.write("new ")
		p.typ(x.Elem)
		for _, d := range x.DimExprs {
			p.write("[")
			p.expr(d)
			p.write("]")
		}
		p.write(strings.Repeat("[]", x.Dims))
		if x.Init != nil {
			p.write(" ")
			p.expr(x.Init)
		}
	case *ast.ArrayInit:
		p.write("{")
		p.exprList(x.Elems)
		p.write("}")
	case *ast.IndexExpr:
		p.expr(x.X)
		p.write("[")
		p.expr(x.Index)
		p.write("]")
	case *ast.AssignExpr:
		p.expr(x.Target)
		p.write(" " + x.Op.String() + " ")
		p.expr(x.Value)
	case *ast.BinaryExpr:
		p.expr(x.X)
		p.write(" " + x.Op.String() + " ")
		p.expr(x.Y)
	case *ast.UnaryExpr:
		p.write(x.Op.String())
		p.expr(x.X)
	case *ast.PostfixExpr:
		p.expr(x.X)
		p.write(x.Op.String())
	case *ast.CondExpr:
		p.expr(x.Cond)
		p.write(" ? ")
		p.expr(x.Then)
		p.write(" : ")
		p.expr(x.Else)
	case *ast.CastExpr:
		p.write("(")
		for i, t := range x.Types {
			if i > 0 {
				p.write(" & ")
			}
			p.typ(t)
		}
		p.write(") ")
		p.expr(x.X)
	case *ast.InstanceOfExpr:
		p.expr(x.X)
		p.write(" instanceof ")
		if x.Final {
			p.write("final ")
		}
		p.typ(x.Type)
		if x.Binding != "" {
			p.write(" " + x.Binding)
		}
	case *ast.LambdaExpr:
		p.lambda(x)
	case *ast.MethodRef:
		if x.X != nil {
			p.expr(x.X)
		} else {
			p.typ(x.Type)
		}
		p.write("::" + x.Name)
	case *ast.ThisExpr:
		if x.Qualifier != "" {
			p.write(x.Qualifier + ".")
		}
		p.write("this")
	case *ast.SuperExpr:
		if x.Qualifier != "" {
			p.write(x.Qualifier + ".")
		}
		p.write("super")
	case *ast.ClassLit:
		p.typ(x.Type)
		p.write(".class")
	case *ast.ParenExpr:
		p.write("(")
		p.expr(x.X)
		p.write(")")
	case *ast.SwitchExpr:
		p.switchBody(x.Tag, x.Cases)
	case *ast.VarDecl:
		p.varDecl(x, false)
	case *ast.Annotation:
		p.annotation(x)
	}
}

func (p *printer) lambda(x *ast.LambdaExpr) {
	if !x.Parens && len(x.Params) == 1 {
		p.write(x.Params[0].Name)
	} else {
		p.params(x.Params)
	}
	p.write(" -> ")
	switch body := x.Body.(type) {
	case *ast.Block:
		p.block(body)
	case ast.Expr:
		p.expr(body)
	}
}
