package ast

import "github.com/gnoswap-labs/idxloop/internal/java/token"

type (
	// Name is a bare simple name reference.
	Name struct {
		NamePos token.Pos
		Name    string
	}

	// Literal is a number, character, string, text block, boolean or null.
	Literal struct {
		ValuePos token.Pos
		Kind     token.Kind
		Value    string
	}

	// FieldAccess is X.Sel. Qualified names that could be package or type
	// names are represented the same way.
	FieldAccess struct {
		X      Expr
		Sel    string
		SelPos token.Pos
	}

	// MethodCall is [X.][<TypeArgs>]Name(Args). Explicit constructor
	// invocations are calls named "this" or "super" with a nil X.
	MethodCall struct {
		X        Expr
		TypeArgs []*Type
		Name     string
		NamePos  token.Pos
		Lparen   token.Pos
		Args     []Expr
		Rparen   token.Pos
	}

	// NewExpr is "new Type(Args)" with an optional anonymous class body.
	NewExpr struct {
		New    token.Pos
		Outer  Expr // outer instance in outer.new Inner()
		Type   *Type
		Args   []Expr
		Rparen token.Pos
		Body   *ClassBody
	}

	// NewArray is "new Elem[d1][d2][]..." or "new Elem[]{...}".
	NewArray struct {
		New      token.Pos
		Elem     *Type // element type without dimensions
		DimExprs []Expr
		Dims     int // dimensions without a length expression
		Init     *ArrayInit
		EndPos   token.Pos
	}

	// ArrayInit is "{e1, e2, ...}".
	ArrayInit struct {
		Lbrace token.Pos
		Elems  []Expr
		Rbrace token.Pos
	}

	// IndexExpr is X[Index].
	IndexExpr struct {
		X      Expr
		Index  Expr
		Rbrack token.Pos
	}

	// AssignExpr is Target Op Value for = and the compound assignments.
	AssignExpr struct {
		Target Expr
		OpPos  token.Pos
		Op     token.Kind
		Value  Expr
	}

	// BinaryExpr is X Op Y.
	BinaryExpr struct {
		X     Expr
		OpPos token.Pos
		Op    token.Kind
		Y     Expr
	}

	// UnaryExpr is a prefix operator application.
	UnaryExpr struct {
		OpPos token.Pos
		Op    token.Kind
		X     Expr
	}

	// PostfixExpr is X++ or X--.
	PostfixExpr struct {
		X      Expr
		Op     token.Kind
		EndPos token.Pos
	}

	// CondExpr is Cond ? Then : Else.
	CondExpr struct {
		Cond Expr
		Then Expr
		Else Expr
	}

	// CastExpr is (Types...) X; more than one type is an intersection cast.
	CastExpr struct {
		Lparen token.Pos
		Types  []*Type
		X      Expr
	}

	// InstanceOfExpr is "X instanceof Type [Binding]".
	InstanceOfExpr struct {
		X          Expr
		Type       *Type
		Final      bool
		Binding    string
		BindingPos token.Pos
		EndPos     token.Pos
	}

	// LambdaExpr is "params -> body"; Body is an Expr or a *Block.
	LambdaExpr struct {
		Start  token.Pos
		Params []*Param
		Parens bool
		Arrow  token.Pos
		Body   Node
	}

	// MethodRef is "X::Name" or "Type::Name"; exactly one of X and Type is set.
	MethodRef struct {
		X      Expr
		Type   *Type
		Name   string
		EndPos token.Pos
	}

	// ThisExpr is "this" or "Qualifier.this".
	ThisExpr struct {
		Start     token.Pos
		Qualifier string
		EndPos    token.Pos
	}

	// SuperExpr is "super" or "Qualifier.super" used as a receiver.
	SuperExpr struct {
		Start     token.Pos
		Qualifier string
		EndPos    token.Pos
	}

	// ClassLit is "Type.class".
	ClassLit struct {
		Type   *Type
		EndPos token.Pos
	}

	// ParenExpr is (X).
	ParenExpr struct {
		Lparen token.Pos
		X      Expr
		Rparen token.Pos
	}

	// SwitchExpr is a switch used as an expression.
	SwitchExpr struct {
		Switch token.Pos
		Tag    Expr
		Cases  []*CaseClause
		Rbrace token.Pos
	}

	// VarDecl declares one or more variables of a common type. It appears
	// in local declaration statements, for initializers, for-each headers,
	// try resources and fields.
	VarDecl struct {
		Mods *Modifiers
		Type *Type
		Vars []*Declarator
	}

	// Declarator is one "name[dims] [= init]" of a VarDecl.
	Declarator struct {
		Name    string
		NamePos token.Pos
		Dims    int
		Init    Expr
	}
)

func (x *Name) Pos() token.Pos { return x.NamePos }
func (x *Name) End() token.Pos {
	return token.Pos{Offset: x.NamePos.Offset + len(x.Name), Line: x.NamePos.Line, Column: x.NamePos.Column + len(x.Name)}
}

func (x *Literal) Pos() token.Pos { return x.ValuePos }
func (x *Literal) End() token.Pos {
	return token.Pos{Offset: x.ValuePos.Offset + len(x.Value), Line: x.ValuePos.Line, Column: x.ValuePos.Column + len(x.Value)}
}

func (x *FieldAccess) Pos() token.Pos { return x.X.Pos() }
func (x *FieldAccess) End() token.Pos {
	return token.Pos{Offset: x.SelPos.Offset + len(x.Sel), Line: x.SelPos.Line, Column: x.SelPos.Column + len(x.Sel)}
}

func (x *MethodCall) Pos() token.Pos {
	if x.X != nil {
		return x.X.Pos()
	}
	return x.NamePos
}
func (x *MethodCall) End() token.Pos { return after(x.Rparen) }

func (x *NewExpr) Pos() token.Pos {
	if x.Outer != nil {
		return x.Outer.Pos()
	}
	return x.New
}
func (x *NewExpr) End() token.Pos {
	if x.Body != nil {
		return x.Body.End()
	}
	return after(x.Rparen)
}

func (x *NewArray) Pos() token.Pos    { return x.New }
func (x *NewArray) End() token.Pos    { return x.EndPos }
func (x *ArrayInit) Pos() token.Pos   { return x.Lbrace }
func (x *ArrayInit) End() token.Pos   { return after(x.Rbrace) }
func (x *IndexExpr) Pos() token.Pos   { return x.X.Pos() }
func (x *IndexExpr) End() token.Pos   { return after(x.Rbrack) }
func (x *AssignExpr) Pos() token.Pos  { return x.Target.Pos() }
func (x *AssignExpr) End() token.Pos  { return x.Value.End() }
func (x *BinaryExpr) Pos() token.Pos  { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos  { return x.Y.End() }
func (x *UnaryExpr) Pos() token.Pos   { return x.OpPos }
func (x *UnaryExpr) End() token.Pos   { return x.X.End() }
func (x *PostfixExpr) Pos() token.Pos { return x.X.Pos() }
func (x *PostfixExpr) End() token.Pos { return x.EndPos }
func (x *CondExpr) Pos() token.Pos    { return x.Cond.Pos() }
func (x *CondExpr) End() token.Pos    { return x.Else.End() }
func (x *CastExpr) Pos() token.Pos    { return x.Lparen }
func (x *CastExpr) End() token.Pos    { return x.X.End() }
func (x *InstanceOfExpr) Pos() token.Pos {
	return x.X.Pos()
}
func (x *InstanceOfExpr) End() token.Pos { return x.EndPos }
func (x *LambdaExpr) Pos() token.Pos     { return x.Start }
func (x *LambdaExpr) End() token.Pos     { return x.Body.End() }
func (x *MethodRef) Pos() token.Pos {
	if x.X != nil {
		return x.X.Pos()
	}
	return x.Type.Pos()
}
func (x *MethodRef) End() token.Pos  { return x.EndPos }
func (x *ThisExpr) Pos() token.Pos   { return x.Start }
func (x *ThisExpr) End() token.Pos   { return x.EndPos }
func (x *SuperExpr) Pos() token.Pos  { return x.Start }
func (x *SuperExpr) End() token.Pos  { return x.EndPos }
func (x *ClassLit) Pos() token.Pos   { return x.Type.Pos() }
func (x *ClassLit) End() token.Pos   { return x.EndPos }
func (x *ParenExpr) Pos() token.Pos  { return x.Lparen }
func (x *ParenExpr) End() token.Pos  { return after(x.Rparen) }
func (x *SwitchExpr) Pos() token.Pos { return x.Switch }
func (x *SwitchExpr) End() token.Pos { return after(x.Rbrace) }

func (x *VarDecl) Pos() token.Pos {
	if !x.Mods.IsEmpty() {
		return x.Mods.Start
	}
	return x.Type.Pos()
}
func (x *VarDecl) End() token.Pos { return x.Vars[len(x.Vars)-1].End() }

func (d *Declarator) Pos() token.Pos { return d.NamePos }
func (d *Declarator) End() token.Pos {
	if d.Init != nil {
		return d.Init.End()
	}
	return token.Pos{Offset: d.NamePos.Offset + len(d.Name), Line: d.NamePos.Line, Column: d.NamePos.Column + len(d.Name)}
}

func (*Name) exprNode()           {}
func (*Literal) exprNode()        {}
func (*FieldAccess) exprNode()    {}
func (*MethodCall) exprNode()     {}
func (*NewExpr) exprNode()        {}
func (*NewArray) exprNode()       {}
func (*ArrayInit) exprNode()      {}
func (*IndexExpr) exprNode()      {}
func (*AssignExpr) exprNode()     {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*PostfixExpr) exprNode()    {}
func (*CondExpr) exprNode()       {}
func (*CastExpr) exprNode()       {}
func (*InstanceOfExpr) exprNode() {}
func (*LambdaExpr) exprNode()     {}
func (*MethodRef) exprNode()      {}
func (*ThisExpr) exprNode()       {}
func (*SuperExpr) exprNode()      {}
func (*ClassLit) exprNode()       {}
func (*ParenExpr) exprNode()      {}
func (*SwitchExpr) exprNode()     {}
func (*VarDecl) exprNode()        {}

// after returns the position one byte past p, on the same line. It is used
// for nodes ending in a single-character delimiter.
func after(p token.Pos) token.Pos {
	if !p.IsValid() {
		return p
	}
	return token.Pos{Offset: p.Offset + 1, Line: p.Line, Column: p.Column + 1}
}

// NewName returns a synthesised name reference.
func NewName(name string) *Name { return &Name{Name: name} }

// IsName reports whether e is a bare name reference spelled name.
func IsName(e Expr, name string) bool {
	n, ok := e.(*Name)
	return ok && n.Name == name
}
