package ast

import "github.com/gnoswap-labs/idxloop/internal/java/token"

type (
	// Block is a braced statement sequence sharing one lexical scope.
	// Orphans holds comments after the last statement.
	Block struct {
		Lbrace  token.Pos
		Stmts   []Stmt
		Rbrace  token.Pos
		Orphans []*CommentGroup
		Attached
	}

	// DeclStmt is a local variable declaration statement.
	DeclStmt struct {
		Decl *VarDecl
		Semi token.Pos
		Attached
	}

	// ClassStmt is a local class, interface, enum or record declaration.
	ClassStmt struct {
		Decl *ClassDecl
		Attached
	}

	// ExprStmt is an expression used as a statement.
	ExprStmt struct {
		X    Expr
		Semi token.Pos
		Attached
	}

	IfStmt struct {
		If   token.Pos
		Cond Expr
		Then Stmt
		Else Stmt
		Attached
	}

	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
		Attached
	}

	DoStmt struct {
		Do   token.Pos
		Body Stmt
		Cond Expr
		Semi token.Pos
		Attached
	}

	// ForStmt is the indexed loop "for (Init; Cond; Update) Body".
	ForStmt struct {
		For    token.Pos
		Init   []Expr
		Cond   Expr
		Update []Expr
		Body   Stmt
		Attached
	}

	// ForEachStmt is the element-binding loop "for (Var : Iterable) Body".
	ForEachStmt struct {
		For      token.Pos
		Var      *VarDecl
		Iterable Expr
		Body     Stmt
		Attached
	}

	ReturnStmt struct {
		Return token.Pos
		X      Expr
		Semi   token.Pos
		Attached
	}

	// BranchStmt is break or continue with an optional label.
	BranchStmt struct {
		TokPos token.Pos
		Tok    token.Kind
		Label  string
		Semi   token.Pos
		Attached
	}

	ThrowStmt struct {
		Throw token.Pos
		X     Expr
		Semi  token.Pos
		Attached
	}

	YieldStmt struct {
		Yield token.Pos
		X     Expr
		Semi  token.Pos
		Attached
	}

	// TryStmt is try/catch/finally. Resources are *VarDecl or expressions
	// naming an effectively final variable.
	TryStmt struct {
		Try       token.Pos
		Resources []Expr
		Body      *Block
		Catches   []*CatchClause
		Finally   *Block
		Attached
	}

	// CatchClause catches one or more exception types (a union when more).
	CatchClause struct {
		Catch   token.Pos
		Mods    *Modifiers
		Types   []*Type
		Name    string
		NamePos token.Pos
		Body    *Block
	}

	SwitchStmt struct {
		Switch token.Pos
		Tag    Expr
		Cases  []*CaseClause
		Rbrace token.Pos
		Attached
	}

	// CaseClause is one "case L1, L2:" or "default:" group; with Arrow set
	// it is "case L ->" and Body holds exactly one statement.
	CaseClause struct {
		Case    token.Pos
		Default bool
		Labels  []Expr
		Arrow   bool
		Body    []Stmt
		Attached
	}

	SyncStmt struct {
		Sync token.Pos
		Lock Expr
		Body *Block
		Attached
	}

	LabeledStmt struct {
		LabelPos token.Pos
		Label    string
		Stmt     Stmt
		Attached
	}

	AssertStmt struct {
		Assert token.Pos
		Cond   Expr
		Msg    Expr
		Semi   token.Pos
		Attached
	}

	EmptyStmt struct {
		Semi token.Pos
		Attached
	}
)

func (s *Block) Pos() token.Pos       { return s.Lbrace }
func (s *Block) End() token.Pos       { return after(s.Rbrace) }
func (s *DeclStmt) Pos() token.Pos    { return s.Decl.Pos() }
func (s *DeclStmt) End() token.Pos    { return after(s.Semi) }
func (s *ClassStmt) Pos() token.Pos   { return s.Decl.Pos() }
func (s *ClassStmt) End() token.Pos   { return s.Decl.End() }
func (s *ExprStmt) Pos() token.Pos    { return s.X.Pos() }
func (s *ExprStmt) End() token.Pos    { return after(s.Semi) }
func (s *IfStmt) Pos() token.Pos      { return s.If }
func (s *WhileStmt) Pos() token.Pos   { return s.While }
func (s *WhileStmt) End() token.Pos   { return s.Body.End() }
func (s *DoStmt) Pos() token.Pos      { return s.Do }
func (s *DoStmt) End() token.Pos      { return after(s.Semi) }
func (s *ForStmt) Pos() token.Pos     { return s.For }
func (s *ForStmt) End() token.Pos     { return s.Body.End() }
func (s *ForEachStmt) Pos() token.Pos { return s.For }
func (s *ForEachStmt) End() token.Pos { return s.Body.End() }
func (s *ReturnStmt) Pos() token.Pos  { return s.Return }
func (s *ReturnStmt) End() token.Pos  { return after(s.Semi) }
func (s *BranchStmt) Pos() token.Pos  { return s.TokPos }
func (s *BranchStmt) End() token.Pos  { return after(s.Semi) }
func (s *ThrowStmt) Pos() token.Pos   { return s.Throw }
func (s *ThrowStmt) End() token.Pos   { return after(s.Semi) }
func (s *YieldStmt) Pos() token.Pos   { return s.Yield }
func (s *YieldStmt) End() token.Pos   { return after(s.Semi) }
func (s *TryStmt) Pos() token.Pos     { return s.Try }
func (s *SwitchStmt) Pos() token.Pos  { return s.Switch }
func (s *SwitchStmt) End() token.Pos  { return after(s.Rbrace) }
func (s *SyncStmt) Pos() token.Pos    { return s.Sync }
func (s *SyncStmt) End() token.Pos    { return s.Body.End() }
func (s *LabeledStmt) Pos() token.Pos { return s.LabelPos }
func (s *LabeledStmt) End() token.Pos { return s.Stmt.End() }
func (s *AssertStmt) Pos() token.Pos  { return s.Assert }
func (s *AssertStmt) End() token.Pos  { return after(s.Semi) }
func (s *EmptyStmt) Pos() token.Pos   { return s.Semi }
func (s *EmptyStmt) End() token.Pos   { return after(s.Semi) }

func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}

func (s *TryStmt) End() token.Pos {
	if s.Finally != nil {
		return s.Finally.End()
	}
	if n := len(s.Catches); n > 0 {
		return s.Catches[n-1].End()
	}
	return s.Body.End()
}

func (c *CatchClause) Pos() token.Pos { return c.Catch }
func (c *CatchClause) End() token.Pos { return c.Body.End() }

func (c *CaseClause) Pos() token.Pos { return c.Case }
func (c *CaseClause) End() token.Pos {
	if n := len(c.Body); n > 0 {
		return c.Body[n-1].End()
	}
	if n := len(c.Labels); n > 0 {
		return after(c.Labels[n-1].End())
	}
	return c.Case
}

func (*Block) stmtNode()       {}
func (*DeclStmt) stmtNode()    {}
func (*ClassStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*IfStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()   {}
func (*DoStmt) stmtNode()      {}
func (*ForStmt) stmtNode()     {}
func (*ForEachStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()  {}
func (*BranchStmt) stmtNode()  {}
func (*ThrowStmt) stmtNode()   {}
func (*YieldStmt) stmtNode()   {}
func (*TryStmt) stmtNode()     {}
func (*SwitchStmt) stmtNode()  {}
func (*SyncStmt) stmtNode()    {}
func (*LabeledStmt) stmtNode() {}
func (*AssertStmt) stmtNode()  {}
func (*EmptyStmt) stmtNode()   {}

// Replace substitutes repl for old in b's statement list. It reports
// whether old was a direct child of b.
func (b *Block) Replace(old, repl Stmt) bool {
	for i, s := range b.Stmts {
		if s == old {
			b.Stmts[i] = repl
			return true
		}
	}
	return false
}
