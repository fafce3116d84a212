package ast

import "fmt"

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node); if f returns true, Inspect then visits each non-nil child of
// node, followed by a call of f(nil).
//
// Children are read after f returns, so f may replace a node's children
// and the traversal descends into the replacements.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	// leaves
	case *Name, *Literal, *ThisExpr, *SuperExpr, *EmptyStmt, *BranchStmt,
		*PackageDecl, *ImportDecl, *EmptyMember, *Comment, *CommentGroup:

	case *File:
		walkList(n.Types, f)

	case *Annotation:
		walkList(n.Args, f)
	case *Modifiers:
		walkList(n.Annotations, f)
	case *Type:
		walkList(n.Args, f)
		if n.Bound != nil {
			Inspect(n.Bound, f)
		}
	case *Param:
		inspectMods(n.Mods, f)
		if n.Type != nil {
			Inspect(n.Type, f)
		}
	case *TypeParam:
		walkList(n.Bounds, f)

	// expressions
	case *FieldAccess:
		Inspect(n.X, f)
	case *MethodCall:
		if n.X != nil {
			Inspect(n.X, f)
		}
		walkList(n.TypeArgs, f)
		walkList(n.Args, f)
	case *NewExpr:
		if n.Outer != nil {
			Inspect(n.Outer, f)
		}
		Inspect(n.Type, f)
		walkList(n.Args, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *NewArray:
		Inspect(n.Elem, f)
		walkList(n.DimExprs, f)
		if n.Init != nil {
			Inspect(n.Init, f)
		}
	case *ArrayInit:
		walkList(n.Elems, f)
	case *IndexExpr:
		Inspect(n.X, f)
		Inspect(n.Index, f)
	case *AssignExpr:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)
	case *UnaryExpr:
		Inspect(n.X, f)
	case *PostfixExpr:
		Inspect(n.X, f)
	case *CondExpr:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	case *CastExpr:
		walkList(n.Types, f)
		Inspect(n.X, f)
	case *InstanceOfExpr:
		Inspect(n.X, f)
		Inspect(n.Type, f)
	case *LambdaExpr:
		walkList(n.Params, f)
		Inspect(n.Body, f)
	case *MethodRef:
		if n.X != nil {
			Inspect(n.X, f)
		} else {
			Inspect(n.Type, f)
		}
	case *ClassLit:
		Inspect(n.Type, f)
	case *ParenExpr:
		Inspect(n.X, f)
	case *SwitchExpr:
		Inspect(n.Tag, f)
		walkList(n.Cases, f)
	case *VarDecl:
		inspectMods(n.Mods, f)
		Inspect(n.Type, f)
		walkList(n.Vars, f)
	case *Declarator:
		if n.Init != nil {
			Inspect(n.Init, f)
		}

	// statements
	case *Block:
		walkList(n.Stmts, f)
	case *DeclStmt:
		Inspect(n.Decl, f)
	case *ClassStmt:
		Inspect(n.Decl, f)
	case *ExprStmt:
		Inspect(n.X, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *DoStmt:
		Inspect(n.Body, f)
		Inspect(n.Cond, f)
	case *ForStmt:
		walkList(n.Init, f)
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
		walkList(n.Update, f)
		Inspect(n.Body, f)
	case *ForEachStmt:
		Inspect(n.Var, f)
		Inspect(n.Iterable, f)
		Inspect(n.Body, f)
	case *ReturnStmt:
		if n.X != nil {
			Inspect(n.X, f)
		}
	case *ThrowStmt:
		Inspect(n.X, f)
	case *YieldStmt:
		Inspect(n.X, f)
	case *TryStmt:
		walkList(n.Resources, f)
		Inspect(n.Body, f)
		walkList(n.Catches, f)
		if n.Finally != nil {
			Inspect(n.Finally, f)
		}
	case *CatchClause:
		inspectMods(n.Mods, f)
		walkList(n.Types, f)
		Inspect(n.Body, f)
	case *SwitchStmt:
		Inspect(n.Tag, f)
		walkList(n.Cases, f)
	case *CaseClause:
		walkList(n.Labels, f)
		walkList(n.Body, f)
	case *SyncStmt:
		Inspect(n.Lock, f)
		Inspect(n.Body, f)
	case *LabeledStmt:
		Inspect(n.Stmt, f)
	case *AssertStmt:
		Inspect(n.Cond, f)
		if n.Msg != nil {
			Inspect(n.Msg, f)
		}

	// declarations
	case *ClassDecl:
		inspectMods(n.Mods, f)
		walkList(n.TypeParams, f)
		walkList(n.RecordParams, f)
		walkList(n.Extends, f)
		walkList(n.Implements, f)
		walkList(n.Permits, f)
		walkList(n.Constants, f)
		Inspect(n.Body, f)
	case *ClassBody:
		walkList(n.Members, f)
	case *EnumConstant:
		inspectMods(n.Mods, f)
		walkList(n.Args, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *FieldDecl:
		Inspect(n.Decl, f)
	case *MethodDecl:
		inspectMods(n.Mods, f)
		walkList(n.TypeParams, f)
		if n.Result != nil {
			Inspect(n.Result, f)
		}
		walkList(n.Params, f)
		walkList(n.Throws, f)
		if n.Default != nil {
			Inspect(n.Default, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *InitializerDecl:
		Inspect(n.Body, f)

	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}

	f(nil)
}

func walkList[N Node](list []N, f func(Node) bool) {
	for _, n := range list {
		Inspect(n, f)
	}
}

func inspectMods(m *Modifiers, f func(Node) bool) {
	if m != nil {
		Inspect(m, f)
	}
}

// Collect returns every node of type T in the tree rooted at root, in
// depth-first order, root included.
func Collect[T Node](root Node) []T {
	var out []T
	Inspect(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
