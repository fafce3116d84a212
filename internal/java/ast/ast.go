// Package ast declares the syntax tree of the Java subset handled by idxloop.
//
// The tree is a set of tagged variants: every node is a pointer to a struct
// implementing Node, and the expression, statement and member categories are
// distinguished by marker methods. Consumers traverse it with Inspect and
// type switches rather than visitor interfaces.
package ast

import (
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

// Node is implemented by all tree nodes.
type Node interface {
	Pos() token.Pos // first character of the node
	End() token.Pos // first character after the node
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	Comments() *Attached
	stmtNode()
}

// Member is implemented by the declarations allowed in a class body.
type Member interface {
	Node
	Comments() *Attached
	memberNode()
}

// Comment is a single line or block comment, including its delimiters.
type Comment struct {
	Slash  token.Pos
	EndPos token.Pos
	Text   string
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return c.EndPos }

// IsLine reports whether c is a // comment.
func (c *Comment) IsLine() bool { return strings.HasPrefix(c.Text, "//") }

// CommentGroup is a run of comments with no tokens in between.
type CommentGroup struct {
	List []*Comment
}

func (g *CommentGroup) Pos() token.Pos { return g.List[0].Pos() }
func (g *CommentGroup) End() token.Pos { return g.List[len(g.List)-1].End() }

// Text returns the comment texts joined by newlines, delimiters included.
func (g *CommentGroup) Text() string {
	if g == nil {
		return ""
	}
	parts := make([]string, len(g.List))
	for i, c := range g.List {
		parts[i] = c.Text
	}
	return strings.Join(parts, "\n")
}

// Attached holds the comments attached to a statement or declaration:
// the group immediately before it and a comment following it on the same
// line.
type Attached struct {
	Leading  *CommentGroup
	Trailing *Comment
}

// Comments returns the attachment record itself so that every node
// embedding Attached exposes it through the Stmt and Member interfaces.
func (a *Attached) Comments() *Attached { return a }

// Empty reports whether no comment is attached.
func (a *Attached) Empty() bool { return a.Leading == nil && a.Trailing == nil }

// Annotation is "@Name", "@Name(value)" or "@Name(k = v, ...)". Element
// value pairs are represented as *AssignExpr.
type Annotation struct {
	At     token.Pos
	Name   string
	Paren  bool
	Args   []Expr
	EndPos token.Pos
}

func (a *Annotation) Pos() token.Pos { return a.At }
func (a *Annotation) End() token.Pos { return a.EndPos }
func (*Annotation) exprNode()        {}

// Modifiers holds the annotations and modifier keywords of a declaration.
type Modifiers struct {
	Start       token.Pos
	Annotations []*Annotation
	Keywords    []string // in source order, including sealed and non-sealed
	EndPos      token.Pos
}

func (m *Modifiers) Pos() token.Pos { return m.Start }
func (m *Modifiers) End() token.Pos { return m.EndPos }

// Has reports whether the keyword is present.
func (m *Modifiers) Has(k token.Kind) bool {
	if m == nil {
		return false
	}
	for _, kw := range m.Keywords {
		if kw == k.String() {
			return true
		}
	}
	return false
}

// IsEmpty reports whether there are no modifiers at all.
func (m *Modifiers) IsEmpty() bool {
	return m == nil || (len(m.Annotations) == 0 && len(m.Keywords) == 0)
}

// Type is a type as written in source.
type Type struct {
	Start token.Pos
	// Name is the dotted name as written ("int", "ArrayList",
	// "java.util.List", "Map.Entry") or "?" for a wildcard.
	Name      string
	Primitive bool
	Args      []*Type // type arguments; nil when absent
	Diamond   bool    // written as Name<>
	Dims      int     // array dimensions
	Bound     *Type   // wildcard bound
	Super     bool    // wildcard bound is "super" rather than "extends"
	EndPos    token.Pos
}

func (t *Type) Pos() token.Pos { return t.Start }
func (t *Type) End() token.Pos { return t.EndPos }

// SimpleName returns the last segment of the written name: the type name
// token itself.
func (t *Type) SimpleName() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// IsVar reports whether the type is the reserved local type name "var".
func (t *Type) IsVar() bool {
	return t != nil && t.Name == "var" && t.Args == nil && t.Dims == 0
}

// Param is a method, constructor, lambda or record parameter. Type is nil
// for implicitly typed lambda parameters.
type Param struct {
	Mods    *Modifiers
	Type    *Type
	Varargs bool
	Name    string
	NamePos token.Pos
	Dims    int
	EndPos  token.Pos
}

func (p *Param) Pos() token.Pos {
	if !p.Mods.IsEmpty() {
		return p.Mods.Start
	}
	if p.Type != nil {
		return p.Type.Pos()
	}
	return p.NamePos
}

func (p *Param) End() token.Pos { return p.EndPos }

// TypeParam is a generic type parameter with optional bounds.
type TypeParam struct {
	Name    string
	NamePos token.Pos
	Bounds  []*Type
	EndPos  token.Pos
}

func (p *TypeParam) Pos() token.Pos { return p.NamePos }
func (p *TypeParam) End() token.Pos { return p.EndPos }
