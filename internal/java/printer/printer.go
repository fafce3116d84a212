// Package printer writes Java syntax trees as source text.
//
// Output is deterministic: four-space indentation, one statement per line,
// braces on the line that opens the construct. Attached comments are
// printed before (leading) or after (trailing) the node that owns them, and
// blank lines between statements in the original source are kept.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

const indentUnit = "    "

// Fprint writes node to w. Node may be a file, a type declaration, a
// member, a statement, an expression or a type.
func Fprint(w io.Writer, node ast.Node) error {
	p := &printer{}
	if err := p.node(node); err != nil {
		return err
	}
	_, err := io.WriteString(w, p.b.String())
	return err
}

// String returns the source text of node, or a placeholder if node cannot
// be printed.
func String(node ast.Node) string {
	var b strings.Builder
	if err := Fprint(&b, node); err != nil {
		return fmt.Sprintf("<%T>", node)
	}
	return b.String()
}

type printer struct {
	b     strings.Builder
	depth int
}

func (p *printer) write(s string) { p.b.WriteString(s) }
func (p *printer) nl()            { p.b.WriteByte('\n') }

func (p *printer) pad() {
	for i := 0; i < p.depth; i++ {
		p.b.WriteString(indentUnit)
	}
}

func (p *printer) indent(fn func()) {
	p.depth++
	fn()
	p.depth--
}

func (p *printer) node(node ast.Node) error {
	switch n := node.(type) {
	case *ast.File:
		p.file(n)
	case *ast.ClassDecl:
		p.classDecl(n)
		p.nl()
	case ast.Member:
		p.member(n)
		p.nl()
	case ast.Stmt:
		p.stmt(n)
		p.nl()
	case ast.Expr:
		p.expr(n)
	case *ast.Type:
		p.typ(n)
	default:
		return fmt.Errorf("printer: unsupported node type %T", node)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Comments

func (p *printer) leading(g *ast.CommentGroup) {
	if g == nil {
		return
	}
	for _, c := range g.List {
		p.pad()
		p.write(c.Text)
		p.nl()
	}
}

func (p *printer) trailing(c *ast.Comment) {
	if c != nil {
		p.write(" ")
		p.write(c.Text)
	}
}

func (p *printer) orphans(groups []*ast.CommentGroup) {
	for _, g := range groups {
		for _, c := range g.List {
			p.nl()
			p.pad()
			p.write(c.Text)
		}
	}
}

// startOf returns where a node and its leading comments begin.
func startOf(n ast.Node, c *ast.Attached) token.Pos {
	if c != nil && c.Leading != nil {
		return c.Leading.Pos()
	}
	return n.Pos()
}

// separated reports whether the source had a blank line between two
// adjacent nodes. Synthesised nodes have no positions and never do.
func separated(prevEnd, next token.Pos) bool {
	return prevEnd.IsValid() && next.IsValid() && next.Line > prevEnd.Line+1
}

// ----------------------------------------------------------------------------
// Compilation unit and declarations

func (p *printer) file(f *ast.File) {
	started := false
	section := func() {
		if started {
			p.nl()
		}
		started = true
	}

	if d := f.Package; d != nil {
		section()
		p.leading(d.Leading)
		p.write("package " + d.Name + ";")
		p.trailing(d.Trailing)
		p.nl()
	}
	if len(f.Imports) > 0 {
		section()
		for _, d := range f.Imports {
			p.leading(d.Leading)
			p.write("import ")
			if d.Static {
				p.write("static ")
			}
			p.write(d.Path)
			if d.Wildcard {
				p.write(".*")
			}
			p.write(";")
			p.trailing(d.Trailing)
			p.nl()
		}
	}
	for _, d := range f.Types {
		section()
		p.leading(d.Leading)
		p.classDecl(d)
		p.trailing(d.Trailing)
		p.nl()
	}
	for _, g := range f.Orphans {
		section()
		for _, c := range g.List {
			p.write(c.Text)
			p.nl()
		}
	}
}

// mods prints modifiers followed by a space. Declaration annotations go on
// their own lines when ownLine is set.
func (p *printer) mods(m *ast.Modifiers, ownLine bool) {
	if m.IsEmpty() {
		return
	}
	for _, a := range m.Annotations {
		p.annotation(a)
		if ownLine {
			p.nl()
			p.pad()
		} else {
			p.write(" ")
		}
	}
	for _, kw := range m.Keywords {
		p.write(kw + " ")
	}
}

func (p *printer) annotation(a *ast.Annotation) {
	p.write("@" + a.Name)
	if a.Paren {
		p.write("(")
		p.exprList(a.Args)
		p.write(")")
	}
}

func (p *printer) typeParams(list []*ast.TypeParam) {
	if len(list) == 0 {
		return
	}
	p.write("<")
	for i, tp := range list {
		if i > 0 {
			p.write(", ")
		}
		p.write(tp.Name)
		for j, b := range tp.Bounds {
			if j == 0 {
				p.write(" extends ")
			} else {
				p.write(" & ")
			}
			p.typ(b)
		}
	}
	p.write(">")
}

func (p *printer) typeList(keyword string, list []*ast.Type) {
	if len(list) == 0 {
		return
	}
	p.write(" " + keyword + " ")
	for i, t := range list {
		if i > 0 {
			p.write(", ")
		}
		p.typ(t)
	}
}

// classDecl prints a type declaration starting at the current column.
func (p *printer) classDecl(d *ast.ClassDecl) {
	p.mods(d.Mods, true)
	p.write(d.Kind.String() + " " + d.Name)
	p.typeParams(d.TypeParams)
	if d.Kind == ast.Record {
		p.params(d.RecordParams)
	}
	p.typeList("extends", d.Extends)
	p.typeList("implements", d.Implements)
	p.typeList("permits", d.Permits)
	p.write(" ")
	p.classBody(d.Body, d.Kind == ast.Enum, d.Constants)
}

func (p *printer) classBody(b *ast.ClassBody, enum bool, consts []*ast.EnumConstant) {
	if !enum && len(b.Members) == 0 && len(b.Orphans) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent(func() {
		for i, c := range consts {
			p.nl()
			p.leading(c.Leading)
			p.pad()
			p.mods(c.Mods, false)
			p.write(c.Name)
			if c.HasArgs {
				p.write("(")
				p.exprList(c.Args)
				p.write(")")
			}
			if c.Body != nil {
				p.write(" ")
				p.classBody(c.Body, false, nil)
			}
			if i < len(consts)-1 {
				p.write(",")
			} else if len(b.Members) > 0 {
				p.write(";")
			}
			p.trailing(c.Trailing)
		}
		if enum && len(consts) == 0 && len(b.Members) > 0 {
			p.nl()
			p.pad()
			p.write(";")
		}

		var prev ast.Member
		for i, m := range b.Members {
			p.nl()
			if i > 0 || len(consts) > 0 {
				_, field := m.(*ast.FieldDecl)
				_, prevField := prev.(*ast.FieldDecl)
				if !(field && prevField) || separated(prev.End(), startOf(m, m.Comments())) {
					p.nl()
				}
			}
			c := m.Comments()
			p.leading(c.Leading)
			p.pad()
			p.member(m)
			p.trailing(c.Trailing)
			prev = m
		}
		p.orphans(b.Orphans)
	})
	p.nl()
	p.pad()
	p.write("}")
}

// member prints a class member, without its attached comments, starting
// at the current column.
func (p *printer) member(m ast.Member) {
	switch m := m.(type) {
	case *ast.ClassDecl:
		p.classDecl(m)
	case *ast.FieldDecl:
		p.varDecl(m.Decl, true)
		p.write(";")
	case *ast.MethodDecl:
		p.method(m)
	case *ast.InitializerDecl:
		if m.Static {
			p.write("static ")
		}
		p.block(m.Body)
	case *ast.EmptyMember:
		p.write(";")
	}
}

func (p *printer) method(d *ast.MethodDecl) {
	p.mods(d.Mods, true)
	if len(d.TypeParams) > 0 {
		p.typeParams(d.TypeParams)
		p.write(" ")
	}
	if d.Result != nil {
		p.typ(d.Result)
		p.write(" ")
	}
	p.write(d.Name)
	if !d.Compact {
		p.params(d.Params)
	}
	p.write(strings.Repeat("[]", d.Dims))
	p.typeList("throws", d.Throws)
	if d.Default != nil {
		p.write(" default ")
		p.expr(d.Default)
	}
	if d.Body == nil {
		p.write(";")
		return
	}
	p.write(" ")
	p.block(d.Body)
}

func (p *printer) params(list []*ast.Param) {
	p.write("(")
	for i, param := range list {
		if i > 0 {
			p.write(", ")
		}
		p.param(param)
	}
	p.write(")")
}

func (p *printer) param(param *ast.Param) {
	p.mods(param.Mods, false)
	if param.Type != nil {
		p.typ(param.Type)
		if param.Varargs {
			p.write("...")
		}
		p.write(" ")
	}
	p.write(param.Name)
	p.write(strings.Repeat("[]", param.Dims))
}

func (p *printer) varDecl(d *ast.VarDecl, ownLine bool) {
	p.mods(d.Mods, ownLine)
	p.typ(d.Type)
	for i, v := range d.Vars {
		if i > 0 {
			p.write(",")
		}
		p.write(" " + v.Name)
		p.write(strings.Repeat("[]", v.Dims))
		if v.Init != nil {
			p.write(" = ")
			p.expr(v.Init)
		}
	}
}

func (p *printer) typ(t *ast.Type) {
	p.write(t.Name)
	switch {
	case t.Diamond:
		p.write("<>")
	case t.Args != nil:
		p.write("<")
		for i, a := range t.Args {
			if i > 0 {
				p.write(", ")
			}
			p.typ(a)
		}
		p.write(">")
	}
	if t.Bound != nil {
		if t.Super {
			p.write(" super ")
		} else {
			p.write(" extends ")
		}
		p.typ(t.Bound)
	}
	p.write(strings.Repeat("[]", t.Dims))
}
