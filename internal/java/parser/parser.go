// Package parser implements a recursive-descent parser for Java source.
//
// The parser covers the language used by ordinary application code: type
// declarations of every kind, generics, annotations, lambdas, method
// references, switch expressions and the full statement set. Comments are
// attached to the statements and declarations they precede or trail.
package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/scanner"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

// Error is a syntax error. It is fatal for the unit being parsed.
type Error struct {
	Filename string
	Pos      token.Pos
	Msg      string
}

func (e *Error) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Msg)
}

// bailout unwinds the parser on the first error.
type bailout struct{ err *Error }

type parser struct {
	filename string
	toks     []token.Token
	p        int
	prev     token.Token // last consumed token

	comments []*ast.Comment
	ci       int // first comment not yet attached
}

type mark struct{ p, ci int }

// ParseFile parses the source of a single compilation unit. If src is nil
// the file is read from filename.
func ParseFile(filename string, src []byte) (f *ast.File, err error) {
	if src == nil {
		src, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	}

	toks, comments, err := scanner.Scan(src)
	if err != nil {
		var se *scanner.Error
		if errors.As(err, &se) {
			return nil, &Error{Filename: filename, Pos: se.Pos, Msg: se.Msg}
		}
		return nil, err
	}

	p := &parser{filename: filename, toks: toks}
	for _, c := range comments {
		p.comments = append(p.comments, &ast.Comment{Slash: c.Pos, EndPos: c.End, Text: c.Lit})
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			f, err = nil, b.err
		}
	}()
	return p.parseFile(), nil
}

// ParseStmts parses a sequence of block statements. It is used for
// fragments in tests and diagnostics.
func ParseStmts(src string) (stmts []ast.Stmt, err error) {
	f, err := ParseFile("", []byte("class Fragment { void fragment() {\n"+src+"\n} }"))
	if err != nil {
		return nil, err
	}
	body := f.Types[0].Body.Members[0].(*ast.MethodDecl).Body
	return body.Stmts, nil
}

func (p *parser) tok() token.Token { return p.toks[p.p] }

func (p *parser) peek(n int) token.Token {
	if i := p.p + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) at(k token.Kind) bool { return p.toks[p.p].Kind == k }

func (p *parser) atIdent(lit string) bool {
	t := p.toks[p.p]
	return t.Kind == token.IDENT && t.Lit == lit
}

func (p *parser) next() token.Token {
	t := p.toks[p.p]
	if t.Kind != token.EOF {
		p.p++
	}
	p.prev = t
	return t
}

func (p *parser) got(k token.Kind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(k token.Kind) token.Token {
	if !p.at(k) {
		p.errorExpected("'" + k.String() + "'")
	}
	return p.next()
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	panic(bailout{&Error{Filename: p.filename, Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) errorExpected(what string) {
	t := p.tok()
	found := "'" + t.Kind.String() + "'"
	switch {
	case t.Kind == token.EOF:
		found = "end of file"
	case t.Kind.IsLiteral():
		found = t.Lit
	}
	p.errorf(t.Pos, "expected %s, found %s", what, found)
}

func (p *parser) mark() mark { return mark{p.p, p.ci} }

func (p *parser) reset(m mark) {
	p.p, p.ci = m.p, m.ci
	if p.p > 0 {
		p.prev = p.toks[p.p-1]
	} else {
		p.prev = token.Token{}
	}
}

// try runs f and reports whether it parsed without error. On failure the
// parser is rewound to where it was before f.
func (p *parser) try(f func()) (ok bool) {
	m := p.mark()
	defer func() {
		if r := recover(); r != nil {
			if _, isBail := r.(bailout); !isBail {
				panic(r)
			}
			p.reset(m)
			ok = false
		}
	}()
	f()
	return true
}

// ----------------------------------------------------------------------------
// Comments

// leading takes the unattached comments that start before pos.
func (p *parser) leading(pos token.Pos) *ast.CommentGroup {
	var list []*ast.Comment
	for p.ci < len(p.comments) && p.comments[p.ci].Slash.Offset < pos.Offset {
		list = append(list, p.comments[p.ci])
		p.ci++
	}
	if len(list) == 0 {
		return nil
	}
	return &ast.CommentGroup{List: list}
}

// trailing takes a comment that follows the last consumed token on the
// same line.
func (p *parser) trailing() *ast.Comment {
	if p.ci >= len(p.comments) {
		return nil
	}
	c := p.comments[p.ci]
	if c.Slash.Line != p.prev.End.Line || c.Slash.Offset < p.prev.End.Offset {
		return nil
	}
	if c.Slash.Offset > p.tok().Pos.Offset || c.EndPos.Line != c.Slash.Line {
		return nil
	}
	p.ci++
	return c
}

func (p *parser) orphans(pos token.Pos) []*ast.CommentGroup {
	if g := p.leading(pos); g != nil {
		return []*ast.CommentGroup{g}
	}
	return nil
}

// groupComments splits comments into runs on adjacent lines.
func groupComments(list []*ast.Comment) []*ast.CommentGroup {
	var groups []*ast.CommentGroup
	var cur *ast.CommentGroup
	for _, c := range list {
		if cur != nil && c.Slash.Line <= cur.End().Line+1 {
			cur.List = append(cur.List, c)
			continue
		}
		cur = &ast.CommentGroup{List: []*ast.Comment{c}}
		groups = append(groups, cur)
	}
	return groups
}

// ----------------------------------------------------------------------------
// Compilation unit

func (p *parser) parseFile() *ast.File {
	f := &ast.File{Name: p.filename, Comments: groupComments(p.comments)}

	if p.at(token.PACKAGE) {
		lead := p.leading(p.tok().Pos)
		d := &ast.PackageDecl{Package: p.next().Pos}
		d.Name = p.parseQualifiedName()
		d.Semi = p.expect(token.SEMICOLON).Pos
		d.Leading, d.Trailing = lead, p.trailing()
		f.Package = d
	}

	for p.at(token.IMPORT) {
		lead := p.leading(p.tok().Pos)
		d := &ast.ImportDecl{Import: p.next().Pos}
		d.Static = p.got(token.STATIC)
		d.Path = p.expect(token.IDENT).Lit
		for p.got(token.DOT) {
			if p.got(token.MUL) {
				d.Wildcard = true
				break
			}
			d.Path += "." + p.expect(token.IDENT).Lit
		}
		d.Semi = p.expect(token.SEMICOLON).Pos
		d.Leading, d.Trailing = lead, p.trailing()
		f.Imports = append(f.Imports, d)
	}

	for !p.at(token.EOF) {
		if p.got(token.SEMICOLON) {
			continue
		}
		lead := p.leading(p.tok().Pos)
		d := p.parseClassDecl(p.parseModifiers())
		d.Leading, d.Trailing = lead, p.trailing()
		f.Types = append(f.Types, d)
	}

	f.EOF = p.tok().Pos
	f.Orphans = p.orphans(f.EOF)
	return f
}

func (p *parser) parseQualifiedName() string {
	name := p.expect(token.IDENT).Lit
	for p.at(token.DOT) && p.peek(1).Kind == token.IDENT {
		p.next()
		name += "." + p.next().Lit
	}
	return name
}

// ----------------------------------------------------------------------------
// Declarations

func (p *parser) atClassDecl() bool {
	switch p.tok().Kind {
	case token.CLASS, token.INTERFACE, token.ENUM:
		return true
	case token.AT:
		return p.peek(1).Kind == token.INTERFACE
	case token.IDENT:
		return p.tok().Lit == "record" && p.peek(1).Kind == token.IDENT &&
			(p.peek(2).Kind == token.LPAREN || p.peek(2).Kind == token.LT)
	}
	return false
}

func (p *parser) parseClassDecl(mods *ast.Modifiers) *ast.ClassDecl {
	d := &ast.ClassDecl{Mods: mods, KindPos: p.tok().Pos}
	switch {
	case p.got(token.CLASS):
		d.Kind = ast.Class
	case p.got(token.INTERFACE):
		d.Kind = ast.Interface
	case p.got(token.ENUM):
		d.Kind = ast.Enum
	case p.at(token.AT) && p.peek(1).Kind == token.INTERFACE:
		p.next()
		p.next()
		d.Kind = ast.AnnotationType
	case p.atClassDecl():
		p.next()
		d.Kind = ast.Record
	default:
		p.errorExpected("class, interface, enum or record declaration")
	}

	name := p.expect(token.IDENT)
	d.Name, d.NamePos = name.Lit, name.Pos
	if p.at(token.LT) {
		d.TypeParams = p.parseTypeParams()
	}
	if d.Kind == ast.Record {
		d.RecordParams = p.parseParams()
	}
	if p.got(token.EXTENDS) {
		d.Extends = p.parseTypeList()
	}
	if p.got(token.IMPLEMENTS) {
		d.Implements = p.parseTypeList()
	}
	if p.atIdent("permits") {
		p.next()
		d.Permits = p.parseTypeList()
	}

	if d.Kind == ast.Enum {
		d.Constants, d.Body = p.parseEnumBody(d.Name)
	} else {
		d.Body = p.parseClassBody(d.Name)
	}
	return d
}

func (p *parser) parseClassBody(class string) *ast.ClassBody {
	b := &ast.ClassBody{Lbrace: p.expect(token.LBRACE).Pos}
	p.parseMembers(b, class)
	return b
}

func (p *parser) parseMembers(b *ast.ClassBody, class string) {
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		b.Members = append(b.Members, p.parseMember(class))
	}
	b.Orphans = p.orphans(p.tok().Pos)
	b.Rbrace = p.expect(token.RBRACE).Pos
}

func (p *parser) parseEnumBody(class string) ([]*ast.EnumConstant, *ast.ClassBody) {
	b := &ast.ClassBody{Lbrace: p.expect(token.LBRACE).Pos}
	var consts []*ast.EnumConstant
	for !p.at(token.SEMICOLON) && !p.at(token.RBRACE) {
		lead := p.leading(p.tok().Pos)
		c := &ast.EnumConstant{Mods: p.parseModifiers()}
		name := p.expect(token.IDENT)
		c.Name, c.NamePos = name.Lit, name.Pos
		if p.at(token.LPAREN) {
			c.HasArgs = true
			_, c.Args, _ = p.parseArgs()
		}
		if p.at(token.LBRACE) {
			c.Body = p.parseClassBody("")
		}
		c.EndPos = p.prev.End
		c.Leading = lead
		consts = append(consts, c)
		if !p.got(token.COMMA) {
			break
		}
		c.Trailing = p.trailing()
	}
	if p.got(token.SEMICOLON) {
		if n := len(consts); n > 0 {
			consts[n-1].Trailing = p.trailing()
		}
	}
	p.parseMembers(b, class)
	return consts, b
}

func (p *parser) parseMember(class string) ast.Member {
	lead := p.leading(p.tok().Pos)
	m := p.parseMemberBody(class)
	c := m.Comments()
	c.Leading, c.Trailing = lead, p.trailing()
	return m
}

func (p *parser) parseMemberBody(class string) ast.Member {
	switch {
	case p.at(token.SEMICOLON):
		return &ast.EmptyMember{Semi: p.next().Pos}
	case p.at(token.LBRACE):
		return &ast.InitializerDecl{Start: p.tok().Pos, Body: p.parseBlock()}
	case p.at(token.STATIC) && p.peek(1).Kind == token.LBRACE:
		start := p.next().Pos
		return &ast.InitializerDecl{Start: start, Static: true, Body: p.parseBlock()}
	}

	mods := p.parseModifiers()
	if p.atClassDecl() {
		return p.parseClassDecl(mods)
	}

	var tparams []*ast.TypeParam
	if p.at(token.LT) {
		tparams = p.parseTypeParams()
	}

	if class != "" && p.atIdent(class) {
		switch p.peek(1).Kind {
		case token.LPAREN:
			return p.parseMethodRest(mods, tparams, nil)
		case token.LBRACE:
			name := p.next()
			d := &ast.MethodDecl{Mods: mods, Name: name.Lit, NamePos: name.Pos, Ctor: true, Compact: true}
			d.Body = p.parseBlock()
			d.EndPos = p.prev.End
			return d
		}
	}

	typ := p.parseType()
	if p.at(token.IDENT) && p.peek(1).Kind == token.LPAREN {
		return p.parseMethodRest(mods, tparams, typ)
	}
	if tparams != nil {
		p.errorExpected("method declaration")
	}
	decl := p.parseVarDeclRest(mods, typ)
	return &ast.FieldDecl{Decl: decl, Semi: p.expect(token.SEMICOLON).Pos}
}

// parseMethodRest parses a method or, when result is nil, a constructor
// starting at its name.
func (p *parser) parseMethodRest(mods *ast.Modifiers, tparams []*ast.TypeParam, result *ast.Type) *ast.MethodDecl {
	name := p.expect(token.IDENT)
	d := &ast.MethodDecl{
		Mods:       mods,
		TypeParams: tparams,
		Result:     result,
		Name:       name.Lit,
		NamePos:    name.Pos,
		Ctor:       result == nil,
	}
	d.Params = p.parseParams()
	d.Dims = p.parseDims()
	if p.got(token.THROWS) {
		d.Throws = p.parseTypeList()
	}
	if p.got(token.DEFAULT) {
		d.Default = p.parseElementValue()
	}
	if p.at(token.LBRACE) {
		d.Body = p.parseBlock()
	} else {
		p.expect(token.SEMICOLON)
	}
	d.EndPos = p.prev.End
	return d
}

func (p *parser) parseParams() []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	for !p.at(token.RPAREN) {
		params = append(params, p.parseParam())
		if !p.got(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *parser) parseParam() *ast.Param {
	param := &ast.Param{Mods: p.parseModifiers(), Type: p.parseType()}
	param.Varargs = p.got(token.ELLIPSIS)
	name := p.expect(token.IDENT)
	param.Name, param.NamePos = name.Lit, name.Pos
	param.Dims = p.parseDims()
	param.EndPos = p.prev.End
	return param
}

// parseVarDeclRest parses the declarators following a declared type.
func (p *parser) parseVarDeclRest(mods *ast.Modifiers, typ *ast.Type) *ast.VarDecl {
	d := &ast.VarDecl{Mods: mods, Type: typ}
	for {
		name := p.expect(token.IDENT)
		v := &ast.Declarator{Name: name.Lit, NamePos: name.Pos}
		v.Dims = p.parseDims()
		if p.got(token.ASSIGN) {
			v.Init = p.parseVarInit()
		}
		d.Vars = append(d.Vars, v)
		if !p.got(token.COMMA) {
			return d
		}
	}
}

func (p *parser) parseVarInit() ast.Expr {
	if p.at(token.LBRACE) {
		return p.parseArrayInit(p.parseVarInit)
	}
	return p.parseExpr()
}

func (p *parser) parseArrayInit(elem func() ast.Expr) *ast.ArrayInit {
	a := &ast.ArrayInit{Lbrace: p.expect(token.LBRACE).Pos}
	for !p.at(token.RBRACE) {
		a.Elems = append(a.Elems, elem())
		if !p.got(token.COMMA) {
			break
		}
	}
	a.Rbrace = p.expect(token.RBRACE).Pos
	return a
}
