package parser

import (
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func (p *parser) parseType() *ast.Type {
	t := p.parseBaseType()
	t.Dims = p.parseDims()
	t.EndPos = p.prev.End
	return t
}

// parseBaseType parses a type without trailing array dimensions.
func (p *parser) parseBaseType() *ast.Type {
	start := p.tok()
	switch {
	case start.Kind.IsPrimitive() || start.Kind == token.VOID:
		p.next()
		return &ast.Type{Start: start.Pos, Name: start.Lit, Primitive: true, EndPos: start.End}

	case start.Kind == token.QUESTION:
		p.next()
		t := &ast.Type{Start: start.Pos, Name: "?"}
		switch {
		case p.got(token.EXTENDS):
			t.Bound = p.parseType()
		case p.got(token.SUPER):
			t.Bound = p.parseType()
			t.Super = true
		}
		t.EndPos = p.prev.End
		return t

	case start.Kind == token.IDENT:
		t := &ast.Type{Start: start.Pos}
		var name strings.Builder
		name.WriteString(p.next().Lit)
		for {
			if p.at(token.LT) {
				p.parseTypeArgs(t)
				if p.at(token.DOT) && p.peek(1).Kind == token.IDENT {
					p.errorf(p.tok().Pos, "type arguments on a qualifying type are not supported")
				}
				break
			}
			if p.at(token.DOT) && p.peek(1).Kind == token.IDENT {
				p.next()
				name.WriteByte('.')
				name.WriteString(p.next().Lit)
				continue
			}
			break
		}
		t.Name = name.String()
		t.EndPos = p.prev.End
		return t
	}

	p.errorExpected("type")
	return nil
}

// parseTypeArgs parses "<T1, T2>" or the diamond "<>" into t.
func (p *parser) parseTypeArgs(t *ast.Type) {
	p.expect(token.LT)
	if p.got(token.GT) {
		t.Diamond = true
		return
	}
	t.Args = p.parseTypeList()
	p.expect(token.GT)
}

func (p *parser) parseTypeList() []*ast.Type {
	list := []*ast.Type{p.parseType()}
	for p.got(token.COMMA) {
		list = append(list, p.parseType())
	}
	return list
}

func (p *parser) parseTypeParams() []*ast.TypeParam {
	p.expect(token.LT)
	var params []*ast.TypeParam
	for {
		p.parseModifiers()
		name := p.expect(token.IDENT)
		tp := &ast.TypeParam{Name: name.Lit, NamePos: name.Pos}
		if p.got(token.EXTENDS) {
			tp.Bounds = append(tp.Bounds, p.parseType())
			for p.got(token.AND) {
				tp.Bounds = append(tp.Bounds, p.parseType())
			}
		}
		tp.EndPos = p.prev.End
		params = append(params, tp)
		if !p.got(token.COMMA) {
			break
		}
	}
	p.expect(token.GT)
	return params
}

// parseDims counts "[]" pairs.
func (p *parser) parseDims() int {
	n := 0
	for p.at(token.LBRACK) && p.peek(1).Kind == token.RBRACK {
		p.next()
		p.next()
		n++
	}
	return n
}

// parseModifiers parses annotations and modifier keywords. It returns nil
// when there are none.
func (p *parser) parseModifiers() *ast.Modifiers {
	var m *ast.Modifiers
	for {
		t := p.tok()
		if m == nil {
			m = &ast.Modifiers{Start: t.Pos}
		}
		switch {
		case t.Kind == token.AT && p.peek(1).Kind != token.INTERFACE:
			m.Annotations = append(m.Annotations, p.parseAnnotation())
		case t.Kind.IsModifier():
			m.Keywords = append(m.Keywords, p.next().Lit)
		case t.Kind == token.IDENT && t.Lit == "sealed" && p.modifierFollows(1):
			m.Keywords = append(m.Keywords, p.next().Lit)
		case t.Kind == token.IDENT && t.Lit == "non" && p.peek(1).Kind == token.SUB &&
			p.peek(2).Kind == token.IDENT && p.peek(2).Lit == "sealed":
			p.next()
			p.next()
			p.next()
			m.Keywords = append(m.Keywords, "non-sealed")
		default:
			if m.IsEmpty() {
				return nil
			}
			m.EndPos = p.prev.End
			return m
		}
	}
}

// modifierFollows reports whether the token n ahead continues a modifier
// list or starts a type declaration.
func (p *parser) modifierFollows(n int) bool {
	t := p.peek(n)
	switch {
	case t.Kind.IsModifier(), t.Kind == token.CLASS, t.Kind == token.INTERFACE, t.Kind == token.AT:
		return true
	case t.Kind == token.IDENT:
		return t.Lit == "sealed" || t.Lit == "non" || t.Lit == "record"
	}
	return false
}

func (p *parser) parseAnnotation() *ast.Annotation {
	a := &ast.Annotation{At: p.expect(token.AT).Pos}
	a.Name = p.parseQualifiedName()
	if p.got(token.LPAREN) {
		a.Paren = true
		for !p.at(token.RPAREN) {
			if p.at(token.IDENT) && p.peek(1).Kind == token.ASSIGN {
				key := p.next()
				op := p.next()
				a.Args = append(a.Args, &ast.AssignExpr{
					Target: &ast.Name{NamePos: key.Pos, Name: key.Lit},
					OpPos:  op.Pos,
					Op:     token.ASSIGN,
					Value:  p.parseElementValue(),
				})
			} else {
				a.Args = append(a.Args, p.parseElementValue())
			}
			if !p.got(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	a.EndPos = p.prev.End
	return a
}

func (p *parser) parseElementValue() ast.Expr {
	switch {
	case p.at(token.AT):
		return p.parseAnnotation()
	case p.at(token.LBRACE):
		return p.parseArrayInit(p.parseElementValue)
	}
	return p.parseTernary()
}
