package ast

import "github.com/gnoswap-labs/idxloop/internal/java/token"

// File is one compilation unit.
type File struct {
	Name     string
	Package  *PackageDecl
	Imports  []*ImportDecl
	Types    []*ClassDecl
	Comments []*CommentGroup // every comment in the unit, in source order
	Orphans  []*CommentGroup // comments after the last type declaration
	EOF      token.Pos
}

func (f *File) Pos() token.Pos {
	switch {
	case f.Package != nil:
		return f.Package.Pos()
	case len(f.Imports) > 0:
		return f.Imports[0].Pos()
	case len(f.Types) > 0:
		return f.Types[0].Pos()
	}
	return f.EOF
}

func (f *File) End() token.Pos { return f.EOF }

type PackageDecl struct {
	Package token.Pos
	Name    string
	Semi    token.Pos
	Attached
}

func (d *PackageDecl) Pos() token.Pos { return d.Package }
func (d *PackageDecl) End() token.Pos { return after(d.Semi) }

// ImportDecl is "import [static] Path[.*];".
type ImportDecl struct {
	Import   token.Pos
	Static   bool
	Path     string
	Wildcard bool
	Semi     token.Pos
	Attached
}

func (d *ImportDecl) Pos() token.Pos { return d.Import }
func (d *ImportDecl) End() token.Pos { return after(d.Semi) }

// ClassKind distinguishes the forms of type declaration.
type ClassKind int

const (
	Class ClassKind = iota
	Interface
	Enum
	Record
	AnnotationType
)

func (k ClassKind) String() string {
	switch k {
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Record:
		return "record"
	case AnnotationType:
		return "@interface"
	}
	return "class"
}

// ClassDecl is a class, interface, enum, record or annotation type.
type ClassDecl struct {
	Mods         *Modifiers
	Kind         ClassKind
	KindPos      token.Pos
	Name         string
	NamePos      token.Pos
	TypeParams   []*TypeParam
	RecordParams []*Param
	Extends      []*Type // at most one for classes
	Implements   []*Type
	Permits      []*Type
	Constants    []*EnumConstant
	Body         *ClassBody
	Attached
}

func (d *ClassDecl) Pos() token.Pos {
	if !d.Mods.IsEmpty() {
		return d.Mods.Start
	}
	return d.KindPos
}
func (d *ClassDecl) End() token.Pos { return d.Body.End() }

// ClassBody is the braced member list of a type declaration or anonymous
// class. For enums the constants are held by the ClassDecl.
type ClassBody struct {
	Lbrace  token.Pos
	Members []Member
	Rbrace  token.Pos
	Orphans []*CommentGroup
}

func (b *ClassBody) Pos() token.Pos { return b.Lbrace }
func (b *ClassBody) End() token.Pos { return after(b.Rbrace) }

// EnumConstant is "NAME[(args)] [{ body }]".
type EnumConstant struct {
	Mods    *Modifiers
	Name    string
	NamePos token.Pos
	Args    []Expr
	HasArgs bool
	Body    *ClassBody
	EndPos  token.Pos
	Attached
}

func (c *EnumConstant) Pos() token.Pos {
	if !c.Mods.IsEmpty() {
		return c.Mods.Start
	}
	return c.NamePos
}
func (c *EnumConstant) End() token.Pos { return c.EndPos }

// FieldDecl declares one or more fields.
type FieldDecl struct {
	Decl *VarDecl
	Semi token.Pos
	Attached
}

func (d *FieldDecl) Pos() token.Pos { return d.Decl.Pos() }
func (d *FieldDecl) End() token.Pos { return after(d.Semi) }

// MethodDecl is a method, constructor or compact record constructor.
// Result is nil for constructors; Body is nil for abstract and native
// methods. Default holds an annotation element default value.
type MethodDecl struct {
	Mods       *Modifiers
	TypeParams []*TypeParam
	Result     *Type
	Name       string
	NamePos    token.Pos
	Params     []*Param
	Dims       int
	Throws     []*Type
	Default    Expr
	Body       *Block
	Ctor       bool
	Compact    bool
	EndPos     token.Pos
	Attached
}

func (d *MethodDecl) Pos() token.Pos {
	switch {
	case !d.Mods.IsEmpty():
		return d.Mods.Start
	case len(d.TypeParams) > 0:
		return d.TypeParams[0].Pos()
	case d.Result != nil:
		return d.Result.Pos()
	}
	return d.NamePos
}
func (d *MethodDecl) End() token.Pos { return d.EndPos }

// InitializerDecl is an instance or static initializer block.
type InitializerDecl struct {
	Start  token.Pos
	Static bool
	Body   *Block
	Attached
}

func (d *InitializerDecl) Pos() token.Pos { return d.Start }
func (d *InitializerDecl) End() token.Pos { return d.Body.End() }

// EmptyMember is a stray semicolon in a class body.
type EmptyMember struct {
	Semi token.Pos
	Attached
}

func (d *EmptyMember) Pos() token.Pos { return d.Semi }
func (d *EmptyMember) End() token.Pos { return after(d.Semi) }

func (*ClassDecl) memberNode()       {}
func (*FieldDecl) memberNode()       {}
func (*MethodDecl) memberNode()      {}
func (*InitializerDecl) memberNode() {}
func (*EmptyMember) memberNode()     {}
