// Package resolve binds the names of a Java compilation unit to their
// declarations and qualifies the declared types.
//
// Resolution is scope based: locals, parameters, loop, catch, lambda,
// resource and pattern variables, and the fields of every enclosing class.
// Types are qualified against the types declared in the unit, its imports
// and a built-in table of library types. Anything outside that world is
// reported as unresolved rather than guessed.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
)

// ErrMalformed is wrapped by the error of a Malformed resolution.
var ErrMalformed = errors.New("malformed declaration")

// Status tags a Resolution.
type Status int

const (
	Resolved Status = iota
	Unresolved
	Malformed
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// TypeKind classifies a resolved type.
type TypeKind int

const (
	Primitive TypeKind = iota
	Array
	TypeVar
	Reference
)

// Type is a resolved type. Name is the qualified name of a reference type
// and the spelling of any other type.
type Type struct {
	Kind TypeKind
	Name string
}

func (t Type) String() string { return t.Name }

// Resolution is the outcome of resolving a name or a written type.
type Resolution struct {
	Status Status
	Type   Type   // valid when Status is Resolved
	Reason string // why the name is Unresolved or Malformed
}

// Err returns the error aborting the unit for a Malformed resolution and
// nil otherwise.
func (r Resolution) Err() error {
	if r.Status != Malformed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMalformed, r.Reason)
}

func resolved(kind TypeKind, name string) Resolution {
	return Resolution{Status: Resolved, Type: Type{Kind: kind, Name: name}}
}

func unresolved(format string, args ...any) Resolution {
	return Resolution{Status: Unresolved, Reason: fmt.Sprintf(format, args...)}
}

func malformed(format string, args ...any) Resolution {
	return Resolution{Status: Malformed, Reason: fmt.Sprintf(format, args...)}
}

// SymbolKind says how a variable was declared.
type SymbolKind int

const (
	Local SymbolKind = iota
	Param
	Field
)

// Symbol is a declared variable.
type Symbol struct {
	Name string
	Kind SymbolKind
	Decl ast.Node // *ast.Declarator, *ast.Param, *ast.EnumConstant, *ast.CatchClause or *ast.InstanceOfExpr
	Type Resolution
}

// Info holds the result of resolving a unit.
type Info struct {
	// Uses maps each resolved name reference to its declaration.
	Uses map[*ast.Name]*Symbol
	// Unknown maps each name reference with no declaration in scope to the
	// reason.
	Unknown map[*ast.Name]string
}

// Resolve returns the type of the variable n refers to.
func (info *Info) Resolve(n *ast.Name) Resolution {
	if sym, ok := info.Uses[n]; ok {
		return sym.Type
	}
	if reason, ok := info.Unknown[n]; ok {
		return Resolution{Status: Unresolved, Reason: reason}
	}
	return unresolved("name %s was not seen by the resolver", n.Name)
}

// Symbol returns the declaration n refers to, or nil.
func (info *Info) Symbol(n *ast.Name) *Symbol { return info.Uses[n] }

// File resolves every name reference of f.
func File(f *ast.File) *Info {
	r := &resolver{
		info: &Info{
			Uses:    make(map[*ast.Name]*Symbol),
			Unknown: make(map[*ast.Name]string),
		},
		declared: make(map[string]string),
	}
	if f.Package != nil {
		r.pkg = f.Package.Name
	}
	for _, imp := range f.Imports {
		switch {
		case imp.Static:
		case imp.Wildcard:
			r.onDemand = append(r.onDemand, imp.Path)
		default:
			r.single = append(r.single, imp.Path)
		}
	}
	for _, d := range f.Types {
		r.declare(d, r.qualify(d.Name))
	}
	for _, d := range ast.Collect[*ast.ClassDecl](f) {
		if _, ok := r.declared[d.Name]; !ok {
			r.declare(d, r.qualify(d.Name))
		}
	}

	top := newScope(nil)
	for _, d := range f.Types {
		r.classDecl(d, top)
	}
	return r.info
}

type resolver struct {
	info     *Info
	pkg      string
	single   []string
	onDemand []string
	declared map[string]string // simple name -> qualified name of unit types
}

// declare records d and its member types under their simple names. The
// first declaration of a simple name wins.
func (r *resolver) declare(d *ast.ClassDecl, qualified string) {
	if _, ok := r.declared[d.Name]; !ok {
		r.declared[d.Name] = qualified
	}
	for _, m := range d.Body.Members {
		if inner, ok := m.(*ast.ClassDecl); ok {
			r.declare(inner, qualified+"."+inner.Name)
		}
	}
}

func (r *resolver) qualify(name string) string {
	if r.pkg == "" {
		return name
	}
	return r.pkg + "." + name
}

// ----------------------------------------------------------------------------
// Scopes

type classInfo struct {
	name    string
	methods map[string]*ast.MethodDecl // first declaration of each name
}

type scope struct {
	parent *scope
	vars   map[string]*Symbol
	tvars  map[string]bool
	class  *classInfo
}

// classScope starts the scope of a class body nested in parent. Locals of
// parent stay visible; the class gets its own method table.
func classScope(parent *scope, name string) *scope {
	return &scope{
		parent: parent,
		vars:   make(map[string]*Symbol),
		class:  &classInfo{name: name, methods: make(map[string]*ast.MethodDecl)},
	}
}

func newScope(parent *scope) *scope {
	s := &scope{parent: parent, vars: make(map[string]*Symbol)}
	if parent != nil {
		s.class = parent.class
	}
	return s
}

func (s *scope) lookup(name string) *Symbol {
	for ; s != nil; s = s.parent {
		if sym, ok := s.vars[name]; ok {
			return sym
		}
	}
	return nil
}

func (s *scope) isTypeVar(name string) bool {
	for ; s != nil; s = s.parent {
		if s.tvars[name] {
			return true
		}
	}
	return false
}

func (s *scope) addTypeParams(list []*ast.TypeParam) {
	if len(list) == 0 {
		return
	}
	if s.tvars == nil {
		s.tvars = make(map[string]bool)
	}
	for _, tp := range list {
		s.tvars[tp.Name] = true
	}
}

func (s *scope) add(sym *Symbol) { s.vars[sym.Name] = sym }

// ----------------------------------------------------------------------------
// Types

// typeOf qualifies a written type in scope sc.
func (r *resolver) typeOf(t *ast.Type, sc *scope) Resolution {
	switch {
	case t == nil:
		return unresolved("implicitly typed lambda parameter")
	case t.Dims > 0:
		return resolved(Array, t.Name+strings.Repeat("[]", t.Dims))
	case t.Primitive:
		return resolved(Primitive, t.Name)
	case t.Name == "?":
		return unresolved("wildcard type")
	case sc.isTypeVar(t.Name):
		return resolved(TypeVar, t.Name)
	}

	if q, ok := r.lookupType(t.Name); ok {
		return resolved(Reference, q)
	}
	return unresolved("cannot resolve type %s", t.Name)
}

// lookupType qualifies a simple or dotted type name.
func (r *resolver) lookupType(name string) (string, bool) {
	first, rest, dotted := strings.Cut(name, ".")
	if dotted {
		if jdk[name] {
			return name, true
		}
		// Outer.Inner, Map.Entry
		if outer, ok := r.lookupType(first); ok {
			q := outer + "." + rest
			if jdk[q] || !strings.HasPrefix(outer, "java.") {
				return q, true
			}
		}
		// a fully qualified type of the unit's own package
		if r.pkg != "" && strings.HasPrefix(name, r.pkg+".") {
			top, _, _ := strings.Cut(name[len(r.pkg)+1:], ".")
			if _, ok := r.declared[top]; ok {
				return name, true
			}
		}
		return "", false
	}

	if q, ok := r.declared[name]; ok {
		return q, true
	}
	for _, imp := range r.single {
		if imp == name || strings.HasSuffix(imp, "."+name) {
			if jdk[imp] {
				return imp, true
			}
			return "", false
		}
	}
	for _, pkg := range r.onDemand {
		if q := pkg + "." + name; jdk[q] {
			return q, true
		}
	}
	if q := "java.lang." + name; jdk[q] {
		return q, true
	}
	return "", false
}

// varType infers the type of a local declared with var.
func (r *resolver) varType(d *ast.VarDecl, v *ast.Declarator, sc *scope) Resolution {
	switch {
	case len(d.Vars) > 1:
		return malformed("'var' is not allowed in a compound declaration")
	case v.Dims > 0:
		return malformed("'var' is not allowed as an element type of an array")
	case v.Init == nil:
		return malformed("cannot infer type for local variable %s without an initializer", v.Name)
	}

	switch init := v.Init.(type) {
	case *ast.ArrayInit:
		return malformed("array initializer needs an explicit target type for %s", v.Name)
	case *ast.Literal:
		if init.Value == "null" {
			return malformed("variable initializer of %s is 'null'", v.Name)
		}
	case *ast.NewExpr:
		if init.Body == nil {
			return r.typeOf(init.Type, sc)
		}
	case *ast.MethodCall:
		if init.X == nil && sc.class != nil {
			if m, ok := sc.class.methods[init.Name]; ok && m.Result != nil {
				return r.typeOf(m.Result, sc)
			}
		}
	}
	return unresolved("cannot infer type of %s", v.Name)
}

// ----------------------------------------------------------------------------
// Declarations

func (r *resolver) classDecl(d *ast.ClassDecl, outer *scope) {
	sc := classScope(outer, d.Name)
	sc.addTypeParams(d.TypeParams)
	self := r.declared[d.Name]

	for _, p := range d.RecordParams {
		sc.add(&Symbol{Name: p.Name, Kind: Field, Decl: p, Type: r.paramType(p, sc)})
	}
	for _, c := range d.Constants {
		sc.add(&Symbol{Name: c.Name, Kind: Field, Decl: c, Type: resolved(Reference, self)})
	}
	r.classBody(d.Body, sc)

	for _, c := range d.Constants {
		r.exprs(c.Args, sc)
		if c.Body != nil {
			r.classBody(c.Body, classScope(sc, ""))
		}
	}
}

// classBody declares the fields and methods of b in sc and resolves the
// members.
func (r *resolver) classBody(b *ast.ClassBody, sc *scope) {
	for _, m := range b.Members {
		switch m := m.(type) {
		case *ast.FieldDecl:
			for _, v := range m.Decl.Vars {
				sc.add(&Symbol{Name: v.Name, Kind: Field, Decl: v, Type: r.declType(m.Decl, v, sc)})
			}
		case *ast.MethodDecl:
			if _, ok := sc.class.methods[m.Name]; !ok {
				sc.class.methods[m.Name] = m
			}
		}
	}

	for _, m := range b.Members {
		switch m := m.(type) {
		case *ast.FieldDecl:
			for _, v := range m.Decl.Vars {
				if v.Init != nil {
					r.expr(v.Init, sc)
				}
			}
		case *ast.MethodDecl:
			r.method(m, sc)
		case *ast.InitializerDecl:
			r.block(m.Body, sc)
		case *ast.ClassDecl:
			r.classDecl(m, sc)
		}
	}
}

func (r *resolver) method(m *ast.MethodDecl, outer *scope) {
	sc := newScope(outer)
	sc.addTypeParams(m.TypeParams)
	for _, p := range m.Params {
		sc.add(&Symbol{Name: p.Name, Kind: Param, Decl: p, Type: r.paramType(p, sc)})
	}
	if m.Default != nil {
		r.expr(m.Default, sc)
	}
	if m.Body != nil {
		r.block(m.Body, sc)
	}
}

func (r *resolver) paramType(p *ast.Param, sc *scope) Resolution {
	if p.Varargs && p.Type != nil {
		return resolved(Array, p.Type.Name+strings.Repeat("[]", p.Type.Dims+1))
	}
	if p.Dims > 0 && p.Type != nil {
		return resolved(Array, p.Type.Name+strings.Repeat("[]", p.Type.Dims+p.Dims))
	}
	return r.typeOf(p.Type, sc)
}

func (r *resolver) declType(d *ast.VarDecl, v *ast.Declarator, sc *scope) Resolution {
	if d.Type.IsVar() {
		return r.varType(d, v, sc)
	}
	if v.Dims > 0 {
		return resolved(Array, d.Type.Name+strings.Repeat("[]", d.Type.Dims+v.Dims))
	}
	return r.typeOf(d.Type, sc)
}

// localVars resolves the initializers of d and declares its variables in sc.
func (r *resolver) localVars(d *ast.VarDecl, sc *scope) {
	for _, v := range d.Vars {
		if v.Init != nil {
			r.expr(v.Init, sc)
		}
		sc.add(&Symbol{Name: v.Name, Kind: Local, Decl: v, Type: r.declType(d, v, sc)})
	}
}

// ----------------------------------------------------------------------------
// Statements

func (r *resolver) block(b *ast.Block, outer *scope) {
	sc := newScope(outer)
	for _, s := range b.Stmts {
		r.stmt(s, sc)
	}
}

// body resolves a nested statement in its own scope.
func (r *resolver) body(s ast.Stmt, outer *scope) {
	if b, ok := s.(*ast.Block); ok {
		r.block(b, outer)
		return
	}
	r.stmt(s, newScope(outer))
}

func (r *resolver) stmt(s ast.Stmt, sc *scope) {
	switch s := s.(type) {
	case *ast.Block:
		r.block(s, sc)
	case *ast.DeclStmt:
		r.localVars(s.Decl, sc)
	case *ast.ClassStmt:
		r.classDecl(s.Decl, sc)
	case *ast.ExprStmt:
		r.expr(s.X, sc)
	case *ast.IfStmt:
		r.expr(s.Cond, sc)
		r.body(s.Then, sc)
		if s.Else != nil {
			r.body(s.Else, sc)
		}
	case *ast.WhileStmt:
		r.expr(s.Cond, sc)
		r.body(s.Body, sc)
	case *ast.DoStmt:
		r.body(s.Body, sc)
		r.expr(s.Cond, sc)
	case *ast.ForStmt:
		inner := newScope(sc)
		for _, x := range s.Init {
			if d, ok := x.(*ast.VarDecl); ok {
				r.localVars(d, inner)
				continue
			}
			r.expr(x, inner)
		}
		if s.Cond != nil {
			r.expr(s.Cond, inner)
		}
		r.exprs(s.Update, inner)
		r.body(s.Body, inner)
	case *ast.ForEachStmt:
		r.expr(s.Iterable, sc)
		inner := newScope(sc)
		v := s.Var.Vars[0]
		typ := unresolved("cannot infer element type of %s", v.Name)
		if !s.Var.Type.IsVar() {
			typ = r.typeOf(s.Var.Type, inner)
		}
		inner.add(&Symbol{Name: v.Name, Kind: Local, Decl: v, Type: typ})
		r.body(s.Body, inner)
	case *ast.ReturnStmt:
		if s.X != nil {
			r.expr(s.X, sc)
		}
	case *ast.ThrowStmt:
		r.expr(s.X, sc)
	case *ast.YieldStmt:
		r.expr(s.X, sc)
	case *ast.TryStmt:
		inner := newScope(sc)
		for _, res := range s.Resources {
			if d, ok := res.(*ast.VarDecl); ok {
				r.localVars(d, inner)
				continue
			}
			r.expr(res, inner)
		}
		r.block(s.Body, inner)
		for _, c := range s.Catches {
			cs := newScope(sc)
			typ := unresolved("union catch parameter %s", c.Name)
			if len(c.Types) == 1 {
				typ = r.typeOf(c.Types[0], cs)
			}
			cs.add(&Symbol{Name: c.Name, Kind: Param, Decl: c, Type: typ})
			r.block(c.Body, cs)
		}
		if s.Finally != nil {
			r.block(s.Finally, sc)
		}
	case *ast.SwitchStmt:
		r.expr(s.Tag, sc)
		r.cases(s.Cases, sc)
	case *ast.SyncStmt:
		r.expr(s.Lock, sc)
		r.block(s.Body, sc)
	case *ast.LabeledStmt:
		r.stmt(s.Stmt, sc)
	case *ast.AssertStmt:
		r.expr(s.Cond, sc)
		if s.Msg != nil {
			r.expr(s.Msg, sc)
		}
	}
}

// cases resolves switch clauses. Colon-form clauses share one scope, each
// arrow-form body has its own.
func (r *resolver) cases(cases []*ast.CaseClause, outer *scope) {
	shared := newScope(outer)
	for _, c := range cases {
		for _, l := range c.Labels {
			// enum constant labels are resolved against the tag's type,
			// not the enclosing scope
			if _, ok := l.(*ast.Name); ok {
				continue
			}
			r.expr(l, outer)
		}
		sc := shared
		if c.Arrow {
			sc = newScope(outer)
		}
		for _, s := range c.Body {
			r.stmt(s, sc)
		}
	}
}

// ----------------------------------------------------------------------------
// Expressions

func (r *resolver) exprs(list []ast.Expr, sc *scope) {
	for _, x := range list {
		r.expr(x, sc)
	}
}

func (r *resolver) expr(x ast.Expr, sc *scope) {
	ast.Inspect(x, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Name:
			if sym := sc.lookup(n.Name); sym != nil {
				r.info.Uses[n] = sym
			} else {
				r.info.Unknown[n] = "cannot resolve symbol " + n.Name
			}
			return false
		case *ast.LambdaExpr:
			inner := newScope(sc)
			for _, p := range n.Params {
				inner.add(&Symbol{Name: p.Name, Kind: Param, Decl: p, Type: r.paramType(p, inner)})
			}
			switch body := n.Body.(type) {
			case *ast.Block:
				r.block(body, inner)
			case ast.Expr:
				r.expr(body, inner)
			}
			return false
		case *ast.NewExpr:
			if n.Outer != nil {
				r.expr(n.Outer, sc)
			}
			r.exprs(n.Args, sc)
			if n.Body != nil {
				r.classBody(n.Body, classScope(sc, ""))
			}
			return false
		case *ast.SwitchExpr:
			r.expr(n.Tag, sc)
			r.cases(n.Cases, sc)
			return false
		case *ast.InstanceOfExpr:
			r.expr(n.X, sc)
			if n.Binding != "" {
				sc.add(&Symbol{Name: n.Binding, Kind: Local, Decl: n, Type: r.typeOf(n.Type, sc)})
			}
			return false
		case *ast.VarDecl:
			r.localVars(n, sc)
			return false
		case *ast.Type:
			return false
		}
		return true
	})
}
