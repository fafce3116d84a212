package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()
	stmts, err := ParseStmts(src)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	s, ok := parseOne(t, src+";").(*ast.ExprStmt)
	require.True(t, ok, "not an expression statement: %s", src)
	return s.X
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	src := `package a.b;

import java.util.*;
import static java.lang.Math.max;

public final class Box<T extends Comparable<T>> extends Base implements Runnable, Cloneable {
    private static final int SIZE = 4, OTHER;
    java.util.List<T> items;

    Box() {
        super();
    }

    public <R> R map(java.util.function.Function<? super T, ? extends R> f) throws Exception {
        return null;
    }

    static {
    }

    interface Visitor {
        void visit(Box<?> b);
    }

    enum Mode { ON, OFF }

    record Pair(int a, int b) {}
}
`
	f, err := ParseFile("Box.java", []byte(src))
	require.NoError(t, err)

	require.NotNil(t, f.Package)
	assert.Equal(t, "a.b", f.Package.Name)
	require.Len(t, f.Imports, 2)
	assert.True(t, f.Imports[0].Wildcard)
	assert.Equal(t, "java.util", f.Imports[0].Path)
	assert.True(t, f.Imports[1].Static)
	assert.Equal(t, "java.lang.Math.max", f.Imports[1].Path)

	require.Len(t, f.Types, 1)
	box := f.Types[0]
	assert.Equal(t, "Box", box.Name)
	assert.Equal(t, ast.Class, box.Kind)
	assert.True(t, box.Mods.Has(token.FINAL))
	require.Len(t, box.TypeParams, 1)
	assert.Equal(t, "Comparable", box.TypeParams[0].Bounds[0].Name)
	assert.Len(t, box.Implements, 2)

	members := box.Body.Members
	require.Len(t, members, 8)

	field := members[0].(*ast.FieldDecl)
	require.Len(t, field.Decl.Vars, 2)
	assert.Equal(t, "SIZE", field.Decl.Vars[0].Name)
	assert.Nil(t, field.Decl.Vars[1].Init)

	items := members[1].(*ast.FieldDecl)
	assert.Equal(t, "java.util.List", items.Decl.Type.Name)
	assert.Equal(t, "List", items.Decl.Type.SimpleName())

	ctor := members[2].(*ast.MethodDecl)
	assert.True(t, ctor.Ctor)
	call := ctor.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.MethodCall)
	assert.Equal(t, "super", call.Name)
	assert.Nil(t, call.X)

	m := members[3].(*ast.MethodDecl)
	assert.Equal(t, "map", m.Name)
	require.Len(t, m.TypeParams, 1)
	arg := m.Params[0].Type.Args[0]
	assert.Equal(t, "?", arg.Name)
	assert.True(t, arg.Super)
	assert.Len(t, m.Throws, 1)

	assert.True(t, members[4].(*ast.InitializerDecl).Static)
	assert.Equal(t, ast.Interface, members[5].(*ast.ClassDecl).Kind)

	mode := members[6].(*ast.ClassDecl)
	assert.Equal(t, ast.Enum, mode.Kind)
	assert.Len(t, mode.Constants, 2)

	pair := members[7].(*ast.ClassDecl)
	assert.Equal(t, ast.Record, pair.Kind)
	assert.Len(t, pair.RecordParams, 2)
}

func TestParseStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, s ast.Stmt)
	}{
		{
			name: "for-each",
			src:  "for (final String s : names) use(s);",
			check: func(t *testing.T, s ast.Stmt) {
				fe := s.(*ast.ForEachStmt)
				assert.Equal(t, "s", fe.Var.Vars[0].Name)
				assert.True(t, fe.Var.Mods.Has(token.FINAL))
				assert.True(t, ast.IsName(fe.Iterable, "names"))
				_, isBlock := fe.Body.(*ast.Block)
				assert.False(t, isBlock)
			},
		},
		{
			name: "classic for",
			src:  "for (int i = 0, j = 1; i < n; i++, j--) {}",
			check: func(t *testing.T, s ast.Stmt) {
				fs := s.(*ast.ForStmt)
				require.Len(t, fs.Init, 1)
				assert.Len(t, fs.Init[0].(*ast.VarDecl).Vars, 2)
				assert.Len(t, fs.Update, 2)
			},
		},
		{
			name: "generic local declaration",
			src:  "Map<String, List<Integer>> m = new HashMap<>();",
			check: func(t *testing.T, s ast.Stmt) {
				d := s.(*ast.DeclStmt).Decl
				assert.Equal(t, "Map", d.Type.Name)
				assert.Equal(t, "List", d.Type.Args[1].Name)
				nx := d.Vars[0].Init.(*ast.NewExpr)
				assert.True(t, nx.Type.Diamond)
			},
		},
		{
			name: "var declaration",
			src:  "var xs = new ArrayList<String>();",
			check: func(t *testing.T, s ast.Stmt) {
				d := s.(*ast.DeclStmt).Decl
				assert.True(t, d.Type.IsVar())
			},
		},
		{
			name: "try with resources",
			src:  "try (Reader r = open(); in) { r.read(); } catch (IOException | Error e) {} finally { done(); }",
			check: func(t *testing.T, s ast.Stmt) {
				ts := s.(*ast.TryStmt)
				require.Len(t, ts.Resources, 2)
				assert.IsType(t, &ast.VarDecl{}, ts.Resources[0])
				assert.True(t, ast.IsName(ts.Resources[1], "in"))
				require.Len(t, ts.Catches, 1)
				assert.Len(t, ts.Catches[0].Types, 2)
				assert.NotNil(t, ts.Finally)
			},
		},
		{
			name: "labeled loop",
			src:  "outer: while (true) { break outer; }",
			check: func(t *testing.T, s ast.Stmt) {
				ls := s.(*ast.LabeledStmt)
				assert.Equal(t, "outer", ls.Label)
				br := ls.Stmt.(*ast.WhileStmt).Body.(*ast.Block).Stmts[0].(*ast.BranchStmt)
				assert.Equal(t, token.BREAK, br.Tok)
				assert.Equal(t, "outer", br.Label)
			},
		},
		{
			name: "arrow switch",
			src:  "switch (k) { case A, B -> go(); default -> { stop(); } }",
			check: func(t *testing.T, s ast.Stmt) {
				ss := s.(*ast.SwitchStmt)
				require.Len(t, ss.Cases, 2)
				assert.True(t, ss.Cases[0].Arrow)
				assert.Len(t, ss.Cases[0].Labels, 2)
				assert.True(t, ss.Cases[1].Default)
				assert.IsType(t, &ast.Block{}, ss.Cases[1].Body[0])
			},
		},
		{
			name: "local class",
			src:  "class Local { int x; }",
			check: func(t *testing.T, s ast.Stmt) {
				assert.Equal(t, "Local", s.(*ast.ClassStmt).Decl.Name)
			},
		},
		{
			name: "yield inside switch expression",
			src:  "int v = switch (k) { case 1: yield 10; default: yield 0; };",
			check: func(t *testing.T, s ast.Stmt) {
				sw := s.(*ast.DeclStmt).Decl.Vars[0].Init.(*ast.SwitchExpr)
				assert.IsType(t, &ast.YieldStmt{}, sw.Cases[0].Body[0])
			},
		},
		{
			name: "assert with message",
			src:  `assert x > 0 : "positive";`,
			check: func(t *testing.T, s ast.Stmt) {
				as := s.(*ast.AssertStmt)
				assert.NotNil(t, as.Msg)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, parseOne(t, tt.src))
		})
	}
}

func TestParseExpressions(t *testing.T) {
	t.Parallel()

	t.Run("shift joins adjacent closers", func(t *testing.T) {
		t.Parallel()
		x := exprOf(t, "a = b >> 2 >>> c > d")
		cmp := x.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
		assert.Equal(t, token.GT, cmp.Op)
		ushr := cmp.X.(*ast.BinaryExpr)
		assert.Equal(t, token.USHR, ushr.Op)
		assert.Equal(t, token.SHR, ushr.X.(*ast.BinaryExpr).Op)
	})

	t.Run("precedence", func(t *testing.T) {
		t.Parallel()
		x := exprOf(t, "r = a + b * c")
		sum := x.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
		assert.Equal(t, token.ADD, sum.Op)
		assert.Equal(t, token.MUL, sum.Y.(*ast.BinaryExpr).Op)
	})

	t.Run("cast versus parenthesised operand", func(t *testing.T) {
		t.Parallel()
		cast := exprOf(t, "r = (String) o").(*ast.AssignExpr).Value
		assert.IsType(t, &ast.CastExpr{}, cast)

		sub := exprOf(t, "r = (a) - b").(*ast.AssignExpr).Value
		assert.IsType(t, &ast.BinaryExpr{}, sub)

		prim := exprOf(t, "r = (int) -x").(*ast.AssignExpr).Value
		assert.IsType(t, &ast.CastExpr{}, prim)
	})

	t.Run("lambdas", func(t *testing.T) {
		t.Parallel()
		call := exprOf(t, "run(() -> 1, (int a, int b) -> { return a; }, x -> x)").(*ast.MethodCall)
		require.Len(t, call.Args, 3)
		for _, a := range call.Args {
			assert.IsType(t, &ast.LambdaExpr{}, a)
		}
		typed := call.Args[1].(*ast.LambdaExpr)
		assert.Equal(t, "int", typed.Params[0].Type.Name)
		assert.IsType(t, &ast.Block{}, typed.Body)
	})

	t.Run("method references and class literals", func(t *testing.T) {
		t.Parallel()
		call := exprOf(t, "use(String::valueOf, int[]::new, List.class, this::run)").(*ast.MethodCall)
		require.Len(t, call.Args, 4)
		assert.Equal(t, "valueOf", call.Args[0].(*ast.MethodRef).Name)
		ref := call.Args[1].(*ast.MethodRef)
		assert.Equal(t, "new", ref.Name)
		assert.Equal(t, 1, ref.Type.Dims)
		assert.IsType(t, &ast.ClassLit{}, call.Args[2])
		assert.IsType(t, &ast.ThisExpr{}, call.Args[3].(*ast.MethodRef).X)
	})

	t.Run("generic method call", func(t *testing.T) {
		t.Parallel()
		call := exprOf(t, "Collections.<String>emptyList()").(*ast.MethodCall)
		assert.Equal(t, "emptyList", call.Name)
		require.Len(t, call.TypeArgs, 1)
	})

	t.Run("instanceof pattern", func(t *testing.T) {
		t.Parallel()
		x := exprOf(t, "ok = o instanceof String s && s.isEmpty()").(*ast.AssignExpr).Value
		and := x.(*ast.BinaryExpr)
		io := and.X.(*ast.InstanceOfExpr)
		assert.Equal(t, "s", io.Binding)
	})

	t.Run("anonymous class and arrays", func(t *testing.T) {
		t.Parallel()
		call := exprOf(t, "use(new Runnable() { public void run() {} }, new int[3][], new String[] {\"a\"})").(*ast.MethodCall)
		anon := call.Args[0].(*ast.NewExpr)
		require.NotNil(t, anon.Body)
		assert.Len(t, anon.Body.Members, 1)
		arr := call.Args[1].(*ast.NewArray)
		assert.Len(t, arr.DimExprs, 1)
		assert.Equal(t, 1, arr.Dims)
		assert.NotNil(t, call.Args[2].(*ast.NewArray).Init)
	})
}

func TestCommentAttachment(t *testing.T) {
	t.Parallel()

	src := `class A {
    void f() {
        // lead one
        // lead two
        a(); // trail
        for (String s : xs) {
            b();
        } // after loop
        /* orphan */
    }
}
`
	f, err := ParseFile("A.java", []byte(src))
	require.NoError(t, err)

	body := f.Types[0].Body.Members[0].(*ast.MethodDecl).Body
	require.Len(t, body.Stmts, 2)

	first := body.Stmts[0].Comments()
	require.NotNil(t, first.Leading)
	assert.Equal(t, "// lead one\n// lead two", first.Leading.Text())
	require.NotNil(t, first.Trailing)
	assert.Equal(t, "// trail", first.Trailing.Text)

	loop := body.Stmts[1].(*ast.ForEachStmt)
	require.NotNil(t, loop.Trailing)
	assert.Equal(t, "// after loop", loop.Trailing.Text)
	assert.True(t, loop.Body.Comments().Empty())

	require.Len(t, body.Orphans, 1)
	assert.Equal(t, "/* orphan */", body.Orphans[0].Text())
	assert.Len(t, f.Comments, 2)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"missing semicolon", "class A { int x }", "expected ';', found '}'"},
		{"unterminated class", "class A {", "expected '}', found end of file"},
		{"bare try", "class A { void f() { try {} } }", "try statement needs catch or finally"},
		{"qualified generic", "class A { Outer<String>.Inner x; }", "type arguments on a qualifying type are not supported"},
		{"lexical error", "class A { String s = \"abc; }", "string literal not terminated"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFile("A.java", []byte(tt.src))
			require.Error(t, err)

			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "A.java", pe.Filename)
			assert.Equal(t, tt.msg, pe.Msg)
		})
	}
}
