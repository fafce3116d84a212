package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/parser"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ar, err := txtar.ParseFile("testdata/roundtrip.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, ar.Files)

	for _, f := range ar.Files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			t.Parallel()

			file, err := parser.ParseFile(f.Name, f.Data)
			require.NoError(t, err)

			var b strings.Builder
			require.NoError(t, Fprint(&b, file))
			assert.Equal(t, string(f.Data), b.String())
		})
	}
}

func TestNormalizesLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses horizontal space",
			input:    "class A{void f(){int  x=1;x+=2;}}",
			expected: "class A {\n    void f() {\n        int x = 1;\n        x += 2;\n    }\n}\n",
		},
		{
			name:     "empty bodies",
			input:    "class A { void f() { } }",
			expected: "class A {\n    void f() {}\n}\n",
		},
		{
			name:     "non-block bodies move to their own line",
			input:    "class A { void f(boolean b) { while (b) b = false; } }",
			expected: "class A {\n    void f(boolean b) {\n        while (b)\n            b = false;\n    }\n}\n",
		},
		{
			name:     "else after a non-block then",
			input:    "class A { int f(int x) { if (x > 0) return 1; else return 2; } }",
			expected: "class A {\n    int f(int x) {\n        if (x > 0)\n            return 1;\n        else\n            return 2;\n    }\n}\n",
		},
		{
			name:     "multiple blank lines collapse to one",
			input:    "class A { void f() { a();\n\n\n b(); } }",
			expected: "class A {\n    void f() {\n        a();\n\n        b();\n    }\n}\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := parser.ParseFile("A.java", []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, String(file))
		})
	}
}

func TestSynthesizedLoop(t *testing.T) {
	t.Parallel()

	counter := "lv0"
	loop := &ast.ForStmt{
		Init: []ast.Expr{&ast.VarDecl{
			Type: &ast.Type{Name: "int", Primitive: true},
			Vars: []*ast.Declarator{{Name: counter, Init: &ast.Literal{Kind: token.INT, Value: "0"}}},
		}},
		Cond: &ast.BinaryExpr{
			X:  ast.NewName(counter),
			Op: token.LT,
			Y:  &ast.MethodCall{X: ast.NewName("xs"), Name: "size"},
		},
		Update: []ast.Expr{&ast.AssignExpr{
			Target: ast.NewName(counter),
			Op:     token.ASSIGN,
			Value:  &ast.BinaryExpr{X: ast.NewName(counter), Op: token.ADD, Y: &ast.Literal{Kind: token.INT, Value: "1"}},
		}},
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.DeclStmt{Decl: &ast.VarDecl{
				Type: &ast.Type{Name: "String"},
				Vars: []*ast.Declarator{{
					Name: "x",
					Init: &ast.MethodCall{X: ast.NewName("xs"), Name: "get", Args: []ast.Expr{ast.NewName(counter)}},
				}},
			}},
		}},
	}
	loop.Leading = &ast.CommentGroup{List: []*ast.Comment{{Text: "// walk"}}}

	expected := "// walk\nfor (int lv0 = 0; lv0 < xs.size(); lv0 = lv0 + 1) {\n    String x = xs.get(lv0);\n}\n"
	assert.Equal(t, expected, String(loop))
}

func TestUnsupportedNode(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := Fprint(&b, &ast.Declarator{Name: "x"})
	assert.Error(t, err)
	assert.Equal(t, "<*ast.Declarator>", String(&ast.Declarator{Name: "x"}))
}
