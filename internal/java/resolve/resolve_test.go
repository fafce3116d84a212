package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/parser"
)

// iterables resolves src and returns the resolution of every for-each
// iterable name, in source order.
func iterables(t *testing.T, src string) []Resolution {
	t.Helper()
	f, err := parser.ParseFile("T.java", []byte(src))
	require.NoError(t, err)

	info := File(f)
	var out []Resolution
	for _, fe := range ast.Collect[*ast.ForEachStmt](f) {
		n, ok := fe.Iterable.(*ast.Name)
		require.True(t, ok)
		out = append(out, info.Resolve(n))
	}
	return out
}

func TestResolveTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		status   Status
		kind     TypeKind
		typeName string
	}{
		{
			name: "imported list",
			src: `import java.util.ArrayList;
import java.util.List;
class T { void f() { List<String> xs = new ArrayList<>(); for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.List",
		},
		{
			name: "on-demand import",
			src: `import java.util.*;
class T { void f() { ArrayList<String> xs = new ArrayList<>(); for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.ArrayList",
		},
		{
			name:     "fully qualified",
			src:      `class T { void f() { java.util.ArrayList<String> xs = null; for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.ArrayList",
		},
		{
			name:   "missing import",
			src:    `class T { void f() { ArrayList<String> xs = null; for (String x : xs) {} } }`,
			status: Unresolved,
		},
		{
			name:     "array",
			src:      `class T { void f() { int[] xs = {1}; for (int x : xs) {} } }`,
			status:   Resolved,
			kind:     Array,
			typeName: "int[]",
		},
		{
			name:     "parameter with type variable",
			src:      `class T<E> { void f(E xs) { for (Object x : xs) {} } }`,
			status:   Resolved,
			kind:     TypeVar,
			typeName: "E",
		},
		{
			name:     "java.lang type",
			src:      `class T { void f(Iterable<String> xs) { for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.lang.Iterable",
		},
		{
			name: "field of enclosing class",
			src: `import java.util.List;
class T { List<String> xs; class In { void f() { for (String x : xs) {} } } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.List",
		},
		{
			name: "local shadows field",
			src: `import java.util.*;
class T { Set<String> xs; void f() { List<String> xs = new ArrayList<>(); for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.List",
		},
		{
			name:     "type declared in the unit",
			src:      `package p; class T { static class Bag {} void f(Bag xs) { for (Object x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "p.T.Bag",
		},
		{
			name:   "unknown symbol",
			src:    `class T { void f() { for (Object x : nowhere) {} } }`,
			status: Unresolved,
		},
		{
			name: "var from constructor",
			src: `import java.util.ArrayList;
class T { void f() { var xs = new ArrayList<String>(); for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.ArrayList",
		},
		{
			name: "var from method result",
			src: `import java.util.List;
class T { List<String> make() { return null; } void f() { var xs = make(); for (String x : xs) {} } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.List",
		},
		{
			name:   "var from unknown call",
			src:    `class T { void f() { var xs = other.make(); for (String x : xs) {} } }`,
			status: Unresolved,
		},
		{
			name:   "var without initializer",
			src:    `class T { void f() { var xs; for (String x : xs) {} } }`,
			status: Malformed,
		},
		{
			name:   "var initialized to null",
			src:    `class T { void f() { var xs = null; for (String x : xs) {} } }`,
			status: Malformed,
		},
		{
			name: "lambda parameter",
			src: `import java.util.function.Consumer;
class T { Consumer<Object> c = xs -> { for (Object x : xs) {} }; }`,
			status: Unresolved,
		},
		{
			name: "anonymous class sees enclosing locals",
			src: `import java.util.*;
class T { void f() { List<String> xs = new ArrayList<>(); new Runnable() { public void run() { for (String x : xs) {} } }; } }`,
			status:   Resolved,
			kind:     Reference,
			typeName: "java.util.List",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := iterables(t, tt.src)
			require.Len(t, res, 1)
			assert.Equal(t, tt.status, res[0].Status, res[0].Reason)
			if tt.status == Resolved {
				assert.Equal(t, tt.kind, res[0].Type.Kind)
				assert.Equal(t, tt.typeName, res[0].Type.Name)
			}
		})
	}
}

func TestResolveScopes(t *testing.T) {
	t.Parallel()

	src := `import java.util.*;
class T {
    void f() {
        {
            List<String> xs = new ArrayList<>();
        }
        for (String x : xs) {}
        for (int i = 0; i < 1; i++) {
            ArrayList<String> ys = new ArrayList<>();
            for (String y : ys) {}
        }
        try (var zs = new ArrayList<String>()) {
            for (String z : zs) {}
        } catch (Exception e) {
        }
    }
}
`
	res := iterables(t, src)
	require.Len(t, res, 3)
	assert.Equal(t, Unresolved, res[0].Status, "block-local declaration must not leak")
	assert.Equal(t, "java.util.ArrayList", res[1].Type.Name)
	assert.Equal(t, "java.util.ArrayList", res[2].Type.Name)
}

func TestMalformedErr(t *testing.T) {
	t.Parallel()

	res := iterables(t, `class T { void f() { var a = 1, xs = 2; for (Object x : xs) {} } }`)
	require.Len(t, res, 1)

	err := res[0].Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	assert.NoError(t, Resolution{Status: Unresolved}.Err())
	assert.NoError(t, Resolution{Status: Resolved}.Err())
}

func TestSymbolDecl(t *testing.T) {
	t.Parallel()

	f, err := parser.ParseFile("T.java", []byte(`class T { void f(int n) { int m = n; } }`))
	require.NoError(t, err)
	info := File(f)

	names := ast.Collect[*ast.Name](f)
	require.Len(t, names, 1)
	sym := info.Symbol(names[0])
	require.NotNil(t, sym)
	assert.Equal(t, Param, sym.Kind)
	assert.Equal(t, "n", sym.Name)
	assert.Equal(t, Primitive, sym.Type.Type.Kind)
}
