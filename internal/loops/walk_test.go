package loops

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/parser"
	"github.com/gnoswap-labs/idxloop/internal/java/printer"
	"github.com/gnoswap-labs/idxloop/internal/java/resolve"
)

// rewriteSource parses, resolves and rewrites src with reproducible counter
// names, and returns the printed result with the decision reasons.
func rewriteSource(t *testing.T, src string) (string, []string) {
	t.Helper()
	f, err := parser.ParseFile("input.java", []byte(src))
	require.NoError(t, err)

	decisions, err := Rewrite(f, resolve.File(f), Options{Names: &Counter{}})
	require.NoError(t, err)

	reasons := make([]string, len(decisions))
	for i, d := range decisions {
		reasons[i] = d.Verdict.Reason.String()
	}
	return printer.String(f), reasons
}

func TestRewriteFixtures(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		file := file
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)
			sections := make(map[string]string)
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}

			input, ok := sections["input.java"]
			require.True(t, ok, "missing input.java")
			expected, ok := sections["output.java"]
			if !ok {
				expected = input
			}

			got, reasons := rewriteSource(t, input)
			assert.Equal(t, expected, got)
			assert.Equal(t, strings.Fields(sections["decisions"]), reasons)

			// a second pass finds nothing more to rewrite
			again, _ := rewriteSource(t, got)
			assert.Equal(t, got, again)
		})
	}
}

func TestRewriteMalformedAbortsUnit(t *testing.T) {
	t.Parallel()

	src := `class T {
    void f() {
        var xs;
        for (String x : xs) {}
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	require.NoError(t, err)

	_, err = Rewrite(f, resolve.File(f), Options{Names: &Counter{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrMalformed)
}

func TestRewriteUnresolvedContinues(t *testing.T) {
	t.Parallel()

	src := `import java.util.ArrayList;

class T {
    void f() {
        for (String x : nowhere) {}
        ArrayList<String> xs = new ArrayList<>();
        for (String x : xs) {}
    }
}
`
	_, reasons := rewriteSource(t, src)
	assert.Equal(t, []string{"unresolved", "admitted"}, reasons)
}

func TestRewriteSuppressed(t *testing.T) {
	t.Parallel()

	src := `import java.util.ArrayList;

class T {
    void f() {
        ArrayList<String> xs = new ArrayList<>();
        for (String a : xs) {}
        for (String b : xs) {}
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	require.NoError(t, err)

	var asked []ast.Stmt
	decisions, err := Rewrite(f, resolve.File(f), Options{
		Names: &Counter{},
		Suppressed: func(s ast.Stmt) bool {
			asked = append(asked, s)
			return s.Pos().Line == 6
		},
	})
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	require.Len(t, asked, 2)

	assert.Equal(t, Suppressed, decisions[0].Verdict.Reason)
	assert.False(t, decisions[0].Rewritten())
	assert.Empty(t, decisions[0].Counter)

	assert.Equal(t, Admitted, decisions[1].Verdict.Reason)
	assert.True(t, decisions[1].Rewritten())
	assert.Equal(t, "lv0", decisions[1].Counter)
	assert.Same(t, asked[1], decisions[1].Loop)
}

func TestRewriteAvoidsExistingNames(t *testing.T) {
	t.Parallel()

	src := `import java.util.ArrayList;

class T {
    int lv0;

    void lv1() {
        ArrayList<String> xs = new ArrayList<>();
        for (String x : xs) {}
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	require.NoError(t, err)
	decisions, err := Rewrite(f, resolve.File(f), Options{Names: &Counter{}})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "lv2", decisions[0].Counter)
}

func TestRewriteDefaultsToUUIDNames(t *testing.T) {
	t.Parallel()

	src := `import java.util.ArrayList;

class T {
    void f() {
        ArrayList<String> xs = new ArrayList<>();
        for (String x : xs) {}
    }
}
`
	f, err := parser.ParseFile("T.java", []byte(src))
	require.NoError(t, err)
	decisions, err := Rewrite(f, resolve.File(f), Options{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Regexp(t, `^lv[0-9a-f]{32}$`, decisions[0].Counter)
}
