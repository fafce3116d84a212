package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/idxloop/internal/java/parser"
)

const unitSource = "package app;\n\nclass Main {\n    int x;\n}\n"

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		unit     string
		existing string
	}{
		{name: "new nested directory", unit: "app/deep/Main.java"},
		{name: "overwrites previous output", unit: "Main.java", existing: "stale"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			w := New(root, false)
			path := filepath.Join(root, filepath.FromSlash(tt.unit))
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o644))
			}

			f, err := parser.ParseFile(tt.unit, []byte(unitSource))
			require.NoError(t, err)
			require.NoError(t, w.Write(tt.unit, f))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, unitSource, string(content))
		})
	}
}

func TestWriteDryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var out bytes.Buffer
	w := New(root, true)
	w.Out = &out

	f, err := parser.ParseFile("Main.java", []byte(unitSource))
	require.NoError(t, err)
	require.NoError(t, w.Write("Main.java", f))

	assert.Contains(t, out.String(), "Would write "+filepath.Join(root, "Main.java"))
	assert.Contains(t, out.String(), "class Main {")
	assert.NoFileExists(t, filepath.Join(root, "Main.java"))
}

func TestWriteDoesNotValidate(t *testing.T) {
	t.Parallel()

	f, err := parser.ParseFile("Main.java", []byte(unitSource))
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	f.Types[0].Name = "Main Broken"

	root := t.TempDir()
	require.NoError(t, New(root, false).Write("Main.java", f))

	content, err := os.ReadFile(filepath.Join(root, "Main.java"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "class Main Broken {")
}

func TestPathOutsideRoot(t *testing.T) {
	t.Parallel()

	w := New(t.TempDir(), false)
	for _, unit := range []string{"../Main.java", "a/../../Main.java", "/etc/Main.java"} {
		_, err := w.Path(unit)
		assert.ErrorIs(t, err, ErrOutsideRoot, unit)
	}

	path, err := w.Path("a/./b/../Main.java")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Root, "a", "Main.java"), path)
}
