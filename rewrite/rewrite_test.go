package rewrite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/internal"
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/parser"
	"github.com/gnoswap-labs/idxloop/internal/java/resolve"
	"github.com/gnoswap-labs/idxloop/internal/loops"
)

type mockUnitEngine struct {
	mock.Mock
}

func (m *mockUnitEngine) Run(unit string, src []byte) (*internal.Result, error) {
	args := m.Called(unit, src)
	res, _ := args.Get(0).(*internal.Result)
	return res, args.Error(1)
}

type mockUnitWriter struct {
	mock.Mock
}

func (m *mockUnitWriter) Write(unit string, f *ast.File) error {
	return m.Called(unit, f).Error(0)
}

func writeUnits(t *testing.T, root string, units map[string]string) {
	t.Helper()
	for unit, content := range units {
		path := filepath.Join(root, filepath.FromSlash(unit))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestProcessUnit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeUnits(t, root, map[string]string{"app/Main.java": "class Main {}"})

	expected := &internal.Result{Unit: "app/Main.java"}
	engine := new(mockUnitEngine)
	engine.On("Run", "app/Main.java", []byte("class Main {}")).Return(expected, nil)

	res, err := ProcessUnit(engine, root, "app/Main.java")
	require.NoError(t, err)
	assert.Same(t, expected, res)
	engine.AssertExpectations(t)

	_, err = ProcessUnit(engine, root, "Missing.java")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProcessUnitsWritesSuccessfulUnits(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeUnits(t, root, map[string]string{
		"A.java": "class A {}",
		"B.java": "class B {}",
		"C.java": "class C {}",
	})

	fa, fc := &ast.File{Name: "A.java"}, &ast.File{Name: "C.java"}
	parseErr := errors.New("parse B.java: boom")

	engine := new(mockUnitEngine)
	engine.On("Run", "A.java", mock.Anything).Return(&internal.Result{Unit: "A.java", File: fa}, nil)
	engine.On("Run", "B.java", mock.Anything).Return(nil, parseErr)
	engine.On("Run", "C.java", mock.Anything).Return(&internal.Result{Unit: "C.java", File: fc}, nil)

	w := new(mockUnitWriter)
	w.On("Write", "A.java", fa).Return(nil)
	w.On("Write", "C.java", fc).Return(nil)

	var progress bytes.Buffer
	config := Config{Source: root, Units: []string{"A.java", "B.java", "C.java"}}
	results, err := ProcessUnits(context.Background(), zap.NewNop(), engine, config, Options{Writer: w, Progress: &progress})

	require.Error(t, err)
	assert.ErrorIs(t, err, parseErr)
	require.Len(t, results, 2)
	assert.Equal(t, "A.java", results[0].Unit)
	assert.Equal(t, "C.java", results[1].Unit)
	assert.NotEmpty(t, progress.String())

	engine.AssertExpectations(t)
	w.AssertExpectations(t)
	w.AssertNotCalled(t, "Write", "B.java", mock.Anything)
}

func TestProcessUnitsCombinesErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeUnits(t, root, map[string]string{"A.java": "class A {}"})

	engine := new(mockUnitEngine)
	engine.On("Run", "A.java", mock.Anything).Return(&internal.Result{Unit: "A.java"}, nil)

	writeErr := errors.New("disk full")
	w := new(mockUnitWriter)
	w.On("Write", "A.java", mock.Anything).Return(writeErr)

	config := Config{Source: root, Units: []string{"A.java", "Missing.java"}}
	results, err := ProcessUnits(context.Background(), nil, engine, config, Options{Writer: w})

	assert.Empty(t, results)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, err, writeErr)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var ue *UnitError
	require.ErrorAs(t, errs[1], &ue)
	assert.Equal(t, "Missing.java", ue.Unit)
	require.ErrorAs(t, errs[0], &ue)
	assert.Equal(t, "A.java", ue.Unit)
}

func TestProcessUnitsContextCancellation(t *testing.T) {
	t.Parallel()

	engine := new(mockUnitEngine)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := Config{Source: t.TempDir(), Units: []string{"A.java", "B.java"}}
	results, err := ProcessUnits(ctx, nil, engine, config, Options{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	engine.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestProcessUnitsEndToEnd(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeUnits(t, src, map[string]string{
		"app/Main.java": `import java.util.ArrayList;

class Main {
    void run() {
        ArrayList<String> xs = new ArrayList<>();
        for (String x : xs) {
            System.out.println(x);
        }
    }
}
`,
		"app/Broken.java": "class Broken {",
		"app/Bad.java":    "class Bad { void f() { var xs; for (Object x : xs) {} } }",
	})

	config := Config{Source: src, Output: out, Units: []string{"app/Main.java", "app/Broken.java", "app/Bad.java"}}
	engine := internal.NewEngine(nil, &loops.Counter{})
	results, err := ProcessUnits(context.Background(), nil, engine, config, Options{Writer: NewWriter(config, false)})

	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrMalformed)
	var perr *parser.Error
	assert.ErrorAs(t, err, &perr)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Rewritten())

	written, err := os.ReadFile(filepath.Join(out, "app", "Main.java"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "for (int lv0 = 0; lv0 < xs.size(); lv0 = lv0 + 1) {")
	assert.Contains(t, string(written), "String x = xs.get(lv0);")

	assert.NoFileExists(t, filepath.Join(out, "app", "Broken.java"))
	assert.NoFileExists(t, filepath.Join(out, "app", "Bad.java"))
}
