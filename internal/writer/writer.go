// Package writer saves rewritten compilation units under an output root,
// mirroring their paths relative to the source root.
package writer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/printer"
)

var ErrOutsideRoot = errors.New("unit path leaves the output root")

type Writer struct {
	Root   string
	DryRun bool
	Out    io.Writer // receives dry-run output
}

func New(root string, dryRun bool) *Writer {
	return &Writer{
		Root:   root,
		DryRun: dryRun,
		Out:    os.Stdout,
	}
}

// Path returns where unit is written.
func (w *Writer) Path(unit string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(unit))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", unit, ErrOutsideRoot)
	}
	return filepath.Join(w.Root, clean), nil
}

// Write prints f and stores it as unit, replacing any previous file. The
// printed text is not checked.
func (w *Writer) Write(unit string, f *ast.File) error {
	path, err := w.Path(unit)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, f); err != nil {
		return fmt.Errorf("failed to print %s: %w", unit, err)
	}

	if w.DryRun {
		fmt.Fprintf(w.Out, "Would write %s\n", path)
		_, err := w.Out.Write(buf.Bytes())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
