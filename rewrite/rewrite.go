// Package rewrite runs the loop rewriter over a batch of compilation units
// and writes the results under an output root.
package rewrite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/idxloop/internal"
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/loops"
	"github.com/gnoswap-labs/idxloop/internal/writer"
)

// UnitEngine rewrites one compilation unit.
type UnitEngine interface {
	Run(unit string, src []byte) (*internal.Result, error)
}

// UnitWriter stores a rewritten unit.
type UnitWriter interface {
	Write(unit string, f *ast.File) error
}

// New returns the engine used for real runs.
func New(logger *zap.Logger) *internal.Engine {
	return internal.NewEngine(logger, loops.UUIDNames{})
}

// NewWriter returns a writer for the output root of config.
func NewWriter(config Config, dryRun bool) *writer.Writer {
	return writer.New(config.Output, dryRun)
}

// UnitError is a failure confined to one unit.
type UnitError struct {
	Unit string
	Err  error
}

func (e *UnitError) Error() string { return e.Err.Error() }
func (e *UnitError) Unwrap() error { return e.Err }

type Options struct {
	// Writer receives every unit that was processed without error. Nil
	// leaves the output root untouched.
	Writer UnitWriter
	// Progress receives a progress bar. Nil disables it.
	Progress io.Writer
}

// ProcessUnits rewrites the units of config in parallel, then writes the
// successful ones. A unit that fails is skipped and its *UnitError is
// combined into the returned error; the other units are still written. Once ctx is
// done no further unit is started.
//
// The returned results follow the order of config.Units and omit failed or
// unstarted units.
func ProcessUnits(
	ctx context.Context,
	logger *zap.Logger,
	engine UnitEngine,
	config Config,
	opts Options,
) ([]*internal.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bar := newProgressBar(opts.Progress, config.Source, len(config.Units))
	results := make([]*internal.Result, len(config.Units))
	unitErrs := make([]error, len(config.Units))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var cancelled error
	for i, unit := range config.Units {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		i, unit := i, unit
		g.Go(func() error {
			res, err := ProcessUnit(engine, config.Source, unit)
			if err != nil {
				unitErrs[i] = &UnitError{Unit: unit, Err: err}
			} else {
				results[i] = res
				logger.Debug("unit processed",
					zap.String("unit", unit),
					zap.Int("loops", len(res.Decisions)),
					zap.Int("rewritten", res.Rewritten()),
				)
			}
			_ = bar.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	if opts.Progress != nil {
		fmt.Fprintln(opts.Progress)
	}

	var (
		done []*internal.Result
		errs error
	)
	for i, res := range results {
		if unitErrs[i] != nil {
			errs = multierr.Append(errs, unitErrs[i])
			continue
		}
		if res == nil {
			continue
		}
		if opts.Writer != nil {
			if err := opts.Writer.Write(res.Unit, res.File); err != nil {
				errs = multierr.Append(errs, &UnitError{Unit: res.Unit, Err: fmt.Errorf("write %s: %w", res.Unit, err)})
				continue
			}
		}
		done = append(done, res)
	}
	return done, multierr.Append(errs, cancelled)
}

// ProcessUnit reads unit below root and runs engine on it.
func ProcessUnit(engine UnitEngine, root, unit string) (*internal.Result, error) {
	src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(unit)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", unit, err)
	}
	return engine.Run(unit, src)
}

func newProgressBar(w io.Writer, description string, total int) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
