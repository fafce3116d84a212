package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/parser"
	"github.com/gnoswap-labs/idxloop/internal/java/printer"
	"github.com/gnoswap-labs/idxloop/internal/java/resolve"
	"github.com/gnoswap-labs/idxloop/internal/loops"
	"github.com/gnoswap-labs/idxloop/internal/nolint"
	tt "github.com/gnoswap-labs/idxloop/internal/types"
)

// RuleName identifies the rewrite in reports and nolint comments.
const RuleName = "foreach-to-index"

// Engine rewrites compilation units. It holds no per-unit state and may be
// shared by concurrent callers as long as its NameSource is safe for
// concurrent use.
type Engine struct {
	logger *zap.Logger
	names  loops.NameSource
}

// NewEngine creates an engine. A nil logger discards log output and nil
// names selects random counter names.
func NewEngine(logger *zap.Logger, names loops.NameSource) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if names == nil {
		names = loops.UUIDNames{}
	}
	return &Engine{logger: logger, names: names}
}

// Result is the outcome of running the engine on one unit.
type Result struct {
	Unit      string
	Source    []byte // the unit as read, before rewriting
	File      *ast.File
	Decisions []loops.Decision
	Issues    []tt.Issue
}

// Rewritten returns the number of loops that were replaced.
func (r *Result) Rewritten() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Rewritten() {
			n++
		}
	}
	return n
}

// Run parses src as the unit named unit and rewrites it. A syntax error or
// a malformed declaration fails the whole unit.
func (e *Engine) Run(unit string, src []byte) (*Result, error) {
	f, err := parser.ParseFile(unit, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", unit, err)
	}

	info := resolve.File(f)
	mgr := nolint.ParseComments(f)

	decisions, err := loops.Rewrite(f, info, loops.Options{
		Names: e.names,
		Suppressed: func(s ast.Stmt) bool {
			return mgr.IsNolint(s.Pos(), RuleName)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", unit, err)
	}

	res := &Result{Unit: unit, Source: src, File: f, Decisions: decisions}
	for _, d := range decisions {
		res.Issues = append(res.Issues, issueFor(unit, d))
		e.logger.Debug("loop decision",
			zap.String("unit", unit),
			zap.Stringer("pos", d.Loop.Pos()),
			zap.Stringer("reason", d.Verdict.Reason),
			zap.String("counter", d.Counter),
		)
	}
	return res, nil
}

func issueFor(unit string, d loops.Decision) tt.Issue {
	issue := tt.Issue{
		Rule:     RuleName,
		Category: d.Verdict.Reason.String(),
		Filename: unit,
		Start:    d.Loop.Pos(),
		End:      d.Loop.End(),
		Severity: tt.SeverityInfo,
	}

	switch {
	case d.Rewritten():
		issue.Message = "for-each loop over a local list rewritten as an indexed loop"
		replacement := *d.Replacement
		replacement.Attached = ast.Attached{}
		issue.Suggestion = strings.TrimRight(printer.String(&replacement), "\n")
	case d.Verdict.Reason == loops.Unresolved:
		issue.Severity = tt.SeverityWarning
		issue.Message = "for-each loop left unchanged: iterable type is unknown"
		issue.Note = d.Verdict.Detail
	default:
		issue.Message = "for-each loop left unchanged"
		issue.Note = d.Verdict.Detail
	}
	return issue
}
