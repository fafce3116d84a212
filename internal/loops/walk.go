package loops

import (
	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/resolve"
)

// Decision records the outcome for one candidate.
type Decision struct {
	Loop        *ast.ForEachStmt // the original statement
	Verdict     Verdict
	Counter     string       // generated counter name, when rewritten
	Replacement *ast.ForStmt // the indexed loop, when rewritten
}

// Rewritten reports whether the loop was replaced.
func (d Decision) Rewritten() bool { return d.Replacement != nil }

// Options configures Rewrite.
type Options struct {
	// Names supplies counter names; nil means UUIDNames.
	Names NameSource
	// Suppressed reports whether a loop must be left alone regardless of
	// the verdict. It may be nil.
	Suppressed func(ast.Stmt) bool
}

// Rewrite visits every block of f in depth-first order, verifies each
// for-each statement that is a direct child of the block and replaces the
// admitted ones in place. Blocks inside replacement loops are visited too,
// so nested loops are handled in the same pass.
//
// It returns one decision per candidate, in visiting order. A malformed
// declaration stops the walk with an error; the tree may then be partly
// rewritten and must be discarded.
func Rewrite(f *ast.File, info *resolve.Info, opts Options) ([]Decision, error) {
	names := opts.Names
	if names == nil {
		names = UUIDNames{}
	}
	taken := Identifiers(f)

	var (
		decisions []Decision
		err       error
	)
	ast.Inspect(f, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		b, ok := n.(*ast.Block)
		if !ok {
			return true
		}
		for _, c := range Detect(b) {
			d := Decision{Loop: c.Stmt}
			if opts.Suppressed != nil && opts.Suppressed(c.Stmt) {
				d.Verdict = reject(Suppressed, "suppressed by nolint comment")
				decisions = append(decisions, d)
				continue
			}
			d.Verdict, err = Verify(c, info)
			if err != nil {
				return false
			}
			if d.Verdict.Reason.Rewritable() {
				d.Counter = FreshName(names, taken)
				d.Replacement = Transform(c, d.Counter)
			}
			decisions = append(decisions, d)
		}
		return true
	})
	return decisions, err
}
