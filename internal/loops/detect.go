// Package loops rewrites for-each loops over local array lists into
// indexed loops.
//
// The pass has four parts. Detect lists the for-each statements that are
// direct children of a block. Verify proves that a candidate iterates a
// locally constructed list that is never aliased, never escapes and is not
// mutated by the loop. Transform splices the indexed replacement into the
// block. Rewrite drives the three over every block of a file.
package loops

import "github.com/gnoswap-labs/idxloop/internal/java/ast"

// Candidate is a for-each statement that is a direct child of Block.
type Candidate struct {
	Block *ast.Block
	Stmt  *ast.ForEachStmt
}

// Name returns the iterable when it is a bare name, or nil.
func (c *Candidate) Name() *ast.Name {
	n, _ := c.Stmt.Iterable.(*ast.Name)
	return n
}

// Detect returns the for-each statements among the direct children of b,
// in source order. Loops nested inside other statements belong to the
// blocks that contain them.
func Detect(b *ast.Block) []*Candidate {
	var out []*Candidate
	for _, s := range b.Stmts {
		if fe, ok := s.(*ast.ForEachStmt); ok {
			out = append(out, &Candidate{Block: b, Stmt: fe})
		}
	}
	return out
}
