package loops

import (
	"fmt"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/printer"
	"github.com/gnoswap-labs/idxloop/internal/java/resolve"
)

// listTypes are the resolved iterable types the rewrite accepts.
var listTypes = map[string]bool{
	"java.util.ArrayList": true,
	"java.util.List":      true,
}

// constructedType is the simple name a qualifying initializer must
// construct. It is compared against the name as written, not the resolved
// type.
const constructedType = "ArrayList"

// mutators change the size or the contents of a list. Calls are matched by
// method name alone, whatever the receiver.
var mutators = map[string]bool{
	"add":         true,
	"addAll":      true,
	"remove":      true,
	"removeAll":   true,
	"removeIf":    true,
	"removeRange": true,
	"retainAll":   true,
}

// Verify decides whether c may be rewritten. The checks run in order and
// the first failure decides the verdict:
//
//  1. the iterable is a bare name resolving to ArrayList or List;
//  2. the enclosing block declares that name with a "new ArrayList"
//     initializer and initializes no other variable from it;
//  3. nothing in the block assigns to the name, assigns it elsewhere or
//     passes it to a call or constructor;
//  4. the loop body calls no list mutation method on any receiver.
//
// Declarations, assignments and calls are searched in the whole subtree
// of the block, nested blocks, lambdas and anonymous classes included.
//
// A rejection is a normal verdict. The only error is a malformed
// declaration of the iterable, which must abort the unit; it wraps
// resolve.ErrMalformed.
func Verify(c *Candidate, info *resolve.Info) (Verdict, error) {
	name := c.Name()
	if name == nil {
		return reject(IterableNotName, "iterable %s is not a local variable", printer.String(c.Stmt.Iterable)), nil
	}

	if v, err := checkType(name, info); err != nil || !v.Reason.Rewritable() {
		return v, err
	}
	for _, check := range []func(*ast.Block, string) Verdict{
		checkLocality,
		checkAssignments,
		checkCalls,
	} {
		if v := check(c.Block, name.Name); !v.Reason.Rewritable() {
			return v, nil
		}
	}
	return checkMutation(c.Stmt.Body), nil
}

func checkType(name *ast.Name, info *resolve.Info) (Verdict, error) {
	res := info.Resolve(name)
	switch res.Status {
	case resolve.Malformed:
		return reject(Unresolved, "%s: %s", name.Name, res.Reason),
			fmt.Errorf("%s at %s: %w", name.Name, name.Pos(), res.Err())
	case resolve.Unresolved:
		return reject(Unresolved, "%s: %s", name.Name, res.Reason), nil
	}
	if res.Type.Kind != resolve.Reference || !listTypes[res.Type.Name] {
		return reject(NotList, "%s has type %s", name.Name, res.Type), nil
	}
	return admit(), nil
}

func checkLocality(b *ast.Block, name string) Verdict {
	decls := ast.Collect[*ast.VarDecl](b)
	if len(decls) == 0 {
		return reject(NoDeclarations, "block declares no variables")
	}

	// fields of local and anonymous classes never stand in for the local
	fields := make(map[*ast.VarDecl]bool)
	for _, fd := range ast.Collect[*ast.FieldDecl](b) {
		fields[fd.Decl] = true
	}

	constructed := false
	for _, d := range decls {
		for _, v := range d.Vars {
			if v.Name != name {
				if ast.IsName(v.Init, name) {
					return reject(AliasedByDeclaration, "%s is initialized from %s at %s", v.Name, name, v.NamePos)
				}
				continue
			}
			if fields[d] {
				continue
			}
			if x, ok := v.Init.(*ast.NewExpr); ok && x.Type.SimpleName() == constructedType {
				constructed = true
			}
		}
	}
	if !constructed {
		return reject(NotLocallyConstructed, "%s is not initialized with new %s in this block", name, constructedType)
	}
	return admit()
}

func checkAssignments(b *ast.Block, name string) Verdict {
	for _, a := range ast.Collect[*ast.AssignExpr](b) {
		if ast.IsName(a.Target, name) {
			return reject(Reassigned, "%s is assigned at %s", name, a.OpPos)
		}
		if ast.IsName(a.Value, name) {
			return reject(AliasedByAssignment, "%s is assigned to %s at %s", name, printer.String(a.Target), a.OpPos)
		}
	}
	return admit()
}

func checkCalls(b *ast.Block, name string) Verdict {
	v := admit()
	ast.Inspect(b, func(n ast.Node) bool {
		if !v.Reason.Rewritable() {
			return false
		}
		var (
			callee string
			args   []ast.Expr
		)
		switch x := n.(type) {
		case *ast.MethodCall:
			callee, args = x.Name, x.Args
		case *ast.NewExpr:
			callee, args = "new "+x.Type.Name, x.Args
		default:
			return true
		}
		for _, arg := range args {
			if ast.IsName(arg, name) {
				v = reject(EscapesViaCall, "%s is passed to %s at %s", name, callee, arg.Pos())
				return false
			}
		}
		return true
	})
	return v
}

func checkMutation(body ast.Stmt) Verdict {
	for _, call := range ast.Collect[*ast.MethodCall](body) {
		if mutators[call.Name] {
			return reject(MutatesList, "loop body calls %s at %s", call.Name, call.NamePos)
		}
	}
	return admit()
}
