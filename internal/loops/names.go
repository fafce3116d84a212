package loops

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
)

// counterPrefix starts every generated counter name so that it never
// begins with a digit.
const counterPrefix = "lv"

// NameSource supplies the suffixes of generated counter names.
// Implementations must be safe for concurrent use.
type NameSource interface {
	Next() string
}

// UUIDNames draws suffixes from random UUIDs with the dashes removed.
type UUIDNames struct{}

func (UUIDNames) Next() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Counter yields "0", "1", "2", ... and gives reproducible names.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Next() string {
	return strconv.FormatInt(c.n.Add(1)-1, 10)
}

// FreshName returns a counter name built from src that is not in taken,
// and adds it to taken.
func FreshName(src NameSource, taken map[string]bool) string {
	for {
		name := counterPrefix + src.Next()
		if !taken[name] {
			taken[name] = true
			return name
		}
	}
}

// Identifiers returns every identifier spelled in the tree rooted at root:
// variable, parameter, method, type, label and member names, plus the
// segments of imports and annotations.
func Identifiers(root ast.Node) map[string]bool {
	ids := make(map[string]bool)
	add := func(names ...string) {
		for _, n := range names {
			if n != "" {
				ids[n] = true
			}
		}
	}
	ast.Inspect(root, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.File:
			for _, imp := range x.Imports {
				add(strings.Split(imp.Path, ".")...)
			}
		case *ast.Annotation:
			add(strings.Split(x.Name, ".")...)
		case *ast.Name:
			add(x.Name)
		case *ast.Declarator:
			add(x.Name)
		case *ast.Param:
			add(x.Name)
		case *ast.TypeParam:
			add(x.Name)
		case *ast.Type:
			add(strings.Split(x.Name, ".")...)
		case *ast.FieldAccess:
			add(x.Sel)
		case *ast.MethodCall:
			add(x.Name)
		case *ast.MethodRef:
			add(x.Name)
		case *ast.InstanceOfExpr:
			add(x.Binding)
		case *ast.CatchClause:
			add(x.Name)
		case *ast.LabeledStmt:
			add(x.Label)
		case *ast.ClassDecl:
			add(x.Name)
		case *ast.MethodDecl:
			add(x.Name)
		case *ast.EnumConstant:
			add(x.Name)
		}
		return true
	})
	return ids
}
