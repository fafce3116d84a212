package nolint

import (
	"errors"
	"strings"

	"github.com/gnoswap-labs/idxloop/internal/java/ast"
	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

const nolintPrefix = "//nolint"

var (
	errNotNolint  = errors.New("not a nolint comment")
	errBadFormat  = errors.New("invalid nolint comment format")
	errEmptyRules = errors.New("invalid nolint comment: no rules specified after colon")
)

// Manager records the nolint scopes of one compilation unit.
type Manager struct {
	scopes []scope
}

// scope is a line range where the listed rules are silenced.
// An empty rule set silences every rule.
type scope struct {
	rules map[string]struct{}
	start int
	end   int
}

// ParseComments collects the nolint comments of f.
//
// A comment above the package declaration covers the whole unit. An inline
// comment covers the statement it trails. A standalone comment covers the
// statement or method starting on the next line, and otherwise only itself.
func ParseComments(f *ast.File) *Manager {
	m := &Manager{}
	if f == nil {
		return m
	}

	stmts := indexStatementsByLine(f)
	methods := ast.Collect[*ast.MethodDecl](f)
	packageLine := 0
	if f.Package != nil {
		packageLine = f.Package.Pos().Line
	}

	for _, cg := range f.Comments {
		for _, c := range cg.List {
			rules, err := parseComment(c.Text)
			if err != nil {
				continue
			}
			s := scope{rules: rules}
			s.start, s.end = commentScope(c, f, stmts, methods, packageLine)
			m.scopes = append(m.scopes, s)
		}
	}
	return m
}

// parseComment returns the rule set of a nolint comment.
func parseComment(text string) (map[string]struct{}, error) {
	if !strings.HasPrefix(text, nolintPrefix) {
		return nil, errNotNolint
	}
	rest := text[len(nolintPrefix):]
	if rest == "" {
		return map[string]struct{}{}, nil
	}
	if rest[0] != ':' {
		return nil, errBadFormat
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return nil, errEmptyRules
	}
	return parseIgnoreRuleNames(rest), nil
}

func commentScope(
	c *ast.Comment,
	f *ast.File,
	stmts map[int]ast.Stmt,
	methods []*ast.MethodDecl,
	packageLine int,
) (int, int) {
	line := c.Pos().Line

	if line < packageLine {
		return 1, f.End().Line
	}

	if stmt, ok := stmts[line]; ok && c.Pos().Offset > stmt.Pos().Offset {
		return stmt.Pos().Line, stmt.End().Line
	}

	if stmt, ok := stmts[line+1]; ok {
		return line, stmt.End().Line
	}

	for _, md := range methods {
		if md.Pos().Line == line+1 {
			return line, md.End().Line
		}
	}

	return line, line
}

func parseIgnoreRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// indexStatementsByLine maps each line to the first statement starting on it.
func indexStatementsByLine(f *ast.File) map[int]ast.Stmt {
	stmts := make(map[int]ast.Stmt)
	ast.Inspect(f, func(n ast.Node) bool {
		if stmt, ok := n.(ast.Stmt); ok {
			line := stmt.Pos().Line
			if _, exists := stmts[line]; !exists {
				stmts[line] = stmt
			}
		}
		return true
	})
	return stmts
}

// IsNolint reports whether rule is silenced at pos.
func (m *Manager) IsNolint(pos token.Pos, rule string) bool {
	for _, s := range m.scopes {
		if pos.Line < s.start || pos.Line > s.end {
			continue
		}
		if len(s.rules) == 0 {
			return true
		}
		if _, ok := s.rules[rule]; ok {
			return true
		}
	}
	return false
}
