package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected []token.Kind
	}{
		{
			name:     "declaration",
			src:      "int x = 1;",
			expected: []token.Kind{token.INT_KW, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON, token.EOF},
		},
		{
			name:     "nested generic closers stay separate",
			src:      "List<List<String>>",
			expected: []token.Kind{token.IDENT, token.LT, token.IDENT, token.LT, token.IDENT, token.GT, token.GT, token.EOF},
		},
		{
			name:     "shift assignment is one token",
			src:      "x >>= 2",
			expected: []token.Kind{token.IDENT, token.SHR_ASSIGN, token.INT, token.EOF},
		},
		{
			name:     "lambda and method reference",
			src:      "x -> y::z",
			expected: []token.Kind{token.IDENT, token.ARROW, token.IDENT, token.DCOLON, token.IDENT, token.EOF},
		},
		{
			name:     "literals",
			src:      `1.5f 0x1FL 'c' "s\"q" true null 1e10`,
			expected: []token.Kind{token.FLOAT, token.INT, token.CHARACTER, token.STRING, token.TRUE, token.NULL, token.FLOAT, token.EOF},
		},
		{
			name:     "text block",
			src:      "\"\"\"\n  hi\n  \"\"\"",
			expected: []token.Kind{token.TEXTBLOCK, token.EOF},
		},
		{
			name:     "varargs and annotation",
			src:      "@Safe String... args",
			expected: []token.Kind{token.AT, token.IDENT, token.IDENT, token.ELLIPSIS, token.IDENT, token.EOF},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toks, _, err := Scan([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kinds(toks))
		})
	}
}

func TestScanComments(t *testing.T) {
	t.Parallel()

	src := "a // one\n/* two\n three */ b"
	toks, comments, err := Scan([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{token.IDENT, token.IDENT, token.EOF}, kinds(toks))
	require.Len(t, comments, 2)
	assert.Equal(t, "// one", comments[0].Lit)
	assert.Equal(t, "/* two\n three */", comments[1].Lit)
	assert.Equal(t, 2, comments[1].Pos.Line)
	assert.Equal(t, 3, comments[1].End.Line)
	assert.Equal(t, 3, toks[1].Pos.Line)
}

func TestScanPositions(t *testing.T) {
	t.Parallel()

	toks, _, err := Scan([]byte("a\n  bc"))
	require.NoError(t, err)

	assert.Equal(t, token.Pos{Offset: 0, Line: 1, Column: 1}, toks[0].Pos)
	assert.Equal(t, token.Pos{Offset: 4, Line: 2, Column: 3}, toks[1].Pos)
	assert.Equal(t, token.Pos{Offset: 6, Line: 2, Column: 5}, toks[1].End)
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unterminated string", `"abc`, "string literal not terminated"},
		{"unterminated comment", "/* abc", "comment not terminated"},
		{"empty char", "''", "empty character literal"},
		{"bad exponent", "1e", "exponent has no digits"},
		{"stray character", "a # b", "unexpected character '#'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Scan([]byte(tt.src))
			require.Error(t, err)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.msg, se.Msg)
		})
	}
}
