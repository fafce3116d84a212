// Package scanner turns Java source text into tokens.
//
// Comments are not part of the token stream; they are returned separately so
// the parser can attach them to the statements and declarations they
// document.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gnoswap-labs/idxloop/internal/java/token"
)

// Error is a lexical error at a source position.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Scanner holds the state of a single scan.
type Scanner struct {
	src  []byte
	off  int // current byte offset
	line int // 1-based
	col  int // 1-based, in bytes

	start token.Pos // start of the token being scanned

	tokens   []token.Token
	comments []token.Token
}

// New creates a scanner over src.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

// Scan tokenizes src. The token slice always ends with an EOF token.
func Scan(src []byte) (toks []token.Token, comments []token.Token, err error) {
	s := New(src)
	if err := s.Run(); err != nil {
		return nil, nil, err
	}
	return s.tokens, s.comments, nil
}

// Run scans the whole input.
func (s *Scanner) Run() error {
	for {
		tok, err := s.scanToken()
		if err != nil {
			return err
		}
		if tok.Kind == token.COMMENT {
			s.comments = append(s.comments, tok)
			continue
		}
		s.tokens = append(s.tokens, tok)
		if tok.Kind == token.EOF {
			return nil
		}
	}
}

// Tokens returns the scanned tokens, ending with EOF.
func (s *Scanner) Tokens() []token.Token { return s.tokens }

// Comments returns the scanned comments in source order.
func (s *Scanner) Comments() []token.Token { return s.comments }

func (s *Scanner) pos() token.Pos {
	return token.Pos{Offset: s.off, Line: s.line, Column: s.col}
}

func (s *Scanner) atEnd() bool { return s.off >= len(s.src) }

func (s *Scanner) peek(n int) byte {
	if s.off+n < len(s.src) {
		return s.src[s.off+n]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.atEnd() {
		return
	}
	if s.src[s.off] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.off++
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &Error{Pos: s.start, Msg: fmt.Sprintf(format, args...)}
}

func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.Token{
		Kind: kind,
		Lit:  string(s.src[s.start.Offset:s.off]),
		Pos:  s.start,
		End:  s.pos(),
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.src[s.off] {
		case ' ', '\t', '\n', '\r', '\f':
			s.advance()
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (s *Scanner) runeAt(off int) (rune, int) {
	if off >= len(s.src) {
		return utf8.RuneError, 0
	}
	if b := s.src[off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(s.src[off:])
}

func (s *Scanner) scanToken() (token.Token, error) {
	s.skipWhitespace()
	s.start = s.pos()
	if s.atEnd() {
		return s.emit(token.EOF), nil
	}

	ch := s.src[s.off]
	switch {
	case ch == '/' && s.peek(1) == '/':
		for !s.atEnd() && s.src[s.off] != '\n' {
			s.advance()
		}
		return s.emit(token.COMMENT), nil
	case ch == '/' && s.peek(1) == '*':
		s.advanceN(2)
		for {
			if s.atEnd() {
				return token.Token{}, s.errorf("comment not terminated")
			}
			if s.src[s.off] == '*' && s.peek(1) == '/' {
				s.advanceN(2)
				return s.emit(token.COMMENT), nil
			}
			s.advance()
		}
	case isDigit(ch) || (ch == '.' && isDigit(s.peek(1))):
		return s.scanNumber()
	case ch == '"':
		if s.peek(1) == '"' && s.peek(2) == '"' {
			return s.scanTextBlock()
		}
		return s.scanQuoted('"', token.STRING)
	case ch == '\'':
		return s.scanQuoted('\'', token.CHARACTER)
	}

	if r, _ := s.runeAt(s.off); isIdentStart(r) {
		return s.scanIdentifier(), nil
	}

	return s.scanOperator()
}

func (s *Scanner) scanIdentifier() token.Token {
	for !s.atEnd() {
		r, size := s.runeAt(s.off)
		if !isIdentPart(r) {
			break
		}
		for i := 0; i < size; i++ {
			s.advance()
		}
	}
	tok := s.emit(token.IDENT)
	tok.Kind = token.Lookup(tok.Lit)
	return tok
}

func (s *Scanner) digits(valid func(byte) bool) {
	for !s.atEnd() && (valid(s.src[s.off]) || s.src[s.off] == '_') {
		s.advance()
	}
}

func (s *Scanner) scanNumber() (token.Token, error) {
	kind := token.INT

	if s.src[s.off] == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X') {
		s.advanceN(2)
		s.digits(isHex)
		if s.off-s.start.Offset == 2 {
			return token.Token{}, s.errorf("hexadecimal literal has no digits")
		}
		if !s.atEnd() && (s.src[s.off] == 'l' || s.src[s.off] == 'L') {
			s.advance()
		}
		return s.emit(kind), nil
	}
	if s.src[s.off] == '0' && (s.peek(1) == 'b' || s.peek(1) == 'B') {
		s.advanceN(2)
		s.digits(func(b byte) bool { return b == '0' || b == '1' })
		if !s.atEnd() && (s.src[s.off] == 'l' || s.src[s.off] == 'L') {
			s.advance()
		}
		return s.emit(kind), nil
	}

	s.digits(isDigit)
	if !s.atEnd() && s.src[s.off] == '.' {
		next := s.peek(1)
		if isDigit(next) {
			kind = token.FLOAT
			s.advance()
			s.digits(isDigit)
		} else if r, _ := s.runeAt(s.off + 1); next != '.' && !isIdentStart(r) {
			// "1." is a complete double literal
			kind = token.FLOAT
			s.advance()
		}
	}
	if !s.atEnd() && (s.src[s.off] == 'e' || s.src[s.off] == 'E') {
		kind = token.FLOAT
		s.advance()
		if !s.atEnd() && (s.src[s.off] == '+' || s.src[s.off] == '-') {
			s.advance()
		}
		if s.atEnd() || !isDigit(s.src[s.off]) {
			return token.Token{}, s.errorf("exponent has no digits")
		}
		s.digits(isDigit)
	}
	if !s.atEnd() {
		switch s.src[s.off] {
		case 'f', 'F', 'd', 'D':
			kind = token.FLOAT
			s.advance()
		case 'l', 'L':
			if kind == token.FLOAT {
				return token.Token{}, s.errorf("invalid suffix on floating-point literal")
			}
			s.advance()
		}
	}
	return s.emit(kind), nil
}

func (s *Scanner) scanQuoted(quote byte, kind token.Kind) (token.Token, error) {
	s.advance()
	for {
		if s.atEnd() || s.src[s.off] == '\n' {
			if kind == token.CHARACTER {
				return token.Token{}, s.errorf("character literal not terminated")
			}
			return token.Token{}, s.errorf("string literal not terminated")
		}
		switch s.src[s.off] {
		case '\\':
			s.advanceN(2)
			continue
		case quote:
			s.advance()
			tok := s.emit(kind)
			if kind == token.CHARACTER && len(tok.Lit) == 2 {
				return token.Token{}, s.errorf("empty character literal")
			}
			return tok, nil
		}
		s.advance()
	}
}

func (s *Scanner) scanTextBlock() (token.Token, error) {
	s.advanceN(3)
	for {
		if s.atEnd() {
			return token.Token{}, s.errorf("text block not terminated")
		}
		if s.src[s.off] == '\\' {
			s.advanceN(2)
			continue
		}
		if s.src[s.off] == '"' && s.peek(1) == '"' && s.peek(2) == '"' {
			s.advanceN(3)
			return s.emit(token.TEXTBLOCK), nil
		}
		s.advance()
	}
}

// operators lists multi-byte operators longest first within each leading
// byte. '>' only ever combines with '=' so that generic closers stay
// separate tokens.
var operators = map[byte][]struct {
	text string
	kind token.Kind
}{
	'.': {{"...", token.ELLIPSIS}, {".", token.DOT}},
	':': {{"::", token.DCOLON}, {":", token.COLON}},
	'=': {{"==", token.EQL}, {"=", token.ASSIGN}},
	'!': {{"!=", token.NEQ}, {"!", token.NOT}},
	'<': {{"<<=", token.SHL_ASSIGN}, {"<<", token.SHL}, {"<=", token.LEQ}, {"<", token.LT}},
	'>': {{">>>=", token.USHR_ASSIGN}, {">>=", token.SHR_ASSIGN}, {">=", token.GEQ}, {">", token.GT}},
	'&': {{"&&", token.LAND}, {"&=", token.AND_ASSIGN}, {"&", token.AND}},
	'|': {{"||", token.LOR}, {"|=", token.OR_ASSIGN}, {"|", token.OR}},
	'+': {{"++", token.INC}, {"+=", token.ADD_ASSIGN}, {"+", token.ADD}},
	'-': {{"--", token.DEC}, {"-=", token.SUB_ASSIGN}, {"->", token.ARROW}, {"-", token.SUB}},
	'*': {{"*=", token.MUL_ASSIGN}, {"*", token.MUL}},
	'/': {{"/=", token.QUO_ASSIGN}, {"/", token.QUO}},
	'^': {{"^=", token.XOR_ASSIGN}, {"^", token.XOR}},
	'%': {{"%=", token.REM_ASSIGN}, {"%", token.REM}},
	'(': {{"(", token.LPAREN}},
	')': {{")", token.RPAREN}},
	'{': {{"{", token.LBRACE}},
	'}': {{"}", token.RBRACE}},
	'[': {{"[", token.LBRACK}},
	']': {{"]", token.RBRACK}},
	';': {{";", token.SEMICOLON}},
	',': {{",", token.COMMA}},
	'@': {{"@", token.AT}},
	'?': {{"?", token.QUESTION}},
	'~': {{"~", token.TILDE}},
}

func (s *Scanner) scanOperator() (token.Token, error) {
	ch := s.src[s.off]
	for _, op := range operators[ch] {
		end := s.off + len(op.text)
		if end <= len(s.src) && string(s.src[s.off:end]) == op.text {
			s.advanceN(len(op.text))
			return s.emit(op.kind), nil
		}
	}
	r, _ := s.runeAt(s.off)
	return token.Token{}, s.errorf("unexpected character %q", r)
}
