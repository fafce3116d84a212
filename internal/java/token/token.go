// Package token defines the lexical tokens of the Java subset understood by
// the scanner and parser, together with source positions.
package token

import (
	"fmt"
	"strconv"
)

// Kind is the set of lexical tokens.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF
	COMMENT

	literal_beg
	IDENT
	INT       // 42, 0x2A, 42L
	FLOAT     // 1.5, 1e3, 2f
	CHARACTER // 'a'
	STRING    // "abc"
	TEXTBLOCK // """ ... """
	literal_end

	operator_beg
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACK    // [
	RBRACK    // ]
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .
	ELLIPSIS  // ...
	AT        // @
	DCOLON    // ::
	QUESTION  // ?
	COLON     // :
	ARROW     // ->

	ASSIGN // =
	GT     // >
	LT     // <
	NOT    // !
	TILDE  // ~
	EQL    // ==
	LEQ    // <=
	GEQ    // >=
	NEQ    // !=
	LAND   // &&
	LOR    // ||
	INC    // ++
	DEC    // --
	ADD    // +
	SUB    // -
	MUL    // *
	QUO    // /
	AND    // &
	OR     // |
	XOR    // ^
	REM    // %
	SHL    // <<
	SHR    // >> (synthesised by the parser from two adjacent GT tokens)
	USHR   // >>> (synthesised by the parser from three adjacent GT tokens)

	ADD_ASSIGN  // +=
	SUB_ASSIGN  // -=
	MUL_ASSIGN  // *=
	QUO_ASSIGN  // /=
	AND_ASSIGN  // &=
	OR_ASSIGN   // |=
	XOR_ASSIGN  // ^=
	REM_ASSIGN  // %=
	SHL_ASSIGN  // <<=
	SHR_ASSIGN  // >>=
	USHR_ASSIGN // >>>=
	operator_end

	keyword_beg
	ABSTRACT
	ASSERT
	BOOLEAN
	BREAK
	BYTE
	CASE
	CATCH
	CHAR
	CLASS
	CONST
	CONTINUE
	DEFAULT
	DO
	DOUBLE
	ELSE
	ENUM
	EXTENDS
	FALSE
	FINAL
	FINALLY
	FLOAT_KW
	FOR
	GOTO
	IF
	IMPLEMENTS
	IMPORT
	INSTANCEOF
	INT_KW
	INTERFACE
	LONG
	NATIVE
	NEW
	NULL
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	RETURN
	SHORT
	STATIC
	STRICTFP
	SUPER
	SWITCH
	SYNCHRONIZED
	THIS
	THROW
	THROWS
	TRANSIENT
	TRUE
	TRY
	VOID
	VOLATILE
	WHILE
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:     "IDENT",
	INT:       "INT",
	FLOAT:     "FLOAT",
	CHARACTER: "CHAR",
	STRING:    "STRING",
	TEXTBLOCK: "TEXTBLOCK",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACK:    "[",
	RBRACK:    "]",
	SEMICOLON: ";",
	COMMA:     ",",
	DOT:       ".",
	ELLIPSIS:  "...",
	AT:        "@",
	DCOLON:    "::",
	QUESTION:  "?",
	COLON:     ":",
	ARROW:     "->",

	ASSIGN: "=",
	GT:     ">",
	LT:     "<",
	NOT:    "!",
	TILDE:  "~",
	EQL:    "==",
	LEQ:    "<=",
	GEQ:    ">=",
	NEQ:    "!=",
	LAND:   "&&",
	LOR:    "||",
	INC:    "++",
	DEC:    "--",
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	QUO:    "/",
	AND:    "&",
	OR:     "|",
	XOR:    "^",
	REM:    "%",
	SHL:    "<<",
	SHR:    ">>",
	USHR:   ">>>",

	ADD_ASSIGN:  "+=",
	SUB_ASSIGN:  "-=",
	MUL_ASSIGN:  "*=",
	QUO_ASSIGN:  "/=",
	AND_ASSIGN:  "&=",
	OR_ASSIGN:   "|=",
	XOR_ASSIGN:  "^=",
	REM_ASSIGN:  "%=",
	SHL_ASSIGN:  "<<=",
	SHR_ASSIGN:  ">>=",
	USHR_ASSIGN: ">>>=",

	ABSTRACT:     "abstract",
	ASSERT:       "assert",
	BOOLEAN:      "boolean",
	BREAK:        "break",
	BYTE:         "byte",
	CASE:         "case",
	CATCH:        "catch",
	CHAR:         "char",
	CLASS:        "class",
	CONST:        "const",
	CONTINUE:     "continue",
	DEFAULT:      "default",
	DO:           "do",
	DOUBLE:       "double",
	ELSE:         "else",
	ENUM:         "enum",
	EXTENDS:      "extends",
	FALSE:        "false",
	FINAL:        "final",
	FINALLY:      "finally",
	FLOAT_KW:     "float",
	FOR:          "for",
	GOTO:         "goto",
	IF:           "if",
	IMPLEMENTS:   "implements",
	IMPORT:       "import",
	INSTANCEOF:   "instanceof",
	INT_KW:       "int",
	INTERFACE:    "interface",
	LONG:         "long",
	NATIVE:       "native",
	NEW:          "new",
	NULL:         "null",
	PACKAGE:      "package",
	PRIVATE:      "private",
	PROTECTED:    "protected",
	PUBLIC:       "public",
	RETURN:       "return",
	SHORT:        "short",
	STATIC:       "static",
	STRICTFP:     "strictfp",
	SUPER:        "super",
	SWITCH:       "switch",
	SYNCHRONIZED: "synchronized",
	THIS:         "this",
	THROW:        "throw",
	THROWS:       "throws",
	TRANSIENT:    "transient",
	TRUE:         "true",
	TRY:          "try",
	VOID:         "void",
	VOLATILE:     "volatile",
	WHILE:        "while",
}

// String returns the source spelling of operators and keywords and the
// kind name for the other tokens.
func (k Kind) String() string {
	if 0 <= k && int(k) < len(tokens) && tokens[k] != "" {
		return tokens[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, keyword_end-(keyword_beg+1))
	for k := keyword_beg + 1; k < keyword_end; k++ {
		keywords[tokens[k]] = k
	}
}

// Lookup maps an identifier to its keyword kind, or IDENT.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

// IsLiteral reports whether the kind is an identifier or basic literal.
func (k Kind) IsLiteral() bool { return literal_beg < k && k < literal_end }

// IsOperator reports whether the kind is an operator or delimiter.
func (k Kind) IsOperator() bool { return operator_beg < k && k < operator_end }

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool { return keyword_beg < k && k < keyword_end }

// IsPrimitive reports whether the kind names a primitive type.
func (k Kind) IsPrimitive() bool {
	switch k {
	case BOOLEAN, BYTE, CHAR, SHORT, INT_KW, LONG, FLOAT_KW, DOUBLE:
		return true
	}
	return false
}

// IsModifier reports whether the kind is a declaration modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case PUBLIC, PROTECTED, PRIVATE, STATIC, ABSTRACT, FINAL, NATIVE,
		SYNCHRONIZED, TRANSIENT, VOLATILE, STRICTFP, DEFAULT:
		return true
	}
	return false
}

// IsAssignOp reports whether the kind is = or a compound assignment.
func (k Kind) IsAssignOp() bool {
	return k == ASSIGN || (ADD_ASSIGN <= k && k <= USHR_ASSIGN)
}

// Pos is a source position. Line and Column are 1-based; Column counts
// bytes. The zero Pos is invalid and marks synthesised nodes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// NoPos is the zero position.
var NoPos Pos

// IsValid reports whether the position came from source text.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a scanned token. End is the position just past the last byte.
type Token struct {
	Kind Kind
	Lit  string
	Pos  Pos
	End  Pos
}

func (t Token) String() string {
	if t.Kind.IsLiteral() || t.Kind == COMMENT {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lit, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}
