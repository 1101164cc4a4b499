package token

import (
	"fmt"
	"strconv"
)

// A Pos is a position in the input text.  Line is 1-based and Col is
// 0-based, matching the positions reported in parse errors.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("L%d,C%d", p.Line, p.Col)
}

// Kind classifies a lexical token.
type Kind uint8

const (
	EOF Kind = iota
	LBrace
	RBrace
	LBracket
	RBracket
	Colon
	Comma
	Null
	True
	False
	Number
	String
)

var kindNames = [...]string{
	EOF:      "end of input",
	LBrace:   "'{'",
	RBrace:   "'}'",
	LBracket: "'['",
	RBracket: "']'",
	Colon:    "':'",
	Comma:    "','",
	Null:     "null",
	True:     "true",
	False:    "false",
	Number:   "number",
	String:   "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid token"
}

// A Token is a lexical unit of JSON input.  For example the input
//
//	{"id": 123}
//
// is scanned as the sequence (in pseudocode for clarity):
//
//	{     -> LBrace
//	"id"  -> String("id")
//	:     -> Colon
//	123   -> Number(123)
//	}     -> RBrace
//	      -> EOF
//
// String tokens carry their decoded contents in Str (escape sequences,
// including surrogate pairs, are already resolved to UTF-8).  Number
// tokens carry their value in Num.  Pos is the position of the first
// byte of the token.
type Token struct {
	Kind Kind
	Str  string
	Num  float64
	Pos  Pos
}

var _ fmt.Stringer = Token{}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("String(%q)", t.Str)
	case Number:
		return fmt.Sprintf("Number(%s)", strconv.FormatFloat(t.Num, 'g', -1, 64))
	default:
		return t.Kind.String()
	}
}

func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

func IsAlpha[T byte | rune](b T) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func IsAlnum[T byte | rune](b T) bool {
	return IsAlpha(b) || IsDigit(b)
}

func IsCtrl[T byte | rune](b T) bool {
	return b < 32
}
