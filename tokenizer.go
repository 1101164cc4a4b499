package jsontree

import (
	"errors"
	"math"
	"strconv"

	"github.com/arnodel/jsontree/token"
)

// A Tokenizer scans a byte span into a sequence of lexical tokens,
// keeping a running line / column cursor.  It performs all
// character-level validation: whitespace classification, string escape
// decoding (including UTF-16 surrogate pairs), strict number grammar
// and UTF-8 re-encoding of decoded code points.
type Tokenizer struct {
	src  []byte
	off  int
	line int
	col  int
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, line: 1}
}

// Pos returns the position of the next unconsumed byte.
func (t *Tokenizer) Pos() token.Pos {
	return token.Pos{Line: t.line, Col: t.col}
}

// advance consumes n bytes on the current line.
func (t *Tokenizer) advance(n int) {
	t.off += n
	t.col += n
}

// Next returns the next token, or an EOF token once the input span is
// exhausted.  Whitespace before the token is skipped, updating the
// line / column cursor.
func (t *Tokenizer) Next() (token.Token, error) {
	if err := t.skipSpace(); err != nil {
		return token.Token{Kind: token.EOF, Pos: t.Pos()}, err
	}
	pos := t.Pos()
	if t.off >= len(t.src) {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}
	b := t.src[t.off]
	switch b {
	case '{':
		t.advance(1)
		return token.Token{Kind: token.LBrace, Pos: pos}, nil
	case '}':
		t.advance(1)
		return token.Token{Kind: token.RBrace, Pos: pos}, nil
	case '[':
		t.advance(1)
		return token.Token{Kind: token.LBracket, Pos: pos}, nil
	case ']':
		t.advance(1)
		return token.Token{Kind: token.RBracket, Pos: pos}, nil
	case ':':
		t.advance(1)
		return token.Token{Kind: token.Colon, Pos: pos}, nil
	case ',':
		t.advance(1)
		return token.Token{Kind: token.Comma, Pos: pos}, nil
	case 'n':
		return t.scanLiteral("null", token.Null, pos)
	case 't':
		return t.scanLiteral("true", token.True, pos)
	case 'f':
		return t.scanLiteral("false", token.False, pos)
	case '"':
		return t.scanString(pos)
	}
	if b == '-' || token.IsDigit(b) {
		return t.scanNumber(pos)
	}
	return token.Token{Pos: pos}, errAt(ErrUnexpectedToken, pos, "unexpected character %q", b)
}

// skipSpace advances past JSON whitespace in bulk.  '\n' starts a new
// line, any other byte <= 0x20 that is not JSON whitespace is an
// error.
func (t *Tokenizer) skipSpace() error {
	for _, b := range t.src[t.off:] {
		switch {
		case b == '\n':
			t.line++
			t.col = 0
		case b == ' ' || b == '\t' || b == '\r':
			t.col++
		case b > 0x20:
			return nil
		default:
			return errAt(ErrInvalidWhitespace, t.Pos(), "byte %#02x is not valid whitespace", b)
		}
		t.off++
	}
	return nil
}

// scanLiteral matches one of the keywords null, true, false.  The
// match is exact, case-sensitive and must end at a word boundary.
func (t *Tokenizer) scanLiteral(word string, kind token.Kind, pos token.Pos) (token.Token, error) {
	rest := t.src[t.off:]
	if len(rest) < len(word) || string(rest[:len(word)]) != word {
		return token.Token{Pos: pos}, errAt(ErrUnexpectedToken, pos, "invalid literal")
	}
	if len(rest) > len(word) && token.IsAlnum(rest[len(word)]) {
		return token.Token{Pos: pos}, errAt(ErrUnexpectedToken, pos, "invalid literal")
	}
	t.advance(len(word))
	return token.Token{Kind: kind, Pos: pos}, nil
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// scanHex4 reads the four hex digits of a \u escape and returns the
// UTF-16 code unit they encode.  code is the error code to report on a
// malformed digit (InvalidEscape for a first unit, InvalidSurrogate
// for an expected low surrogate).
func (t *Tokenizer) scanHex4(code ErrorCode) (rune, error) {
	if len(t.src)-t.off < 4 {
		return 0, errAt(ErrUnterminatedString, t.Pos(), "unterminated unicode escape")
	}
	var unit rune
	for i := 0; i < 4; i++ {
		d := hexDigit(t.src[t.off+i])
		if d < 0 {
			return 0, errAt(code, t.Pos(), "invalid hex digit %q in unicode escape", t.src[t.off+i])
		}
		unit = unit<<4 | rune(d)
	}
	t.advance(4)
	return unit, nil
}

// appendUTF8 re-encodes a decoded code point as 1 to 4 UTF-8 bytes.
// Returns false for code points that have no UTF-8 encoding.
func appendUTF8(buf []byte, cp rune) ([]byte, bool) {
	switch {
	case cp <= 0x7F:
		return append(buf, byte(cp)), true
	case cp <= 0x7FF:
		return append(buf, 0xC0|byte(cp>>6), 0x80|byte(cp&0x3F)), true
	case cp <= 0xFFFF:
		if cp >= 0xD800 && cp <= 0xDFFF {
			return buf, false
		}
		return append(buf, 0xE0|byte(cp>>12), 0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F)), true
	case cp <= 0x10FFFF:
		return append(buf, 0xF0|byte(cp>>18), 0x80|byte(cp>>12&0x3F), 0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F)), true
	}
	return buf, false
}

// scanString decodes a string token.  The opening quote is at the
// current offset.  Escape sequences are resolved to their UTF-8
// encoding, so the returned token holds the decoded contents (which
// may include NUL bytes decoded from \u0000 escapes).
func (t *Tokenizer) scanString(pos token.Pos) (token.Token, error) {
	t.advance(1)
	var buf []byte
	for t.off < len(t.src) {
		b := t.src[t.off]
		switch {
		case b == '"':
			t.advance(1)
			return token.Token{Kind: token.String, Str: string(buf), Pos: pos}, nil
		case b == '\\':
			t.advance(1)
			if t.off >= len(t.src) {
				return token.Token{Pos: pos}, errAt(ErrUnterminatedString, t.Pos(), "unterminated escape sequence")
			}
			e := t.src[t.off]
			switch e {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case '"', '\\', '/':
				buf = append(buf, e)
			case 'u':
				t.advance(1)
				cp, err := t.scanHex4(ErrInvalidEscape)
				if err != nil {
					return token.Token{Pos: pos}, err
				}
				switch {
				case cp >= 0xD800 && cp <= 0xDBFF:
					if len(t.src)-t.off < 2 || t.src[t.off] != '\\' || t.src[t.off+1] != 'u' {
						return token.Token{Pos: pos}, errAt(ErrInvalidSurrogate, t.Pos(), "high surrogate not followed by low surrogate")
					}
					t.advance(2)
					lo, err := t.scanHex4(ErrInvalidSurrogate)
					if err != nil {
						return token.Token{Pos: pos}, err
					}
					if lo < 0xDC00 || lo > 0xDFFF {
						return token.Token{Pos: pos}, errAt(ErrInvalidSurrogate, t.Pos(), "invalid low surrogate %#04x", lo)
					}
					cp = 0x10000 + (cp-0xD800)<<10 + (lo - 0xDC00)
				case cp >= 0xDC00 && cp <= 0xDFFF:
					return token.Token{Pos: pos}, errAt(ErrInvalidSurrogate, t.Pos(), "unexpected low surrogate %#04x", cp)
				}
				var ok bool
				buf, ok = appendUTF8(buf, cp)
				if !ok {
					return token.Token{Pos: pos}, errAt(ErrInvalidUTF8, t.Pos(), "code point %#x cannot be encoded", cp)
				}
				continue
			default:
				return token.Token{Pos: pos}, errAt(ErrInvalidEscape, t.Pos(), "unknown escape sequence '\\%c'", e)
			}
			t.advance(1)
		case token.IsCtrl(b):
			return token.Token{Pos: pos}, errAt(ErrInvalidSyntax, t.Pos(), "unescaped control character %#02x in string", b)
		default:
			buf = append(buf, b)
			t.advance(1)
		}
	}
	return token.Token{Pos: pos}, errAt(ErrUnterminatedString, t.Pos(), "expected closing '\"'")
}

// scanNumber matches the strict JSON number grammar
//
//	-? ( 0 | [1-9][0-9]* ) ( . [0-9]+ )? ( [eE] [+-]? [0-9]+ )?
//
// and converts the matched span to a float64.
func (t *Tokenizer) scanNumber(pos token.Pos) (token.Token, error) {
	src := t.src
	start := t.off
	p := t.off
	if src[p] == '-' {
		p++
		if p >= len(src) {
			return token.Token{Pos: pos}, errAt(ErrInvalidNumber, pos, "digit expected after minus sign")
		}
	}
	switch {
	case src[p] == '0':
		p++
		if p < len(src) && token.IsDigit(src[p]) {
			return token.Token{Pos: pos}, errAt(ErrLeadingZero, pos, "number has a leading zero")
		}
	case src[p] >= '1' && src[p] <= '9':
		for p < len(src) && token.IsDigit(src[p]) {
			p++
		}
	default:
		return token.Token{Pos: pos}, errAt(ErrInvalidNumber, pos, "digit expected after minus sign")
	}
	if p < len(src) && src[p] == '.' {
		p++
		if p >= len(src) || !token.IsDigit(src[p]) {
			return token.Token{Pos: pos}, errAt(ErrInvalidNumber, pos, "digit required after decimal point")
		}
		for p < len(src) && token.IsDigit(src[p]) {
			p++
		}
	}
	if p < len(src) && (src[p] == 'e' || src[p] == 'E') {
		p++
		if p < len(src) && (src[p] == '+' || src[p] == '-') {
			p++
		}
		if p >= len(src) || !token.IsDigit(src[p]) {
			return token.Token{Pos: pos}, errAt(ErrInvalidNumber, pos, "digit required in exponent")
		}
		for p < len(src) && token.IsDigit(src[p]) {
			p++
		}
	}
	x, err := strconv.ParseFloat(string(src[start:p]), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return token.Token{Pos: pos}, errAt(ErrNumberOutOfRange, pos, "%q overflows a float64", src[start:p])
		}
		return token.Token{Pos: pos}, errAt(ErrInvalidNumber, pos, "cannot convert %q", src[start:p])
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return token.Token{Pos: pos}, errAt(ErrNumberOutOfRange, pos, "%q overflows a float64", src[start:p])
	}
	t.advance(p - start)
	return token.Token{Kind: token.Number, Num: x, Pos: pos}, nil
}
