package jsontree

import (
	"strings"
	"testing"

	"github.com/arnodel/jsontree/token"
)

// TestTokenizerScalars tests scanning of single scalar tokens
func TestTokenizerScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected token.Token
	}{
		{"null", "null", token.Token{Kind: token.Null, Pos: pos(1, 0)}},
		{"true", "true", token.Token{Kind: token.True, Pos: pos(1, 0)}},
		{"false", "false", token.Token{Kind: token.False, Pos: pos(1, 0)}},
		{"integer", "42", token.Token{Kind: token.Number, Num: 42, Pos: pos(1, 0)}},
		{"negative integer", "-123", token.Token{Kind: token.Number, Num: -123, Pos: pos(1, 0)}},
		{"zero", "0", token.Token{Kind: token.Number, Num: 0, Pos: pos(1, 0)}},
		{"negative zero", "-0", token.Token{Kind: token.Number, Num: 0, Pos: pos(1, 0)}},
		{"float", "3.14", token.Token{Kind: token.Number, Num: 3.14, Pos: pos(1, 0)}},
		{"exponent", "1.5e10", token.Token{Kind: token.Number, Num: 1.5e10, Pos: pos(1, 0)}},
		{"exponent with plus", "2E+3", token.Token{Kind: token.Number, Num: 2000, Pos: pos(1, 0)}},
		{"negative exponent", "1e-2", token.Token{Kind: token.Number, Num: 0.01, Pos: pos(1, 0)}},
		{"simple string", `"hello"`, token.Token{Kind: token.String, Str: "hello", Pos: pos(1, 0)}},
		{"empty string", `""`, token.Token{Kind: token.String, Str: "", Pos: pos(1, 0)}},
		{"leading whitespace", "  \t null", token.Token{Kind: token.Null, Pos: pos(1, 4)}},
		{"leading newlines", "\n\n null", token.Token{Kind: token.Null, Pos: pos(3, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewTokenizer([]byte(tt.input)).Next()
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if tok != tt.expected {
				t.Errorf("expected %v at %v, got %v at %v", tt.expected, tt.expected.Pos, tok, tok.Pos)
			}
		})
	}
}

// TestTokenizerStringEscapes tests decoding of escape sequences
func TestTokenizerStringEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"carriage return", `"a\rb"`, "a\rb"},
		{"backspace", `"a\bb"`, "a\bb"},
		{"form feed", `"a\fb"`, "a\fb"},
		{"quote", `"say \"hi\""`, `say "hi"`},
		{"backslash", `"a\\b"`, `a\b`},
		{"slash", `"a\/b"`, "a/b"},
		{"unicode bmp", `"\u00E9"`, "é"},
		{"unicode three bytes", `"\u4E16"`, "世"},
		{"unicode null", `"a\u0000b"`, "a\x00b"},
		{"surrogate pair", `"\uD83D\uDE00"`, "\U0001F600"},
		{"surrogate pair lowercase", `"\ud83d\ude00"`, "\U0001F600"},
		{"raw utf8 passthrough", `"héllo 世界"`, "héllo 世界"},
		{"mixed", `"line1\nline2\tA"`, "line1\nline2\tA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewTokenizer([]byte(tt.input)).Next()
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if tok.Kind != token.String {
				t.Fatalf("expected string token, got %v", tok)
			}
			if tok.Str != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tok.Str)
			}
		})
	}
}

// TestTokenizerSurrogatePairEncoding checks that a decoded surrogate
// pair is re-encoded as a single 4-byte UTF-8 sequence.
func TestTokenizerSurrogatePairEncoding(t *testing.T) {
	tok, err := NewTokenizer([]byte(`"\uD83D\uDE00"`)).Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "\xf0\x9f\x98\x80" // U+1F600
	if tok.Str != want {
		t.Errorf("expected bytes %x, got %x", want, tok.Str)
	}
}

// TestTokenizerErrors tests the error code reported for invalid input
func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{"leading zero", "01", ErrLeadingZero},
		{"negative leading zero", "-01", ErrLeadingZero},
		{"dot without digits", "1.", ErrInvalidNumber},
		{"exponent without digits", "1e", ErrInvalidNumber},
		{"exponent sign without digits", "1e+", ErrInvalidNumber},
		{"lone minus", "-", ErrInvalidNumber},
		{"minus then letter", "-x", ErrInvalidNumber},
		{"number overflow", "1e400", ErrNumberOutOfRange},
		{"negative overflow", "-1e400", ErrNumberOutOfRange},
		{"unterminated string", `"abc`, ErrUnterminatedString},
		{"unterminated escape", `"abc\`, ErrUnterminatedString},
		{"unterminated unicode escape", `"\u12`, ErrUnterminatedString},
		{"unknown escape", `"\x"`, ErrInvalidEscape},
		{"bad hex digit", `"\u12g4"`, ErrInvalidEscape},
		{"high surrogate alone", `"\uD83D"`, ErrInvalidSurrogate},
		{"high surrogate then text", `"\uD83Dabc"`, ErrInvalidSurrogate},
		{"low surrogate first", `"\uDE00"`, ErrInvalidSurrogate},
		{"bad low surrogate", `"\uD83DA"`, ErrInvalidSurrogate},
		{"bad hex in low surrogate", `"\uD83D\uZZZZ"`, ErrInvalidSurrogate},
		{"control char in string", "\"a\x01b\"", ErrInvalidSyntax},
		{"raw newline in string", "\"a\nb\"", ErrInvalidSyntax},
		{"invalid whitespace", "\x0b1", ErrInvalidWhitespace},
		{"nul byte", "\x001", ErrInvalidWhitespace},
		{"bad literal", "nil", ErrUnexpectedToken},
		{"truncated literal", "tru", ErrUnexpectedToken},
		{"literal without boundary", "nullx", ErrUnexpectedToken},
		{"unexpected character", "@", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer([]byte(tt.input)).Next()
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if CodeOf(err) != tt.code {
				t.Errorf("expected code %v, got %v (%s)", tt.code, CodeOf(err), err)
			}
		})
	}
}

// TestTokenizerPositions tests the line/column cursor
func TestTokenizerPositions(t *testing.T) {
	input := "{\n  \"key\": 12,\n  \"other\": true}"
	tkz := NewTokenizer([]byte(input))
	expected := []token.Pos{
		pos(1, 0),  // {
		pos(2, 2),  // "key"
		pos(2, 7),  // :
		pos(2, 9),  // 12
		pos(2, 11), // ,
		pos(3, 2),  // "other"
		pos(3, 9),  // :
		pos(3, 11), // true
		pos(3, 15), // }
	}
	for i, want := range expected {
		tok, err := tkz.Next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %s", i, err)
		}
		if tok.Pos != want {
			t.Errorf("token %d (%v): expected position %v, got %v", i, tok, want, tok.Pos)
		}
	}
	tok, err := tkz.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tok.Kind != token.EOF {
		t.Errorf("expected EOF, got %v", tok)
	}
}

// TestTokenizerErrorPosition checks that errors report the position of
// the earliest offending byte.
func TestTokenizerErrorPosition(t *testing.T) {
	_, err := NewTokenizer([]byte("  \n @")).Next()
	if err == nil {
		t.Fatal("expected error")
	}
	jerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if jerr.Line != 2 || jerr.Col != 1 {
		t.Errorf("expected L2,C1, got L%d,C%d", jerr.Line, jerr.Col)
	}
}

// TestTokenizerLongInput makes sure token scanning does not depend on
// small inputs.
func TestTokenizerLongInput(t *testing.T) {
	input := `"` + strings.Repeat("x", 10000) + `"`
	tok, err := NewTokenizer([]byte(input)).Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(tok.Str) != 10000 {
		t.Errorf("expected 10000 bytes, got %d", len(tok.Str))
	}
}

func pos(line, col int) token.Pos {
	return token.Pos{Line: line, Col: col}
}
