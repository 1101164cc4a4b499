package jsontree

import "github.com/arnodel/jsontree/token"

// MaxNestingDepth is the maximum array / object nesting level the
// parser accepts.  Exceeding it fails with ErrStackOverflow, bounding
// call-stack depth against adversarial input.
const MaxNestingDepth = 1000

// Parse builds a Value tree from a single JSON text.  Any trailing
// non-whitespace content after the top-level value is rejected.  On
// failure the returned error is a *Error carrying the error code and
// the position (1-based line, 0-based column) of the earliest byte at
// which the failure was detected.
func Parse(text []byte) (*Value, error) {
	p := &parser{tok: NewTokenizer(text)}
	if err := p.next(); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "extra data after top-level value")
	}
	return v, nil
}

// ParseString is like Parse for string input.
func ParseString(text string) (*Value, error) {
	return Parse([]byte(text))
}

// Valid reports whether text is a single well-formed JSON value.
func Valid(text []byte) bool {
	_, err := Parse(text)
	return err == nil
}

type parser struct {
	tok   *Tokenizer
	cur   token.Token
	depth int
}

func (p *parser) next() error {
	t, err := p.tok.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// parseValue builds the value starting at the current token.
func (p *parser) parseValue() (*Value, error) {
	switch p.cur.Kind {
	case token.Null:
		return NewNull(), nil
	case token.True:
		return NewBool(true), nil
	case token.False:
		return NewBool(false), nil
	case token.Number:
		// The tokenizer has already excluded NaN and infinities.
		v, err := NewNumber(p.cur.Num)
		if err != nil {
			return nil, errAt(ErrNumberOutOfRange, p.cur.Pos, "number has no JSON representation")
		}
		return v, nil
	case token.String:
		return NewString(p.cur.Str), nil
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseObject()
	case token.EOF:
		return nil, errAt(ErrUnexpectedEOF, p.cur.Pos, "value expected")
	default:
		return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "unexpected %s", p.cur.Kind)
	}
}

// The current token is '['.
func (p *parser) parseArray() (*Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNestingDepth {
		return nil, errAt(ErrStackOverflow, p.cur.Pos, "nesting deeper than %d levels", MaxNestingDepth)
	}
	arr := NewArray()
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.RBracket {
		return arr, nil
	}
	for {
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Append(item)
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.Comma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.RBracket:
			return arr, nil
		case token.EOF:
			return nil, errAt(ErrUnexpectedEOF, p.cur.Pos, "expected ',' or ']'")
		default:
			return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "expected ',' or ']', got %s", p.cur.Kind)
		}
	}
}

// The current token is '{'.
func (p *parser) parseObject() (*Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNestingDepth {
		return nil, errAt(ErrStackOverflow, p.cur.Pos, "nesting deeper than %d levels", MaxNestingDepth)
	}
	obj := NewObject()
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.RBrace {
		return obj, nil
	}
	for {
		if p.cur.Kind == token.EOF {
			return nil, errAt(ErrUnexpectedEOF, p.cur.Pos, "expected object key")
		}
		if p.cur.Kind != token.String {
			return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "expected string key, got %s", p.cur.Kind)
		}
		key := p.cur.Str
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Kind != token.Colon {
			if p.cur.Kind == token.EOF {
				return nil, errAt(ErrUnexpectedEOF, p.cur.Pos, "expected ':'")
			}
			return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "expected ':', got %s", p.cur.Kind)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, item)
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.Comma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.RBrace:
			return obj, nil
		case token.EOF:
			return nil, errAt(ErrUnexpectedEOF, p.cur.Pos, "expected ',' or '}'")
		default:
			return nil, errAt(ErrUnexpectedToken, p.cur.Pos, "expected ',' or '}', got %s", p.cur.Kind)
		}
	}
}
