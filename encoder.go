package jsontree

import (
	"bytes"
	"io"
	"math"
	"strconv"
)

// An Encoder walks a Value tree and emits JSON text through a Printer.
// In compact mode (Pretty false) no whitespace is inserted.  In pretty
// mode each array element and object member starts on a new line,
// nested two spaces per level, and a space follows each ':'.
type Encoder struct {
	Printer
	Colorizer *Colorizer
	Pretty    bool
}

// NewEncoder returns an Encoder writing to w.  The colorizer may be
// nil for plain output.
func NewEncoder(w io.Writer, pretty bool, colorizer *Colorizer) *Encoder {
	indentSize := -1
	if pretty {
		indentSize = 2
	}
	return &Encoder{
		Printer:   &DefaultPrinter{Writer: w, IndentSize: indentSize},
		Colorizer: colorizer,
		Pretty:    pretty,
	}
}

// Encode writes v as JSON text.  A pretty-printed top-level array or
// object is followed by a final newline.
func (e *Encoder) Encode(v *Value) (err error) {
	defer CatchPrinterError(&err)
	if v == nil {
		return opError(ErrNilValue, "cannot stringify nil value")
	}
	e.writeValue(v)
	if e.Pretty && (v.kind == Array || v.kind == Object) {
		e.PrintBytes(newlineBytes)
	}
	return nil
}

func (e *Encoder) writeValue(v *Value) {
	switch v.kind {
	case Null:
		e.Colorizer.PrintScalar(e.Printer, Null, nullBytes)
	case Bool:
		if v.b {
			e.Colorizer.PrintScalar(e.Printer, Bool, trueBytes)
		} else {
			e.Colorizer.PrintScalar(e.Printer, Bool, falseBytes)
		}
	case Number:
		e.Colorizer.PrintScalar(e.Printer, Number, appendNumber(nil, v.n))
	case String:
		e.Colorizer.PrintScalar(e.Printer, String, appendQuoted(nil, v.s))
	case Array:
		e.writeArray(v)
	case Object:
		e.writeObject(v)
	}
}

func (e *Encoder) writeArray(v *Value) {
	e.PrintBytes(openArrayBytes)
	for i, item := range v.items {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
			e.NewLine()
		} else {
			e.Indent()
		}
		e.writeValue(item)
	}
	if len(v.items) > 0 {
		e.Dedent()
	}
	e.PrintBytes(closeArrayBytes)
}

func (e *Encoder) writeObject(v *Value) {
	sep := keyValueSeparatorBytes
	if e.Pretty {
		sep = keyValueSeparatorPrettyBytes
	}
	e.PrintBytes(openObjectBytes)
	for i := range v.members {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
			e.NewLine()
		} else {
			e.Indent()
		}
		e.Colorizer.PrintKey(e.Printer, appendQuoted(nil, v.members[i].key))
		e.PrintBytes(sep)
		e.writeValue(v.members[i].value)
	}
	if len(v.members) > 0 {
		e.Dedent()
	}
	e.PrintBytes(closeObjectBytes)
}

// Stringify serializes a Value tree to JSON text.  Compact output has
// no inserted whitespace; pretty output uses two-space indentation.
func Stringify(v *Value, pretty bool) (string, error) {
	if v == nil {
		return "", opError(ErrNilValue, "cannot stringify nil value")
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, pretty, nil).Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode writes v as JSON text to w.
func Encode(w io.Writer, v *Value, pretty bool) error {
	return NewEncoder(w, pretty, nil).Encode(v)
}

// appendQuoted appends the JSON representation of s: double quotes,
// named escapes for '"', '\' and the usual control characters, and
// \u00XX escapes for any other byte below 0x20.  All other bytes pass
// through untouched, so valid UTF-8 stays valid.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if b < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
			} else {
				dst = append(dst, b)
			}
		}
	}
	return append(dst, '"')
}

// appendNumber appends a round-trip-safe representation of x.  Values
// exactly representable as int64 print as plain integers, anything
// else with 17 significant digits so that re-parsing yields the
// identical float64.  NaN and infinities cannot occur in a tree.
func appendNumber(dst []byte, x float64) []byte {
	if x == math.Trunc(x) && math.Abs(x) < 1<<63 {
		return strconv.AppendInt(dst, int64(x), 10)
	}
	return strconv.AppendFloat(dst, x, 'g', 17, 64)
}

const hexDigits = "0123456789abcdef"

var (
	nullBytes                    = []byte("null")
	trueBytes                    = []byte("true")
	falseBytes                   = []byte("false")
	openObjectBytes              = []byte("{")
	closeObjectBytes             = []byte("}")
	openArrayBytes               = []byte("[")
	closeArrayBytes              = []byte("]")
	itemSeparatorBytes           = []byte(",")
	keyValueSeparatorBytes       = []byte(":")
	keyValueSeparatorPrettyBytes = []byte(": ")
)
