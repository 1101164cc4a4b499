package jsontree

import (
	"errors"
	"fmt"

	"github.com/arnodel/jsontree/token"
)

// An ErrorCode identifies the category of a failure.  Every failing
// operation in this package reports exactly one code.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrInvalidSyntax
	ErrUnexpectedToken
	ErrUnterminatedString
	ErrInvalidNumber
	ErrLeadingZero
	ErrInvalidEscape
	ErrInvalidSurrogate
	ErrUnexpectedEOF
	ErrInvalidUTF8
	ErrInvalidWhitespace
	ErrNumberOutOfRange
	ErrStackOverflow
	ErrOutOfMemory
	ErrInvalidType
	ErrNilValue
	ErrKeyNotFound
	ErrIndexOutOfBounds
	ErrFileNotFound
	ErrFileReadError
	ErrFileWriteError
)

var errorMessages = [...]string{
	ErrNone:               "no error",
	ErrInvalidSyntax:      "invalid syntax",
	ErrUnexpectedToken:    "unexpected token",
	ErrUnterminatedString: "unterminated string",
	ErrInvalidNumber:      "invalid number format",
	ErrLeadingZero:        "leading zero not allowed",
	ErrInvalidEscape:      "invalid escape sequence",
	ErrInvalidSurrogate:   "invalid UTF-16 surrogate pair",
	ErrUnexpectedEOF:      "unexpected end of input",
	ErrInvalidUTF8:        "invalid UTF-8 encoding",
	ErrInvalidWhitespace:  "invalid whitespace character",
	ErrNumberOutOfRange:   "number out of range",
	ErrStackOverflow:      "nesting too deep",
	ErrOutOfMemory:        "input exceeds size limit",
	ErrInvalidType:        "invalid type for operation",
	ErrNilValue:           "nil value",
	ErrKeyNotFound:        "key not found",
	ErrIndexOutOfBounds:   "index out of bounds",
	ErrFileNotFound:       "file not found",
	ErrFileReadError:      "file read error",
	ErrFileWriteError:     "file write error",
}

// Message returns a short human-readable description of the code.
func (c ErrorCode) Message() string {
	if int(c) < len(errorMessages) {
		return errorMessages[c]
	}
	return "unknown error"
}

func (c ErrorCode) String() string {
	return c.Message()
}

// An Error describes a failed operation.  For failures detected while
// scanning or parsing input text, Line (1-based) and Col (0-based)
// locate the earliest byte at which the failure was detected; for tree
// operations they are zero.
type Error struct {
	Code ErrorCode
	Msg  string
	Line int
	Col  int
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at L%d,C%d: %s", e.Code.Message(), e.Line, e.Col, e.Msg)
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code.Message(), e.Msg)
	}
	return e.Code.Message()
}

// Pos returns the input position the error was detected at.
func (e *Error) Pos() token.Pos {
	return token.Pos{Line: e.Line, Col: e.Col}
}

// CodeOf extracts the ErrorCode from err, or ErrNone if err is nil or
// was not produced by this package.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrNone
}

func errAt(code ErrorCode, pos token.Pos, format string, args ...interface{}) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		Line: pos.Line,
		Col:  pos.Col,
	}
}

func opError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}
