package jsontree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arnodel/jsontree/token"
	"github.com/c2h5oh/datasize"
)

// An Event is emitted by a Stream as it recognizes the structure of
// its input.  The concrete types are ObjectStart, ObjectEnd,
// ArrayStart, ArrayEnd, Key, ValueEvent, ErrorEvent and EOFEvent.
type Event interface {
	fmt.Stringer
}

// ObjectStart is emitted when a '{' opens a new top-level value.
type ObjectStart struct{}

func (e *ObjectStart) String() string { return "ObjectStart" }

var _ Event = &ObjectStart{}

// ObjectEnd is emitted when the '}' closing a top-level object is
// seen, after the ValueEvent for the object itself.
type ObjectEnd struct{}

func (e *ObjectEnd) String() string { return "ObjectEnd" }

var _ Event = &ObjectEnd{}

// ArrayStart is emitted when a '[' opens a new top-level value.
type ArrayStart struct{}

func (e *ArrayStart) String() string { return "ArrayStart" }

var _ Event = &ArrayStart{}

// ArrayEnd is emitted when the ']' closing a top-level array is seen,
// after the ValueEvent for the array itself.
type ArrayEnd struct{}

func (e *ArrayEnd) String() string { return "ArrayEnd" }

var _ Event = &ArrayEnd{}

// Key is part of the event vocabulary for completeness but is not
// emitted by the boundary scanner, which only delimits whole top-level
// values before re-parsing them.
type Key struct {
	Name string
}

func (e *Key) String() string { return fmt.Sprintf("Key(%q)", e.Name) }

var _ Event = &Key{}

// ValueEvent carries a complete parsed top-level value.
type ValueEvent struct {
	Value *Value
}

func (e *ValueEvent) String() string {
	s, err := Stringify(e.Value, false)
	if err != nil {
		return "Value(<invalid>)"
	}
	return fmt.Sprintf("Value(%s)", s)
}

var _ Event = &ValueEvent{}

// ErrorEvent reports that the buffered value failed to parse.  The
// stream is dead after this event.
type ErrorEvent struct {
	Err *Error
}

func (e *ErrorEvent) String() string { return fmt.Sprintf("Error(%s)", e.Err) }

var _ Event = &ErrorEvent{}

// EOFEvent terminates the event sequence of FeedFile.
type EOFEvent struct{}

func (e *EOFEvent) String() string { return "Eof" }

var _ Event = &EOFEvent{}

// A Callback receives stream events.  Returning false cancels the
// stream immediately: no further bytes are scanned and no further
// events are emitted.
type Callback func(Event) bool

// ErrCanceled is returned by Feed and FeedFile when the callback
// stopped the stream by returning false.
var ErrCanceled = errors.New("stream canceled by callback")

const (
	// MaxStreamDepth is the bracket nesting ceiling of the boundary
	// scanner.
	MaxStreamDepth = 256

	// DefaultMaxChunkSize and DefaultMaxBufferSize bound the memory a
	// Stream will use on hostile or unbounded input.
	DefaultMaxChunkSize  = 100 * datasize.MB
	DefaultMaxBufferSize = 100 * datasize.MB

	streamReadSize = 8192
)

// A Stream accepts arbitrary byte chunks over multiple Feed calls and
// emits structural events through its callback.  It tracks bracket
// depth and string / escape state across chunk boundaries; whenever
// the bracket depth returns to zero it hands the buffered bytes to the
// one-shot parser and emits the resulting value.  The whole top-level
// value is therefore buffered before it is emitted: this is boundary
// detection, not bounded-memory streaming.
type Stream struct {
	// MaxChunkSize and MaxBufferSize may be adjusted before the first
	// Feed call.  Exceeding either fails with ErrOutOfMemory.
	MaxChunkSize  datasize.ByteSize
	MaxBufferSize datasize.ByteSize

	callback Callback
	buf      []byte
	depth    int
	inString bool
	escaped  bool
	line     int
	col      int
}

// NewStream returns a Stream emitting events through callback.
func NewStream(callback Callback) *Stream {
	if callback == nil {
		panic("jsontree: nil stream callback")
	}
	return &Stream{
		MaxChunkSize:  DefaultMaxChunkSize,
		MaxBufferSize: DefaultMaxBufferSize,
		callback:      callback,
		line:          1,
	}
}

func (s *Stream) pos() token.Pos {
	return token.Pos{Line: s.line, Col: s.col}
}

func (s *Stream) emit(ev Event) bool {
	return s.callback(ev)
}

// Feed scans one chunk of input.  Any complete top-level values found
// are parsed and emitted; a trailing incomplete value stays buffered
// for the next call.  Feed returns ErrCanceled if the callback stopped
// the stream, or a *Error if the input is invalid or a size ceiling
// was hit.
func (s *Stream) Feed(chunk []byte) error {
	if datasize.ByteSize(len(chunk)) > s.MaxChunkSize {
		return opError(ErrOutOfMemory, "chunk larger than %s", s.MaxChunkSize.HumanReadable())
	}
	for _, c := range chunk {
		if datasize.ByteSize(len(s.buf)) >= s.MaxBufferSize {
			return errAt(ErrOutOfMemory, s.pos(), "stream buffer larger than %s", s.MaxBufferSize.HumanReadable())
		}
		s.buf = append(s.buf, c)
		if c == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
		if s.inString {
			switch {
			case s.escaped:
				s.escaped = false
			case c == '\\':
				s.escaped = true
			case c == '"':
				s.inString = false
			}
			continue
		}
		switch c {
		case '"':
			s.inString = true
		case '{', '[':
			if s.depth >= MaxStreamDepth {
				return errAt(ErrStackOverflow, s.pos(), "stream nesting deeper than %d levels", MaxStreamDepth)
			}
			s.depth++
			if s.depth == 1 && len(s.buf) == 1 {
				var ev Event = &ArrayStart{}
				if c == '{' {
					ev = &ObjectStart{}
				}
				if !s.emit(ev) {
					return ErrCanceled
				}
			}
		case '}', ']':
			s.depth--
			if s.depth == 0 {
				if err := s.flush(); err != nil {
					return err
				}
				var ev Event = &ArrayEnd{}
				if c == '}' {
					ev = &ObjectEnd{}
				}
				if !s.emit(ev) {
					return ErrCanceled
				}
			}
		}
	}
	if s.depth == 0 && len(s.buf) > 0 {
		return s.flush()
	}
	return nil
}

// flush parses the buffered bytes as one value and emits it.  An
// UnexpectedEOF outcome means the value is still incomplete (e.g. a
// bare number cut off mid-chunk) and is not an error: the buffer is
// kept for the next call.
func (s *Stream) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	v, err := Parse(s.buf)
	if err != nil {
		var jerr *Error
		if errors.As(err, &jerr) && jerr.Code == ErrUnexpectedEOF {
			return nil
		}
		if jerr == nil {
			jerr = opError(ErrInvalidSyntax, "%s", err)
		}
		s.emit(&ErrorEvent{Err: jerr})
		return jerr
	}
	ok := s.emit(&ValueEvent{Value: v})
	s.buf = s.buf[:0]
	if !ok {
		return ErrCanceled
	}
	return nil
}

// FeedFile reads the named file in fixed-size chunks and feeds them to
// the stream, then flushes any trailing buffered value and emits a
// terminal EOFEvent.
func (s *Stream) FeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return opError(ErrFileNotFound, "cannot open %q", path)
	}
	defer f.Close()
	buf := make([]byte, streamReadSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if ferr := s.Feed(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return opError(ErrFileReadError, "cannot read %q: %s", path, err)
		}
	}
	if s.depth == 0 {
		if err := s.flush(); err != nil {
			return err
		}
	}
	s.emit(&EOFEvent{})
	return nil
}
