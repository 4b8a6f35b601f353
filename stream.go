// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"io"
	"slices"

	"go4.org/mem"
)

// A Stream accumulates chunks of input text and reports the best available
// snapshot of the first object in the input. A zero Stream is ready for use.
//
// Consuming input does no parsing; each call to Query or Parse rescans the
// entire buffer from the beginning. The buffer is never trimmed, so the cost
// of a query grows with the total amount of input consumed.
//
// A Stream is not safe for concurrent use without external synchronization.
type Stream struct {
	buf      []byte
	maxDepth int
	last     Object
}

// NewStream constructs a new empty Stream.
func NewStream() *Stream { return new(Stream) }

// SetMaxDepth limits the nesting depth of objects recovered by s. The
// top-level object has depth 1. An object nested deeper than n is skipped
// along with its key, as for an unsupported value. If n <= 0, nesting is not
// limited; this is the default.
func (s *Stream) SetMaxDepth(n int) { s.maxDepth = max(n, 0) }

// Consume appends chunk to the buffer of s.
func (s *Stream) Consume(chunk string) { s.buf = append(s.buf, chunk...) }

// Write appends p to the buffer of s. It satisfies io.Writer, and never
// reports an error.
func (s *Stream) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteString appends str to the buffer of s. It satisfies io.StringWriter,
// and never reports an error.
func (s *Stream) WriteString(str string) (int, error) {
	s.Consume(str)
	return len(str), nil
}

// ReadFrom appends the contents of r to the buffer of s until r reports EOF
// or another error. It satisfies io.ReaderFrom. The only errors reported are
// those returned by r.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	const minRead = 512

	var nr int64
	for {
		s.buf = slices.Grow(s.buf, minRead)
		n, err := r.Read(s.buf[len(s.buf):cap(s.buf)])
		s.buf = s.buf[:len(s.buf)+n]
		nr += int64(n)
		if err == io.EOF {
			return nr, nil
		} else if err != nil {
			return nr, err
		}
	}
}

// Len reports the total number of bytes consumed by s.
func (s *Stream) Len() int { return len(s.buf) }

// Parse parses the first object in the buffer and reports the complete
// outcome. Unlike Query, Parse does not discard an invalid object.
//
// If the buffer does not contain an open brace, the outcome has an empty
// object, an empty span at the end of the buffer, and Partial is true.
func (s *Stream) Parse() Outcome {
	text := mem.B(s.buf)
	start := mem.IndexByte(text, '{')
	if start < 0 {
		return Outcome{Object: Object{}, Span: Span{Pos: len(s.buf), End: len(s.buf)}, Partial: true}
	}
	p := &parser{text: text, maxDepth: s.maxDepth}
	obj, end, partial, invalid := p.object(start, 1)
	return Outcome{
		Object:  obj,
		Span:    Span{Pos: start, End: end},
		Partial: partial,
		Invalid: invalid,
	}
}

// Query reports the members of the first object in the buffer, including
// members of an object that is not yet closed. Members whose key or value
// was cut off by the end of the input are omitted or truncated. Members with
// unsupported values (arrays, numbers, true, false, null) are omitted.
//
// Query returns an empty object if the buffer contains no open brace, or if
// the top-level object is invalid. The result is never nil. Each call returns
// a fresh object owned by the caller.
func (s *Stream) Query() Object {
	out := s.Parse()
	if out.Invalid {
		s.last = Object{}
	} else {
		s.last = out.Object
	}
	return s.last
}

// Last returns the object most recently returned by Query, or nil if Query
// has not been called.
func (s *Stream) Last() Object { return s.last }

// Done reports whether the top-level object has been closed. Input consumed
// after that point does not affect the result of Query.
func (s *Stream) Done() bool {
	out := s.Parse()
	return !out.Partial && !out.Invalid
}
