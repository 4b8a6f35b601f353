// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import "go4.org/mem"

// An Outcome is the result of parsing the top-level object of a Stream.
type Outcome struct {
	// The members recovered from the object. This is never nil.
	Object Object

	// The location of the object in the buffer. Span.End is the offset of the
	// first byte not consumed by the parser.
	Span Span

	// Partial is true if the input ended, or an unexpected token was found,
	// before the object was closed.
	Partial bool

	// Invalid is true if the object as a whole was rejected.
	Invalid bool
}

// A parser scans objects from a fixed view of the buffer.
type parser struct {
	text     mem.RO
	maxDepth int // 0 means unlimited
}

// value reads the value that begins at or after offset i in an object at the
// given depth. It reports the value (if any), the next offset, and whether
// the value is partial or invalid.
//
// An invalid value is not consumed: the returned offset is where it begins,
// and the caller must skip it.
func (p *parser) value(i, depth int) (_ Value, next int, partial, invalid bool) {
	i = skipSpace(p.text, i)
	if i >= p.text.Len() {
		return nil, i, true, false
	}
	switch p.text.At(i) {
	case '"':
		s, next, ok := readString(p.text, i)
		return String(s), next, !ok, false
	case '{':
		if p.maxDepth > 0 && depth >= p.maxDepth {
			return nil, i, false, true
		}
		return p.object(i, depth+1)
	default:
		return nil, i, false, true
	}
}

// object parses an object whose open brace is at p.text[i]. It returns the
// members recovered, the offset following the last byte consumed, and
// whether the object is partial or invalid.
func (p *parser) object(i, depth int) (_ Object, next int, partial, invalid bool) {
	obj := make(Object)
	n := p.text.Len()
	i++ // skip "{"
	for {
		// Expect a key, or the end of the object.
		i = skipSpace(p.text, i)
		if i >= n {
			return obj, i, true, false
		}
		switch p.text.At(i) {
		case '}':
			return obj, i + 1, false, false
		case ',':
			i++
			continue
		case '"':
			// OK, a key
		default:
			return obj, i, true, false
		}
		key, next, ok := readString(p.text, i)
		if !ok {
			return obj, next, true, false // drop the incomplete key
		}

		// Expect a colon.
		i = skipSpace(p.text, next)
		if i >= n || p.text.At(i) != ':' {
			return obj, i, true, false
		}

		// Expect a value. Unsupported values are skipped along with their key.
		val, next, _, bad := p.value(i+1, depth)
		if bad {
			i = skipInvalid(p.text, next)
		} else {
			i = next
			if !isEmpty(val) {
				obj[key] = val
			}
		}

		// Expect a comma, or the end of the object.
		i = skipSpace(p.text, i)
		if i >= n {
			return obj, i, true, false
		}
		switch p.text.At(i) {
		case ',':
			i = skipSpace(p.text, i+1)
			if i < n && p.text.At(i) == '}' {
				return obj, i + 1, false, false // trailing comma
			}
		case '}':
			return obj, i + 1, false, false
		default:
			return obj, i, true, false
		}
	}
}

// isEmpty reports whether v should be omitted from its enclosing object.
// Empty strings and empty objects are omitted, as are missing values.
func isEmpty(v Value) bool {
	switch t := v.(type) {
	case String:
		return t == ""
	case Object:
		return len(t) == 0
	}
	return true
}
