// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/pjson/internal/escape"
	"go4.org/mem"
)

// A Value is a string or object value recovered from the input.
// The concrete type is either String or Object.
type Value interface {
	// JSON renders the value as compact JSON text. Object keys are written
	// in ascending order.
	JSON() string

	// Plain converts the value to a string or a map[string]any.
	Plain() any

	isValue()
}

// A String is a string value. The text is exactly as it appeared between the
// quotation marks in the input; escape sequences are not decoded.
type String string

func (String) isValue() {}

// JSON satisfies the Value interface.
func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }

// Plain satisfies the Value interface.
func (s String) Plain() any { return string(s) }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// An Object is a collection of key-value members.
// A nil Object is valid and empty.
type Object map[string]Value

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil.
func (o Object) Find(key string) Value { return o[key] }

// Keys returns the keys of o in ascending order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// Path traverses a sequence of nested object keys starting from o, and
// reports the value reached. It reports false if some key is not found, or
// if an intermediate value is not an object.
func (o Object) Path(keys ...string) (Value, bool) {
	var cur Value = o
	for _, key := range keys {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (o Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, key := range o.Keys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = escape.AppendQuote(buf, mem.S(key))
		buf = append(buf, ':')
		switch t := o[key].(type) {
		case Object:
			buf = t.appendJSON(buf)
		case String:
			buf = escape.AppendQuote(buf, mem.S(string(t)))
		}
	}
	return append(buf, '}')
}

// Plain satisfies the Value interface. The result is a map[string]any whose
// values are strings and nested maps of the same shape.
func (o Object) Plain() any {
	out := make(map[string]any, len(o))
	for key, v := range o {
		out[key] = v.Plain()
	}
	return out
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Equal reports whether a and b are structurally equal. Two nil values are
// equal; an empty Object is equal to a nil Object.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Object:
		y, ok := b.(Object)
		if !ok && b != nil {
			return false
		}
		return maps.EqualFunc(x, y, Equal)
	case nil:
		if y, ok := b.(Object); ok {
			return len(y) == 0
		}
		return b == nil
	}
	return false
}

// ToValue converts a string, map[string]string, map[string]any, or Value
// into a Value. The values of a map[string]any must themselves be acceptable
// to ToValue. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case map[string]string:
		out := make(Object, len(t))
		for key, s := range t {
			out[key] = String(s)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
