// Package query implements structural queries over partial JSON snapshots.
//
// A query describes a substructure of a snapshot, such as an object member or
// a path through nested objects. Evaluating a query against a concrete value
// traverses the structure described by the query and returns the resulting
// value.
//
// The simplest query is for a "path", a sequence of object keys that
// describes a path from the root of a value. For example, given the snapshot:
//
//	{"a": {"b": "c"}, "d": {"e": {"f": "g"}}}
//
// the query
//
//	query.Path("d", "e", "f")
//
// yields the string "g".
//
// Because a snapshot may be incomplete, a key that is not found is an
// ordinary error: the member may not have arrived yet.
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/pjson"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error.
func Eval(root pjson.Value, q Query) (pjson.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a value.
type Query interface {
	eval(pjson.Value) (pjson.Value, error)
}

// Path traverses a sequence of nested object keys from the root.  If no keys
// are specified, the root is returned. Each key must be a string or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// Key selects the member of an object with the given key.
func Key(name string) Query { return objKey(name) }

type objKey string

func (o objKey) eval(v pjson.Value) (pjson.Value, error) {
	obj, ok := v.(pjson.Object)
	if !ok {
		return nil, fmt.Errorf("got %T, want object", v)
	}
	val := obj.Find(string(o))
	if val == nil {
		return nil, fmt.Errorf("key %q not found", o)
	}
	return val, nil
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v pjson.Value) (pjson.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives.  The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v pjson.Value) (pjson.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Object constructs an object with the given keys mapped to the results of
// matching the query values against its input.
type Object map[string]Query

func (o Object) eval(v pjson.Value) (pjson.Value, error) {
	out := make(pjson.Object, len(o))
	for key, q := range o {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		out[key] = val
	}
	return out, nil
}

// A String query ignores its input and returns the given string.
func String(s string) Query { return Value(pjson.String(s)) }

// A Value query ignores its input and returns the given value.
func Value(v pjson.Value) Query { return constQuery{v} }

type constQuery struct{ pjson.Value }

func (c constQuery) eval(_ pjson.Value) (pjson.Value, error) { return c.Value, nil }
