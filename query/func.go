package query

import (
	"fmt"

	"github.com/creachadair/pjson"
)

// A Predicate reports whether a value satisfies some condition.
type Predicate func(pjson.Value) bool

// Exists returns a predicate that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Predicate {
	q := Path(keys...)
	return func(v pjson.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Is returns a predicate that reports true if its argument is of type T.
func Is[T pjson.Value]() Predicate {
	return func(v pjson.Value) bool { _, ok := v.(T); return ok }
}

// IsNot returns a predicate that reports true if its argument is not of type T.
func IsNot[T pjson.Value]() Predicate {
	return func(v pjson.Value) bool { _, ok := v.(T); return !ok }
}

// Filter returns a query that yields an object containing the members of its
// input object whose values satisfy p.
func Filter(p Predicate) Query { return filterQuery(p) }

type filterQuery Predicate

func (q filterQuery) eval(v pjson.Value) (pjson.Value, error) {
	obj, ok := v.(pjson.Object)
	if !ok {
		return nil, fmt.Errorf("got %T, want object", v)
	}
	out := make(pjson.Object)
	for key, elt := range obj {
		if q(elt) {
			out[key] = elt
		}
	}
	return out, nil
}
