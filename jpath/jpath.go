// Package jpath implements a minimal JSONPath expression parser for paths
// through nested objects.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/creachadair/pjson/query"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = "[" qname "]"
  name = WORD
  name = qname
 qname = "'" QTEXT "'"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`

Array indices, slices, wildcards, recursive descent, filters, and scripts
from the full JSONPath syntax are reported as errors.

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return Expr{}, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return Expr{}, fmt.Errorf("offset %d: %w", len(s)-len(t), err)
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

// MustParse is as Parse, but panics if s is not a valid expression.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: %v", err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Name:
			fmt.Fprint(&buf, ".", s.Key)
		case QName:
			fmt.Fprintf(&buf, "['%s']", s.Key)
		}
	}
	return buf.String()
}

// Keys returns the object keys named by e, in order.
func (e Expr) Keys() []string {
	keys := make([]string, len(e))
	for i, s := range e {
		keys[i] = s.Key
	}
	return keys
}

// Query returns a query that traverses the path described by e.
func (e Expr) Query() query.Query {
	keys := make([]any, len(e))
	for i, s := range e {
		keys[i] = s.Key
	}
	return query.Path(keys...)
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "..") {
		return Step{}, s, errors.New("recursive descent is not supported")
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		if strings.HasPrefix(t, "*") {
			return Step{}, s, errors.New("wildcards are not supported")
		}
		if m := wordRE.FindStringSubmatch(t); m != nil {
			return Step{Op: Name, Key: m[1]}, t[len(m[0]):], nil
		}
		if m := quoteRE.FindStringSubmatch(t); m != nil {
			return Step{Op: QName, Key: m[1]}, t[len(m[0]):], nil
		}
		return Step{}, s, errors.New("invalid .name")
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		m := quoteRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, fmt.Errorf("invalid value: %q (only quoted names are supported)", t)
		}
		u, ok := strings.CutPrefix(t[len(m[0]):], "]")
		if !ok {
			return Step{}, s, errors.New("missing close bracket")
		}
		return Step{Op: QName, Key: m[1]}, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Name              // unquoted member name (.name)
	QName             // quoted member name (['name'])
)

var opText = map[Op]string{
	Invalid: "invalid",
	Name:    "name",
	QName:   "qname",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op  Op
	Key string
}
