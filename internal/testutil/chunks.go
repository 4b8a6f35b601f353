// Package testutil defines support code for unit tests.
package testutil

import (
	"iter"
	"math/rand/v2"
)

// Pairs yields every split of s into two consecutive pieces, including the
// splits with an empty first or last piece.
func Pairs(s string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for i := 0; i <= len(s); i++ {
			if !yield([]string{s[:i], s[i:]}) {
				return
			}
		}
	}
}

// Chunks splits s into consecutive pieces of at most n bytes each.
// It panics if n <= 0.
func Chunks(s string, n int) []string {
	if n <= 0 {
		panic("chunk size must be positive")
	}
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}

// RandomChunks splits s into consecutive pieces of random length between 0
// and maxLen bytes, using the given seed. Empty pieces are possible.
func RandomChunks(s string, maxLen int, seed uint64) []string {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var out []string
	for s != "" {
		n := min(r.IntN(maxLen+1), len(s))
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}
