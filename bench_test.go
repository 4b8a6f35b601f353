package pjson_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/internal/testutil"
)

// benchInput constructs an object with n members, every fourth of which is a
// nested object.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		if i%4 == 3 {
			fmt.Fprintf(&sb, `  "key%d": {"name": "value %d", "tags": ["a", "b"]}`, i, i)
		} else {
			fmt.Fprintf(&sb, `  "key%d": "value %d"`, i, i)
		}
	}
	sb.WriteString("\n}\n")
	return sb.String()
}

func BenchmarkQuery(b *testing.B) {
	input := benchInput(500)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		data := []byte(input)
		for b.Loop() {
			var v map[string]any
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Whole", func(b *testing.B) {
		s := pjson.NewStream()
		s.Consume(input)
		for b.Loop() {
			s.Query()
		}
	})

	// Query after every chunk, as a streaming consumer would.
	b.Run("Chunked", func(b *testing.B) {
		chunks := testutil.Chunks(input, 64)
		for b.Loop() {
			s := pjson.NewStream()
			for _, c := range chunks {
				s.Consume(c)
				s.Query()
			}
		}
	})
}
