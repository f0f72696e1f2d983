package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolFindAndConsume(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		needle    string
		found     bool
		want      []string
	}{
		{
			name:      "exact match leaves nothing behind",
			fragments: []string{"an", "al"},
			needle:    "an",
			found:     true,
			want:      []string{"al"},
		},
		{
			name:      "prefix and suffix are appended in order",
			fragments: []string{"all", "sultan"},
			needle:    "lt",
			found:     true,
			want:      []string{"all", "su", "an"},
		},
		{
			name:      "suffix only",
			fragments: []string{"sultan", "all"},
			needle:    "sul",
			found:     true,
			want:      []string{"all", "tan"},
		},
		{
			name:      "first occurrence inside a fragment is used",
			fragments: []string{"abcabc"},
			needle:    "bc",
			found:     true,
			want:      []string{"a", "abc"},
		},
		{
			name:      "first fragment in order wins",
			fragments: []string{"xan", "ban"},
			needle:    "an",
			found:     true,
			want:      []string{"ban", "x"},
		},
		{
			name:      "missing needle leaves pool untouched",
			fragments: []string{"mars"},
			needle:    "an",
			found:     false,
			want:      []string{"mars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.fragments)
			assert.Equal(t, tt.found, pool.FindAndConsume(tt.needle))
			assert.Equal(t, tt.want, pool.Fragments())
		})
	}
}

func TestNewPoolCopiesTokens(t *testing.T) {
	tokens := []string{"foot", "fetish"}
	pool := NewPool(tokens)

	assert.True(t, pool.FindAndConsume("foot"))
	assert.Equal(t, []string{"foot", "fetish"}, tokens)
	assert.Equal(t, 1, pool.Len())
}

func TestPoolNeverGrows(t *testing.T) {
	pool := NewPool([]string{"fingering"})
	total := func() int {
		n := 0
		for _, f := range pool.Fragments() {
			n += len(f)
		}
		return n
	}

	before := total()
	for _, needle := range []string{"ger", "f", "q", "in"} {
		pool.FindAndConsume(needle)
		after := total()
		assert.LessOrEqual(t, after, before)
		before = after
	}
	assert.Equal(t, []string{"in", "g"}, pool.Fragments())
}
