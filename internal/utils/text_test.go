package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"lowercases", []string{"SEX", "Mars"}, []string{"sex", "mars"}},
		{"splits on whitespace", []string{"foot fetish", "ring"}, []string{"foot", "fetish", "ring"}},
		{"drops blanks", []string{"  ", "", "a\tb\n"}, []string{"a", "b"}},
		{"composes accents", []string{"BÖSE"}, []string{"böse"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTokens(tt.raw))
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "footfetish", NormalizeWord("Foot Fetish"))
	assert.Equal(t, "sex", NormalizeWord("  SEX\t"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Unknown", Truncate("   ", 10))
	assert.Equal(t, "sultan", Truncate("sultan", 10))
	assert.Equal(t, "sul", Truncate("sultan", 3))
	assert.Equal(t, "bö", Truncate("böse", 2))
}
