package finder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name   string
		target string
		tokens []string
		want   string
		found  bool
	}{
		{"direct match", "sex", []string{"sex"}, "sex", true},
		{"substring of a single token", "sex", []string{"sussex"}, "sex", true},
		{"no match", "anal", []string{"mars"}, "", false},
		{"two whole tokens", "anal", []string{"an", "al"}, "an|al", true},
		{"pieces cut from larger tokens", "anal", []string{"sultan", "all"}, "an|al", true},
		{"prefix recursion", "footfetish", []string{"foot", "fetish"}, "foot|fetish", true},
		{"longest piece first", "fingering", []string{"finger", "ring"}, "finger|ing", true},
		{"letters spread over tokens", "gig", []string{"finger", "ring"}, "g|i|g", true},
		{"a token is not used twice", "gig", []string{"finger"}, "", false},
		{"single letters do not reuse input", "anal", []string{"finger", "sit"}, "", false},
		{"multibyte runes", "böse", []string{"bö", "se"}, "bö|se", true},
		{"empty pool", "sex", nil, "", false},
	}

	d := NewDecomposer("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := d.Decompose(tt.target, NewPool(tt.tokens))
			require.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
			if found {
				assert.Equal(t, tt.target, strings.ReplaceAll(got, DefaultSeparator, ""))
			}
		})
	}
}

func TestDecomposeEmptyTarget(t *testing.T) {
	got, found := NewDecomposer("|").Decompose("", NewPool([]string{"sex"}))

	assert.True(t, found)
	assert.Empty(t, got)
}

func TestDecomposeCustomSeparator(t *testing.T) {
	got, found := NewDecomposer("+").Decompose("anal", NewPool([]string{"an", "al"}))

	require.True(t, found)
	assert.Equal(t, "an+al", got)
}

func TestDecomposeKeepsConsumedPiecesOnFailure(t *testing.T) {
	pool := NewPool([]string{"finger", "sit"})

	_, found := NewDecomposer("|").Decompose("anal", pool)

	require.False(t, found)
	// "n" was taken from "finger" before the prefix "a" failed, and stays taken
	assert.Equal(t, []string{"sit", "fi", "ger"}, pool.Fragments())
}

func TestLongestPiece(t *testing.T) {
	assert.Equal(t, 2, LongestPiece("an|al", "|"))
	assert.Equal(t, 6, LongestPiece("finger|ing", "|"))
	assert.Equal(t, 3, LongestPiece("sex", "|"))
	assert.Equal(t, 2, LongestPiece("bö|se", "|"))
	assert.Equal(t, 1, LongestPiece("g+i+g", "+"))
}
