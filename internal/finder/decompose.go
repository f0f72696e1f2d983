package finder

import (
	"strings"
	"unicode/utf8"
)

const DefaultSeparator = "|"

type Decomposer struct {
	Separator string
}

func NewDecomposer(separator string) *Decomposer {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Decomposer{Separator: separator}
}

// Decompose tries to build target out of pieces taken from pool, preferring
// the longest window first and scanning left to right. A consumed window is
// never given back to the pool, even when the rest of the target then fails.
func (d *Decomposer) Decompose(target string, pool *Pool) (string, bool) {
	if target == "" {
		return "", true
	}

	runes := []rune(target)
	return d.decompose(runes, pool)
}

func (d *Decomposer) decompose(target []rune, pool *Pool) (string, bool) {
	n := len(target)

	for length := n; length >= 1; length-- {
		for start := 0; start+length <= n; start++ {
			fragment := string(target[start : start+length])
			if !pool.FindAndConsume(fragment) {
				continue
			}

			pieces := make([]string, 0, 3)

			if start > 0 {
				prefix, ok := d.decompose(target[:start], pool)
				if !ok {
					continue
				}
				pieces = append(pieces, prefix)
			}

			pieces = append(pieces, fragment)

			if end := start + length; end < n {
				suffix, ok := d.decompose(target[end:], pool)
				if !ok {
					continue
				}
				pieces = append(pieces, suffix)
			}

			return strings.Join(pieces, d.Separator), true
		}
	}

	return "", false
}

// LongestPiece returns the rune length of the longest separator-delimited
// piece of result.
func LongestPiece(result, separator string) int {
	longest := 0
	for _, piece := range strings.Split(result, separator) {
		longest = max(longest, utf8.RuneCountInString(piece))
	}
	return longest
}
