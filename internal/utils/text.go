package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func Lower(s string) string {
	// Casers keep state, so a fresh one is built per call.
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// NormalizeTokens lowercases every raw input string and splits the ones
// holding whitespace into separate tokens.
func NormalizeTokens(raw []string) []string {
	tokens := make([]string, 0, len(raw))
	for _, r := range raw {
		tokens = append(tokens, strings.Fields(Lower(r))...)
	}
	return tokens
}

// NormalizeWord lowercases a vocabulary entry and strips all whitespace from
// it, so "Foot Fetish" becomes "footfetish".
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(Lower(word)), "")
}

func Truncate(s string, maxLength int) string {
	defaultString := "Unknown"

	if strings.ReplaceAll(s, " ", "") == "" {
		return defaultString
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}
