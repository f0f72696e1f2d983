package vocabulary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wgomg/rudefinder/internal/utils"
)

//go:embed words.txt
var embeddedWords string

const EmbeddedSource = "embedded"

// Parse reads one flagged word per line. Blank lines and lines starting with
// '#' are skipped. Words are normalized, and any word that contains separator
// is dropped because its matches could not be told apart from the pieces.
func Parse(r io.Reader, separator string, logger *utils.Logger) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word := utils.NormalizeWord(line)
		if separator != "" && strings.Contains(word, separator) {
			logger.Info(nil, "Skipping vocabulary line %d %q: contains separator %q", lineNo, line, separator)
			continue
		}

		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	return words, nil
}

// Load reads the vocabulary at path, or the built-in list when path is
// empty. The returned source names where the words came from.
func Load(path, separator string, logger *utils.Logger) ([]string, string, error) {
	if path == "" {
		words, err := Parse(strings.NewReader(embeddedWords), separator, logger)
		if err != nil {
			return nil, "", err
		}
		logger.Debug(nil, "Loaded %d words from embedded vocabulary", len(words))
		return words, EmbeddedSource, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(f, separator, logger)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug(nil, "Loaded %d words from %s", len(words), path)
	return words, path, nil
}
