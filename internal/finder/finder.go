// Package finder works out which flagged words can be spelled out of pieces
// cut from a handful of input words.
package finder

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/wgomg/rudefinder/internal/utils"
)

// WordSource supplies the normalized flagged vocabulary. Implementations
// must return a slice the caller is free to read but never modify.
type WordSource interface {
	Words() []string
}

// WordList is a fixed vocabulary.
type WordList []string

func (w WordList) Words() []string {
	return w
}

type Options struct {
	Separator   string
	WorkerCount int
}

type Finder struct {
	logger     *utils.Logger
	words      WordSource
	decomposer *Decomposer
	workers    int
}

func New(logger *utils.Logger, words WordSource, opts Options) *Finder {
	workers := opts.WorkerCount
	if workers < 1 {
		workers = 1
	}

	return &Finder{
		logger:     logger,
		words:      words,
		decomposer: NewDecomposer(opts.Separator),
		workers:    workers,
	}
}

func (f *Finder) Separator() string {
	return f.decomposer.Separator
}

// Find normalizes the raw input and returns a decomposition for every
// flagged word that can be built from it, words made of longer pieces first.
func (f *Finder) Find(ctx context.Context, input []string, reqID *string) ([]string, error) {
	return f.FindTokens(ctx, utils.NormalizeTokens(input), reqID)
}

// FindTokens is Find for input that has already been normalized.
func (f *Finder) FindTokens(ctx context.Context, tokens []string, reqID *string) ([]string, error) {
	words := f.words.Words()
	f.logger.Debug(reqID, "Searching %d flagged words using tokens %v", len(words), tokens)

	found := make([]string, len(words))
	hit := make([]bool, len(words))

	if f.workers == 1 || len(words) < 2 {
		for i, word := range words {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			found[i], hit[i] = f.decomposer.Decompose(word, NewPool(tokens))
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(f.workers)

		for i, word := range words {
			if gCtx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				found[i], hit[i] = f.decomposer.Decompose(word, NewPool(tokens))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	results := make([]string, 0)
	for i := range words {
		if hit[i] && words[i] != "" {
			results = append(results, found[i])
		}
	}

	f.rank(results)

	f.logger.Debug(reqID, "Found %d matches: %v", len(results), results)
	return results, nil
}

// rank orders results by their longest piece, longest first. Equal results
// keep vocabulary order.
func (f *Finder) rank(results []string) {
	sep := f.decomposer.Separator
	slices.SortStableFunc(results, func(a, b string) int {
		return LongestPiece(b, sep) - LongestPiece(a, sep)
	})
}
