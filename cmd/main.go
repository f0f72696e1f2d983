package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wgomg/rudefinder/internal/config"
	"github.com/wgomg/rudefinder/internal/finder"
	"github.com/wgomg/rudefinder/internal/utils"
	"github.com/wgomg/rudefinder/internal/vocabulary"
)

var (
	vocabularyPath string
	separator      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rudefinder",
		Short: "Find rude words hiding in a handful of innocent ones",
		Long: `rudefinder checks whether words from a flagged vocabulary can be spelled
by cutting pieces out of the given input words, each piece used once.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&vocabularyPath, "vocabulary", "", "flagged word list, one word per line (overrides VOCABULARY_PATH)")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "", "piece separator in results (overrides FINDER_SEPARATOR)")

	rootCmd.AddCommand(newFindCmd(), newServeCmd(), newVocabularyCmd())
	return rootCmd
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary.Path = vocabularyPath
	}
	if cmd.Flags().Changed("separator") {
		cfg.Finder.Separator = separator
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadStore(cfg *config.Config, logger *utils.Logger) (*vocabulary.Store, error) {
	words, source, err := vocabulary.Load(cfg.Vocabulary.Path, cfg.Finder.Separator, logger)
	if err != nil {
		return nil, err
	}
	logger.Info(nil, "Loaded %d flagged words from %s", len(words), source)

	return vocabulary.NewStore(words, source), nil
}

func newFinder(cfg *config.Config, logger *utils.Logger, words finder.WordSource) *finder.Finder {
	return finder.New(logger, words, finder.Options{
		Separator:   cfg.Finder.Separator,
		WorkerCount: cfg.Finder.WorkerCount,
	})
}
