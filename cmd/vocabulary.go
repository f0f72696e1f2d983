package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgomg/rudefinder/internal/utils"
)

func newVocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Print the flagged words as they are matched, after normalization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := utils.NewWriterLogger(cfg.App.LogLevel, cmd.ErrOrStderr())
			store, err := loadStore(cfg, logger)
			if err != nil {
				return err
			}

			for _, word := range store.Words() {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}
}
