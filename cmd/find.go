package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wgomg/rudefinder/internal/utils"
)

type findOutput struct {
	Input   []string `json:"input" yaml:"input"`
	Matches []string `json:"matches" yaml:"matches"`
}

func newFindCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "find [words...]",
		Short: "Print every flagged word that can be built from the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := utils.NewWriterLogger(cfg.App.LogLevel, cmd.ErrOrStderr())

			store, err := loadStore(cfg, logger)
			if err != nil {
				return err
			}

			tokens := utils.NormalizeTokens(args)
			matches, err := newFinder(cfg, logger, store).FindTokens(cmd.Context(), tokens, nil)
			if err != nil {
				return err
			}

			return printMatches(cmd.OutOrStdout(), format, findOutput{Input: tokens, Matches: matches})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func printMatches(w io.Writer, format string, out findOutput) error {
	switch format {
	case "text":
		for _, m := range out.Matches {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
