package main

import (
	"fmt"

	"github.com/ruminaider/dropselect/internal/config"
	"github.com/ruminaider/dropselect/internal/paths"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an options file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.OptionsFile()
		if len(args) > 0 {
			path = args[0]
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), describeConfig(path, cfg))
		return nil
	},
}

func describeConfig(path string, cfg config.Config) string {
	mode := "multi"
	if !cfg.IsMultiple() {
		mode = "single"
	}
	search := "search"
	if !cfg.IsSearchable() {
		search = "no search"
	}
	filter := cfg.Filter
	if filter == "" {
		filter = "highlight"
	}
	return fmt.Sprintf("✓ %s: %d options (%s, %s, filter %s)", path, len(cfg.Options), mode, search, filter)
}
