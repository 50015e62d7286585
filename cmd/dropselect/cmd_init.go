package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/dropselect/internal/config"
	"github.com/ruminaider/dropselect/internal/paths"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Create an options file interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.OptionsFile()
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg, err := promptConfig()
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %d options to %s\n", len(cfg.Options), path)
		fmt.Printf("Run 'dropselect pick %s' to try it.\n", path)
		return nil
	},
}

// promptConfig asks for the widget settings, then for options one at a time.
func promptConfig() (config.Config, error) {
	var (
		multiple   = true
		searchable = true
		filter     = "highlight"
	)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow picking more than one option?").
				Value(&multiple),
			huh.NewConfirm().
				Title("Show a search field?").
				Value(&searchable),
			huh.NewSelect[string]().
				Title("What should searching do?").
				Options(
					huh.NewOption("Highlight matches, keep everything listed", "highlight"),
					huh.NewOption("Hide options that do not contain the text", "exclude"),
					huh.NewOption("Fuzzy match, hide the rest", "fuzzy"),
				).
				Value(&filter),
		),
	).Run()
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		Multiple:   config.Bool(multiple),
		Searchable: config.Bool(searchable),
		Filter:     filter,
	}

	seen := make(map[string]bool)
	for {
		entry, more, err := promptOption(seen)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Options = append(cfg.Options, entry)
		seen[entry.Value] = true
		if !more {
			break
		}
	}
	return cfg, cfg.Validate()
}

func promptOption(seen map[string]bool) (config.OptionEntry, bool, error) {
	var (
		label string
		value string
		more  = true
	)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(&label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("label is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Value").
				Description("Leave empty to reuse the label").
				Value(&value).
				Validate(func(s string) error {
					v := strings.TrimSpace(s)
					if v == "" {
						v = strings.TrimSpace(label)
					}
					if seen[v] {
						return fmt.Errorf("value %q is already used", v)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Add another option?").
				Value(&more),
		),
	).Run()
	if err != nil {
		return config.OptionEntry{}, false, err
	}

	entry := config.OptionEntry{
		Label: strings.TrimSpace(label),
		Value: strings.TrimSpace(value),
	}
	if entry.Value == "" {
		entry.Value = entry.Label
	}
	return entry, more, nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
}
