package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/dropselect/cmd/dropselect/tui"
	"github.com/ruminaider/dropselect/internal/config"
	"github.com/ruminaider/dropselect/internal/paths"
	"github.com/ruminaider/dropselect/pkg/dropdown"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var errAborted = errors.New("aborted")

var (
	pickSingle   bool
	pickPortal   bool
	pickNoSearch bool
	pickZIndex   int
	pickFilter   string
	pickLog      string
	pickYAML     bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Open the dropdown over an options file",
	Long:  "pick opens a full-screen dropdown over the options in file (default: $DROPSELECT_OPTIONS, ./options.yaml, then ~/.config/dropselect/options.yaml) and prints the selection on exit. Flags override the file's settings.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	path := paths.OptionsFile()
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = applyPickFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Bubble Tea needs the terminal; refuse instead of rendering into a pipe.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("pick needs an interactive terminal")
	}

	if pickLog != "" {
		f, err := tea.LogToFile(pickLog, "dropselect")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app := tui.NewApp(filepath.Base(path), cfg.Dropdown(logChange))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result := finalModel.(tui.App)
	if result.Aborted {
		return errAborted
	}
	return writeSelection(os.Stdout, result.Selected(), pickYAML)
}

// applyPickFlags overrides file settings with flags the user actually set.
func applyPickFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("single") {
		cfg.Multiple = config.Bool(!pickSingle)
	}
	if flags.Changed("portal") {
		cfg.Portal = pickPortal
	}
	if flags.Changed("no-search") {
		cfg.Searchable = config.Bool(!pickNoSearch)
	}
	if flags.Changed("z-index") {
		cfg.ZIndex = config.Int(pickZIndex)
	}
	if flags.Changed("filter") {
		cfg.Filter = pickFilter
	}
	return cfg
}

func logChange(c dropdown.Change[string]) {
	labels := make([]string, len(c.Selected))
	for i, o := range c.Selected {
		labels[i] = o.Label
	}
	log.Printf("selection changed (multiple=%v): %q", c.Multiple, labels)
}

// writeSelection prints one label per line, or the options as YAML.
func writeSelection(w io.Writer, selected []dropdown.Option[string], asYAML bool) error {
	if asYAML {
		entries := make([]config.OptionEntry, len(selected))
		for i, o := range selected {
			entries[i] = config.OptionEntry{Value: o.Value, Label: o.Label}
		}
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	for _, o := range selected {
		if _, err := fmt.Fprintln(w, o.Label); err != nil {
			return err
		}
	}
	return nil
}

func addPickFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&pickSingle, "single", false, "Single selection: picking replaces the selection and closes the list")
	cmd.Flags().BoolVar(&pickPortal, "portal", false, "Draw the list as a detached layer over the screen")
	cmd.Flags().BoolVar(&pickNoSearch, "no-search", false, "Hide the search field")
	cmd.Flags().IntVar(&pickZIndex, "z-index", dropdown.ZIndexDefault, "Stacking order of the list layer")
	cmd.Flags().StringVar(&pickFilter, "filter", "highlight", "Search behavior: highlight, exclude or fuzzy")
	cmd.Flags().StringVar(&pickLog, "log", "", "Append change events to this file")
	cmd.Flags().BoolVar(&pickYAML, "yaml", false, "Print the selection as YAML")
}

func init() {
	addPickFlags(pickCmd)
	addPickFlags(rootCmd)
}
