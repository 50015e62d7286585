package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/dropselect/pkg/dropdown"
	"go.yaml.in/yaml/v3"
)

var (
	ErrNoOptions      = errors.New("no options")
	ErrDuplicateValue = errors.New("duplicate option value")
	ErrEmptyValue     = errors.New("empty option value")
	ErrUnknownFilter  = errors.New("unknown filter")
)

// OptionEntry is one option in an options file. A missing label falls back
// to the value.
type OptionEntry struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// Config represents an options file.
type Config struct {
	Multiple    *bool         `yaml:"multiple,omitempty"`
	Searchable  *bool         `yaml:"searchable,omitempty"`
	Portal      bool          `yaml:"portal,omitempty"`
	ZIndex      *int          `yaml:"z_index,omitempty"`
	Filter      string        `yaml:"filter,omitempty"`
	MaxHeight   int           `yaml:"max_height,omitempty"`
	Placeholder string        `yaml:"placeholder,omitempty"`
	Options     []OptionEntry `yaml:"options"`
}

// Parse parses options file bytes into a Config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing options file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the options file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading options file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding options file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing options file: %w", err)
	}
	return nil
}

// Validate checks the invariants the widget relies on: at least one option,
// unique non-empty values, a known filter mode, and a non-negative height.
func (c Config) Validate() error {
	if len(c.Options) == 0 {
		return ErrNoOptions
	}
	seen := make(map[string]int, len(c.Options))
	for i, o := range c.Options {
		v := strings.TrimSpace(o.Value)
		if v == "" {
			return fmt.Errorf("option %d: %w", i+1, ErrEmptyValue)
		}
		if first, ok := seen[v]; ok {
			return fmt.Errorf("option %d %q (first seen at %d): %w", i+1, v, first+1, ErrDuplicateValue)
		}
		seen[v] = i
	}
	if _, err := dropdown.ParseFilterMode(c.Filter); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownFilter, err)
	}
	if c.MaxHeight < 0 {
		return fmt.Errorf("max_height must not be negative, got %d", c.MaxHeight)
	}
	return nil
}

// IsMultiple returns the multiple flag, true when unset.
func (c Config) IsMultiple() bool {
	return c.Multiple == nil || *c.Multiple
}

// IsSearchable returns the searchable flag, true when unset.
func (c Config) IsSearchable() bool {
	return c.Searchable == nil || *c.Searchable
}

// DropdownOptions converts the entries to widget options in file order.
func (c Config) DropdownOptions() []dropdown.Option[string] {
	out := make([]dropdown.Option[string], 0, len(c.Options))
	for _, o := range c.Options {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		out = append(out, dropdown.NewOption(label, o.Value))
	}
	return out
}

// Dropdown builds a widget config. The filter mode has already been
// validated by Parse, so an unknown spelling falls back to highlight.
func (c Config) Dropdown(onChange func(dropdown.Change[string])) dropdown.Config[string] {
	mode, _ := dropdown.ParseFilterMode(c.Filter)
	return dropdown.Config[string]{
		Options:       c.DropdownOptions(),
		Single:        !c.IsMultiple(),
		OnChange:      onChange,
		Portal:        c.Portal,
		DisableSearch: !c.IsSearchable(),
		ZIndex:        c.ZIndex,
		Filter:        mode,
		MaxHeight:     c.MaxHeight,
		Placeholder:   c.Placeholder,
	}
}

// Bool returns a pointer to b, for the optional flags.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for the optional z-index.
func Int(n int) *int {
	return &n
}
