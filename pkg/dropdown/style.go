package dropdown

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Stacking values used by the built-in layers. Any int is accepted as a
// ZIndex; these are the ones the defaults reach for.
const (
	ZIndexDefault = 50
	ZIndexRaised  = 100
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Variant is the set of flags that decide how one option row looks. The
// flags are independent; a row may be selected and highlighted at once.
type Variant uint8

const (
	VariantSelected Variant = 1 << iota
	VariantHighlighted
	VariantOpen
)

// Has reports whether every flag in f is set.
func (v Variant) Has(f Variant) bool {
	return v&f == f
}

// ResolveVariant maps row state to a Variant.
func ResolveVariant(selected, highlighted, open bool) Variant {
	var v Variant
	if selected {
		v |= VariantSelected
	}
	if highlighted {
		v |= VariantHighlighted
	}
	if open {
		v |= VariantOpen
	}
	return v
}

// Styles groups every lipgloss style the widget renders with.
type Styles struct {
	Trigger      lipgloss.Style
	TriggerOpen  lipgloss.Style
	Placeholder  lipgloss.Style
	Chip         lipgloss.Style
	ChipRemove   lipgloss.Style
	Panel        lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Highlighted  lipgloss.Style
	Match        lipgloss.Style
	ScrollHint   lipgloss.Style
	SearchPrompt lipgloss.Style
}

// DefaultStyles returns the Mocha-based styles.
func DefaultStyles() Styles {
	return Styles{
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().
			Foreground(colorOverlay0),
		Chip: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue),
		ChipRemove: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText),
		Selected: lipgloss.NewStyle().
			Foreground(colorGreen),
		Unselected: lipgloss.NewStyle().
			Foreground(colorText),
		Highlighted: lipgloss.NewStyle().
			Background(colorSurface0).
			Bold(true),
		Match: lipgloss.NewStyle().
			Foreground(colorYellow).
			Underline(true),
		ScrollHint: lipgloss.NewStyle().
			Foreground(colorOverlay0),
		SearchPrompt: lipgloss.NewStyle().
			Foreground(colorBlue),
	}
}

// Row returns the composed row style for a variant: the selected or
// unselected base with the highlight overlay inherited on top.
func (s Styles) Row(v Variant) lipgloss.Style {
	base := s.Unselected
	if v.Has(VariantSelected) {
		base = s.Selected
	}
	if v.Has(VariantHighlighted) {
		return s.Highlighted.Inherit(base)
	}
	return base
}
