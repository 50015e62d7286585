package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette, shared with the widget's defaults.
var flavor = catppuccin.Mocha

var (
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// TitleStyle is used for the title bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// SectionStyle is used for section headers below the widget.
	SectionStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// DimStyle is used for secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)
