package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderState is everything a renderer may consult when drawing one option.
type RenderState struct {
	Variant Variant
	Match   Match
	// Fuzzy holds byte offsets of fuzzily matched characters, if any.
	Fuzzy map[int]bool
}

// Selected reports whether the option is in the selection.
func (r RenderState) Selected() bool { return r.Variant.Has(VariantSelected) }

// Highlighted reports whether the option has keyboard focus.
func (r RenderState) Highlighted() bool { return r.Variant.Has(VariantHighlighted) }

// OptionRenderer draws a single option row.
type OptionRenderer[V comparable] interface {
	RenderOption(opt Option[V], st RenderState) string
}

// RenderFunc adapts a func(option, isSelected) to OptionRenderer. The row is
// passed through as returned; the widget adds only the cursor gutter.
type RenderFunc[V comparable] func(opt Option[V], selected bool) string

// RenderOption implements OptionRenderer.
func (f RenderFunc[V]) RenderOption(opt Option[V], st RenderState) string {
	return f(opt, st.Selected())
}

// DefaultRenderer draws a checkbox, the label with its match emphasized, and
// applies the row style for the resolved variant.
type DefaultRenderer[V comparable] struct {
	Styles Styles
}

// RenderOption implements OptionRenderer.
func (d DefaultRenderer[V]) RenderOption(opt Option[V], st RenderState) string {
	row := d.Styles.Row(st.Variant)
	match := d.Styles.Match.Inherit(row)

	var b strings.Builder
	if st.Selected() {
		b.WriteString(row.Render("[x] "))
	} else {
		b.WriteString(row.Render("[ ] "))
	}

	switch {
	case st.Fuzzy != nil:
		b.WriteString(renderFuzzy(opt.Label, st.Fuzzy, row, match))
	case st.Match.Found:
		b.WriteString(row.Render(st.Match.Prefix))
		b.WriteString(match.Render(st.Match.Matched))
		b.WriteString(row.Render(st.Match.Suffix))
	default:
		b.WriteString(row.Render(opt.Label))
	}
	return b.String()
}

// renderFuzzy emphasizes the characters at the given byte offsets, grouping
// consecutive runs so each run is styled once.
func renderFuzzy(label string, matched map[int]bool, row, match lipgloss.Style) string {
	var b, run strings.Builder
	inMatch := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if inMatch {
			b.WriteString(match.Render(run.String()))
		} else {
			b.WriteString(row.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range label {
		if matched[i] != inMatch {
			flush()
			inMatch = matched[i]
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}
