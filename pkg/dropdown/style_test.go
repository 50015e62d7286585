package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		selected, highlighted, open bool
		want                        Variant
	}{
		{false, false, false, 0},
		{true, false, false, VariantSelected},
		{false, true, false, VariantHighlighted},
		{false, false, true, VariantOpen},
		{true, true, true, VariantSelected | VariantHighlighted | VariantOpen},
	}
	for _, tt := range tests {
		got := ResolveVariant(tt.selected, tt.highlighted, tt.open)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.selected, got.Has(VariantSelected))
		assert.Equal(t, tt.highlighted, got.Has(VariantHighlighted))
	}
}

func TestStylesRow_Composes(t *testing.T) {
	s := DefaultStyles()

	plain := s.Row(0)
	assert.Equal(t, s.Unselected.GetForeground(), plain.GetForeground())
	assert.False(t, plain.GetBold())

	sel := s.Row(VariantSelected)
	assert.Equal(t, s.Selected.GetForeground(), sel.GetForeground())

	both := s.Row(VariantSelected | VariantHighlighted)
	assert.Equal(t, s.Selected.GetForeground(), both.GetForeground(), "selected color survives the overlay")
	assert.Equal(t, s.Highlighted.GetBackground(), both.GetBackground())
	assert.True(t, both.GetBold())
}

func TestStateStep(t *testing.T) {
	all := func(int) bool { return true }

	s := newInteraction()
	assert.False(t, s.step(+1, 3, all), "closed")

	s.toggle()
	assert.False(t, s.step(+1, 0, all), "empty list")
	assert.Equal(t, NoHighlight, s.highlight)

	assert.True(t, s.step(+1, 1, all))
	assert.Equal(t, 0, s.highlight)
	assert.False(t, s.step(+1, 1, all), "single option wraps onto itself")

	none := func(int) bool { return false }
	s = newInteraction()
	s.toggle()
	assert.False(t, s.step(-1, 3, none))
	assert.Equal(t, NoHighlight, s.highlight)
}
