package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		label string
		term  string
		want  Match
	}{
		{"first occurrence", "Banana", "an", Match{Prefix: "B", Matched: "an", Suffix: "ana", Found: true}},
		{"case insensitive", "BANANA", "an", Match{Prefix: "B", Matched: "AN", Suffix: "ANA", Found: true}},
		{"whole label", "Apple", "APPLE", Match{Matched: "Apple", Found: true}},
		{"at end", "Cherry", "rry", Match{Prefix: "Che", Matched: "rry", Found: true}},
		{"no match", "Apple", "an", Match{Prefix: "Apple"}},
		{"empty term", "Apple", "", Match{Prefix: "Apple"}},
		{"term longer than label", "Fig", "Figs", Match{Prefix: "Fig"}},
		{"multibyte", "Ärger", "ä", Match{Matched: "Ä", Suffix: "rger", Found: true}},
		{"invalid bytes differ", "a\xfeb", "\xff", Match{Prefix: "a\xfeb"}},
		{"invalid byte identical", "a\xfeb", "\xfe", Match{Prefix: "a", Matched: "\xfe", Suffix: "b", Found: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.label, tt.term))
		})
	}
}

func TestParseFilterMode(t *testing.T) {
	for _, mode := range []FilterMode{FilterHighlight, FilterExclude, FilterFuzzy} {
		got, err := ParseFilterMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseFilterMode("")
	require.NoError(t, err)
	assert.Equal(t, FilterHighlight, got)

	_, err = ParseFilterMode("regex")
	assert.Error(t, err)
}

func TestRunFilter_HighlightKeepsEverything(t *testing.T) {
	res := runFilter(FilterHighlight, fruit, "an")
	require.Len(t, res, 3)
	for _, r := range res {
		assert.True(t, r.visible)
	}
	assert.True(t, res[1].match.Found)
	assert.False(t, res[0].match.Found)
}

func TestRunFilter_Exclude(t *testing.T) {
	res := runFilter(FilterExclude, fruit, "an")
	assert.False(t, res[0].visible)
	assert.True(t, res[1].visible)
	assert.False(t, res[2].visible)

	res = runFilter(FilterExclude, fruit, "")
	for _, r := range res {
		assert.True(t, r.visible)
	}
}

func TestRunFilter_Fuzzy(t *testing.T) {
	res := runFilter(FilterFuzzy, fruit, "bnn")
	assert.False(t, res[0].visible)
	require.True(t, res[1].visible)
	assert.False(t, res[2].visible)
	assert.True(t, res[1].fuzzy[0], "B is matched")
	assert.Len(t, res[1].fuzzy, 3)
}
