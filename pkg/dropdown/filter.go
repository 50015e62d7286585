package dropdown

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// FilterMode decides what the search term does to the option list.
type FilterMode int

const (
	// FilterHighlight emphasizes the first match in each label and keeps
	// every option visible.
	FilterHighlight FilterMode = iota
	// FilterExclude hides options whose label does not contain the term.
	FilterExclude
	// FilterFuzzy hides options that do not fuzzy-match the term and
	// emphasizes the matched characters.
	FilterFuzzy
)

// String returns the config spelling of the mode.
func (m FilterMode) String() string {
	switch m {
	case FilterHighlight:
		return "highlight"
	case FilterExclude:
		return "exclude"
	case FilterFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// ParseFilterMode maps a config spelling back to a FilterMode. The empty
// string means FilterHighlight.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "highlight":
		return FilterHighlight, nil
	case "exclude":
		return FilterExclude, nil
	case "fuzzy":
		return FilterFuzzy, nil
	}
	return FilterHighlight, fmt.Errorf("unknown filter mode %q", s)
}

// Match is a label split around the first case-insensitive occurrence of the
// search term. When Found is false the whole label is in Prefix.
type Match struct {
	Prefix  string
	Matched string
	Suffix  string
	Found   bool
}

// Highlight locates the first case-insensitive occurrence of term in label.
// Byte offsets come from label itself, so folding that changes encoded width
// (e.g. "İ") never splits a rune.
func Highlight(label, term string) Match {
	if term == "" {
		return Match{Prefix: label}
	}
	n := utf8.RuneCountInString(term)
	for i := range label {
		end := i
		count := 0
		for end < len(label) && count < n {
			_, size := utf8.DecodeRuneInString(label[end:])
			end += size
			count++
		}
		if count < n {
			break
		}
		if foldEqual(label[i:end], term) {
			return Match{
				Prefix:  label[:i],
				Matched: label[i:end],
				Suffix:  label[end:],
				Found:   true,
			}
		}
	}
	return Match{Prefix: label}
}

// foldEqual is strings.EqualFold except that invalid UTF-8 bytes only match
// the identical byte instead of all decoding to utf8.RuneError.
func foldEqual(a, b string) bool {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		badA := ra == utf8.RuneError && na == 1
		badB := rb == utf8.RuneError && nb == 1
		switch {
		case badA || badB:
			if !badA || !badB || a[0] != b[0] {
				return false
			}
		case !strings.EqualFold(a[:na], b[:nb]):
			return false
		}
		a, b = a[na:], b[nb:]
	}
	return a == "" && b == ""
}

// filterResult is the per-option outcome of one filter pass.
type filterResult struct {
	visible bool
	match   Match
	// fuzzy holds byte offsets of matched characters in FilterFuzzy mode.
	fuzzy map[int]bool
}

// runFilter computes visibility and emphasis for every option. The result is
// indexed like options.
func runFilter[V comparable](mode FilterMode, options []Option[V], term string) []filterResult {
	out := make([]filterResult, len(options))
	if mode == FilterFuzzy && term != "" {
		labels := make([]string, len(options))
		for i, o := range options {
			labels[i] = o.Label
		}
		for _, m := range fuzzy.Find(term, labels) {
			set := make(map[int]bool, len(m.MatchedIndexes))
			for _, idx := range m.MatchedIndexes {
				set[idx] = true
			}
			out[m.Index] = filterResult{visible: true, fuzzy: set, match: Match{Prefix: m.Str}}
		}
		return out
	}
	for i, o := range options {
		m := Highlight(o.Label, term)
		visible := true
		if mode == FilterExclude && term != "" {
			visible = m.Found
		}
		out[i] = filterResult{visible: visible, match: m}
	}
	return out
}
