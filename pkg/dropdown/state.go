package dropdown

// NoHighlight is the highlight index meaning no option has keyboard focus.
const NoHighlight = -1

// interaction holds the open flag and the keyboard highlight. The highlight
// always indexes the full options slice, never a filtered view.
type interaction struct {
	open      bool
	highlight int
}

func newInteraction() interaction {
	return interaction{highlight: NoHighlight}
}

func (s *interaction) toggle() {
	s.open = !s.open
}

func (s *interaction) close() {
	s.open = false
}

// step moves the highlight by dir (+1 or -1) across the indices for which
// visible returns true, wrapping at both ends. From NoHighlight, +1 lands on
// the first visible index and -1 on the last. It is a no-op while closed or
// when nothing is visible, and reports whether the highlight changed.
func (s *interaction) step(dir, n int, visible func(int) bool) bool {
	if !s.open || n == 0 {
		return false
	}
	start := s.highlight
	if start == NoHighlight {
		if dir > 0 {
			start = -1
		} else {
			start = n
		}
	}
	next := start
	for range n {
		next = ((next+dir)%n + n) % n
		if visible(next) {
			changed := next != s.highlight
			s.highlight = next
			return changed
		}
	}
	return false
}
