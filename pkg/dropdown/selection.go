package dropdown

// Option is a single selectable item. Value is the equality key used by the
// selection; Label is what the user sees and what search matches against.
type Option[V comparable] struct {
	Value V
	Label string
}

// NewOption returns an Option with the given label and value.
func NewOption[V comparable](label string, value V) Option[V] {
	return Option[V]{Value: value, Label: label}
}

// Selection is the ordered set of chosen options. Order is insertion order and
// no two entries share a Value. In single mode it holds at most one option.
type Selection[V comparable] struct {
	items    []Option[V]
	multiple bool
}

// NewSelection creates an empty selection in multi or single mode.
func NewSelection[V comparable](multiple bool) Selection[V] {
	return Selection[V]{multiple: multiple}
}

// Multiple reports whether the selection accepts more than one option.
func (s Selection[V]) Multiple() bool {
	return s.multiple
}

// Toggle adds opt when absent and removes it when present (multi mode), or
// replaces the selection with opt (single mode). The returned bool is true
// when the panel should close, which only happens in single mode.
func (s *Selection[V]) Toggle(opt Option[V]) bool {
	if !s.multiple {
		s.items = []Option[V]{opt}
		return true
	}
	if i := s.Index(opt.Value); i >= 0 {
		s.removeAt(i)
		return false
	}
	s.items = append(s.items, opt)
	return false
}

// Remove drops opt regardless of mode. It reports whether anything changed.
func (s *Selection[V]) Remove(opt Option[V]) bool {
	i := s.Index(opt.Value)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

// Clear empties the selection. It reports whether anything changed.
func (s *Selection[V]) Clear() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = nil
	return true
}

// Contains reports whether an option with value v is selected.
func (s Selection[V]) Contains(v V) bool {
	return s.Index(v) >= 0
}

// Index returns the position of value v in selection order, or -1.
func (s Selection[V]) Index(v V) int {
	for i, it := range s.items {
		if it.Value == v {
			return i
		}
	}
	return -1
}

// Len returns the number of selected options.
func (s Selection[V]) Len() int {
	return len(s.items)
}

// Items returns a copy of the selected options in selection order.
func (s Selection[V]) Items() []Option[V] {
	out := make([]Option[V], len(s.items))
	copy(out, s.items)
	return out
}

// Last returns the most recently selected option.
func (s Selection[V]) Last() (Option[V], bool) {
	if len(s.items) == 0 {
		var zero Option[V]
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Selection[V]) removeAt(i int) {
	items := make([]Option[V], 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	s.items = items
}

// Change is passed to OnChange after every selection mutation. In multi mode
// callers read Options; in single mode they read Option.
type Change[V comparable] struct {
	Multiple bool
	Selected []Option[V]
}

// Options returns the full selection in insertion order.
func (c Change[V]) Options() []Option[V] {
	return c.Selected
}

// Option returns the single selected option. ok is false when the selection
// is empty, which happens in single mode after the chip is removed.
func (c Change[V]) Option() (opt Option[V], ok bool) {
	if len(c.Selected) == 0 {
		return opt, false
	}
	return c.Selected[0], true
}
