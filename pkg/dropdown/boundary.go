package dropdown

import (
	"sort"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// PointerHandler receives every mouse event the host dispatches.
type PointerHandler func(msg tea.MouseMsg) tea.Cmd

// Bus is a host-wide mouse subscription point. Subscribe returns the release
// function for the subscription.
type Bus interface {
	Subscribe(h PointerHandler) (release func())
}

// PointerBus is the default Bus. The host forwards every tea.MouseMsg to
// Dispatch. It is meant to be used from the Bubble Tea update loop only.
type PointerBus struct {
	handlers map[int]PointerHandler
	next     int
}

// NewPointerBus returns an empty bus.
func NewPointerBus() *PointerBus {
	return &PointerBus{handlers: make(map[int]PointerHandler)}
}

// Subscribe implements Bus. Calling the release function more than once is
// harmless.
func (b *PointerBus) Subscribe(h PointerHandler) func() {
	b.next++
	id := b.next
	b.handlers[id] = h
	return func() {
		delete(b.handlers, id)
	}
}

// Len returns the number of live subscriptions.
func (b *PointerBus) Len() int {
	return len(b.handlers)
}

// Dispatch delivers msg to every subscriber in subscription order and
// batches whatever commands they return.
func (b *PointerBus) Dispatch(msg tea.MouseMsg) tea.Cmd {
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var cmds []tea.Cmd
	for _, id := range ids {
		// An earlier handler may have released this one.
		h, ok := b.handlers[id]
		if !ok {
			continue
		}
		if cmd := h(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// OutsideClickMsg is produced by a mounted widget's pointer subscription when
// a press lands outside both its trigger and its panel.
type OutsideClickMsg struct {
	ID int
}

// chipHit maps a horizontal cell range on the trigger row to a selected
// option's position in the selection.
type chipHit struct {
	from, to int // [from, to) in screen columns
	index    int
}

// boundary is the screen geometry of one widget. It is shared by pointer
// across model copies so the pointer subscription always sees the latest
// layout.
type boundary struct {
	trigger Rect
	panel   Rect
	chipRow int
	chips   []chipHit
	release func()
}

// inside reports whether p lands on the trigger or the panel.
func (b *boundary) inside(p Point) bool {
	return b.trigger.Contains(p) || b.panel.Contains(p)
}

// chipAt returns the selection index of the chip under p, or -1.
func (b *boundary) chipAt(p Point) int {
	if p.Y != b.chipRow {
		return -1
	}
	for _, c := range b.chips {
		if p.X >= c.from && p.X < c.to {
			return c.index
		}
	}
	return -1
}

// handler builds the pointer subscription for the widget with the given id.
func (b *boundary) handler(id int) PointerHandler {
	return func(msg tea.MouseMsg) tea.Cmd {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if b.inside(Point{X: msg.X, Y: msg.Y}) {
			return nil
		}
		return func() tea.Msg {
			return OutsideClickMsg{ID: id}
		}
	}
}
