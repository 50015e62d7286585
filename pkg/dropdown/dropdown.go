// Package dropdown is a Bubble Tea dropdown select widget with single and
// multi selection, a search field, keyboard navigation and outside-click
// dismissal.
package dropdown

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultMaxHeight   = 8
	defaultPlaceholder = "Select..."
	chipRemoveMark     = "×"
)

// Config configures a Model. The zero value of every field except Options is
// usable: multi selection, search shown, inline panel, z-index 50.
type Config[V comparable] struct {
	Options []Option[V]

	// Single switches to single selection: choosing replaces the selection
	// and closes the panel.
	Single bool

	// OnChange runs synchronously after every selection change.
	OnChange func(Change[V])

	// Portal detaches the panel from the widget's view; the host draws it
	// with Portal(). Ignored when Target is set.
	Portal bool
	Target TargetResolver

	// RenderOption overrides how each option row is drawn.
	RenderOption OptionRenderer[V]

	// DisableSearch hides the search field.
	DisableSearch bool

	// ZIndex is the panel's stacking order. Nil means ZIndexDefault; any
	// other value, zero included, is used as given.
	ZIndex *int

	Filter      FilterMode
	MaxHeight   int
	Placeholder string
	Styles      *Styles
	KeyMap      *KeyMap
}

// SelectionChangedMsg is returned as a command after every selection change,
// alongside the synchronous OnChange callback.
type SelectionChangedMsg[V comparable] struct {
	ID     int
	Change Change[V]
}

// Model is the dropdown widget.
type Model[V comparable] struct {
	id        int
	options   []Option[V]
	selection Selection[V]
	state     interaction
	input     textinput.Model
	results   []filterResult

	onChange    func(Change[V])
	renderer    OptionRenderer[V]
	target      TargetResolver
	searchable  bool
	zIndex      int
	filter      FilterMode
	maxHeight   int
	placeholder string
	styles      Styles
	keys        KeyMap

	offset    int   // first visible row of the option list
	width     int   // rendered trigger width, 0 for natural
	origin    Point // trigger top-left on screen
	openWidth int   // trigger width captured when the panel opened
	focused   bool

	bounds *boundary
}

// New creates a closed dropdown with nothing selected, an empty search term
// and no highlight.
func New[V comparable](cfg Config[V]) Model[V] {
	opts := make([]Option[V], len(cfg.Options))
	copy(opts, cfg.Options)

	m := Model[V]{
		id:          nextID(),
		options:     opts,
		selection:   NewSelection[V](!cfg.Single),
		state:       newInteraction(),
		onChange:    cfg.OnChange,
		renderer:    cfg.RenderOption,
		target:      cfg.Target,
		searchable:  !cfg.DisableSearch,
		zIndex:      ZIndexDefault,
		filter:      cfg.Filter,
		maxHeight:   cfg.MaxHeight,
		placeholder: cfg.Placeholder,
		styles:      DefaultStyles(),
		keys:        DefaultKeyMap(),
		bounds:      &boundary{},
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if m.renderer == nil {
		m.renderer = DefaultRenderer[V]{Styles: m.styles}
	}
	if m.target == nil {
		if cfg.Portal {
			m.target = PortalTarget{}
		} else {
			m.target = InlineTarget{}
		}
	}
	if cfg.ZIndex != nil {
		m.zIndex = *cfg.ZIndex
	}
	if m.maxHeight <= 0 {
		m.maxHeight = defaultMaxHeight
	}
	if m.placeholder == "" {
		m.placeholder = defaultPlaceholder
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.PromptStyle = m.styles.SearchPrompt
	ti.CharLimit = 64
	m.input = ti

	m.refilter()
	m.syncBounds()
	return m
}

// ID identifies this widget in OutsideClickMsg and SelectionChangedMsg.
func (m Model[V]) ID() int { return m.id }

// IsOpen reports whether the panel is shown.
func (m Model[V]) IsOpen() bool { return m.state.open }

// Highlighted returns the keyboard-highlighted index into the full options
// slice, or NoHighlight.
func (m Model[V]) Highlighted() int { return m.state.highlight }

// Selected returns the selection in insertion order.
func (m Model[V]) Selected() []Option[V] { return m.selection.Items() }

// Multiple reports whether the widget is in multi-select mode.
func (m Model[V]) Multiple() bool { return m.selection.Multiple() }

// Options returns a copy of the full options list.
func (m Model[V]) Options() []Option[V] {
	out := make([]Option[V], len(m.options))
	copy(out, m.options)
	return out
}

// SearchTerm returns the current filter text.
func (m Model[V]) SearchTerm() string { return m.input.Value() }

// ZIndex returns the panel's stacking order.
func (m Model[V]) ZIndex() int { return m.zIndex }

// Focused reports whether the widget receives key messages.
func (m Model[V]) Focused() bool { return m.focused }

// KeyMap returns the active key bindings, e.g. for a help view.
func (m Model[V]) KeyMap() KeyMap { return m.keys }

// Focus gives the widget keyboard focus.
func (m *Model[V]) Focus() tea.Cmd {
	m.focused = true
	if m.state.open && m.searchable {
		return m.input.Focus()
	}
	return nil
}

// Blur removes keyboard focus.
func (m *Model[V]) Blur() {
	m.focused = false
	m.input.Blur()
}

// SetOrigin tells the widget where its trigger's top-left cell is on screen.
// Hit-testing for clicks depends on it.
func (m *Model[V]) SetOrigin(x, y int) {
	m.origin = Point{X: x, Y: y}
	m.syncBounds()
}

// SetWidth fixes the trigger width in cells. Zero lets it size to content.
func (m *Model[V]) SetWidth(w int) {
	m.width = w
	if w > 0 {
		m.input.Width = max(w-len(m.input.Prompt)-3, 1)
	}
	m.syncBounds()
}

// SetSearchTerm replaces the filter text.
func (m *Model[V]) SetSearchTerm(term string) {
	m.input.SetValue(term)
	m.refilter()
	m.offset = 0
	m.scrollIntoView()
	m.syncBounds()
}

// TriggerBounds returns the trigger's screen rectangle.
func (m Model[V]) TriggerBounds() Rect { return m.bounds.trigger }

// PanelBounds returns the panel's screen rectangle; it is empty while closed.
func (m Model[V]) PanelBounds() Rect { return m.bounds.panel }

// Mount subscribes the widget's outside-click handler to bus. A mounted
// widget is never subscribed twice. The returned command turns on mouse
// reporting.
func (m *Model[V]) Mount(bus Bus) tea.Cmd {
	if m.bounds.release != nil {
		return nil
	}
	m.bounds.release = bus.Subscribe(m.bounds.handler(m.id))
	return tea.EnableMouseCellMotion
}

// Unmount releases the subscription taken by Mount. It is safe to call on a
// widget that is not mounted.
func (m *Model[V]) Unmount() {
	if m.bounds.release == nil {
		return
	}
	m.bounds.release()
	m.bounds.release = nil
}

// Mounted reports whether the outside-click subscription is held.
func (m Model[V]) Mounted() bool { return m.bounds.release != nil }

// Toggle applies the selection toggle for opt as if the user had picked it.
func (m *Model[V]) Toggle(opt Option[V]) tea.Cmd {
	if m.selection.Toggle(opt) {
		m.closePanel()
	}
	cmd := m.notify()
	m.syncBounds()
	return cmd
}

// Remove drops opt from the selection as if its chip had been clicked. The
// open state is left alone.
func (m *Model[V]) Remove(opt Option[V]) tea.Cmd {
	if !m.selection.Remove(opt) {
		return nil
	}
	cmd := m.notify()
	m.syncBounds()
	return cmd
}

// Init implements tea.Model.
func (m Model[V]) Init() tea.Cmd {
	return nil
}

// Update handles key, mouse and outside-click messages.
func (m Model[V]) Update(msg tea.Msg) (Model[V], tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case OutsideClickMsg:
		if msg.ID == m.id && m.state.open {
			m.closePanel()
		}
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.KeyMsg:
		if m.focused {
			cmd = m.handleKey(msg)
		}
	default:
		if m.state.open && m.searchable {
			m.input, cmd = m.input.Update(msg)
		}
	}
	m.syncBounds()
	return m, cmd
}

func (m *Model[V]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	p := Point{X: msg.X, Y: msg.Y}

	// Chips first: removing one must not also toggle the panel.
	if i := m.bounds.chipAt(p); i >= 0 {
		items := m.selection.Items()
		if i < len(items) {
			return m.Remove(items[i])
		}
		return nil
	}
	if m.bounds.trigger.Contains(p) {
		return m.togglePanel()
	}
	if m.state.open && m.bounds.panel.Contains(p) {
		_, rows := m.panelBody()
		line := p.Y - m.bounds.panel.Y - 1 // top border
		if line >= 0 && line < len(rows) && rows[line] >= 0 {
			return m.commit(rows[line])
		}
	}
	return nil
}

func (m *Model[V]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.togglePanel()
	case !m.state.open:
		return nil
	case key.Matches(msg, m.keys.Close):
		m.closePanel()
		return nil
	case key.Matches(msg, m.keys.Down):
		if m.state.step(+1, len(m.options), m.visible) {
			m.scrollIntoView()
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		if m.state.step(-1, len(m.options), m.visible) {
			m.scrollIntoView()
		}
		return nil
	case key.Matches(msg, m.keys.Select):
		if m.state.highlight == NoHighlight {
			return nil
		}
		return m.commit(m.state.highlight)
	case key.Matches(msg, m.keys.Clear):
		if m.selection.Clear() {
			return m.notify()
		}
		return nil
	case key.Matches(msg, m.keys.RemoveLast) && (!m.searchable || m.input.Value() == ""):
		if last, ok := m.selection.Last(); ok {
			return m.Remove(last)
		}
		return nil
	}

	if !m.searchable {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
		m.offset = 0
		m.scrollIntoView()
	}
	return cmd
}

// commit applies the same mutation as clicking option i.
func (m *Model[V]) commit(i int) tea.Cmd {
	if i < 0 || i >= len(m.options) {
		return nil
	}
	return m.Toggle(m.options[i])
}

func (m *Model[V]) togglePanel() tea.Cmd {
	if m.state.open {
		m.closePanel()
		return nil
	}
	m.state.toggle()
	m.openWidth = m.bounds.trigger.Width
	m.scrollIntoView()
	if m.searchable && m.focused {
		return m.input.Focus()
	}
	return nil
}

func (m *Model[V]) closePanel() {
	m.state.close()
	m.input.Blur()
}

func (m *Model[V]) notify() tea.Cmd {
	change := Change[V]{
		Multiple: m.selection.Multiple(),
		Selected: m.selection.Items(),
	}
	if m.onChange != nil {
		m.onChange(change)
	}
	id := m.id
	return func() tea.Msg {
		return SelectionChangedMsg[V]{ID: id, Change: change}
	}
}

// refilter recomputes visibility and drops a highlight that is now hidden.
func (m *Model[V]) refilter() {
	m.results = runFilter(m.filter, m.options, m.input.Value())
	if h := m.state.highlight; h != NoHighlight && !m.visible(h) {
		m.state.highlight = NoHighlight
	}
}

func (m Model[V]) visible(i int) bool {
	return i >= 0 && i < len(m.results) && m.results[i].visible
}

// VisibleOptions returns the options the panel lists for the current search
// term, in original order.
func (m Model[V]) VisibleOptions() []Option[V] {
	var out []Option[V]
	for i, o := range m.options {
		if m.visible(i) {
			out = append(out, o)
		}
	}
	return out
}

// visibleIndices lists the full-slice indices of visible options.
func (m Model[V]) visibleIndices() []int {
	out := make([]int, 0, len(m.options))
	for i := range m.options {
		if m.visible(i) {
			out = append(out, i)
		}
	}
	return out
}

// scrollIntoView moves the list offset the minimum amount needed for the
// highlighted row to be on screen.
func (m *Model[V]) scrollIntoView() {
	rows := m.visibleIndices()
	window := m.listWindow(len(rows))
	pos := -1
	for r, i := range rows {
		if i == m.state.highlight {
			pos = r
			break
		}
	}
	if pos >= 0 {
		if pos < m.offset {
			m.offset = pos
		}
		if pos >= m.offset+window {
			m.offset = pos - window + 1
		}
	}
	maxOffset := max(len(rows)-window, 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}

// listWindow is the number of option rows shown at once. Scroll hints take
// two lines whenever the list overflows.
func (m Model[V]) listWindow(total int) int {
	if total <= m.maxHeight {
		return m.maxHeight
	}
	return max(m.maxHeight-2, 1)
}

// --- Rendering ---

// View renders the trigger and, for inline placement, the panel beneath it.
func (m Model[V]) View() string {
	trigger, _ := m.renderTrigger()
	if !m.state.open {
		return trigger
	}
	place := m.placement()
	if place.Portal {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, m.renderPanel(place.Width))
}

// Portal returns the detached panel as a layer for the host to composite.
// ok is false when the panel is closed or placed inline.
func (m Model[V]) Portal() (layer Layer, ok bool) {
	if !m.state.open {
		return Layer{}, false
	}
	place := m.placement()
	if !place.Portal {
		return Layer{}, false
	}
	return Layer{
		Content: m.renderPanel(place.Width),
		At:      place.At,
		Z:       m.zIndex,
	}, true
}

func (m Model[V]) placement() Placement {
	return m.target.Resolve(TargetRequest{
		Origin:    m.origin,
		Trigger:   m.bounds.trigger,
		OpenWidth: m.openWidth,
	})
}

// renderTrigger draws the trigger box and returns the chip hit ranges in
// columns relative to the trigger's left edge.
func (m Model[V]) renderTrigger() (string, []chipHit) {
	style := m.styles.Trigger
	if m.state.open {
		style = m.styles.TriggerOpen
	}
	frame := style.GetHorizontalFrameSize()
	inner := 0
	if m.width > 0 {
		inner = max(m.width-frame, 1)
		style = style.Width(m.width - style.GetHorizontalBorderSize())
	}

	items := m.selection.Items()
	if len(items) == 0 {
		return style.Render(m.styles.Placeholder.Render(m.placeholder)), nil
	}

	left := style.GetBorderLeftSize() + style.GetPaddingLeft()
	var (
		b    strings.Builder
		hits []chipHit
		col  int
	)
	for i, opt := range items {
		text := " " + opt.Label + " " + chipRemoveMark + " "
		w := ansi.StringWidth(text)
		sep := 0
		if i > 0 {
			sep = 1
		}
		rest := len(items) - i
		more := ""
		if rest > 1 {
			more = " +" + strconv.Itoa(rest-1)
		}
		if inner > 0 && col+sep+w+ansi.StringWidth(more) > inner && i > 0 {
			tail := " +" + strconv.Itoa(rest)
			b.WriteString(m.styles.Placeholder.Render(tail))
			break
		}
		chip := m.styles.Chip.Render(" "+opt.Label+" ") +
			m.styles.ChipRemove.Render(chipRemoveMark) +
			m.styles.Chip.Render(" ")
		if inner > 0 && col+sep+w > inner {
			text = ansi.Truncate(text, max(inner-col-sep, 1), "…")
			w = ansi.StringWidth(text)
			chip = m.styles.Chip.Render(text)
		}
		if sep > 0 {
			b.WriteString(" ")
			col++
		}
		b.WriteString(chip)
		hits = append(hits, chipHit{from: left + col, to: left + col + w, index: i})
		col += w
	}
	return style.Render(b.String()), hits
}

// panelBody renders the panel's inner lines and, for each line, the index of
// the option on it or -1.
func (m Model[V]) panelBody() ([]string, []int) {
	var (
		lines []string
		rows  []int
	)
	if m.searchable {
		lines = append(lines, m.input.View())
		rows = append(rows, -1)
	}

	vis := m.visibleIndices()
	if len(vis) == 0 {
		lines = append(lines, m.styles.ScrollHint.Render("  (no matches)"))
		rows = append(rows, -1)
		return lines, rows
	}

	window := m.listWindow(len(vis))
	overflow := len(vis) > m.maxHeight
	start := min(m.offset, len(vis))
	end := min(start+window, len(vis))

	if overflow {
		hint := ""
		if start > 0 {
			hint = m.styles.ScrollHint.Render("  ↑ more")
		}
		lines = append(lines, hint)
		rows = append(rows, -1)
	}
	for _, i := range vis[start:end] {
		opt := m.options[i]
		highlighted := i == m.state.highlight
		st := RenderState{
			Variant: ResolveVariant(m.selection.Contains(opt.Value), highlighted, m.state.open),
			Match:   m.results[i].match,
			Fuzzy:   m.results[i].fuzzy,
		}
		cursor := "  "
		if highlighted {
			cursor = "> "
		}
		lines = append(lines, cursor+m.renderer.RenderOption(opt, st))
		rows = append(rows, i)
	}
	if overflow {
		hint := ""
		if end < len(vis) {
			hint = m.styles.ScrollHint.Render("  ↓ more")
		}
		lines = append(lines, hint)
		rows = append(rows, -1)
	}
	return lines, rows
}

func (m Model[V]) renderPanel(width int) string {
	lines, _ := m.panelBody()
	style := m.styles.Panel
	if width > 0 {
		inner := max(width-style.GetHorizontalFrameSize(), 1)
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, inner, "…")
		}
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(strings.Join(lines, "\n"))
}

// syncBounds recomputes the trigger, chip and panel rectangles from the
// current state so the pointer subscription and click handling agree with
// what View draws.
func (m *Model[V]) syncBounds() {
	trigger, chips := m.renderTrigger()
	b := m.bounds
	b.trigger = Rect{
		X:      m.origin.X,
		Y:      m.origin.Y,
		Width:  lipgloss.Width(trigger),
		Height: lipgloss.Height(trigger),
	}
	b.chipRow = m.origin.Y + m.styles.Trigger.GetBorderTopSize()
	b.chips = b.chips[:0]
	for _, c := range chips {
		b.chips = append(b.chips, chipHit{from: m.origin.X + c.from, to: m.origin.X + c.to, index: c.index})
	}

	b.panel = Rect{}
	if !m.state.open {
		return
	}
	place := m.placement()
	panel := m.renderPanel(place.Width)
	b.panel = Rect{
		X:      place.At.X,
		Y:      place.At.Y,
		Width:  lipgloss.Width(panel),
		Height: lipgloss.Height(panel),
	}
}
