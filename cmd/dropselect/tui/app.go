package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/dropselect/pkg/dropdown"
)

// Layout constants: the widget sits below the title bar, indented.
const (
	widgetLeft   = 2
	widgetTop    = 2
	maxWidth     = 60
	eventHistory = 5
)

type appKeys struct {
	Done  key.Binding
	Abort key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Done: key.NewBinding(
			key.WithKeys("ctrl+s", "q"),
			key.WithHelp("q", "done"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// App hosts a single dropdown full-screen. It owns the pointer bus the
// widget subscribes to and composites the panel when it is portaled.
type App struct {
	dd     dropdown.Model[string]
	bus    *dropdown.PointerBus
	keys   appKeys
	help   help.Model
	title  string
	events []string

	width, height int

	// Done is true when the user confirmed the selection.
	Done bool
	// Aborted is true when the user quit without confirming.
	Aborted bool
}

// NewApp creates the host around a widget config.
func NewApp(title string, cfg dropdown.Config[string]) App {
	dd := dropdown.New(cfg)
	dd.SetOrigin(widgetLeft, widgetTop)
	dd.Focus()
	return App{
		dd:    dd,
		bus:   dropdown.NewPointerBus(),
		keys:  defaultAppKeys(),
		help:  help.New(),
		title: title,
	}
}

// Selected returns the widget's selection.
func (a App) Selected() []dropdown.Option[string] {
	return a.dd.Selected()
}

// Init mounts the widget's outside-click subscription. The subscription is
// held by the widget's shared geometry, so mounting through this copy is
// seen by every later copy.
func (a App) Init() tea.Cmd {
	dd := a.dd
	return dd.Mount(a.bus)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.dd.SetWidth(min(msg.Width-2*widgetLeft, maxWidth))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Abort):
			a.Aborted = true
			return a.quit()
		case key.Matches(msg, a.keys.Done) && !a.dd.IsOpen():
			a.Done = true
			return a.quit()
		}

	case tea.MouseMsg:
		cmds = append(cmds, a.bus.Dispatch(msg))

	case dropdown.SelectionChangedMsg[string]:
		a.events = append(a.events, describeChange(msg.Change))
		if len(a.events) > eventHistory {
			a.events = a.events[len(a.events)-eventHistory:]
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.dd, cmd = a.dd.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.dd.Unmount()
	return a, tea.Quit
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(a.title))
	b.WriteString("  ")
	b.WriteString(DimStyle.Render(fmt.Sprintf("%d options", len(a.dd.Options()))))
	b.WriteString("\n\n")

	indent := lipgloss.NewStyle().PaddingLeft(widgetLeft)
	b.WriteString(indent.Render(a.dd.View()))
	b.WriteString("\n\n")

	b.WriteString(indent.Render(SectionStyle.Render("Changes")))
	b.WriteString("\n")
	if len(a.events) == 0 {
		b.WriteString(indent.Render(DimStyle.Render("(none yet)")))
		b.WriteString("\n")
	}
	for _, e := range a.events {
		b.WriteString(indent.Render(e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bindings := append(a.dd.KeyMap().ShortHelp(), a.keys.Done, a.keys.Abort)
	b.WriteString(indent.Render(a.help.ShortHelpView(bindings)))

	frame := b.String()
	if layer, ok := a.dd.Portal(); ok {
		return dropdown.Composite(frame, a.height, layer)
	}
	return frame
}

// describeChange renders one change event for the history pane. Single mode
// reports the chosen option, multi mode the whole selection.
func describeChange(c dropdown.Change[string]) string {
	if !c.Multiple {
		if opt, ok := c.Option(); ok {
			return "selected " + opt.Label
		}
		return "cleared"
	}
	if len(c.Selected) == 0 {
		return "cleared"
	}
	labels := make([]string, len(c.Selected))
	for i, o := range c.Selected {
		labels[i] = o.Label
	}
	return fmt.Sprintf("selection (%d): %s", len(labels), strings.Join(labels, ", "))
}
