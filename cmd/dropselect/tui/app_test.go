package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/dropselect/pkg/dropdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = []dropdown.Option[string]{
	{Value: "1", Label: "Apple"},
	{Value: "2", Label: "Banana"},
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app, cmd
}

// drain feeds every message produced by cmd back into the app. Only call it
// with commands that do not start the cursor blink timer.
func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		return a
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			a = drain(t, a, c)
		}
	case tea.QuitMsg:
	default:
		a, cmd = update(t, a, msg)
		a = drain(t, a, cmd)
	}
	return a
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newSizedApp(t *testing.T, cfg dropdown.Config[string]) App {
	t.Helper()
	a := NewApp("fruit", cfg)
	a.Init()
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func TestApp_KeyboardSelectAndDone(t *testing.T) {
	a := newSizedApp(t, dropdown.Config[string]{Options: fruit, Single: true})

	for _, k := range []tea.KeyType{tea.KeyCtrlO, tea.KeyDown, tea.KeyDown} {
		a, _ = update(t, a, tea.KeyMsg{Type: k})
	}
	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = drain(t, a, cmd)
	assert.Equal(t, []dropdown.Option[string]{fruit[1]}, a.Selected())
	assert.Contains(t, a.View(), "selected Banana")

	a, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, a.Done)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QTypesIntoSearchWhileOpen(t *testing.T) {
	a := newSizedApp(t, dropdown.Config[string]{Options: fruit})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlO})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, a.Done)
	assert.Equal(t, "q", a.dd.SearchTerm())
}

func TestApp_Abort(t *testing.T) {
	a := newSizedApp(t, dropdown.Config[string]{Options: fruit})
	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, a.Aborted)
	assert.False(t, a.Done)
	require.NotNil(t, cmd)
	assert.False(t, a.dd.Mounted())
}

func TestApp_OutsideClickCloses(t *testing.T) {
	a := newSizedApp(t, dropdown.Config[string]{Options: fruit})
	require.True(t, a.dd.Mounted())

	tb := a.dd.TriggerBounds()
	a, _ = update(t, a, press(tb.X+1, tb.Y+1))
	require.True(t, a.dd.IsOpen())

	a, cmd := update(t, a, press(79, 23))
	a = drain(t, a, cmd)
	assert.False(t, a.dd.IsOpen())
}

func TestApp_PortalIsComposited(t *testing.T) {
	a := newSizedApp(t, dropdown.Config[string]{Options: fruit, Portal: true})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, a.dd.IsOpen())

	view := a.View()
	assert.Contains(t, view, "Banana")
	assert.Contains(t, view, "fruit")
	assert.Len(t, strings.Split(view, "\n"), 24, "panel is drawn over a full-height frame")
}

func TestDescribeChange(t *testing.T) {
	tests := []struct {
		name   string
		change dropdown.Change[string]
		want   string
	}{
		{"single", dropdown.Change[string]{Selected: fruit[:1]}, "selected Apple"},
		{"single cleared", dropdown.Change[string]{}, "cleared"},
		{"multi", dropdown.Change[string]{Multiple: true, Selected: fruit}, "selection (2): Apple, Banana"},
		{"multi cleared", dropdown.Change[string]{Multiple: true}, "cleared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeChange(tt.change))
		})
	}
}
