package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/docpanels/internal/ui"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func theme(t *testing.T) ui.Theme {
	th, ok := ui.Lookup("mono")
	require.True(t, ok)
	return th
}

func TestNewStartsAtAnchor(t *testing.T) {
	assert.Equal(t, "overview", New(theme(t), "").Active())
	assert.Equal(t, "security", New(theme(t), "security").Active())
	assert.Equal(t, "overview", New(theme(t), "pricing").Active())
}

func TestTabNavigationWraps(t *testing.T) {
	m := New(theme(t), "")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "features", m.Active())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "tech-stack", m.Active())
	m, _ = press(t, m, runes("l"))
	assert.Equal(t, "security", m.Active())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "overview", m.Active())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "security", m.Active())
}

func TestJumpKeys(t *testing.T) {
	m := New(theme(t), "")
	m, _ = press(t, m, runes("3"))
	assert.Equal(t, "tech-stack", m.Active())
	m, _ = press(t, m, runes("1"))
	assert.Equal(t, "overview", m.Active())
}

func TestQuit(t *testing.T) {
	_, cmd := press(t, New(theme(t), ""), runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsActiveSection(t *testing.T) {
	m := New(theme(t), "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)

	m, _ = press(t, m, runes("4"))
	view := m.View()
	assert.Contains(t, view, "4 Security")
	assert.Contains(t, view, "#security")
	assert.Contains(t, view, "quit")
}
