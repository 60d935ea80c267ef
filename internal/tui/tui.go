// Package tui is the interactive pager: one tab per documentation section.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/docpanels/internal/panels"
	"github.com/Makepad-fr/docpanels/internal/ui"
)

type keyMap struct {
	Prev, Next, Jump, Up, Down, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
	Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
	Jump: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Model is the bubbletea model. Fragments are rendered once at start; the
// panels never change while the pager is open.
type Model struct {
	sections []panels.Section
	pages    []panels.Fragment
	active   int

	theme    ui.Theme
	viewport viewport.Model
	help     help.Model
	ready    bool
}

// New builds the pager over every section, starting at anchor (or the first
// section when anchor is empty or unknown).
func New(theme ui.Theme, anchor string) Model {
	m := Model{
		sections: panels.Sections(),
		theme:    theme,
		help:     help.New(),
		viewport: viewport.New(80, 20),
	}
	for i, s := range m.sections {
		m.pages = append(m.pages, s.Render())
		if s.Anchor == anchor {
			m.active = i
		}
	}
	m.viewport.SetContent(m.content())
	return m
}

// Active returns the anchor of the visible section.
func (m Model) Active() string { return m.sections[m.active].Anchor }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.help.Width = msg.Width
		m.ready = true
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m.show((m.active + 1) % len(m.sections)), nil
		case key.Matches(msg, keys.Prev):
			return m.show((m.active - 1 + len(m.sections)) % len(m.sections)), nil
		case key.Matches(msg, keys.Jump):
			n := int(msg.String()[0] - '1')
			if n < len(m.sections) {
				return m.show(n), nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	tabs := make([]string, 0, len(m.sections))
	for i, s := range m.sections {
		label := fmt.Sprintf("%d %s", i+1, s.Title)
		if i == m.active {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.viewport.View(),
		m.help.View(keys),
	}, "\n")
}

func (m Model) show(i int) Model {
	m.active = i
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
	return m
}

func (m Model) content() string {
	return ui.Section(m.pages[m.active], m.theme)
}

// Run starts the pager on the alternate screen and blocks until it quits.
func Run(theme ui.Theme, anchor string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(theme, anchor), opts...).Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}
