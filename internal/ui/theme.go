package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Makepad-fr/docpanels/internal/panels"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.Color

	SymEnabled, SymDisabled, SymTech, SymSecurity string
	BarFull, BarEmpty                             string

	// Plain drops every colour, for pipes and tests.
	Plain bool
}

var themes = map[string]Theme{
	"classic": {
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		SymEnabled:  "✔", SymDisabled: "✖", SymTech: "•", SymSecurity: "🔒",
		BarFull: "█", BarEmpty: "░",
	},
	"neon": {
		Name:        "neon",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("13"),
		SymEnabled:  "✔", SymDisabled: "✖", SymTech: "▸", SymSecurity: "◆",
		BarFull: "█", BarEmpty: "░",
	},
	"mono": {
		Name:       "mono",
		Title:      lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle(),
		Accent:     lipgloss.NewStyle(),
		Success:    lipgloss.NewStyle(),
		Error:      lipgloss.NewStyle(),
		Border:     asciiBorder,
		SymEnabled: "[x]", SymDisabled: "[ ]", SymTech: "-", SymSecurity: "*",
		BarFull: "#", BarEmpty: ".",
		Plain: true,
	},
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

var current = themes["classic"]

// Lookup returns the named theme.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names lists the available themes, sorted.
func Names() []string {
	out := make([]string, 0, len(themes))
	for n := range themes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// SetTheme switches the process-wide theme. Unknown names keep the current one
// and report false.
func SetTheme(name string) bool {
	t, ok := Lookup(name)
	if !ok {
		return false
	}
	current = t
	if t.Plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return true
}

// Current is the theme renderers fall back to.
func Current() Theme { return current }

// Symbol maps a row marker to the theme glyph.
func (t Theme) Symbol(m panels.Marker) string {
	switch m {
	case panels.MarkerEnabled:
		return t.SymEnabled
	case panels.MarkerDisabled:
		return t.SymDisabled
	case panels.MarkerTech:
		return t.SymTech
	case panels.MarkerSecurity:
		return t.SymSecurity
	default:
		return ""
	}
}

func (t Theme) markerStyle(m panels.Marker) lipgloss.Style {
	switch m {
	case panels.MarkerEnabled:
		return t.Success
	case panels.MarkerDisabled:
		return t.Error
	case panels.MarkerTech, panels.MarkerSecurity:
		return t.Accent
	default:
		return t.Muted
	}
}

func (t Theme) box() lipgloss.Style {
	s := lipgloss.NewStyle().Border(t.Border).Padding(0, 1)
	if !t.Plain {
		s = s.BorderForeground(t.BorderColor)
	}
	return s
}
