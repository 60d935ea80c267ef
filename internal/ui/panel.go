package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/docpanels/internal/panels"
)

// ProgressBar renders a bar with an enabled/total counter.
func ProgressBar(t Theme, done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Section draws one fragment as a framed box.
func Section(f panels.Fragment, t Theme) string {
	var lines []string
	lines = append(lines, t.Title.Render(f.Heading)+"  "+t.Muted.Render("#"+f.Anchor))

	if f.Lead != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(72).Render(f.Lead))
	}

	enabled := f.Count(panels.MarkerEnabled)
	if toggles := enabled + f.Count(panels.MarkerDisabled); toggles > 0 {
		lines = append(lines, t.Muted.Render(ProgressBar(t, enabled, toggles, 24)+" enabled"))
	}

	if f.Len() > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, rowLines(f, t)...)

	if len(f.Cards) > 0 {
		cards := make([]string, 0, len(f.Cards))
		for _, c := range f.Cards {
			cards = append(cards, card(c, t))
		}
		lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	return t.box().Render(strings.Join(lines, "\n"))
}

// Page stacks fragments vertically in the given order.
func Page(fs []panels.Fragment, t Theme) string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, Section(f, t))
	}
	return strings.Join(out, "\n")
}

func rowLines(f panels.Fragment, t Theme) []string {
	out := make([]string, 0, len(f.Rows))
	for i, r := range f.Rows {
		prefix := ""
		if f.Ordered {
			prefix = t.Muted.Render(fmt.Sprintf("%d.", i+1))
		} else if sym := t.Symbol(r.Marker); sym != "" {
			prefix = t.markerStyle(r.Marker).Render(sym)
		}
		title := ""
		if r.Title != "" {
			title = t.Title.Render(r.Title)
		}
		out = append(out, joinNonEmpty(prefix, title, rowText(f, r, t)))
	}
	return out
}

func rowText(f panels.Fragment, r panels.Row, t Theme) string {
	switch {
	case r.Text == "":
		return ""
	case f.Ordered:
		return t.Accent.Render(r.Text)
	case r.Title == "":
		return r.Text
	default:
		return t.Muted.Render("— " + r.Text)
	}
}

func card(c panels.Card, t Theme) string {
	lines := []string{t.Accent.Render(c.Heading)}
	for _, it := range c.Items {
		lines = append(lines, joinNonEmpty(t.markerStyle(it.Marker).Render(t.Symbol(it.Marker)), it.Title))
	}
	return t.box().Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
