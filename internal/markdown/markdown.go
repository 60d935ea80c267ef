// Package markdown turns panel fragments into GitHub-flavoured markdown and
// optionally styles it for the terminal with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/docpanels/internal/panels"
)

var markers = map[panels.Marker]string{
	panels.MarkerEnabled:  "✅",
	panels.MarkerDisabled: "⬜",
	panels.MarkerTech:     "▸",
	panels.MarkerSecurity: "🔒",
}

// Section writes one fragment. The anchor is emitted as an HTML anchor so
// in-page links keep working on renderers that slug headings differently.
func Section(f panels.Fragment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<a id=%q></a>\n\n## %s\n\n", f.Anchor, f.Heading)
	if f.Lead != "" {
		b.WriteString(f.Lead + "\n\n")
	}

	for i, r := range f.Rows {
		if f.Ordered {
			fmt.Fprintf(&b, "%d. %s", i+1, r.Title)
			if r.Text != "" {
				fmt.Fprintf(&b, ": `%s`", r.Text)
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString("- " + line(r) + "\n")
	}

	for _, c := range f.Cards {
		fmt.Fprintf(&b, "### %s\n\n", c.Heading)
		for _, it := range c.Items {
			b.WriteString("- " + line(it) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Page joins fragments with a blank line between sections.
func Page(fs []panels.Fragment) string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, Section(f))
	}
	return strings.Join(out, "\n")
}

// Render styles markdown for a terminal. style is a glamour standard style
// name ("auto", "dark", "light", "notty", ...).
func Render(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("glamour renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("glamour render: %w", err)
	}
	return out, nil
}

func line(r panels.Row) string {
	parts := make([]string, 0, 3)
	if m, ok := markers[r.Marker]; ok {
		parts = append(parts, m)
	}
	if r.Title != "" {
		parts = append(parts, "**"+r.Title+"**")
	}
	if r.Text != "" {
		if r.Title != "" {
			parts = append(parts, "—", r.Text)
		} else {
			parts = append(parts, r.Text)
		}
	}
	return strings.Join(parts, " ")
}
