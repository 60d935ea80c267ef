// Package web serves the documentation panels as HTML.
package web

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/Makepad-fr/docpanels/internal/panels"
)

var markerGlyphs = map[panels.Marker]string{
	panels.MarkerEnabled:  "✓",
	panels.MarkerDisabled: "✗",
	panels.MarkerTech:     "▸",
	panels.MarkerSecurity: "🔒",
}

// Section renders one fragment as a <section> carrying the fragment anchor as id.
func Section(f panels.Fragment) g.Node {
	return h.Section(
		h.ID(f.Anchor),
		h.Class("panel"),
		h.H2(g.Text(f.Heading)),
		g.If(f.Lead != "", h.P(h.Class("lead"), g.Text(f.Lead))),
		g.If(len(f.Rows) > 0 || len(f.Cards) == 0, rowList(f)),
		g.If(len(f.Cards) > 0, h.Div(h.Class("cards"), g.Map(f.Cards, card))),
	)
}

// Page wraps fragments in a full HTML5 document with in-page navigation.
func Page(title string, fs []panels.Fragment) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Body: []g.Node{
			h.Nav(h.Ul(g.Map(fs, func(f panels.Fragment) g.Node {
				return h.Li(h.A(h.Href("#"+f.Anchor), g.Text(f.Heading)))
			}))),
			h.Main(g.Map(fs, Section)),
		},
	})
}

func rowList(f panels.Fragment) g.Node {
	items := g.Map(f.Rows, func(r panels.Row) g.Node {
		return h.Li(
			g.If(r.Key != "", g.Attr("data-step", r.Key)),
			marker(r.Marker),
			g.If(r.Title != "", h.Strong(g.Text(r.Title))),
			g.If(r.Text != "" && f.Ordered, h.Code(g.Text(r.Text))),
			g.If(r.Text != "" && !f.Ordered, h.Span(g.Text(r.Text))),
		)
	})
	if f.Ordered {
		return h.Ol(h.Class("rows"), items)
	}
	return h.Ul(h.Class("rows"), items)
}

func card(cd panels.Card) g.Node {
	return h.Div(
		h.Class("card"),
		h.H3(g.Text(cd.Heading)),
		h.Ul(g.Map(cd.Items, func(r panels.Row) g.Node {
			return h.Li(marker(r.Marker), g.Text(r.Title))
		})),
	)
}

func marker(m panels.Marker) g.Node {
	glyph, ok := markerGlyphs[m]
	if !ok {
		return nil
	}
	return h.Span(
		h.Class("marker marker-"+m.String()),
		h.Aria("hidden", "true"),
		g.Text(glyph),
	)
}
