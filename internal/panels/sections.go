package panels

import (
	"github.com/Makepad-fr/docpanels/internal/catalog"
)

// Section pairs an anchor with its zero-argument renderer.
type Section struct {
	Anchor string
	Title  string
	Render func() Fragment
}

var sections = []Section{
	{Anchor: catalog.AnchorOverview, Title: "Overview", Render: Overview},
	{Anchor: catalog.AnchorFeatures, Title: featuresHeading, Render: Features},
	{Anchor: catalog.AnchorTechStack, Title: techStackHeading, Render: TechStack},
	{Anchor: catalog.AnchorSecurity, Title: securityHeading, Render: Security},
}

// Sections returns every section in page order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// Lookup finds a section by anchor.
func Lookup(anchor string) (Section, bool) {
	for _, s := range sections {
		if s.Anchor == anchor {
			return s, true
		}
	}
	return Section{}, false
}

// Anchors lists the section anchors in page order.
func Anchors() []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Anchor)
	}
	return out
}

// Page renders the named sections, or all of them when none are given.
// The second return value is the first unknown anchor, if any.
func Page(anchors ...string) ([]Fragment, string) {
	if len(anchors) == 0 {
		anchors = Anchors()
	}
	out := make([]Fragment, 0, len(anchors))
	for _, a := range anchors {
		s, ok := Lookup(a)
		if !ok {
			return nil, a
		}
		out = append(out, s.Render())
	}
	return out, ""
}
