package panels

import (
	"github.com/Makepad-fr/docpanels/internal/catalog"
)

const (
	featuresHeading  = "Features"
	techStackHeading = "Tech Stack"
	securityHeading  = "Security"
)

// Overview renders the overview panel from the built-in quick start.
func Overview() Fragment { return OverviewFrom(catalog.QuickStart()) }

// OverviewFrom renders a heading, paragraph and numbered step list.
func OverviewFrom(o catalog.Overview) Fragment {
	f := Fragment{
		Anchor:  catalog.AnchorOverview,
		Heading: o.Title,
		Lead:    o.Description,
		Ordered: true,
		Rows:    make([]Row, 0, len(o.Steps)),
	}
	for _, s := range o.Steps {
		f.Rows = append(f.Rows, Row{Key: s.Key, Title: s.Title, Text: s.Command})
	}
	return f
}

// Features renders the built-in feature list.
func Features() Fragment { return FeaturesFrom(catalog.Features()) }

// FeaturesFrom renders one row per entry, in order.
func FeaturesFrom(entries []catalog.FeatureEntry) Fragment {
	f := Fragment{
		Anchor:  catalog.AnchorFeatures,
		Heading: featuresHeading,
		Rows:    make([]Row, 0, len(entries)),
	}
	for _, e := range entries {
		marker := MarkerEnabled
		if !e.Enabled {
			marker = MarkerDisabled
		}
		f.Rows = append(f.Rows, Row{Marker: marker, Title: e.Title, Text: e.Description})
	}
	return f
}

// TechStack renders the built-in technology categories.
func TechStack() Fragment { return TechStackFrom(catalog.TechStack()) }

// TechStackFrom renders one card per category with one item per technology.
func TechStackFrom(categories []catalog.TechCategory) Fragment {
	f := Fragment{
		Anchor:  catalog.AnchorTechStack,
		Heading: techStackHeading,
		Cards:   make([]Card, 0, len(categories)),
	}
	for _, tc := range categories {
		c := Card{Heading: tc.Category, Items: make([]Row, 0, len(tc.Items))}
		for _, item := range tc.Items {
			c.Items = append(c.Items, Row{Marker: MarkerTech, Title: item})
		}
		f.Cards = append(f.Cards, c)
	}
	return f
}

// Security renders the built-in security measures.
func Security() Fragment { return SecurityFrom(catalog.SecurityMeasures()) }

// SecurityFrom renders one row per measure. The text is not altered.
func SecurityFrom(measures []catalog.SecurityMeasure) Fragment {
	f := Fragment{
		Anchor:  catalog.AnchorSecurity,
		Heading: securityHeading,
		Rows:    make([]Row, 0, len(measures)),
	}
	for _, m := range measures {
		f.Rows = append(f.Rows, Row{Marker: MarkerSecurity, Text: string(m)})
	}
	return f
}
