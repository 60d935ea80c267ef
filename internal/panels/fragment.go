// Package panels projects the catalog into display fragments. A fragment is
// surface-neutral: the terminal, markdown and HTML renderers all consume it.
package panels

// Marker is the status or decoration shown in front of a row. Surfaces map it
// to their own glyphs.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerEnabled
	MarkerDisabled
	MarkerTech
	MarkerSecurity
)

func (m Marker) String() string {
	switch m {
	case MarkerEnabled:
		return "enabled"
	case MarkerDisabled:
		return "disabled"
	case MarkerTech:
		return "tech"
	case MarkerSecurity:
		return "security"
	default:
		return "none"
	}
}

// Row is a single display line.
type Row struct {
	Key    string
	Marker Marker
	Title  string
	Text   string
}

// Card is a headed group of rows.
type Card struct {
	Heading string
	Items   []Row
}

// Fragment is one rendered panel.
type Fragment struct {
	Anchor  string
	Heading string
	Lead    string
	Ordered bool // rows are numbered steps
	Rows    []Row
	Cards   []Card
}

// Len is the number of top-level children: rows plus cards.
func (f Fragment) Len() int { return len(f.Rows) + len(f.Cards) }

// Count returns how many rows carry the given marker, cards included.
func (f Fragment) Count(m Marker) int {
	n := 0
	for _, r := range f.Rows {
		if r.Marker == m {
			n++
		}
	}
	for _, c := range f.Cards {
		for _, r := range c.Items {
			if r.Marker == m {
				n++
			}
		}
	}
	return n
}
