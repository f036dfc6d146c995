// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

// Markers holds the byte offsets that carve up a first line. A missing
// marker is -1.
type Markers struct {
	// Period ends the identifier (first ".").
	Period int
	// By starts the author marker (last " by ").
	By int
	// Open and Close are the last "[" and "]".
	Open  int
	Close int
}

// HasAuthor reports whether an author marker was found.
func (m Markers) HasAuthor() bool {
	return m.By >= 0
}

// HasDate reports whether a usable bracketed date exists: both brackets
// found with "[" before "]". "Cake ][" has no date.
func (m Markers) HasDate() bool {
	return m.Open >= 0 && m.Close >= 0 && m.Open < m.Close
}

// TitleRule selects the title span for one arrangement of markers.
type TitleRule struct {
	Name string
	// Applies reports whether the rule matches m.
	Applies func(m Markers) bool
	// End returns the exclusive end offset of the title; it starts just
	// after the period.
	End func(m Markers, lineLen int) int
}

// TitleRules are tried in order; the first rule that applies wins.
var TitleRules = []TitleRule{
	{
		Name:    "no author or date",
		Applies: func(m Markers) bool { return !m.HasAuthor() && !m.HasDate() },
		End:     func(_ Markers, n int) int { return n },
	},
	{
		Name: "date before author",
		Applies: func(m Markers) bool {
			return m.HasDate() && (!m.HasAuthor() || m.Open < m.By)
		},
		End: func(m Markers, _ int) int { return m.Open },
	},
	{
		Name: "author before date",
		Applies: func(m Markers) bool {
			return m.HasAuthor() && (!m.HasDate() || m.By < m.Open)
		},
		End: func(m Markers, _ int) int { return m.By },
	},
}

// matchTitle returns the first rule that applies to m.
func matchTitle(m Markers) (TitleRule, bool) {
	for _, r := range TitleRules {
		if r.Applies(m) {
			return r, true
		}
	}
	return TitleRule{}, false
}
