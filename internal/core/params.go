package core

// Stat is a single labelled value shown on a status panel.
type Stat struct {
	Label string
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// StatusSnapshot captures what a front-end should display next to the grid.
type StatusSnapshot struct {
	Groups []StatGroup
}

// Lookup returns the value of the first stat with the given label.
func (s StatusSnapshot) Lookup(label string) (string, bool) {
	for _, g := range s.Groups {
		for _, st := range g.Stats {
			if st.Label == label {
				return st.Value, true
			}
		}
	}
	return "", false
}

// StatusProvider is implemented by anything that can describe itself on a HUD.
type StatusProvider interface {
	Status() StatusSnapshot
}
