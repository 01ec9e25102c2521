package core

import (
	"sort"

	"lifebox/pkg/life"
)

// Pattern is a named arrangement of live cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       []life.Cell
}

// Size returns the width and height of the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Patterns returns every registered pattern sorted by name.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
