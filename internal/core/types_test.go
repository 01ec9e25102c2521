package core

import (
	"testing"

	"lifebox/pkg/life"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Pattern{Name: ""})
	Register(Pattern{Name: "zz-test", Cells: []life.Cell{{0, 0}, {2, 1}}})

	p, ok := Lookup("zz-test")
	if !ok {
		t.Fatal("registered pattern not found")
	}
	if w, h := p.Size(); w != 3 || h != 2 {
		t.Fatalf("Size = %dx%d, expected 3x2", w, h)
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("empty name must not be registered")
	}
	all := Patterns()
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatal("Patterns must be sorted by name")
		}
	}
}

func TestStatusLookup(t *testing.T) {
	s := StatusSnapshot{Groups: []StatGroup{
		{Name: "Sim", Stats: []Stat{{Label: "Generation", Value: "4"}}},
	}}
	if v, ok := s.Lookup("Generation"); !ok || v != "4" {
		t.Fatalf("Lookup = %q %v", v, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("missing label must not be found")
	}
}
