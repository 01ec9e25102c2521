package life

import (
	"slices"
	"testing"
)

func TestSetAliveIdempotent(t *testing.T) {
	g := NewGrid()
	p := Cell{3, -4}
	if !g.SetAlive(p) {
		t.Fatal("first SetAlive must report a change")
	}
	if g.SetAlive(p) {
		t.Fatal("second SetAlive must not report a change")
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, expected 1", g.Len())
	}
	if !g.SetDead(p) || g.SetDead(p) {
		t.Fatal("SetDead must report a change exactly once")
	}
	if g.Len() != 0 {
		t.Fatalf("Len = %d, expected 0", g.Len())
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := NewGrid(Cell{0, 0})
	for _, p := range []Cell{{0, 0}, {9, 9}} {
		before := g.IsAlive(p)
		if got := g.Toggle(p); got == before {
			t.Fatalf("Toggle(%v) = %v, expected %v", p, got, !before)
		}
		g.Toggle(p)
		if g.IsAlive(p) != before {
			t.Fatalf("double toggle of %v changed state", p)
		}
	}
	if g.Len() != 1 {
		t.Fatalf("Len = %d, expected 1", g.Len())
	}
}

func TestSelectRect(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want []Cell
	}{
		{
			name: "three by three",
			a:    Cell{0, 0},
			b:    Cell{3, 3},
			want: []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
		{
			name: "reversed corners",
			a:    Cell{1, 1},
			b:    Cell{-1, -1},
			want: []Cell{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}},
		},
		{
			name: "degenerate column",
			a:    Cell{2, 0},
			b:    Cell{2, 5},
			want: []Cell{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectRect(tc.a, tc.b); !slices.Equal(got, tc.want) {
				t.Errorf("SelectRect(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := NewGrid().Bounds(); ok {
		t.Fatal("empty grid must report no bounds")
	}
	lo, hi, ok := NewGrid(Cell{2, -3}, Cell{-5, 4}, Cell{0, 0}).Bounds()
	if !ok || lo != (Cell{-5, -3}) || hi != (Cell{2, 4}) {
		t.Fatalf("Bounds = %v %v %v", lo, hi, ok)
	}
}
