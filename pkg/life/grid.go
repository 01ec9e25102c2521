package life

import (
	"iter"
	"slices"
)

// Cell identifies a position on the unbounded integer lattice.
type Cell struct {
	X, Y int
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Y: c.Y + d.Y} }

// Sub returns c translated by -d.
func (c Cell) Sub(d Cell) Cell { return Cell{X: c.X - d.X, Y: c.Y - d.Y} }

// Neg mirrors c through the origin.
func (c Cell) Neg() Cell { return Cell{X: -c.X, Y: -c.Y} }

// neighborhood lists the Moore neighborhood offsets.
var neighborhood = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors yields the eight cells adjacent to c.
func (c Cell) Neighbors() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range neighborhood {
			if !yield(c.Add(d)) {
				return
			}
		}
	}
}

// Grid stores the set of live cells. The zero value is not usable; call NewGrid.
type Grid struct {
	alive map[Cell]struct{}
}

// NewGrid returns a grid with the provided cells alive.
func NewGrid(cells ...Cell) *Grid {
	g := &Grid{alive: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		g.alive[c] = struct{}{}
	}
	return g
}

// IsAlive reports whether c is in the live set.
func (g *Grid) IsAlive(c Cell) bool {
	_, ok := g.alive[c]
	return ok
}

// SetAlive inserts c and reports whether the set changed.
func (g *Grid) SetAlive(c Cell) bool {
	if _, ok := g.alive[c]; ok {
		return false
	}
	g.alive[c] = struct{}{}
	return true
}

// SetDead removes c and reports whether the set changed.
func (g *Grid) SetDead(c Cell) bool {
	if _, ok := g.alive[c]; !ok {
		return false
	}
	delete(g.alive, c)
	return true
}

// Toggle flips c and returns its new state.
func (g *Grid) Toggle(c Cell) bool {
	if g.SetDead(c) {
		return false
	}
	g.alive[c] = struct{}{}
	return true
}

// Len returns the population.
func (g *Grid) Len() int { return len(g.alive) }

// Clear kills every cell.
func (g *Grid) Clear() { clear(g.alive) }

// All yields the live cells in no particular order.
func (g *Grid) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range g.alive {
			if !yield(c) {
				return
			}
		}
	}
}

// Bounds returns the inclusive bounding box of the live set. ok is false
// when the grid is empty.
func (g *Grid) Bounds() (lo, hi Cell, ok bool) {
	return bounds(g.alive)
}

// Snapshot copies the live set into an immutable view.
func (g *Grid) Snapshot() Snapshot {
	cells := make(map[Cell]struct{}, len(g.alive))
	for c := range g.alive {
		cells[c] = struct{}{}
	}
	return Snapshot{cells: cells}
}

// apply removes died then inserts born.
func (g *Grid) apply(t Transition) {
	for _, c := range t.Died {
		delete(g.alive, c)
	}
	for _, c := range t.Born {
		g.alive[c] = struct{}{}
	}
}

// Snapshot is a read-only copy of a live set.
type Snapshot struct {
	cells map[Cell]struct{}
}

// IsAlive reports whether c was alive when the snapshot was taken.
func (s Snapshot) IsAlive(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the population of the snapshot.
func (s Snapshot) Len() int { return len(s.cells) }

// All yields the snapshot's cells in no particular order.
func (s Snapshot) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range s.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Sorted returns the cells ordered by row, then column.
func (s Snapshot) Sorted() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	SortCells(out)
	return out
}

// SortCells orders cells by row, then column.
func SortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

// SelectRect returns the half-open rectangle spanned by a and b in row-major
// order. The far row and column are excluded, so equal coordinates on either
// axis produce an empty selection.
func SelectRect(a, b Cell) []Cell {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	out := make([]Cell, 0, (x1-x0)*(y1-y0))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

func bounds(cells map[Cell]struct{}) (lo, hi Cell, ok bool) {
	for c := range cells {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, ok
}
