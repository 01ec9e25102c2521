package core

// ByteGrid stores a W×H window of the lattice in row-major order. The window
// covers lattice columns OX..OX+W-1 and rows OY..OY+H-1.
type ByteGrid struct {
	W, H   int
	OX, OY int
	data   []uint8
}

// NewByteGrid allocates a window with the given dimensions anchored at the origin.
func NewByteGrid(w, h int) *ByteGrid {
	g := &ByteGrid{}
	g.Resize(w, h)
	return g
}

// Resize changes the window dimensions, reusing the backing slice when it is
// large enough. Contents are cleared.
func (g *ByteGrid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
	} else {
		g.data = make([]uint8, w*h)
	}
	g.Clear()
}

// MoveTo re-anchors the window so its top-left cell is (x, y).
func (g *ByteGrid) MoveTo(x, y int) { g.OX, g.OY = x, y }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for window-local coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether lattice coordinates (x, y) fall inside the window.
func (g *ByteGrid) Contains(x, y int) bool {
	x, y = x-g.OX, y-g.OY
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at lattice coordinates (x, y), or 0 outside the window.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.Contains(x, y) {
		return 0
	}
	return g.data[g.Index(x-g.OX, y-g.OY)]
}

// Set writes v at lattice coordinates (x, y); writes outside the window are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.Contains(x, y) {
		return
	}
	g.data[g.Index(x-g.OX, y-g.OY)] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
