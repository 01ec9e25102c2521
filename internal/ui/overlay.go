//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lifebox/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minGridZoom is the smallest zoom at which grid lines are drawn.
const minGridZoom = 4

// OverlayColors holds the colors used by the overlay.
type OverlayColors struct {
	Grid      color.RGBA
	Marker    color.RGBA
	Selection color.RGBA
}

// Overlay draws view aids on top of the cells.
type Overlay struct {
	colors   OverlayColors
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(colors OverlayColors) *Overlay {
	return &Overlay{colors: colors, showGrid: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, v sandbox.View) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	zoom := v.Zoom()

	if o.showGrid && !v.Running() && zoom >= minGridZoom {
		o.drawGrid(screen, v, w, h)
	}
	if lo, hi, ok := v.Selection().Bounds(); ok {
		x0, y0 := v.CellToScreen(lo)
		x1, y1 := v.CellToScreen(hi)
		vector.StrokeRect(screen,
			float32(w/2+x0-zoom/2), float32(h/2+y0-zoom/2),
			float32(x1-x0+zoom), float32(y1-y0+zoom),
			1, o.colors.Selection, false)
	}
	if v.MarkerMode() && !v.Running() {
		mx, my := v.CellToScreen(v.Marker())
		vector.StrokeRect(screen,
			float32(w/2+mx-zoom/2), float32(h/2+my-zoom/2),
			float32(zoom), float32(zoom),
			2, o.colors.Marker, false)
	}
}

// drawGrid strokes the cell borders, which sit half a cell away from each
// cell centre.
func (o *Overlay) drawGrid(screen *ebiten.Image, v sandbox.View, w, h float64) {
	zoom := v.Zoom()
	lo, hi := v.VisibleCells(w, h)
	x0, y0 := v.CellToScreen(lo)
	startX := w/2 + x0 - zoom/2
	startY := h/2 + y0 - zoom/2
	cols := hi.X - lo.X + 2
	rows := hi.Y - lo.Y + 2
	for i := 0; i < cols; i++ {
		x := float32(math.Floor(startX + float64(i)*zoom))
		vector.StrokeLine(screen, x, 0, x, float32(h), 1, o.colors.Grid, false)
	}
	for j := 0; j < rows; j++ {
		y := float32(math.Floor(startY + float64(j)*zoom))
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, o.colors.Grid, false)
	}
}
