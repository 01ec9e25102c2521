// Package sandbox holds the interactive state of a Life session and
// translates input into grid edits.
package sandbox

import (
	"fmt"
	"io"
	"iter"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"lifebox/internal/core"
	prng "lifebox/pkg/core"
	"lifebox/pkg/life"
)

// Options configures a Sandbox.
type Options struct {
	Speed        time.Duration // delay between generations while running
	Zoom         float64       // initial pixels per cell
	ZoomStep     float64
	MinZoom      float64
	PanRepeat    time.Duration // repeat interval for held pan and zoom keys
	MarkerRepeat time.Duration // repeat interval for held arrows in marker mode

	ScatterSize    int
	ScatterDensity float64
	Seed           int64
}

// DefaultOptions mirrors the embedded configuration defaults.
func DefaultOptions() Options {
	return Options{
		Speed:          100 * time.Millisecond,
		Zoom:           10,
		ZoomStep:       0.5,
		MinZoom:        1.5,
		PanRepeat:      100 * time.Millisecond,
		MarkerRepeat:   100 * time.Millisecond,
		ScatterSize:    24,
		ScatterDensity: 0.35,
		Seed:           1,
	}
}

// ClipEntry is one captured cell: its offset and whether it was alive.
type ClipEntry struct {
	Offset life.Cell
	Alive  bool
}

// Selection is the rectangle dragged with the secondary button.
type Selection struct {
	Start   life.Cell
	Current life.Cell
	Active  bool // a drag is in progress
	Points  []life.Cell
}

// Bounds returns the inclusive cell range covered by the selection.
func (s Selection) Bounds() (lo, hi life.Cell, ok bool) {
	if len(s.Points) == 0 {
		return lo, hi, false
	}
	return s.Points[0], s.Points[len(s.Points)-1], true
}

// View is the read-only surface handed to renderers.
type View interface {
	core.StatusProvider
	Cells() iter.Seq[life.Cell]
	Raster(dst *core.ByteGrid)
	Offset() life.Cell
	Zoom() float64
	Marker() life.Cell
	MarkerMode() bool
	Running() bool
	Selection() Selection
	ScreenToCell(sx, sy float64) life.Cell
	CellToScreen(c life.Cell) (sx, sy float64)
	VisibleCells(w, h float64) (lo, hi life.Cell)
}

var _ View = (*Sandbox)(nil)

// Sandbox is the whole mutable model: live set, engine, view, selection,
// clipboard and run state. Front-ends own one and drive it every tick.
type Sandbox struct {
	opts   Options
	grid   *life.Grid
	engine *life.Engine
	rng    *prng.RNG
	log    *log.Logger

	offset     life.Cell
	zoom       float64
	markerMode bool

	running bool
	gen     *core.Pacer
	repeat  map[Key]*core.Pacer

	buttons   [buttonCount]bool
	stroke    struct{ painted, erased bool }
	selection Selection
	clipboard []ClipEntry

	pattern    int // index into core.Patterns of the last loaded pattern
	clipSource string
	last       life.Transition
}

// New returns a paused sandbox with the given cells alive.
func New(opts Options, cells ...life.Cell) *Sandbox {
	def := DefaultOptions()
	if opts.Zoom <= 0 {
		opts.Zoom = def.Zoom
	}
	if opts.ZoomStep <= 0 {
		opts.ZoomStep = def.ZoomStep
	}
	if opts.MinZoom <= 0 {
		opts.MinZoom = def.MinZoom
	}
	if opts.ScatterSize <= 0 {
		opts.ScatterSize = def.ScatterSize
	}
	return &Sandbox{
		opts:    opts,
		grid:    life.NewGrid(cells...),
		engine:  life.NewEngine(),
		rng:     prng.NewRNG(opts.Seed),
		log:     log.New(io.Discard),
		zoom:    max(opts.Zoom, opts.MinZoom),
		gen:     core.NewPacer(opts.Speed),
		repeat:  map[Key]*core.Pacer{},
		pattern: -1,
	}
}

// SetLogger routes debug events to l.
func (s *Sandbox) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// Running reports whether generations advance automatically.
func (s *Sandbox) Running() bool { return s.running }

// Speed returns the delay between generations.
func (s *Sandbox) Speed() time.Duration { return s.gen.Interval() }

// Offset returns the pan offset in cells.
func (s *Sandbox) Offset() life.Cell { return s.offset }

// Zoom returns the number of pixels per cell.
func (s *Sandbox) Zoom() float64 { return s.zoom }

// MarkerMode reports whether the keyboard marker is active.
func (s *Sandbox) MarkerMode() bool { return s.markerMode }

// Marker returns the cell at the view centre.
func (s *Sandbox) Marker() life.Cell { return s.offset.Neg() }

// Selection returns the current selection rectangle.
func (s *Sandbox) Selection() Selection { return s.selection }

// Clipboard returns a copy of the clipboard contents.
func (s *Sandbox) Clipboard() []ClipEntry { return append([]ClipEntry(nil), s.clipboard...) }

// Generation returns the number of generations computed since the last clear.
func (s *Sandbox) Generation() int { return s.engine.Generation() }

// Population returns the number of live cells.
func (s *Sandbox) Population() int { return s.grid.Len() }

// IsAlive reports whether c is alive.
func (s *Sandbox) IsAlive(c life.Cell) bool { return s.grid.IsAlive(c) }

// Cells yields every live cell.
func (s *Sandbox) Cells() iter.Seq[life.Cell] { return s.grid.All() }

// ScreenToCell maps a centre-relative pixel position to the cell under it.
func (s *Sandbox) ScreenToCell(sx, sy float64) life.Cell {
	return life.Cell{
		X: int(math.Round(sx/s.zoom)) - s.offset.X,
		Y: int(math.Round(sy/s.zoom)) - s.offset.Y,
	}
}

// CellToScreen returns the centre-relative pixel position of c's centre.
func (s *Sandbox) CellToScreen(c life.Cell) (sx, sy float64) {
	return float64(c.X+s.offset.X) * s.zoom, float64(c.Y+s.offset.Y) * s.zoom
}

// VisibleCells returns the inclusive range of cells touched by a w×h pixel
// view centred on the origin.
func (s *Sandbox) VisibleCells(w, h float64) (lo, hi life.Cell) {
	return s.ScreenToCell(-w/2, -h/2), s.ScreenToCell(w/2, h/2)
}

// Raster writes 1 into dst for every live cell inside its window.
func (s *Sandbox) Raster(dst *core.ByteGrid) {
	dst.Clear()
	if s.grid.Len() < dst.W*dst.H {
		for c := range s.grid.All() {
			dst.Set(c.X, c.Y, 1)
		}
		return
	}
	for y := dst.OY; y < dst.OY+dst.H; y++ {
		for x := dst.OX; x < dst.OX+dst.W; x++ {
			if s.grid.IsAlive(life.Cell{X: x, Y: y}) {
				dst.Set(x, y, 1)
			}
		}
	}
}

// Status implements core.StatusProvider.
func (s *Sandbox) Status() core.StatusSnapshot {
	state := "paused"
	if s.running {
		state = "running"
	}
	marker := "off"
	if s.markerMode {
		m := s.Marker()
		marker = fmt.Sprintf("%d,%d", m.X, m.Y)
	}
	extent := "-"
	if lo, hi, ok := s.grid.Bounds(); ok {
		extent = fmt.Sprintf("%dx%d", hi.X-lo.X+1, hi.Y-lo.Y+1)
	}
	clip := fmt.Sprintf("%d cells", len(s.clipboard))
	if s.clipSource != "" {
		clip = fmt.Sprintf("%s (%d)", s.clipSource, len(s.clipboard))
	}
	return core.StatusSnapshot{Groups: []core.StatGroup{
		{
			Name: "Simulation",
			Stats: []core.Stat{
				{Label: "State", Value: state},
				{Label: "Generation", Value: fmt.Sprint(s.engine.Generation())},
				{Label: "Population", Value: fmt.Sprint(s.grid.Len())},
				{Label: "Extent", Value: extent},
				{Label: "Speed", Value: fmt.Sprintf("%d ms", s.Speed().Milliseconds())},
				{Label: "Births", Value: fmt.Sprint(len(s.last.Born))},
				{Label: "Deaths", Value: fmt.Sprint(len(s.last.Died))},
			},
		},
		{
			Name: "View",
			Stats: []core.Stat{
				{Label: "Zoom", Value: fmt.Sprintf("%.1f", s.zoom)},
				{Label: "Offset", Value: fmt.Sprintf("%d,%d", s.offset.X, s.offset.Y)},
				{Label: "Marker", Value: marker},
			},
		},
		{
			Name: "Edit",
			Stats: []core.Stat{
				{Label: "Selected", Value: fmt.Sprint(len(s.selection.Points))},
				{Label: "Clipboard", Value: clip},
			},
		},
	}}
}
