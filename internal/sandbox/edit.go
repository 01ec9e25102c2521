package sandbox

import (
	"time"

	"lifebox/internal/core"
	prng "lifebox/pkg/core"
	"lifebox/pkg/life"
)

// PointerDown handles a button going down at centre-relative pixel (sx, sy).
func (s *Sandbox) PointerDown(b Button, sx, sy float64) {
	if b < 0 || b >= buttonCount {
		return
	}
	s.buttons[b] = true
	c := s.ScreenToCell(sx, sy)
	switch b {
	case ButtonPrimary:
		s.brush(c)
	case ButtonSecondary:
		s.selection = Selection{Start: c, Current: c, Active: true}
	}
}

// PointerMove handles pointer motion; it acts only for buttons held down.
func (s *Sandbox) PointerMove(sx, sy float64) {
	c := s.ScreenToCell(sx, sy)
	if s.buttons[ButtonPrimary] {
		s.brush(c)
	}
	if s.buttons[ButtonSecondary] && s.selection.Active {
		s.selection.Current = c
		s.selection.Points = life.SelectRect(s.selection.Start, c)
	}
}

// PointerUp handles a button release.
func (s *Sandbox) PointerUp(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	s.buttons[b] = false
	switch b {
	case ButtonPrimary:
		s.stroke.painted, s.stroke.erased = false, false
	case ButtonSecondary:
		s.selection.Active = false
	}
}

// brush paints or erases c. The first cell of a stroke decides which: once a
// stroke has painted it never erases and vice versa, so a cell under a held
// button changes at most once.
func (s *Sandbox) brush(c life.Cell) {
	if s.running {
		return
	}
	if !s.stroke.erased && s.grid.SetAlive(c) {
		s.stroke.painted = true
		return
	}
	if !s.stroke.painted && s.grid.SetDead(c) {
		s.stroke.erased = true
	}
}

// KeyPressed handles the tick on which k went down. mod reports whether the
// copy/paste modifier is held.
func (s *Sandbox) KeyPressed(k Key, mod bool, now time.Time) {
	switch k {
	case KeyPanLeft, KeyPanRight, KeyPanUp, KeyPanDown, KeyZoomIn, KeyZoomOut:
		// In marker mode presses share the repeat interval, so a front-end
		// that reports auto-repeat as presses still moves one cell per step.
		if s.markerMode && !s.running {
			if s.repeater(k).Ready(now) {
				s.nudge(k)
			}
			return
		}
		s.nudge(k)
		s.repeater(k).Mark(now)
		return
	case KeyToggleRun:
		s.ToggleRun()
		return
	}
	if s.running {
		return
	}
	switch k {
	case KeyToggleMarker:
		s.markerMode = !s.markerMode
	case KeyMarkerAction:
		if s.markerMode {
			s.grid.Toggle(s.Marker())
		}
	case KeyCopy:
		if mod && !s.selection.Active {
			s.Copy()
		}
	case KeyPaste:
		if mod && !s.selection.Active {
			s.Paste()
		}
	case KeyStep:
		s.Advance()
	case KeyScatter:
		s.Scatter()
	case KeyClear:
		s.Clear()
	case KeyNextPattern:
		s.NextPattern()
	}
}

// KeyHeld handles a tick on which k stays down after its press. Pan and zoom
// keys repeat at most once per repeat interval; every other key ignores it.
func (s *Sandbox) KeyHeld(k Key, now time.Time) {
	if !k.repeats() {
		return
	}
	if s.repeater(k).Ready(now) {
		s.nudge(k)
	}
}

func (s *Sandbox) repeater(k Key) *core.Pacer {
	interval := s.opts.PanRepeat
	if s.markerMode && !s.running {
		interval = s.opts.MarkerRepeat
	}
	p, ok := s.repeat[k]
	if !ok {
		p = core.NewPacer(interval)
		s.repeat[k] = p
	}
	p.SetInterval(interval)
	return p
}

// nudge applies one step of a pan or zoom key.
func (s *Sandbox) nudge(k Key) {
	switch k {
	case KeyPanLeft:
		s.offset.X++
	case KeyPanRight:
		s.offset.X--
	case KeyPanUp:
		s.offset.Y++
	case KeyPanDown:
		s.offset.Y--
	case KeyZoomIn:
		s.zoom += s.opts.ZoomStep
	case KeyZoomOut:
		if s.zoom-s.opts.ZoomStep >= s.opts.MinZoom-1e-9 {
			s.zoom -= s.opts.ZoomStep
		}
	}
}

// ToggleRun switches between paused and running. The first generation after
// starting is computed on the next tick.
func (s *Sandbox) ToggleRun() {
	s.running = !s.running
	s.gen.Reset()
	s.log.Debug("run toggled", "running", s.running, "generation", s.engine.Generation())
}

// Copy captures the selected points, relative to the selection anchor and
// the current pan offset, replacing the clipboard.
func (s *Sandbox) Copy() {
	clip := make([]ClipEntry, 0, len(s.selection.Points))
	for _, p := range s.selection.Points {
		clip = append(clip, ClipEntry{
			Offset: p.Sub(s.selection.Start).Sub(s.offset),
			Alive:  s.grid.IsAlive(p),
		})
	}
	s.clipboard = clip
	s.clipSource = ""
	s.log.Debug("copied selection", "cells", len(clip))
}

// Paste writes every clipboard entry at its offset shifted by the current pan
// offset. Dead entries clear their target, so the captured pattern replaces
// whatever was there.
func (s *Sandbox) Paste() {
	changed := 0
	for _, e := range s.clipboard {
		target := e.Offset.Sub(s.offset)
		if e.Alive {
			if s.grid.SetAlive(target) {
				changed++
			}
		} else if s.grid.SetDead(target) {
			changed++
		}
	}
	s.log.Debug("pasted clipboard", "entries", len(s.clipboard), "changed", changed)
}

// LoadPattern replaces the clipboard with p so that pasting stamps p's
// top-left corner on the marker.
func (s *Sandbox) LoadPattern(p core.Pattern) {
	clip := make([]ClipEntry, 0, len(p.Cells))
	for _, c := range p.Cells {
		clip = append(clip, ClipEntry{Offset: c, Alive: true})
	}
	s.clipboard = clip
	s.clipSource = p.Name
	s.log.Debug("loaded pattern", "name", p.Name, "cells", len(clip))
}

// NextPattern cycles through the registered patterns, loading each into the
// clipboard in turn.
func (s *Sandbox) NextPattern() {
	list := core.Patterns()
	if len(list) == 0 {
		return
	}
	s.pattern = (s.pattern + 1) % len(list)
	s.LoadPattern(list[s.pattern])
}

// Scatter fills a square around the marker with random live cells.
func (s *Sandbox) Scatter() {
	n := s.opts.ScatterSize
	soup := core.NewByteGrid(n, n)
	m := s.Marker()
	soup.MoveTo(m.X-n/2, m.Y-n/2)
	prng.FillDensity(s.rng, soup.Cells(), s.opts.ScatterDensity)
	added := 0
	for y := 0; y < soup.H; y++ {
		for x := 0; x < soup.W; x++ {
			if soup.Cells()[soup.Index(x, y)] == 0 {
				continue
			}
			if s.grid.SetAlive(life.Cell{X: soup.OX + x, Y: soup.OY + y}) {
				added++
			}
		}
	}
	s.log.Debug("scattered cells", "added", added, "size", n)
}

// Clear kills every cell and resets the generation counter.
func (s *Sandbox) Clear() {
	s.grid.Clear()
	s.engine.Reset()
	s.last = life.Transition{}
	s.log.Debug("cleared grid")
}
