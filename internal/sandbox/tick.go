package sandbox

import "time"

// Update runs one tick: it turns sampled input into edits and, while
// running, advances a generation when the speed interval has elapsed.
func (s *Sandbox) Update(in Input, now time.Time) {
	sx, sy := in.Cursor()
	moved := false
	for b := Button(0); b < buttonCount; b++ {
		held := in.ButtonHeld(b)
		switch {
		case held && !s.buttons[b]:
			s.PointerDown(b, sx, sy)
		case !held && s.buttons[b]:
			s.PointerUp(b)
		case held:
			moved = true
		}
	}
	if moved {
		s.PointerMove(sx, sy)
	}

	for _, k := range Keys {
		switch {
		case in.Pressed(k):
			s.KeyPressed(k, in.Modifier(), now)
		case in.Held(k):
			s.KeyHeld(k, now)
		}
	}

	if s.running && s.gen.Ready(now) {
		s.Advance()
	}
}

// Advance computes exactly one generation.
func (s *Sandbox) Advance() {
	s.last = s.engine.Step(s.grid)
}
