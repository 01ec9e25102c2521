package life

// Transition lists the cells that change state between two generations.
type Transition struct {
	Born []Cell
	Died []Cell
}

// Next returns the transition from s to its successor under B3/S23.
//
// Every live cell adds one to each of its eight neighbors' counts; cells that
// never receive a count cannot be born, so only live cells and their
// neighbors are ever examined.
func Next(s Snapshot) Transition {
	return transition(s, make(map[Cell]uint8, len(s.cells)*4))
}

func transition(s Snapshot, counts map[Cell]uint8) Transition {
	for c := range s.cells {
		for _, d := range neighborhood {
			counts[c.Add(d)]++
		}
	}
	var t Transition
	for c := range s.cells {
		if n := counts[c]; n < 2 || n > 3 {
			t.Died = append(t.Died, c)
		}
	}
	for c, n := range counts {
		if n == 3 && !s.IsAlive(c) {
			t.Born = append(t.Born, c)
		}
	}
	return t
}

// Engine advances a Grid one generation at a time.
type Engine struct {
	generation int
	counts     map[Cell]uint8
}

// NewEngine returns an engine at generation zero.
func NewEngine() *Engine {
	return &Engine{counts: map[Cell]uint8{}}
}

// Generation returns the number of generations computed since the last Reset.
func (e *Engine) Generation() int { return e.generation }

// Reset sets the generation counter back to zero.
func (e *Engine) Reset() { e.generation = 0 }

// Step replaces g's live set with the next generation. The rule reads only
// the pre-generation snapshot; deaths are removed before births are added.
func (e *Engine) Step(g *Grid) Transition {
	snap := g.Snapshot()
	clear(e.counts)
	t := transition(snap, e.counts)
	g.apply(t)
	e.generation++
	return t
}
