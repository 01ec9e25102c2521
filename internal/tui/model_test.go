package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifebox/internal/config"
	"lifebox/internal/sandbox"
	"lifebox/pkg/life"
)

func newModel(t *testing.T, cells ...life.Cell) Model {
	t.Helper()
	opts := sandbox.DefaultOptions()
	opts.Zoom = 1
	opts.MinZoom = 1
	sb := sandbox.New(opts, cells...)
	m := New(sb, config.Default())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 12})
	return next.(Model)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapRoles(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		want    sandbox.Key
		wantMod bool
	}{
		{"step", runes("n"), sandbox.KeyStep, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, sandbox.KeyToggleRun, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, sandbox.KeyToggleMarker, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, sandbox.KeyMarkerAction, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, sandbox.KeyPanLeft, false},
		{"vim", runes("j"), sandbox.KeyPanDown, false},
		{"zoom", runes("+"), sandbox.KeyZoomIn, false},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlC}, sandbox.KeyCopy, true},
		{"paste", tea.KeyMsg{Type: tea.KeyCtrlV}, sandbox.KeyPaste, true},
		{"unbound", runes("z"), sandbox.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mod := km.Role(tt.msg)
			if got != tt.want || mod != tt.wantMod {
				t.Fatalf("Role(%q) = %v,%v expected %v,%v", tt.msg.String(), got, mod, tt.want, tt.wantMod)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if got := next.(Model).View(); got != "" {
		t.Fatalf("view after quit = %q", got)
	}
}

func TestKeysDriveSandbox(t *testing.T) {
	m := newModel(t, life.Cell{X: 0, Y: 0}, life.Cell{X: 1, Y: 0}, life.Cell{X: 2, Y: 0})
	m = send(m, runes("n"))
	if m.sb.Generation() != 1 {
		t.Fatalf("generation = %d after step", m.sb.Generation())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.sb.Running() {
		t.Fatal("enter should start the run")
	}
	m = send(m, runes("n"))
	if m.sb.Generation() != 1 {
		t.Fatal("step must be ignored while running")
	}
}

func TestTickAdvancesWhileRunning(t *testing.T) {
	m := newModel(t, life.Cell{X: 0, Y: 0}, life.Cell{X: 1, Y: 0}, life.Cell{X: 2, Y: 0})
	t0 := time.Unix(100, 0)
	m = send(m, TickMsg(t0))
	if m.sb.Generation() != 0 {
		t.Fatal("paused sandbox advanced")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(t0), TickMsg(t0.Add(10*time.Millisecond)))
	if m.sb.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", m.sb.Generation())
	}
	m = send(m, TickMsg(t0.Add(110*time.Millisecond)))
	if m.sb.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", m.sb.Generation())
	}
}

func TestMouseClickPaintsCell(t *testing.T) {
	m := newModel(t)
	// 20x12 terminal: 10 grid rows, so column 10 row 5 is the view centre.
	m = send(m,
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease},
	)
	if !m.sb.IsAlive(life.Cell{X: 0, Y: 0}) {
		t.Fatal("click did not toggle the centre cell")
	}
	if !strings.ContainsRune(m.View(), '▀') {
		t.Fatal("live cell not drawn as an upper half block")
	}

	m = send(m,
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionRelease},
	)
	if m.sb.IsAlive(life.Cell{X: 0, Y: 0}) || m.sb.IsAlive(life.Cell{X: 1, Y: 0}) {
		t.Fatalf("erasing stroke left live cells: population %d", m.sb.Population())
	}
}

func TestMouseSelectionAndCopy(t *testing.T) {
	m := newModel(t, life.Cell{X: 0, Y: 0}, life.Cell{X: 1, Y: 0})
	m = send(m,
		tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonRight},
		tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionRelease},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	)
	if n := len(m.sb.Selection().Points); n != 4 {
		t.Fatalf("selection has %d cells, expected 4", n)
	}
	if n := len(m.sb.Clipboard()); n != 4 {
		t.Fatalf("clipboard has %d entries, expected 4", n)
	}
}

func TestWheelZooms(t *testing.T) {
	m := newModel(t)
	m = send(m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.sb.Zoom() != 1.5 {
		t.Fatalf("zoom = %g after wheel up", m.sb.Zoom())
	}
	m = send(m,
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
	)
	if m.sb.Zoom() != 1 {
		t.Fatalf("zoom = %g, expected clamp at 1", m.sb.Zoom())
	}
}

func TestViewShowsStatusAndMarker(t *testing.T) {
	m := newModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "paused") {
		t.Fatalf("status line missing: %q", view)
	}
	if !strings.ContainsRune(view, '+') {
		t.Fatal("marker not drawn")
	}
}

func TestMarkerRepeatIsThrottled(t *testing.T) {
	m := newModel(t)
	now := time.Unix(50, 0)
	m.now = func() time.Time { return now }

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	for range 5 {
		m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := m.sb.Marker(); got != (life.Cell{X: -1, Y: 0}) {
		t.Fatalf("marker = %v after auto-repeat burst, expected (-1,0)", got)
	}

	now = now.Add(100 * time.Millisecond)
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.sb.Marker(); got != (life.Cell{X: -2, Y: 0}) {
		t.Fatalf("marker = %v after the repeat interval, expected (-2,0)", got)
	}
}

// readOnly hides every Sandbox method that is not part of sandbox.View.
type readOnly struct {
	sandbox.View
}

func TestViewRendersFromReadOnlyView(t *testing.T) {
	m := newModel(t, life.Cell{X: 0, Y: 0})
	m.view = readOnly{m.sb}
	if !strings.ContainsRune(m.View(), '▀') {
		t.Fatal("live cell not drawn through the read-only view")
	}
}
