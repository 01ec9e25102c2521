package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/sandbox"
)

// pointer is the mouse state handed to the sandbox. Keys are delivered
// directly through Sandbox.KeyPressed because terminals report no releases.
type pointer struct {
	x, y    float64
	primary bool
	second  bool
}

func (p *pointer) Held(sandbox.Key) bool { return false }
func (p *pointer) Pressed(sandbox.Key) bool { return false }
func (p *pointer) Modifier() bool { return false }
func (p *pointer) Cursor() (float64, float64) { return p.x, p.y }
func (p *pointer) ButtonHeld(b sandbox.Button) bool {
	switch b {
	case sandbox.ButtonPrimary:
		return p.primary
	case sandbox.ButtonSecondary:
		return p.second
	}
	return false
}

// Model is the Bubble Tea model for the terminal sandbox.
type Model struct {
	sb       *sandbox.Sandbox // receives input
	view     sandbox.View     // everything drawing reads
	keys     KeyMap
	help     help.Model
	styles   styles
	pointer  *pointer
	raster   *core.ByteGrid
	tickRate int
	width    int
	height   int
	quitting bool
	now      func() time.Time
}

// New creates a terminal model driving sb.
func New(sb *sandbox.Sandbox, cfg config.Config) Model {
	h := help.New()
	h.ShowAll = false
	return Model{
		sb:       sb,
		view:     sb,
		keys:     NewKeyMap(cfg.Keys),
		help:     h,
		styles:   newStyles(cfg.Colors),
		pointer:  &pointer{},
		raster:   core.NewByteGrid(1, 1),
		tickRate: cfg.View.TPS,
		width:    80,
		height:   24,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sb.Update(m.pointer, time.Time(msg))
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if role, mod := m.keys.Role(msg); role != sandbox.KeyNone {
		m.sb.KeyPressed(role, mod, m.now())
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	m.pointer.x, m.pointer.y = m.toScreen(msg.X, msg.Y, m.gridRows())
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.pointer.primary = true
		case tea.MouseButtonRight:
			m.pointer.second = true
		case tea.MouseButtonWheelUp:
			m.sb.KeyPressed(sandbox.KeyZoomIn, false, m.now())
			return
		case tea.MouseButtonWheelDown:
			m.sb.KeyPressed(sandbox.KeyZoomOut, false, m.now())
			return
		}
	case tea.MouseActionRelease:
		// Most terminals do not say which button was released.
		m.pointer.primary = false
		m.pointer.second = false
	}
	m.sb.Update(m.pointer, m.now())
}

// gridRows is the number of character rows left for cells once the status
// and help lines are drawn.
func (m Model) gridRows() int {
	return max(1, m.height-1-lipgloss.Height(m.help.View(m.keys)))
}

// toScreen maps a terminal cell to sandbox screen coordinates for a grid of
// rows character rows. Each character is one pixel wide and two pixels tall;
// the character's top half is used.
func (m Model) toScreen(col, row, rows int) (float64, float64) {
	return float64(col) - float64(m.width/2), float64(2*row - rows)
}

// Run starts the Bubble Tea program for sb.
func Run(sb *sandbox.Sandbox, cfg config.Config) error {
	m := New(sb, cfg)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
		m.help.Width = w
	}
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
