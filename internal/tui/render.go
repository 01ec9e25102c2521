package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifebox/internal/config"
	"lifebox/pkg/life"
)

type styles struct {
	live      lipgloss.Style
	marker    lipgloss.Style
	selection lipgloss.Style
	status    lipgloss.Style
	label     lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
}

func newStyles(c config.ColorConfig) styles {
	return styles{
		live:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Live)),
		marker:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Marker)).Bold(true),
		selection: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Live)).Background(lipgloss.Color(c.Selection)),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		running:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// halfBlocks is indexed by top | bottom<<1.
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

type shade int

const (
	shadePlain shade = iota
	shadeSelected
	shadeMarker
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderGrid())
	b.WriteRune('\n')
	b.WriteString(m.renderStatus())
	b.WriteRune('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderGrid draws the visible cells. Adjacent characters with the same
// shade are grouped into one styled run.
func (m Model) renderGrid() string {
	cols, rows := max(1, m.width), m.gridRows()
	lo, hi := m.view.VisibleCells(float64(cols), float64(2*rows))
	m.raster.Resize(hi.X-lo.X+1, hi.Y-lo.Y+1)
	m.raster.MoveTo(lo.X, lo.Y)
	m.view.Raster(m.raster)

	selLo, selHi, selecting := m.view.Selection().Bounds()
	showMarker := m.view.MarkerMode() && !m.view.Running()
	marker := m.view.Marker()

	var sb strings.Builder
	sb.Grow(cols*rows*2 + rows)
	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		var run strings.Builder
		current := shadePlain
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(m.shadeStyle(current).Render(run.String()))
				run.Reset()
			}
		}
		for col := range cols {
			sx, sy := m.toScreen(col, row, rows)
			top := m.view.ScreenToCell(sx, sy)
			bottom := m.view.ScreenToCell(sx, sy+1)
			idx := 0
			if m.raster.At(top.X, top.Y) != 0 {
				idx |= 1
			}
			if bottom != top && m.raster.At(bottom.X, bottom.Y) != 0 {
				idx |= 2
			}
			if bottom == top && idx == 1 {
				idx = 3
			}
			r := halfBlocks[idx]

			s := shadePlain
			switch {
			case showMarker && (top == marker || bottom == marker):
				s = shadeMarker
				if r == ' ' {
					r = '+'
				}
			case selecting && (within(top, selLo, selHi) || within(bottom, selLo, selHi)):
				s = shadeSelected
			}
			if s != current {
				flush()
				current = s
			}
			run.WriteRune(r)
		}
		flush()
	}
	return sb.String()
}

func within(c, lo, hi life.Cell) bool {
	return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y
}

func (m Model) shadeStyle(s shade) lipgloss.Style {
	switch s {
	case shadeSelected:
		return m.styles.selection
	case shadeMarker:
		return m.styles.marker
	default:
		return m.styles.live
	}
}

// renderStatus flattens the sandbox status into one line.
func (m Model) renderStatus() string {
	snap := m.view.Status()
	parts := make([]string, 0, 8)
	for _, g := range snap.Groups {
		for _, st := range g.Stats {
			value := m.styles.status.Render(st.Value)
			if st.Label == "State" {
				value = m.styles.paused.Render(st.Value)
				if m.view.Running() {
					value = m.styles.running.Render(st.Value)
				}
			}
			parts = append(parts, m.styles.label.Render(st.Label+":")+" "+value)
		}
	}
	return lipgloss.NewStyle().MaxWidth(max(1, m.width)).Render(strings.Join(parts, "  "))
}
