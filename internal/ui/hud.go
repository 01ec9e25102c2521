//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel in the top-left corner.
type HUD struct {
	source  core.StatusProvider
	visible bool
}

// NewHUD constructs a HUD that reads its lines from source.
func NewHUD(source core.StatusProvider) *HUD {
	return &HUD{source: source, visible: true}
}

// Update toggles visibility.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.source == nil {
		return
	}
	snap := h.source.Status()
	lines := 0
	for _, g := range snap.Groups {
		lines += 1 + len(g.Stats)
	}
	height := panelPadding*2 + lines*lineHeight
	vector.DrawFilledRect(screen, 0, 0, panelWidth, float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight - 3
	for _, g := range snap.Groups {
		text.Draw(screen, g.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, st := range g.Stats {
			text.Draw(screen, st.Label, face, panelPadding+8, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			text.Draw(screen, st.Value, face, panelPadding+valueColumn, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
			y += lineHeight
		}
	}
}

const (
	panelPadding = 8
	panelWidth   = 220
	lineHeight   = 15
	valueColumn  = 96
)
