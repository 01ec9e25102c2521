//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifebox/internal/config"
	"lifebox/internal/render"
	"lifebox/internal/sandbox"
	"lifebox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	sb      *sandbox.Sandbox
	input   *keyboard
	painter *render.CellPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.RGBA
	width      int
	height     int
}

// New constructs a Game for the provided sandbox.
func New(sb *sandbox.Sandbox, cfg config.Config) *Game {
	return &Game{
		sb:      sb,
		input:   &keyboard{},
		painter: render.NewCellPainter(config.MustHex(cfg.Colors.Live)),
		overlay: ui.NewOverlay(ui.OverlayColors{
			Grid:      config.MustHex(cfg.Colors.Grid),
			Marker:    config.MustHex(cfg.Colors.Marker),
			Selection: config.MustHex(cfg.Colors.Selection),
		}),
		hud:        ui.NewHUD(sb),
		background: config.MustHex(cfg.Colors.Background),
		width:      cfg.View.Width,
		height:     cfg.View.Height,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.input.width, g.input.height = g.width, g.height
	g.sb.Update(g.input, time.Now())
	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.sb)
	g.overlay.Draw(screen, g.sb)
	g.hud.Draw(screen)
}

// Layout follows the window size so resizing reveals more of the plane.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
