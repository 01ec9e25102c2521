//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"lifebox/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowAvailable = true

func runWindow(s *session) error {
	game := app.New(s.sb, s.cfg)

	ebiten.SetWindowTitle("lifebox")
	ebiten.SetTPS(s.cfg.View.TPS)
	ebiten.SetWindowSize(s.cfg.View.Width, s.cfg.View.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	s.logger.Info("window closed", "generation", s.sb.Generation(), "population", s.sb.Population())
	return nil
}
