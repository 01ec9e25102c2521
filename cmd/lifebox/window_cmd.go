package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the sandbox window",
	Long: `Open the graphical sandbox. Requires a build with -tags ebiten.

Controls:
  Left mouse        - Paint or erase cells
  Right mouse       - Drag a selection
  Ctrl+C / Ctrl+V   - Copy selection / paste at marker
  Enter             - Run or pause
  Tab / Space       - Marker mode / toggle marker cell
  Arrows            - Pan (move marker)
  I / O             - Zoom in / out
  N R P Delete      - Step, scatter, next pattern, clear
  G / H             - Toggle grid lines / status panel
  Q / Esc           - Quit`,
	RunE: runWindowCmd,
}

var errNoWindow = errors.New("the window front-end requires the ebiten build tag: go run -tags ebiten ./cmd/lifebox (or use 'lifebox tui')")

func runWindowCmd(cmd *cobra.Command, args []string) error {
	if !windowAvailable {
		return errNoWindow
	}
	s, err := newSession(flags, windowScale)
	if err != nil {
		return err
	}
	defer s.Close()
	return runWindow(s)
}
