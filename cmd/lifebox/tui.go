package main

import (
	"io"

	"github.com/spf13/cobra"

	"lifebox/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the sandbox in the terminal",
	Long: `Run the sandbox inside the terminal. Each character shows two cells
stacked vertically. Mouse painting and selection work in terminals with
mouse reporting. Press ? for the full key list.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(flags, terminalScale)
	if err != nil {
		return err
	}
	defer s.Close()
	if flags.LogFile == "" {
		// Log lines would tear the alternate screen.
		s.logger.SetOutput(io.Discard)
	}
	if err := tui.Run(s.sb, s.cfg); err != nil {
		return err
	}
	s.logger.Info("tui closed", "generation", s.sb.Generation(), "population", s.sb.Population())
	return nil
}
