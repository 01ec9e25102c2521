// lifebox is an interactive Conway's Life sandbox on an unbounded grid.
//
// Usage:
//
//	lifebox                 - Open the sandbox window (built with -tags ebiten)
//	lifebox window          - Same as above
//	lifebox tui             - Run the sandbox inside the terminal
//	lifebox patterns        - List the built-in patterns
//
// Global flags:
//
//	--config <path>    - Custom YAML configuration
//	--speed <ms>       - Delay between generations; asked on startup when unset
//	--zoom <px>        - Initial pixels per cell
//	--pattern <name>   - Stamp a built-in pattern at the origin
//	--seed <value>     - Scatter RNG seed (0 = time based)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "lifebox/internal/patterns"
)

var flags = &Flags{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lifebox",
	Short: "Conway's Game of Life sandbox",
	Long: `lifebox is a sandbox for Conway's Game of Life on an unbounded grid.

Paint cells with the left mouse button, drag a selection with the right
button, copy and paste with Ctrl+C / Ctrl+V, and press Enter to run.

Available commands:
  window    - Graphical window (default, requires the ebiten build tag)
  tui       - Terminal front-end
  patterns  - List built-in patterns

Examples:
  lifebox --speed 50
  lifebox tui --pattern glider
  lifebox patterns`,
	SilenceUsage: true,
	RunE:         runWindowCmd,
}

func init() {
	flags.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(patternsCmd)
}
