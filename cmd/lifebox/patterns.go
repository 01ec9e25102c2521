package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifebox/internal/core"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in patterns",
	Long:  `Shows every pattern that --pattern accepts and the P key cycles through.`,
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	list := core.Patterns()
	if len(list) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Built-in patterns:")
	fmt.Println()

	maxName := len("Name")
	for _, p := range list {
		maxName = max(maxName, len(p.Name))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxName, "Name", "Size", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxName, "----", "----", "-----------")
	for _, p := range list {
		w, h := p.Size()
		fmt.Printf("  %-*s  %-7s  %s\n", maxName, p.Name, fmt.Sprintf("%dx%d", w, h), p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'lifebox --pattern <name>' to start with one.")
}
