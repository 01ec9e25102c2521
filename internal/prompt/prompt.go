// Package prompt asks for the generation delay on startup.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ErrNoInput is returned when input ends before a valid speed was read.
var ErrNoInput = errors.New("no speed entered")

// ParseSpeed parses a generation delay in milliseconds. Only positive
// integers are accepted.
func ParseSpeed(line string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", strings.TrimSpace(line))
	}
	if v <= 0 {
		return 0, fmt.Errorf("speed must be positive, got %d", v)
	}
	return v, nil
}

// Speed writes a question to out and reads lines from in until one parses
// as a positive integer. Invalid lines are reported and the question is
// repeated; only the end of input stops the loop.
func Speed(in io.Reader, out io.Writer) (int, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, questionStyle.Render("Milliseconds per generation:")+" ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("reading speed: %w", err)
			}
			return 0, ErrNoInput
		}
		v, err := ParseSpeed(sc.Text())
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
	}
}
