// Package terminal reports what the attached terminal can do.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal
const DefaultWidth = 80

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetWidth returns the width of the terminal, or DefaultWidth if it cannot be determined
func GetWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Rule returns a horizontal line of width cells with label centred in it
func Rule(width int, label string) string {
	if label != "" {
		label = " " + label + " "
	}

	side := (width - len([]rune(label))) / 2
	if side < 1 {
		side = 1
	}
	rest := width - side - len([]rune(label))
	if rest < 1 {
		rest = 1
	}

	return strings.Repeat("─", side) + label + strings.Repeat("─", rest)
}
