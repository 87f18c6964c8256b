package grid

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when stdout is not a terminal.
const (
	fallbackTerminalWidth  = 80
	fallbackTerminalHeight = 24
)

// TerminalSize returns the current size of the terminal attached to stdout in
// columns and lines, or 80x24 if stdout is not a terminal.
func TerminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackTerminalWidth, fallbackTerminalHeight
	}

	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return fallbackTerminalWidth, fallbackTerminalHeight
	}

	return width, height
}
