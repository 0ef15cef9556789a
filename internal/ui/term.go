package ui

import (
	"os"

	"golang.org/x/term"
)

// termWidth returns the terminal width, or a conservative default when
// stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
