// Package terminal detects whether a file refers to an interactive terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns whether the given file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
