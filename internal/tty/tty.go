// Package tty reports whether a file descriptor refers to a terminal.
package tty

import "os"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
