//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

func consoleSupportsColor(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
