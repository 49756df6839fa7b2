package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled decides whether output written to w should be colourised.
//
// Returns false if:
//   - want is false (--no-color or config)
//   - NO_COLOR is set (https://no-color.org)
//   - TERM=dumb
//   - w is not a terminal (pipes, files, buffers)
func ColorEnabled(want bool, w io.Writer) bool {
	if !want {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
