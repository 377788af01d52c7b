package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// newStatus returns the colour used for status lines written to w. Colour is
// decided from w itself, not from stdout.
func newStatus(w io.Writer) *color.Color {
	status := color.New(color.FgGreen, color.Bold)
	if colorEnabled(w) {
		status.EnableColor()
	} else {
		status.DisableColor()
	}
	return status
}

func colorEnabled(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
