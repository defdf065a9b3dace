package ui

import (
	"fmt"
	"io"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// OK and Fail print one-line status messages outside the TUI.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(symCheck+" "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(symCross+" "+msg))
}
