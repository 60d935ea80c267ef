package ui

import (
	"fmt"
	"io"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(symCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(symCross+" "+msg))
}
