package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Success writes a success line such as "-> Package generated (1.5 KB)"
func Success(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(w, SuccessStyle.Render("->")+" "+fmt.Sprintf(format, args...))
}

// Error writes an error line prefixed with pterm's error prefix
func Error(w io.Writer, err error) {
	printer := pterm.Error.WithWriter(w)
	printer.Println(err.Error())
}

// Warning writes a warning line prefixed with pterm's warning prefix
func Warning(w io.Writer, format string, args ...interface{}) {
	printer := pterm.Warning.WithWriter(w)
	printer.Printfln(format, args...)
}

// DisableColor turns off pterm and lipgloss coloring for plain output
func DisableColor() {
	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
}
