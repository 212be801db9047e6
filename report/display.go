package report

import "github.com/pterm/pterm"

// Diagnostic printing for the compiler driver.  Each message renders as a
// colored badge (the tag) followed by the message text on the same line.
type badge struct {
	label *pterm.Style
	text  pterm.Color
}

var (
	errorBadge = badge{pterm.NewStyle(pterm.BgRed, pterm.FgWhite), pterm.FgRed}
	warnBadge  = badge{pterm.NewStyle(pterm.BgYellow, pterm.FgBlack), pterm.FgYellow}
	infoBadge  = badge{pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack), pterm.FgLightGreen}
)

func (b badge) print(tag, msg string) {
	b.label.Print(tag)
	b.text.Println(" " + msg)
}

// PrintErrorMessage prints a compiler error to the console.
func PrintErrorMessage(tag string, err error) {
	errorBadge.print(tag, err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	warnBadge.print(tag, msg)
}

// PrintInfoMessage prints an informational message to the console.
func PrintInfoMessage(tag, msg string) {
	infoBadge.print(tag, msg)
}
