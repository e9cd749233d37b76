package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintBanner prints the bank name shown once when the menu opens.
func PrintBanner(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintHeading(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Println(fmt.Sprintf("# %s", fmt.Sprintf(format, a...)))
}
