package report

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"lsc/common"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// formatTagged formats a message behind a highlighted tag.
func formatTagged(tagStyle *pterm.Style, msgColor pterm.Color, tag, msg string) string {
	return tagStyle.Sprint(tag) + msgColor.Sprint(" "+msg) + "\n"
}

const fatalErrorPostlude = "lsc --help for a list of options"

func formatFatal(msg string) string {
	return ErrorStyleBG.Sprint("Fatal Error") + ErrorColorFG.Sprint(" "+msg) + "\n" +
		InfoColorFG.Sprint(fatalErrorPostlude) + "\n"
}

func formatBanner() string {
	return fmt.Sprintf("LSC - Interpreted Compiler %s\n", InfoColorFG.Sprint("v"+common.LSCVersion))
}

func formatFinished(success bool, elapsed time.Duration) string {
	if success {
		return SuccessColorFG.Sprint("All done! ") + fmt.Sprintf("(%.3fs)\n", elapsed.Seconds())
	}

	return ErrorColorFG.Sprint("Oh no! ") + fmt.Sprintf("(%.3fs)\n", elapsed.Seconds())
}
