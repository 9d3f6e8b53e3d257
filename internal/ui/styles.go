package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a dim rule between session screens.
func Separator() {
	pterm.FgGray.Println("──────────────────────────────────────")
}

// Banner prints a boxed, centered message such as the welcome screen.
func Banner(title string, lines ...string) {
	content := strings.Join(lines, "\n")
	if content == "" {
		content = title
	}

	pterm.DefaultCenter.Println(
		pterm.DefaultBox.
			WithTitle(pterm.LightCyan(title)).
			WithTitleTopCenter().
			Sprint(content),
	)
}
