package errhandler

import (
	"context"
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err means the user abandoned a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// Message returns the line printed for err and the process exit code.
func Message(err error) (string, int) {
	if IsInterrupt(err) {
		return "Session cancelled", 0
	}
	return capitalize(err.Error()), 1
}

func HandleError(err error) {
	msg, code := Message(err)
	if code == 0 {
		pterm.Warning.Println(msg)
	} else {
		pterm.Error.Println(msg)
	}
	os.Exit(code)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
