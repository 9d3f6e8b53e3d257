package views

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/pterm/pterm"
)

// ErrorMessage turns a session error into the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return "Invalid input. Please enter a number."
	case errors.Is(err, ledger.ErrInvalidOption):
		return fmt.Sprintf("Invalid option. Please choose between %d-%d.", constants.MenuMin, constants.MenuMax)
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Invalid amount. Amount must be positive."
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, ledger.ErrInvalidCredential):
		return "Invalid account number or PIN."
	case errors.Is(err, ledger.ErrLocked):
		return "Too many failed attempts. Your card has been blocked."
	case errors.Is(err, ledger.ErrTransactionFailed):
		return "Transaction failed. Please check the amount and your balance."
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

func RenderError(err error) {
	pterm.Println()
	pterm.Error.Println(ErrorMessage(err))
}
