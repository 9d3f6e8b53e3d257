package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidCredential = errors.New("invalid account number or PIN")
	ErrLocked            = errors.New("too many failed attempts, card blocked")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidOption     = errors.New("invalid option")
	ErrAccountExists     = errors.New("account already exists")
	ErrLoginFinished     = errors.New("login sequence already finished")
	ErrTransactionFailed = errors.New("transaction failed")
)

// CredentialError reports a rejected attempt while the budget still has
// attempts left. It matches ErrInvalidCredential with errors.Is and never
// says whether the account number exists.
type CredentialError struct {
	Remaining int
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s (attempts remaining: %d)", ErrInvalidCredential, e.Remaining)
}

func (e *CredentialError) Unwrap() error {
	return ErrInvalidCredential
}
