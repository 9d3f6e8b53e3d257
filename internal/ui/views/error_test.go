package views

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hance08/teller/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("menu choice %q: %w", "x", ledger.ErrInvalidInput), "Invalid input. Please enter a number."},
		{ledger.ErrInvalidOption, "Invalid option. Please choose between 1-5."},
		{ledger.ErrInvalidAmount, "Invalid amount. Amount must be positive."},
		{ledger.ErrInsufficientFunds, "Insufficient funds."},
		{ledger.ErrTransactionFailed, "Transaction failed. Please check the amount and your balance."},
		{errors.New("boom"), "An error occurred: boom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage(tt.err))
	}
}

func TestErrorMessage_CredentialErrorHidesWhichFieldFailed(t *testing.T) {
	unknown := ErrorMessage(&ledger.CredentialError{Remaining: 2})
	wrongPIN := ErrorMessage(fmt.Errorf("attempt: %w", ledger.ErrInvalidCredential))
	assert.Equal(t, "Invalid account number or PIN.", unknown)
	assert.Equal(t, unknown, wrongPIN)
}
