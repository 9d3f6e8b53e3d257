package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
)

// ValidateAccountNumberInput only checks the shape of what was typed. It
// must never consult the account store, or the prompt would reveal which
// account numbers exist.
func ValidateAccountNumberInput(val string) error {
	s := strings.TrimSpace(val)
	if s == "" {
		return fmt.Errorf("account number can't be empty")
	}
	if len(s) > constants.MaxNameLen {
		return fmt.Errorf("account number too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

func ValidatePINInput(val string) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("PIN can't be empty")
	}
	return nil
}

// MaxAmountInputLen is more than enough for any amount ParseAmount accepts.
const MaxAmountInputLen = 32

// ValidateAmountInput only bounds the length. Empty or non-numeric text is
// left to the amount parser so it is reported as invalid input.
func ValidateAmountInput(val string) error {
	if len(val) > MaxAmountInputLen {
		return fmt.Errorf("amount too long (max %d characters)", MaxAmountInputLen)
	}
	return nil
}
