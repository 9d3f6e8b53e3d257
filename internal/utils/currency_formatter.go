package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals and the currency code,
// e.g. "10500.00 USD".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(constants.DisplayPlaces)
	}
	return fmt.Sprintf("%s %s", amount.StringFixed(constants.DisplayPlaces), currency)
}

// ParseAmount converts user text into an amount. Anything that is not a
// plain decimal number is reported as ledger.ErrInvalidInput; the sign is
// left for the ledger to judge.
// e.g., "150.50" -> 150.50, "150" -> 150, "1e3" -> error
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount: %w", ledger.ErrInvalidInput)
	}

	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amountStr, ledger.ErrInvalidInput)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amountStr, ledger.ErrInvalidInput)
	}

	if amount.Abs().GreaterThan(constants.MaxAmount) {
		return decimal.Zero, fmt.Errorf("amount %q too large: %w", amountStr, ledger.ErrInvalidInput)
	}

	return amount, nil
}
