package atm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
)

// Option is one entry of the main menu, numbered as shown to the user.
type Option int

const (
	CheckBalance Option = iota + constants.MenuMin
	Deposit
	Withdraw
	ViewHistory
	Exit
)

func (o Option) String() string {
	if o < constants.MenuMin || o > constants.MenuMax {
		return fmt.Sprintf("Option(%d)", int(o))
	}
	return constants.MenuLabels[int(o)-constants.MenuMin]
}

// Options lists the menu in display order.
func Options() []Option {
	return []Option{CheckBalance, Deposit, Withdraw, ViewHistory, Exit}
}

// ParseOption reads a menu choice. Text that is not an integer is
// ErrInvalidInput; an integer outside the menu is ErrInvalidOption.
func ParseOption(text string) (Option, error) {
	s := strings.TrimSpace(text)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("menu choice %q is not a number: %w", s, ledger.ErrInvalidInput)
	}

	if n < constants.MenuMin || n > constants.MenuMax {
		return 0, fmt.Errorf("menu choice %d: %w", n, ledger.ErrInvalidOption)
	}

	return Option(n), nil
}
