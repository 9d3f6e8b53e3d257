package atm

import (
	"context"
	"errors"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Terminal supplies what the user types. Errors end the session, so an
// implementation should only return one when input is no longer available
// (closed stream, interrupt).
type Terminal interface {
	AccountNumber() (string, error)
	PIN() (string, error)
	MenuChoice() (string, error)
	Amount(op Option) (string, error)
}

// Display renders session events. It never decides anything.
type Display interface {
	Welcome()
	LoginSucceeded(holderName string)
	LoginFailed(remaining int)
	Locked()
	Menu(options []Option)
	Balance(id, holderName string, balance decimal.Decimal)
	Deposited(amount, balance decimal.Decimal)
	Withdrew(amount, balance decimal.Decimal)
	History(entries []ledger.Transaction, total int)
	Error(err error)
	Goodbye()
}

// LoginStarter hands out fresh authentication sequences.
type LoginStarter interface {
	NewLogin() *ledger.Login
}

type Options struct {
	// HistoryDisplay is how many of the newest entries View History shows.
	HistoryDisplay int
	// Reporting is constants.ReportingDetailed or constants.ReportingGeneric.
	Reporting string
}

// Machine drives one ATM session: login, then the menu until Exit.
type Machine struct {
	logins  LoginStarter
	term    Terminal
	display Display
	opts    Options
}

func NewMachine(logins LoginStarter, term Terminal, display Display, opts Options) *Machine {
	if opts.HistoryDisplay < 1 {
		opts.HistoryDisplay = constants.DefaultHistoryDisplay
	}
	if opts.Reporting == "" {
		opts.Reporting = constants.ReportingDetailed
	}
	return &Machine{
		logins:  logins,
		term:    term,
		display: display,
		opts:    opts,
	}
}

// Run blocks until the user exits, the login locks, input fails or ctx is
// cancelled. A locked login returns ledger.ErrLocked; Exit returns nil.
func (m *Machine) Run(ctx context.Context) error {
	m.display.Welcome()

	acc, err := m.authenticate(ctx)
	if err != nil {
		return err
	}

	return m.menu(ctx, acc)
}

func (m *Machine) authenticate(ctx context.Context) (*ledger.Account, error) {
	login := m.logins.NewLogin()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := m.term.AccountNumber()
		if err != nil {
			return nil, err
		}
		pin, err := m.term.PIN()
		if err != nil {
			return nil, err
		}

		acc, err := login.Attempt(strings.TrimSpace(id), strings.TrimSpace(pin))
		if err == nil {
			logger.Log.WithField("account_id", acc.ID()).Info("Session authenticated")
			m.display.LoginSucceeded(acc.HolderName())
			return acc, nil
		}

		if errors.Is(err, ledger.ErrLocked) {
			logger.Log.Warn("Session locked after too many failed attempts")
			m.display.Locked()
			return nil, err
		}

		var credErr *ledger.CredentialError
		if errors.As(err, &credErr) {
			m.display.LoginFailed(credErr.Remaining)
			continue
		}

		return nil, err
	}
}

func (m *Machine) menu(ctx context.Context, acc *ledger.Account) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.display.Menu(Options())

		text, err := m.term.MenuChoice()
		if err != nil {
			return err
		}

		opt, err := ParseOption(text)
		if err != nil {
			m.display.Error(err)
			continue
		}

		switch opt {
		case CheckBalance:
			m.display.Balance(acc.ID(), acc.HolderName(), acc.Balance())
		case Deposit, Withdraw:
			if err := m.transact(acc, opt); err != nil {
				return err
			}
		case ViewHistory:
			m.display.History(acc.RecentHistory(m.opts.HistoryDisplay), acc.HistoryLen())
		case Exit:
			logger.Log.WithField("account_id", acc.ID()).Info("Session ended")
			m.display.Goodbye()
			return nil
		}
	}
}

// transact runs one deposit or withdrawal. Only terminal failures are
// returned; everything else is rendered and the menu continues.
func (m *Machine) transact(acc *ledger.Account, op Option) error {
	text, err := m.term.Amount(op)
	if err != nil {
		return err
	}

	amount, err := utils.ParseAmount(text)
	if err != nil {
		m.display.Error(err)
		return nil
	}

	var balance decimal.Decimal
	if op == Deposit {
		balance, err = acc.Deposit(amount)
	} else {
		balance, err = acc.Withdraw(amount)
	}

	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"account_id": acc.ID(),
			"operation":  op.String(),
		}).WithError(err).Debug("Transaction rejected")
		m.display.Error(m.report(err))
		return nil
	}

	if op == Deposit {
		m.display.Deposited(amount, balance)
	} else {
		m.display.Withdrew(amount, balance)
	}
	return nil
}

// report applies the reporting mode. Generic mode hides why an amount
// was refused.
func (m *Machine) report(err error) error {
	if m.opts.Reporting != constants.ReportingGeneric {
		return err
	}
	if errors.Is(err, ledger.ErrInvalidAmount) || errors.Is(err, ledger.ErrInsufficientFunds) {
		return ledger.ErrTransactionFailed
	}
	return err
}
