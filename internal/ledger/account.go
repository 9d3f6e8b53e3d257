package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hance08/teller/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Recorder receives every transaction an account appends. Failures are
// logged and do not undo the balance change.
type Recorder interface {
	RecordTransaction(accountID string, tx Transaction) error
}

type Options struct {
	// HistoryLimit bounds the retained history; 0 keeps every entry.
	HistoryLimit int
	// RecordOpening appends an AccountCreated entry carrying a positive opening balance.
	RecordOpening bool
	Recorder      Recorder
	Now           func() time.Time
}

// Account owns a balance and its transaction history. All methods are
// safe for concurrent use; deposit and withdraw are serialised per account.
type Account struct {
	id         string
	holderName string
	credential Credential

	recorder Recorder
	now      func() time.Time

	mu      sync.Mutex
	balance decimal.Decimal
	history *history
}

func NewAccount(id, holderName string, credential Credential, opening decimal.Decimal, opts Options) (*Account, error) {
	if id == "" {
		return nil, errors.New("account id can't be empty")
	}
	if credential == nil {
		return nil, fmt.Errorf("account %s: credential is required", id)
	}
	if opening.IsNegative() {
		return nil, fmt.Errorf("account %s: opening balance can't be negative: %w", id, ErrInvalidAmount)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	acc := &Account{
		id:         id,
		holderName: holderName,
		credential: credential,
		recorder:   opts.Recorder,
		now:        now,
		balance:    opening,
		history:    newHistory(opts.HistoryLimit),
	}

	// an empty account has nothing to record
	if opts.RecordOpening && opening.IsPositive() {
		acc.appendLocked(KindAccountCreated, opening)
	}

	return acc, nil
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) HolderName() string {
	return a.holderName
}

func (a *Account) ValidateCredential(pin string) bool {
	return a.credential.Match(pin)
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits amount and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.appendLocked(KindDeposit, amount)

	return a.balance, nil
}

// Withdraw debits amount and returns the new balance. Amount validity is
// checked before sufficiency.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return decimal.Zero, ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.appendLocked(KindWithdrawal, amount)

	return a.balance, nil
}

// RecentHistory returns up to count of the newest transactions, oldest
// first. The slice is a copy.
func (a *Account) RecentHistory(count int) []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.recent(count)
}

func (a *Account) HistoryLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.len()
}

// appendLocked must be called with mu held (or before the account is shared).
func (a *Account) appendLocked(kind Kind, amount decimal.Decimal) {
	tx := newTransaction(kind, amount, a.balance, a.now())
	a.history.append(tx)

	if a.recorder == nil {
		return
	}
	if err := a.recorder.RecordTransaction(a.id, tx); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"account_id":     a.id,
			"transaction_id": tx.ID.String(),
			"kind":           tx.Kind,
		}).WithError(err).Warn("Failed to record transaction in journal")
	}
}
