package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit        Kind = "Deposit"
	KindWithdrawal     Kind = "Withdrawal"
	KindAccountCreated Kind = "AccountCreated"
)

// Transaction is an immutable record of a single balance-affecting event.
// It is passed by value so callers never share the account's copy.
type Transaction struct {
	ID           uuid.UUID
	Kind         Kind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}

func newTransaction(kind Kind, amount, balanceAfter decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Timestamp:    at,
	}
}
