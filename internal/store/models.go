package store

// JournalEntry is one ledger transaction as written to the audit journal.
// Amounts are stored as decimal text.
type JournalEntry struct {
	ID           int64
	EntryID      string
	AccountID    string
	Kind         string
	Amount       string
	BalanceAfter string
	Timestamp    int64
}

const (
	OutcomeAuthenticated = "authenticated"
	OutcomeRejected      = "rejected"
	OutcomeLocked        = "locked"
)

// LoginEvent records one authentication attempt. AccountID is the number
// as typed, which may not exist.
type LoginEvent struct {
	ID        int64
	AccountID string
	Outcome   string
	Remaining int
	Timestamp int64
}
