package store

type Repository interface {
	// Journal Operations
	CreateJournalEntry(entry JournalEntry) (int64, error)
	GetJournalEntryByEntryID(entryID string) (*JournalEntry, error)
	GetJournalEntriesByAccount(accountID string, limit int) ([]*JournalEntry, error)
	GetRecentJournalEntries(limit int) ([]*JournalEntry, error)

	// Login Operations
	CreateLoginEvent(event LoginEvent) (int64, error)
	GetLoginEvents(limit int) ([]*LoginEvent, error)

	Close() error
}
