package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

// CreateJournalEntry appends one ledger transaction to the journal.
func (s *Store) CreateJournalEntry(entry JournalEntry) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO journal_entries (entry_id, account_id, kind, amount, balance_after, timestamp)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare journal SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		entry.EntryID, entry.AccountID, entry.Kind,
		entry.Amount, entry.BalanceAfter, entry.Timestamp,
	).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return 0, fmt.Errorf("failed to journal entry '%s': %w", entry.EntryID, ErrEntryExists)
			}
		}
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return newID, nil
}

func (s *Store) GetJournalEntryByEntryID(entryID string) (*JournalEntry, error) {
	row := s.db.QueryRow(`
        SELECT id, entry_id, account_id, kind, amount, balance_after, timestamp
        FROM journal_entries
        WHERE entry_id = ?
    `, entryID)

	e := &JournalEntry{}
	err := row.Scan(&e.ID, &e.EntryID, &e.AccountID, &e.Kind, &e.Amount, &e.BalanceAfter, &e.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal entry '%s': %w", entryID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query journal entry '%s': %w", entryID, err)
	}
	return e, nil
}

// GetJournalEntriesByAccount returns the newest entries of one account
// first. A limit <= 0 returns all of them.
func (s *Store) GetJournalEntriesByAccount(accountID string, limit int) ([]*JournalEntry, error) {
	rows, err := s.db.Query(`
        SELECT id, entry_id, account_id, kind, amount, balance_after, timestamp
        FROM journal_entries
        WHERE account_id = ?
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `, accountID, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanJournalEntries(rows)
}

func (s *Store) GetRecentJournalEntries(limit int) ([]*JournalEntry, error) {
	rows, err := s.db.Query(`
        SELECT id, entry_id, account_id, kind, amount, balance_after, timestamp
        FROM journal_entries
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanJournalEntries(rows)
}

func (s *Store) CreateLoginEvent(event LoginEvent) (int64, error) {
	var newID int64
	err := s.db.QueryRow(`
        INSERT INTO login_events (account_id, outcome, remaining, timestamp)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `, event.AccountID, event.Outcome, event.Remaining, event.Timestamp).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert login event: %w", err)
	}
	return newID, nil
}

func (s *Store) GetLoginEvents(limit int) ([]*LoginEvent, error) {
	rows, err := s.db.Query(`
        SELECT id, account_id, outcome, remaining, timestamp
        FROM login_events
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query login events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var events []*LoginEvent
	for rows.Next() {
		ev := &LoginEvent{}
		if err := rows.Scan(&ev.ID, &ev.AccountID, &ev.Outcome, &ev.Remaining, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan login event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

func (s *Store) scanJournalEntries(rows *sql.Rows) ([]*JournalEntry, error) {
	var entries []*JournalEntry
	for rows.Next() {
		e := &JournalEntry{}
		err := rows.Scan(
			&e.ID, &e.EntryID, &e.AccountID,
			&e.Kind, &e.Amount, &e.BalanceAfter,
			&e.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// sqlLimit maps "no limit" onto SQLite's LIMIT -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
