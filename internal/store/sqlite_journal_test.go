package store

import (
	"errors"
	"os"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStoreWithDB(db), mock
}

func sampleEntry() JournalEntry {
	return JournalEntry{
		EntryID:      "5f0c3c8e-2c1a-4a55-9d55-0b8d6c9b1a11",
		AccountID:    "12345",
		Kind:         "Deposit",
		Amount:       "500",
		BalanceAfter: "10500",
		Timestamp:    1700000000000,
	}
}

func TestStore_CreateJournalEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, mock := newMockStore(t)
		e := sampleEntry()

		mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO journal_entries")).
			ExpectQuery().
			WithArgs(e.EntryID, e.AccountID, e.Kind, e.Amount, e.BalanceAfter, e.Timestamp).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		id, err := s.CreateJournalEntry(e)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("prepare error", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO journal_entries")).
			WillReturnError(errors.New("no such table"))

		_, err := s.CreateJournalEntry(sampleEntry())
		assert.ErrorContains(t, err, "failed to prepare journal SQL")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO journal_entries")).
			ExpectQuery().
			WillReturnError(errors.New("disk I/O error"))

		_, err := s.CreateJournalEntry(sampleEntry())
		assert.ErrorContains(t, err, "failed to insert journal entry")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_GetJournalEntriesByAccount(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "entry_id", "account_id", "kind", "amount", "balance_after", "timestamp"}).
		AddRow(2, "b", "12345", "Withdrawal", "20", "10480", 1700000000002).
		AddRow(1, "a", "12345", "Deposit", "500", "10500", 1700000000001)

	mock.ExpectQuery(regexp.QuoteMeta("FROM journal_entries")).
		WithArgs("12345", -1).
		WillReturnRows(rows)

	entries, err := s.GetJournalEntriesByAccount("12345", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Withdrawal", entries[0].Kind)
	assert.Equal(t, "10500", entries[1].BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateLoginEvent(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO login_events")).
		WithArgs("99999", OutcomeRejected, 2, int64(1700000000000)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := s.CreateLoginEvent(LoginEvent{
		AccountID: "99999",
		Outcome:   OutcomeRejected,
		Remaining: 2,
		Timestamp: 1700000000000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetLoginEventsQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM login_events")).
		WithArgs(10).
		WillReturnError(errors.New("locked"))

	_, err := s.GetLoginEvents(10)
	assert.ErrorContains(t, err, "failed to query login events")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SQLiteInMemory(t *testing.T) {
	s, err := NewStore(MemoryPath, os.DirFS("../.."))
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	first := sampleEntry()
	second := sampleEntry()
	second.EntryID = "second"
	second.Kind = "Withdrawal"
	second.Timestamp++
	other := sampleEntry()
	other.EntryID = "other"
	other.AccountID = "67890"

	for _, e := range []JournalEntry{first, second, other} {
		_, err := s.CreateJournalEntry(e)
		require.NoError(t, err)
	}

	_, err = s.CreateJournalEntry(first)
	assert.ErrorIs(t, err, ErrEntryExists)

	entries, err := s.GetJournalEntriesByAccount("12345", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].EntryID)

	recent, err := s.GetRecentJournalEntries(1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	got, err := s.GetJournalEntryByEntryID(first.EntryID)
	require.NoError(t, err)
	assert.Equal(t, first.Amount, got.Amount)

	_, err = s.GetJournalEntryByEntryID("missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.CreateLoginEvent(LoginEvent{AccountID: "12345", Outcome: OutcomeAuthenticated, Remaining: 3, Timestamp: 1})
	require.NoError(t, err)
	events, err := s.GetLoginEvents(0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, OutcomeAuthenticated, events[0].Outcome)

	_, err = s.CreateLoginEvent(LoginEvent{AccountID: "12345", Outcome: "maybe", Timestamp: 2})
	assert.Error(t, err)
}

func TestIsMemoryPath(t *testing.T) {
	assert.True(t, IsMemoryPath(":memory:"))
	assert.True(t, IsMemoryPath("file::memory:?cache=shared"))
	assert.False(t, IsMemoryPath("/tmp/teller.db"))
}
