package service

import (
	"errors"
	"testing"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct{ mock.Mock }

func (m *mockRepository) CreateJournalEntry(entry store.JournalEntry) (int64, error) {
	args := m.Called(entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) GetJournalEntryByEntryID(entryID string) (*store.JournalEntry, error) {
	args := m.Called(entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.JournalEntry), args.Error(1)
}

func (m *mockRepository) GetJournalEntriesByAccount(accountID string, limit int) ([]*store.JournalEntry, error) {
	args := m.Called(accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.JournalEntry), args.Error(1)
}

func (m *mockRepository) GetRecentJournalEntries(limit int) ([]*store.JournalEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.JournalEntry), args.Error(1)
}

func (m *mockRepository) CreateLoginEvent(event store.LoginEvent) (int64, error) {
	args := m.Called(event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) GetLoginEvents(limit int) ([]*store.LoginEvent, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.LoginEvent), args.Error(1)
}

func (m *mockRepository) Close() error {
	return m.Called().Error(0)
}

func testConfig() *config.Config {
	cfg := config.NewDefault()
	cfg.Security.BcryptCost = bcrypt.MinCost
	return cfg
}

func init() {
	logger.Discard()
}

func TestNewService_SeedsAccounts(t *testing.T) {
	svc, err := NewService(new(mockRepository), testConfig())
	require.NoError(t, err)

	accounts := svc.Account.GetAllAccounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, "11111", accounts[0].ID())
	assert.Equal(t, "Bob Johnson", accounts[0].HolderName())

	john, err := svc.Account.GetAccountByID("12345")
	require.NoError(t, err)
	assert.True(t, john.Balance().Equal(decimal.NewFromInt(10000)))
	assert.True(t, john.ValidateCredential("1234"))
	assert.False(t, john.ValidateCredential("4321"))
	assert.Equal(t, "10000.00 USD", svc.Account.GetAccountBalanceFormatted(john))

	_, err = svc.Account.GetAccountByID("99999")
	assert.ErrorContains(t, err, "doesn't exist")
}

func TestNewService_RejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name  string
		seeds []config.AccountSeed
		want  error
		msg   string
	}{
		{
			name: "duplicate id",
			seeds: []config.AccountSeed{
				{ID: "1", Holder: "A", PIN: "1111", Balance: "1"},
				{ID: "1", Holder: "B", PIN: "2222", Balance: "2"},
			},
			want: ledger.ErrAccountExists,
		},
		{
			name:  "negative balance",
			seeds: []config.AccountSeed{{ID: "1", Holder: "A", PIN: "1111", Balance: "-5"}},
			want:  ledger.ErrInvalidAmount,
		},
		{
			name:  "unparsable balance",
			seeds: []config.AccountSeed{{ID: "1", Holder: "A", PIN: "1111", Balance: "lots"}},
			msg:   "invalid opening balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Accounts = tt.seeds

			_, err := NewService(new(mockRepository), cfg)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestService_DepositIsJournaled(t *testing.T) {
	repo := new(mockRepository)
	svc, err := NewService(repo, testConfig())
	require.NoError(t, err)

	repo.On("CreateJournalEntry", mock.MatchedBy(func(e store.JournalEntry) bool {
		return e.AccountID == "12345" && e.Kind == "Deposit" && e.Amount == "500" && e.BalanceAfter == "10500"
	})).Return(int64(1), nil).Once()

	john, err := svc.Account.GetAccountByID("12345")
	require.NoError(t, err)
	_, err = john.Deposit(decimal.NewFromInt(500))
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestService_JournalFailureKeepsBalance(t *testing.T) {
	repo := new(mockRepository)
	svc, err := NewService(repo, testConfig())
	require.NoError(t, err)

	repo.On("CreateJournalEntry", mock.Anything).Return(int64(0), errors.New("disk full"))

	john, err := svc.Account.GetAccountByID("12345")
	require.NoError(t, err)
	bal, err := john.Withdraw(decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.NewFromInt(9980)))
}

func TestService_RecordOpening(t *testing.T) {
	repo := new(mockRepository)
	cfg := testConfig()
	cfg.ATM.RecordOpening = true
	cfg.Accounts = cfg.Accounts[:1]

	repo.On("CreateJournalEntry", mock.MatchedBy(func(e store.JournalEntry) bool {
		return e.Kind == "AccountCreated" && e.BalanceAfter == "10000"
	})).Return(int64(1), nil).Once()

	svc, err := NewService(repo, cfg)
	require.NoError(t, err)

	john, err := svc.Account.GetAccountByID("12345")
	require.NoError(t, err)
	assert.Equal(t, 1, john.HistoryLen())
	repo.AssertExpectations(t)
}

func TestService_LoginEventsAreJournaled(t *testing.T) {
	repo := new(mockRepository)
	svc, err := NewService(repo, testConfig())
	require.NoError(t, err)

	repo.On("CreateLoginEvent", mock.MatchedBy(func(e store.LoginEvent) bool {
		return e.AccountID == "12345" && e.Outcome == store.OutcomeRejected && e.Remaining == 2
	})).Return(int64(1), nil).Once()
	repo.On("CreateLoginEvent", mock.MatchedBy(func(e store.LoginEvent) bool {
		return e.AccountID == "12345" && e.Outcome == store.OutcomeAuthenticated
	})).Return(int64(2), nil).Once()

	login := svc.Account.NewLogin()
	_, err = login.Attempt("12345", "0000")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredential)

	acc, err := login.Attempt("12345", "1234")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", acc.HolderName())

	repo.AssertExpectations(t)
}

func TestService_LoginLocksAfterMaxAttempts(t *testing.T) {
	repo := new(mockRepository)
	cfg := testConfig()
	cfg.ATM.MaxAttempts = 2
	svc, err := NewService(repo, cfg)
	require.NoError(t, err)

	repo.On("CreateLoginEvent", mock.Anything).Return(int64(0), errors.New("journal offline"))

	login := svc.Account.NewLogin()
	_, err = login.Attempt("99999", "0000")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredential)
	_, err = login.Attempt("99999", "0000")
	assert.ErrorIs(t, err, ledger.ErrLocked)
	assert.Equal(t, ledger.Locked, login.State())

	repo.AssertNumberOfCalls(t, "CreateLoginEvent", 2)
}

func TestJournalService_GetEntries(t *testing.T) {
	repo := new(mockRepository)
	js := NewJournalService(repo)

	byAccount := []*store.JournalEntry{{EntryID: "a", AccountID: "12345"}}
	recent := []*store.JournalEntry{{EntryID: "b"}, {EntryID: "c"}}
	repo.On("GetJournalEntriesByAccount", "12345", 5).Return(byAccount, nil)
	repo.On("GetRecentJournalEntries", 0).Return(recent, nil)
	repo.On("GetLoginEvents", 3).Return(nil, errors.New("boom"))

	got, err := js.GetEntries("12345", 5)
	require.NoError(t, err)
	assert.Equal(t, byAccount, got)

	got, err = js.GetEntries("", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = js.GetLoginEvents(3)
	assert.ErrorContains(t, err, "failed to get login events")
}

func TestJournalService_NilRepository(t *testing.T) {
	js := NewJournalService(nil)

	assert.NoError(t, js.RecordTransaction("12345", ledger.Transaction{}))
	js.ObserveLogin("12345", ledger.Locked, 0)

	entries, err := js.GetEntries("", 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
