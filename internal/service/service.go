package service

import (
	"fmt"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/store"
)

type Service struct {
	Config  *config.Config
	Account *AccountService
	Journal *JournalService
}

// NewService builds the in-memory ledger from the configured seed accounts
// and routes every transaction and login attempt to the journal.
func NewService(repo store.Repository, cfg *config.Config) (*Service, error) {
	journal := NewJournalService(repo)

	accounts, err := NewAccountService(cfg, journal)
	if err != nil {
		return nil, err
	}

	if err := accounts.Seed(cfg.Accounts); err != nil {
		return nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	return &Service{
		Config:  cfg,
		Account: accounts,
		Journal: journal,
	}, nil
}
