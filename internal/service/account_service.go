package service

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// decoyPIN is hashed once so unknown account numbers pay the same
// comparison cost as known ones.
const decoyPIN = "not-a-real-pin"

type AccountService struct {
	ledger  *ledger.Store
	config  *config.Config
	journal *JournalService
}

func NewAccountService(cfg *config.Config, journal *JournalService) (*AccountService, error) {
	decoy, err := ledger.NewCredential(decoyPIN, cfg.Security.HashPins, cfg.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credential check: %w", err)
	}

	return &AccountService{
		ledger:  ledger.NewStore(decoy),
		config:  cfg,
		journal: journal,
	}, nil
}

// Seed creates one account per seed entry. It stops at the first invalid
// entry.
func (as *AccountService) Seed(seeds []config.AccountSeed) error {
	for _, seed := range seeds {
		if _, err := as.CreateAccount(seed); err != nil {
			return err
		}
	}

	logger.Log.WithField("accounts", as.ledger.Len()).Info("Accounts seeded")
	return nil
}

func (as *AccountService) CreateAccount(seed config.AccountSeed) (*ledger.Account, error) {
	id := strings.TrimSpace(seed.ID)

	opening, err := decimal.NewFromString(strings.TrimSpace(seed.Balance))
	if err != nil {
		return nil, fmt.Errorf("account %s: invalid opening balance %q", id, seed.Balance)
	}

	cred, err := ledger.NewCredential(seed.PIN, as.config.Security.HashPins, as.config.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", id, err)
	}

	opts := ledger.Options{
		HistoryLimit:  as.config.ATM.HistoryLimit,
		RecordOpening: as.config.ATM.RecordOpening,
	}
	if as.journal != nil {
		opts.Recorder = as.journal
	}

	acc, err := ledger.NewAccount(id, seed.Holder, cred, opening, opts)
	if err != nil {
		return nil, err
	}

	if err := as.ledger.Add(acc); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": id,
		"hashed_pin": as.config.Security.HashPins,
	}).Debug("Account created")

	return acc, nil
}

func (as *AccountService) GetAllAccounts() []*ledger.Account {
	return as.ledger.Accounts()
}

func (as *AccountService) GetAccountByID(id string) (*ledger.Account, error) {
	acc, ok := as.ledger.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("account '%s' doesn't exist", id)
	}
	return acc, nil
}

func (as *AccountService) GetAccountBalanceFormatted(acc *ledger.Account) string {
	return utils.FormatAmount(acc.Balance(), as.config.Defaults.Currency)
}

// NewLogin opens a fresh authentication sequence with the configured
// attempt budget.
func (as *AccountService) NewLogin() *ledger.Login {
	var observer ledger.LoginObserver
	if as.journal != nil {
		observer = as.journal
	}
	return ledger.NewLogin(as.ledger, as.config.ATM.MaxAttempts, observer)
}
