package service

import (
	"fmt"
	"time"

	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/store"
	"github.com/sirupsen/logrus"
)

// JournalService writes ledger activity to the audit journal and reads it
// back for the journal commands. It never feeds account state.
type JournalService struct {
	repo store.Repository
	now  func() time.Time
}

func NewJournalService(repo store.Repository) *JournalService {
	return &JournalService{repo: repo, now: time.Now}
}

// RecordTransaction implements ledger.Recorder.
func (js *JournalService) RecordTransaction(accountID string, tx ledger.Transaction) error {
	if js.repo == nil {
		return nil
	}

	_, err := js.repo.CreateJournalEntry(store.JournalEntry{
		EntryID:      tx.ID.String(),
		AccountID:    accountID,
		Kind:         string(tx.Kind),
		Amount:       tx.Amount.String(),
		BalanceAfter: tx.BalanceAfter.String(),
		Timestamp:    tx.Timestamp.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to journal transaction: %w", err)
	}
	return nil
}

// ObserveLogin implements ledger.LoginObserver. Journal failures are logged
// only; they must not change the outcome of a login.
func (js *JournalService) ObserveLogin(id string, state ledger.LoginState, remaining int) {
	if js.repo == nil {
		return
	}

	outcome := store.OutcomeRejected
	switch state {
	case ledger.Authenticated:
		outcome = store.OutcomeAuthenticated
	case ledger.Locked:
		outcome = store.OutcomeLocked
	}

	_, err := js.repo.CreateLoginEvent(store.LoginEvent{
		AccountID: id,
		Outcome:   outcome,
		Remaining: remaining,
		Timestamp: js.now().UnixMilli(),
	})
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"outcome":   outcome,
			"remaining": remaining,
		}).WithError(err).Warn("Failed to record login event")
	}
}

func (js *JournalService) GetEntries(accountID string, limit int) ([]*store.JournalEntry, error) {
	if js.repo == nil {
		return nil, nil
	}

	var (
		entries []*store.JournalEntry
		err     error
	)
	if accountID != "" {
		entries, err = js.repo.GetJournalEntriesByAccount(accountID, limit)
	} else {
		entries, err = js.repo.GetRecentJournalEntries(limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entries: %w", err)
	}
	return entries, nil
}

func (js *JournalService) GetLoginEvents(limit int) ([]*store.LoginEvent, error) {
	if js.repo == nil {
		return nil, nil
	}

	events, err := js.repo.GetLoginEvents(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get login events: %w", err)
	}
	return events, nil
}
