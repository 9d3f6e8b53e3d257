package ledger

import (
	"fmt"
	"sort"
	"sync"
)

// Store maps account identifiers to accounts. It is filled once at start-up
// and has no removal operation.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	decoy    Credential
}

// NewStore creates an empty store. decoy is checked against the PIN when an
// unknown account number is presented so that lookup misses cost the same
// as PIN mismatches; it may be nil.
func NewStore(decoy Credential) *Store {
	return &Store{
		accounts: make(map[string]*Account),
		decoy:    decoy,
	}
}

func (s *Store) Add(acc *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[acc.ID()]; exists {
		return fmt.Errorf("failed to add account '%s': %w", acc.ID(), ErrAccountExists)
	}
	s.accounts[acc.ID()] = acc
	return nil
}

func (s *Store) Lookup(id string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	return acc, ok
}

// Accounts returns every account ordered by id.
func (s *Store) Accounts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Authenticate performs a single credential check. Unknown ids and wrong
// PINs both yield ErrInvalidCredential.
func (s *Store) Authenticate(id, pin string) (*Account, error) {
	acc, ok := s.Lookup(id)
	if !ok {
		if s.decoy != nil {
			_ = s.decoy.Match(pin)
		}
		return nil, ErrInvalidCredential
	}

	if !acc.ValidateCredential(pin) {
		return nil, ErrInvalidCredential
	}
	return acc, nil
}
