package ledger

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential checks a PIN by exact value without exposing it.
type Credential interface {
	Match(pin string) bool
}

// HashedPIN stores only the bcrypt hash of a PIN.
type HashedPIN struct {
	hash []byte
}

func NewHashedPIN(pin string, cost int) (*HashedPIN, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}
	return &HashedPIN{hash: hash}, nil
}

func (h *HashedPIN) Match(pin string) bool {
	return bcrypt.CompareHashAndPassword(h.hash, []byte(pin)) == nil
}

// PlainPIN keeps the PIN as given and compares in constant time.
type PlainPIN struct {
	pin []byte
}

func NewPlainPIN(pin string) *PlainPIN {
	return &PlainPIN{pin: []byte(pin)}
}

func (p *PlainPIN) Match(pin string) bool {
	return subtle.ConstantTimeCompare(p.pin, []byte(pin)) == 1
}

// NewCredential builds the storage form selected by configuration.
func NewCredential(pin string, hashed bool, cost int) (Credential, error) {
	if !hashed {
		return NewPlainPIN(pin), nil
	}
	return NewHashedPIN(pin, cost)
}
