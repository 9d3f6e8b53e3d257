package ledger

import (
	"sync"
)

type LoginState int

const (
	AwaitingCredentials LoginState = iota
	Authenticated
	Locked
)

func (s LoginState) String() string {
	switch s {
	case AwaitingCredentials:
		return "awaiting_credentials"
	case Authenticated:
		return "authenticated"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Authenticator is the lookup a login sequence checks attempts against.
type Authenticator interface {
	Authenticate(id, pin string) (*Account, error)
}

// LoginObserver is told about every attempt that reached the
// authenticator. id is the account number as typed.
type LoginObserver interface {
	ObserveLogin(id string, state LoginState, remaining int)
}

// Login is one authentication sequence with a bounded attempt budget.
// Authenticated and Locked are terminal.
type Login struct {
	auth     Authenticator
	observer LoginObserver

	mu        sync.Mutex
	state     LoginState
	remaining int
	account   *Account
}

func NewLogin(auth Authenticator, maxAttempts int, observer LoginObserver) *Login {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Login{
		auth:      auth,
		observer:  observer,
		state:     AwaitingCredentials,
		remaining: maxAttempts,
	}
}

// Attempt checks one id/PIN pair. A mismatch with attempts left returns a
// *CredentialError; the mismatch that exhausts the budget, and every call
// after it, returns ErrLocked.
func (l *Login) Attempt(id, pin string) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case Locked:
		return nil, ErrLocked
	case Authenticated:
		return nil, ErrLoginFinished
	}

	acc, err := l.auth.Authenticate(id, pin)
	if err == nil {
		l.state = Authenticated
		l.account = acc
		l.notify(id)
		return acc, nil
	}

	l.remaining--
	if l.remaining <= 0 {
		l.remaining = 0
		l.state = Locked
		l.notify(id)
		return nil, ErrLocked
	}

	l.notify(id)
	return nil, &CredentialError{Remaining: l.remaining}
}

func (l *Login) notify(id string) {
	if l.observer != nil {
		l.observer.ObserveLogin(id, l.state, l.remaining)
	}
}

func (l *Login) State() LoginState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Login) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

// Account returns the bound account once the sequence is Authenticated.
func (l *Login) Account() *Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.account
}
