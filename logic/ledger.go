package logic

import (
	"sync"

	"cosmind-backend/models"
)

// LedgerStore is the persistence needed by the credit ledger. *dao.UserDAO
// satisfies it; tests use in-memory fakes.
type LedgerStore interface {
	Balance(userID uint64) (int64, error)
	DebitTokens(userID uint64, cost int64) (int64, error)
	GrantTokens(userID uint64, amount int64) (int64, error)
}

// CreditLedger authorizes and settles token charges. The underlying debit is
// already guarded at the store level (balance can never go negative); on top
// of that, Acquire serializes the authorize+commit span per user so two
// concurrent requests cannot both pass Authorize against the same balance.
type CreditLedger struct {
	store LedgerStore

	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func NewCreditLedger(store LedgerStore) *CreditLedger {
	return &CreditLedger{
		store: store,
		locks: make(map[uint64]*sync.Mutex),
	}
}

// Acquire takes the user's ledger lock and returns its release function.
// One authorize+commit span is in flight per user at a time; later requests
// queue.
func (l *CreditLedger) Acquire(userID uint64) func() {
	l.mu.Lock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Authorize reports whether the balance covers cost. Pure read, no side
// effect.
func (l *CreditLedger) Authorize(userID uint64, cost int64) (bool, error) {
	balance, err := l.store.Balance(userID)
	if err != nil {
		return false, err
	}
	return balance >= cost, nil
}

// Commit debits cost from the balance and returns the new balance, or
// ErrInsufficientTokens leaving the balance unchanged.
func (l *CreditLedger) Commit(userID uint64, cost int64) (int64, error) {
	return l.store.DebitTokens(userID, cost)
}

// Grant credits amount to the balance. Amount must be positive.
func (l *CreditLedger) Grant(userID uint64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, models.ErrInvalidAmount
	}
	return l.store.GrantTokens(userID, amount)
}

// Balance returns the current balance.
func (l *CreditLedger) Balance(userID uint64) (int64, error) {
	return l.store.Balance(userID)
}
