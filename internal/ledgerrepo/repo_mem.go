// Package ledgerrepo manages the in-memory ledger of accounts.
package ledgerrepo

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RepoMem owns every account of the process.
//
// All operations are serialized by a single ledger-wide lock, so a transfer
// holds both accounts at once.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
	now      func() time.Time
}

// NewRepoMem returns an empty ledger.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]*domain.Account),
		now:      time.Now,
	}
}

// Create adds a zero balance account and returns it.
func (r *RepoMem) Create(ctx context.Context, number, holder string, kind domain.Kind) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[number]; ok {
		l.Info().Str("account", number).Err(domain.ErrAccountAlreadyExists).Send()
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}

	a := domain.NewAccount(number, holder, kind)
	r.accounts[number] = a
	r.order = append(r.order, number)

	return a.Clone(), nil
}

// Get returns the account with the given number.
func (r *RepoMem) Get(ctx context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a.Clone(), nil
}

// List returns summaries of all accounts in creation order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Summary, 0, len(r.order))
	for _, number := range r.order {
		items = append(items, r.accounts[number].Summary())
	}

	return items, nil
}

// History returns the transaction history of the account.
func (r *RepoMem) History(ctx context.Context, number string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return append([]string{}, a.History...), nil
}

// Deposit adds amount to the account balance and returns the changed account.
func (r *RepoMem) Deposit(ctx context.Context, number string, amount float64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	if !a.CanDeposit(amount) {
		return domain.Account{}, domain.ErrBalanceOverflow
	}

	a.Deposit(amount, r.now())

	return a.Clone(), nil
}

// Withdraw subtracts amount from the account balance and returns the changed account.
func (r *RepoMem) Withdraw(ctx context.Context, number string, amount float64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	if !a.Withdraw(amount, r.now()) {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	return a.Clone(), nil
}

// ApplyInterest credits interest to a savings account.
func (r *RepoMem) ApplyInterest(ctx context.Context, number string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	if _, err := a.ApplyInterest(r.now()); err != nil {
		return domain.Account{}, err
	}

	return a.Clone(), nil
}

// ApplyInterestAll credits interest to every savings account and returns how many were credited.
func (r *RepoMem) ApplyInterestAll(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := r.now()
	n := 0

	for _, number := range r.order {
		if _, err := r.accounts[number].ApplyInterest(at); err == nil {
			n++
		}
	}

	return n, nil
}

// Transfer moves amount between two accounts.
//
// The sender is debited first; if it cannot cover the amount, or the receiver
// cannot hold it, neither account changes.
func (r *RepoMem) Transfer(ctx context.Context, from, to string, amount float64) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	sender, ok := r.accounts[from]
	if !ok {
		return domain.TransferResult{}, domain.ErrAccountNotFound
	}

	receiver, ok := r.accounts[to]
	if !ok {
		return domain.TransferResult{}, domain.ErrAccountNotFound
	}

	if from != to && !receiver.CanDeposit(amount) {
		l.Info().Str("from", from).Str("to", to).Err(domain.ErrBalanceOverflow).Send()
		return domain.TransferResult{}, domain.ErrBalanceOverflow
	}

	at := r.now()

	if !sender.Withdraw(amount, at) {
		l.Info().Str("from", from).Str("to", to).Err(domain.ErrInsufficientFunds).Send()
		return domain.TransferResult{}, domain.ErrInsufficientFunds
	}

	receiver.Deposit(amount, at)

	return domain.TransferResult{
		FromAccount: sender.Summary(),
		ToAccount:   receiver.Summary(),
		Amount:      amount,
	}, nil
}
