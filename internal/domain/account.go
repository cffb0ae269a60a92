// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the account with the given number already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrInvalidAccount indicates that the account number or holder is empty.
	ErrInvalidAccount = errors.New("invalid account number or holder")
	// ErrInvalidAccountKind indicates that the account type is not supported.
	ErrInvalidAccountKind = errors.New("account type is not supported")
	// ErrInterestNotSupported indicates that the account type does not earn interest.
	ErrInterestNotSupported = errors.New("account type does not earn interest")
	// ErrBalanceOverflow indicates that the resulting balance is out of range.
	ErrBalanceOverflow = errors.New("balance out of range")
)

// Kind discriminates account variants.
type Kind string

// Supported account kinds.
const (
	KindSavings Kind = "Savings"
	KindCurrent Kind = "Current"
)

// SavingsInterestRate is the fixed rate applied to savings accounts.
const SavingsInterestRate = 0.04

// ParseKind returns the Kind matching s, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch {
	case strings.EqualFold(s, string(KindSavings)):
		return KindSavings, nil
	case strings.EqualFold(s, string(KindCurrent)):
		return KindCurrent, nil
	}

	return "", ErrInvalidAccountKind
}

// InterestRate returns the rate earned by the kind and whether it earns any.
func (k Kind) InterestRate() (float64, bool) {
	if k == KindSavings {
		return SavingsInterestRate, true
	}

	return 0, false
}

// Account holds holder balance data and its transaction history.
type Account struct {
	Number  string   `json:"number"`
	Holder  string   `json:"holder"`
	Kind    Kind     `json:"type"`
	Balance float64  `json:"balance"`
	History []string `json:"-"`
}

// Summary is the listing view of an account.
type Summary struct {
	Number  string  `json:"number"`
	Holder  string  `json:"holder"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// NewAccount returns an empty account with zero balance.
func NewAccount(number, holder string, kind Kind) *Account {
	return &Account{
		Number:  number,
		Holder:  holder,
		Kind:    kind,
		History: []string{},
	}
}

// Type returns "Savings" or "Current".
func (a *Account) Type() string {
	return string(a.Kind)
}

// Deposit increases the balance by amount and records it.
func (a *Account) Deposit(amount float64, at time.Time) {
	a.Balance += amount
	a.History = append(a.History, historyEntry(at, "Deposited", amount))
}

// CanDeposit reports whether amount can be credited without the balance overflowing.
func (a *Account) CanDeposit(amount float64) bool {
	return !math.IsInf(a.Balance+amount, 0)
}

// Withdraw decreases the balance by amount if it is covered.
// It reports false and leaves the account untouched otherwise.
func (a *Account) Withdraw(amount float64, at time.Time) bool {
	if amount > a.Balance {
		return false
	}

	a.Balance -= amount
	a.History = append(a.History, historyEntry(at, "Withdrawn", amount))

	return true
}

// ApplyInterest deposits the interest earned on the current balance and returns it.
func (a *Account) ApplyInterest(at time.Time) (float64, error) {
	rate, ok := a.Kind.InterestRate()
	if !ok {
		return 0, ErrInterestNotSupported
	}

	interest := a.Balance * rate
	if !a.CanDeposit(interest) {
		return 0, ErrBalanceOverflow
	}

	a.Deposit(interest, at)

	return interest, nil
}

// Summary returns the listing view of the account.
func (a *Account) Summary() Summary {
	return Summary{
		Number:  a.Number,
		Holder:  a.Holder,
		Type:    a.Type(),
		Balance: a.Balance,
	}
}

// Clone returns a deep copy so callers never share history with the ledger.
func (a *Account) Clone() Account {
	c := *a
	c.History = make([]string, len(a.History))
	copy(c.History, a.History)

	return c
}
