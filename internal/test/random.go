// Package test provides shared test helpers.
package test

import (
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomAccount returns random account held by the given holder.
func RandomAccount(holder string) domain.Account {
	return domain.Account{
		Number:  randompkg.AccountNumber(),
		Holder:  holder,
		Kind:    domain.Kind(randompkg.Kind()),
		Balance: randompkg.FloatBetween(1000, 10_000),
		History: []string{},
	}
}
