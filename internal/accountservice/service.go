// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, number, holder string, kind domain.Kind) (domain.Account, error)
	Get(ctx context.Context, number string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Summary, error)
	History(ctx context.Context, number string) ([]string, error)
	Deposit(ctx context.Context, number string, amount float64) (domain.Account, error)
	Withdraw(ctx context.Context, number string, amount float64) (domain.Account, error)
	ApplyInterest(ctx context.Context, number string) (domain.Account, error)
	ApplyInterestAll(ctx context.Context) (int, error)
}

// Service facilitates account service layer logic.
//
// Account numbers are trimmed on every operation.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Create creates and returns an empty account of the given type.
func (s *Service) Create(ctx context.Context, number, holder, kind string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	number = strings.TrimSpace(number)
	holder = strings.TrimSpace(holder)

	if number == "" || holder == "" {
		return domain.Account{}, domain.ErrInvalidAccount
	}

	k, err := domain.ParseKind(kind)
	if err != nil {
		l.Info().Err(err).Str("type", kind).Send()
		return domain.Account{}, err
	}

	account, err := s.repo.Create(ctx, number, holder, k)
	if err != nil {
		return account, err
	}

	l.Debug().Str("account", number).Str("type", string(k)).Msg("account created")

	return account, nil
}

// Get returns the account with the given number.
func (s *Service) Get(ctx context.Context, number string) (domain.Account, error) {
	return s.repo.Get(ctx, strings.TrimSpace(number))
}

// List returns summaries of all accounts.
func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	return s.repo.List(ctx)
}

// History returns the transaction history of the account.
func (s *Service) History(ctx context.Context, number string) ([]string, error) {
	return s.repo.History(ctx, strings.TrimSpace(number))
}

// Deposit validates amount and credits it to the account.
func (s *Service) Deposit(ctx context.Context, number, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := domain.ParseAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.Account{}, err
	}

	return s.repo.Deposit(ctx, strings.TrimSpace(number), a)
}

// Withdraw validates amount and debits it from the account.
func (s *Service) Withdraw(ctx context.Context, number, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := domain.ParseAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.Account{}, err
	}

	number = strings.TrimSpace(number)

	account, err := s.repo.Withdraw(ctx, number, a)
	if err != nil {
		l.Info().Err(err).Str("account", number).Send()
		return account, err
	}

	return account, nil
}

// ApplyInterest credits interest to a savings account.
func (s *Service) ApplyInterest(ctx context.Context, number string) (domain.Account, error) {
	return s.repo.ApplyInterest(ctx, strings.TrimSpace(number))
}

// ApplyInterestAll credits interest to every savings account.
func (s *Service) ApplyInterestAll(ctx context.Context) (int, error) {
	return s.repo.ApplyInterestAll(ctx)
}
