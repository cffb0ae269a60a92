// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, from, to string, amount float64) (domain.TransferResult, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
}

// New return transfer service struct to manage transfer bussines logic.
func New(tr Repo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           tr,
		accountService: as,
	}
}

func (s *Service) validRequest(ctx context.Context, arg domain.CreateTransferParams) (float64, error) {
	l := zerolog.Ctx(ctx)

	amount, err := domain.ParseAmount(arg.Amount)
	if err != nil {
		l.Info().Err(err).Str("amount", arg.Amount).Send()
		return 0, err
	}

	if _, err := s.accountService.Get(ctx, arg.FromAccount); err != nil {
		l.Info().Err(err).Str("from", arg.FromAccount).Send()
		return 0, err
	}

	if _, err := s.accountService.Get(ctx, arg.ToAccount); err != nil {
		l.Info().Err(err).Str("to", arg.ToAccount).Send()
		return 0, err
	}

	return amount, nil
}

// Transfer checks if transfer request is valid and then executes transfer.
//
// The balance check and both legs run atomically inside the ledger.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error) {
	arg.FromAccount = strings.TrimSpace(arg.FromAccount)
	arg.ToAccount = strings.TrimSpace(arg.ToAccount)

	amount, err := s.validRequest(ctx, arg)
	if err != nil {
		return domain.TransferResult{}, err
	}

	result, err := s.repo.Transfer(ctx, arg.FromAccount, arg.ToAccount, amount)
	if err != nil {
		return result, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", arg.FromAccount).
		Str("to", arg.ToAccount).
		Float64("amount", amount).
		Msg("transfer completed")

	return result, nil
}
