// Package interest periodically credits interest to savings accounts.
package interest

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Service provides the account operation needed by the scheduler.
type Service interface {
	ApplyInterestAll(ctx context.Context) (int, error)
}

// Scheduler runs interest application on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service Service
	logger  zerolog.Logger
}

// New returns a scheduler for the given cron schedule, e.g. "0 0 1 * *" or "@monthly".
func New(schedule string, s Service, logger zerolog.Logger) (*Scheduler, error) {
	sch := &Scheduler{
		cron:    cron.New(),
		service: s,
		logger:  logger.With().Str("component", "interest").Logger(),
	}

	if _, err := sch.cron.AddFunc(schedule, sch.Run); err != nil {
		return nil, errors.Wrapf(err, "invalid interest schedule %q", schedule)
	}

	return sch, nil
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info().Msg("interest scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler and returns a context done once a running job completes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Run credits interest once.
func (s *Scheduler) Run() {
	ctx := s.logger.WithContext(context.Background())

	n, err := s.service.ApplyInterestAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("interest run failed")
		return
	}

	s.logger.Info().Int("accounts", n).Msg("interest credited")
}
