package interest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
)

type stubService struct {
	calls int
	n     int
	err   error
}

func (s *stubService) ApplyInterestAll(ctx context.Context) (int, error) {
	s.calls++
	return s.n, s.err
}

func TestNewInvalidSchedule(t *testing.T) {
	_, err := New("not a schedule", &stubService{}, zerolog.Nop())
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name      string
		service   *stubService
		wantLevel string
	}{
		{name: "OK", service: &stubService{n: 3}, wantLevel: "info"},
		{name: "Error", service: &stubService{err: errors.New("boom")}, wantLevel: "error"},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer

		s, err := New("@every 1h", tc.service, zerolog.New(&buf))
		require.NoError(t, err)

		s.Run()

		require.Equal(t, 1, tc.service.calls, tc.name)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), tc.name)
		require.Equal(t, tc.wantLevel, entry["level"], tc.name)
		require.Equal(t, "interest", entry["component"], tc.name)
	}
}

func TestRunCreditsSavings(t *testing.T) {
	ctx := context.Background()
	service := accountservice.New(ledgerrepo.NewRepoMem())

	_, err := service.Create(ctx, "S1", "Sam", "Savings")
	require.NoError(t, err)
	_, err = service.Create(ctx, "C1", "Cat", "Current")
	require.NoError(t, err)
	_, err = service.Deposit(ctx, "S1", "100")
	require.NoError(t, err)
	_, err = service.Deposit(ctx, "C1", "100")
	require.NoError(t, err)

	s, err := New("@monthly", service, zerolog.Nop())
	require.NoError(t, err)

	s.Start()
	s.Run()
	<-s.Stop().Done()

	savings, err := service.Get(ctx, "S1")
	require.NoError(t, err)
	require.InDelta(t, 100*(1+domain.SavingsInterestRate), savings.Balance, 1e-9)

	current, err := service.Get(ctx, "C1")
	require.NoError(t, err)
	require.Equal(t, 100.0, current.Balance)
}
