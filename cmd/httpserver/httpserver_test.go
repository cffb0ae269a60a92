package httpserver_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/integrationtest"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

type accountData struct {
	Account domain.Account `json:"account"`
}

func TestLedgerScenario(t *testing.T) {
	server := integrationtest.SetupServer(t, configpkg.Config{})

	var a1 accountData
	integrationtest.Do(t, server, http.MethodPost, "/accounts", map[string]string{"number": "A1", "holder": "Alice", "type": "Savings"}, http.StatusOK, &a1)
	require.Equal(t, "Savings", a1.Account.Type())
	require.Equal(t, 0.0, a1.Account.Balance)

	var listed struct {
		Accounts []domain.Summary `json:"accounts"`
	}
	integrationtest.Do(t, server, http.MethodGet, "/accounts", nil, http.StatusOK, &listed)
	if diff := cmp.Diff([]domain.Summary{{Number: "A1", Holder: "Alice", Type: "Savings"}}, listed.Accounts); diff != "" {
		t.Errorf("accounts mismatch (-want +got):\n%s", diff)
	}

	integrationtest.Do(t, server, http.MethodPost, "/accounts/A1/deposit", map[string]string{"amount": "100"}, http.StatusOK, &a1)
	require.Equal(t, 100.0, a1.Account.Balance)

	res := integrationtest.Do(t, server, http.MethodPost, "/accounts/A1/withdraw", map[string]string{"amount": "150"}, http.StatusBadRequest, nil)
	require.Equal(t, domain.ErrInsufficientFunds.Error(), res.Error)

	integrationtest.Do(t, server, http.MethodGet, "/accounts/A1", nil, http.StatusOK, &a1)
	require.Equal(t, 100.0, a1.Account.Balance)

	integrationtest.Do(t, server, http.MethodPost, "/accounts", map[string]string{"number": "B1", "holder": "Bob", "type": "Current"}, http.StatusOK, nil)

	var transfer struct {
		Transfer domain.TransferResult `json:"transfer"`
	}
	integrationtest.Do(t, server, http.MethodPost, "/transfers", map[string]string{"from_account": "A1", "to_account": "B1", "amount": "50"}, http.StatusOK, &transfer)
	require.Equal(t, 50.0, transfer.Transfer.FromAccount.Balance)
	require.Equal(t, 50.0, transfer.Transfer.ToAccount.Balance)

	res = integrationtest.Do(t, server, http.MethodPost, "/transfers", map[string]string{"from_account": "A1", "to_account": "B1", "amount": "500"}, http.StatusBadRequest, nil)
	require.Equal(t, domain.ErrInsufficientFunds.Error(), res.Error)

	var b1 accountData
	integrationtest.Do(t, server, http.MethodGet, "/accounts/B1", nil, http.StatusOK, &b1)
	require.Equal(t, 50.0, b1.Account.Balance)

	res = integrationtest.Do(t, server, http.MethodGet, "/accounts/Z9", nil, http.StatusNotFound, nil)
	require.Equal(t, domain.ErrAccountNotFound.Error(), res.Error)

	integrationtest.Do(t, server, http.MethodPost, "/transfers", map[string]string{"from_account": "A1", "to_account": "Z9", "amount": "1"}, http.StatusNotFound, nil)

	var history struct {
		History []string `json:"history"`
	}
	integrationtest.Do(t, server, http.MethodGet, "/accounts/A1/history", nil, http.StatusOK, &history)
	require.Len(t, history.History, 2)
	require.Contains(t, history.History[0], " - Deposited: 100")
	require.Contains(t, history.History[1], " - Withdrawn: 50")

	integrationtest.Do(t, server, http.MethodPost, "/accounts/A1/interest", nil, http.StatusOK, &a1)
	require.InDelta(t, 52, a1.Account.Balance, 1e-9)

	res = integrationtest.Do(t, server, http.MethodPost, "/accounts/B1/interest", nil, http.StatusBadRequest, nil)
	require.Equal(t, domain.ErrInterestNotSupported.Error(), res.Error)

	res = integrationtest.Do(t, server, http.MethodPost, "/accounts", map[string]string{"number": "A1", "holder": "Eve", "type": "Current"}, http.StatusConflict, nil)
	require.Equal(t, domain.ErrAccountAlreadyExists.Error(), res.Error)
}

func TestInterestScheduler(t *testing.T) {
	server := integrationtest.SetupServer(t, configpkg.Config{})
	require.Nil(t, server.Interest)

	server = integrationtest.SetupServer(t, configpkg.Config{InterestSchedule: "@monthly"})
	require.NotNil(t, server.Interest)

	_, err := httpserver.New(ledgerrepo.NewRepoMem(), zerolog.Nop(), configpkg.Config{InterestSchedule: "bogus"})
	require.Error(t, err)
}

func TestAmountLimits(t *testing.T) {
	server := integrationtest.SetupServer(t, configpkg.Config{})

	integrationtest.Do(t, server, http.MethodPost, "/accounts", map[string]string{"number": " A1", "holder": "Alice", "type": "Savings"}, http.StatusOK, nil)

	for _, amount := range []string{"1e400", "1e-400", "1e99999999"} {
		res := integrationtest.Do(t, server, http.MethodPost, "/accounts/A1/deposit", map[string]string{"amount": amount}, http.StatusBadRequest, nil)
		require.Equal(t, domain.ErrInvalidAmount.Error(), res.Error, amount)
	}

	var a1 accountData
	integrationtest.Do(t, server, http.MethodPost, "/accounts/%20A1/deposit", map[string]string{"amount": "1e308"}, http.StatusOK, &a1)
	require.Equal(t, 1e308, a1.Account.Balance)

	res := integrationtest.Do(t, server, http.MethodPost, "/accounts/A1/deposit", map[string]string{"amount": "1e308"}, http.StatusBadRequest, nil)
	require.Equal(t, domain.ErrBalanceOverflow.Error(), res.Error)

	var listed struct {
		Accounts []domain.Summary `json:"accounts"`
	}
	integrationtest.Do(t, server, http.MethodGet, "/accounts", nil, http.StatusOK, &listed)
	require.Len(t, listed.Accounts, 1)
	require.Equal(t, 1e308, listed.Accounts[0].Balance)

	var history struct {
		History []string `json:"history"`
	}
	integrationtest.Do(t, server, http.MethodGet, "/accounts/A1/history", nil, http.StatusOK, &history)
	require.Len(t, history.History, 1)
}
