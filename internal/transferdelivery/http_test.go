package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreateTransferAPI(t *testing.T) {
	testAccount1 := test.RandomAccount(randompkg.Holder())
	testAccount2 := test.RandomAccount(randompkg.Holder())
	amount := "100"

	arg := domain.CreateTransferParams{
		FromAccount: testAccount1.Number,
		ToAccount:   testAccount2.Number,
		Amount:      amount,
	}

	result := domain.TransferResult{
		FromAccount: testAccount1.Summary(),
		ToAccount:   testAccount2.Summary(),
		Amount:      100,
	}

	validBody := gin.H{
		"from_account": testAccount1.Number,
		"to_account":   testAccount2.Number,
		"amount":       amount,
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(transferService *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidBindFromAccount",
			requestBody: gin.H{
				"to_account": testAccount2.Number,
				"amount":     amount,
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireError(t, recorder, "FromAccount field is required")
			},
		},
		{
			name: "InvalidBindAmount",
			requestBody: gin.H{
				"from_account": testAccount1.Number,
				"to_account":   testAccount2.Number,
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireError(t, recorder, "Amount field is required")
			},
		},
		{
			name:        "AccountNotFound",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
				requireError(t, recorder, domain.ErrAccountNotFound.Error())
			},
		},
		{
			name:        "InsufficientFunds",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrInsufficientFunds)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireError(t, recorder, domain.ErrInsufficientFunds.Error())
			},
		},
		{
			name:        "BalanceOverflow",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrBalanceOverflow)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireError(t, recorder, domain.ErrBalanceOverflow.Error())
			},
		},
		{
			name:        "InvalidAmount",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrInvalidAmount)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireError(t, recorder, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:        "InternalError",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				requireError(t, recorder, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:        "OK",
			requestBody: validBody,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res struct {
					Data struct {
						Transfer domain.TransferResult `json:"transfer"`
					} `json:"data"`
				}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, result, res.Data.Transfer)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transferService := NewMockService(ctrl)
			transferHandler := NewHandler(transferService)

			server := gin.New()
			server.POST("/transfers", transferHandler.Create)

			tc.buildStubs(transferService)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func requireError(t *testing.T, recorder *httptest.ResponseRecorder, want string) {
	t.Helper()

	var res web.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	require.Equal(t, want, res.Error)
}
