// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, number, holder, kind string) (domain.Account, error)
	Get(ctx context.Context, number string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Summary, error)
	History(ctx context.Context, number string) ([]string, error)
	Deposit(ctx context.Context, number, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, number, amount string) (domain.Account, error)
	ApplyInterest(ctx context.Context, number string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// errorStatus maps service errors to http status codes.
func errorStatus(err error) (int, error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, err
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		return http.StatusConflict, err
	case
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrBalanceOverflow),
		errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrInvalidAccountKind),
		errors.Is(err, domain.ErrInterestNotSupported):
		return http.StatusBadRequest, err
	}

	return http.StatusInternalServerError, errorspkg.ErrInternal
}

func (h *Handler) respondAccount(gctx *gin.Context, acc domain.Account, err error) {
	if err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

		status, e := errorStatus(err)
		gctx.JSON(status, web.Error(e))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

type createRequest struct {
	Number string `json:"number" binding:"required"`
	Holder string `json:"holder" binding:"required"`
	Type   string `json:"type" binding:"required,accountkind"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	acc, err := h.service.Create(ctx, req.Number, req.Holder, req.Type)
	h.respondAccount(gctx, acc, err)
}

type numberRequest struct {
	Number string `uri:"number" binding:"required"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req numberRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	acc, err := h.service.Get(ctx, req.Number)
	h.respondAccount(gctx, acc, err)
}

type dataAccounts struct {
	Accounts []domain.Summary `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	accounts, err := h.service.List(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type dataHistory struct {
	History []string `json:"history"`
}
type responseHistory struct {
	Data dataHistory `json:"data,omitempty"`
}

// History handles http request to get account transaction history.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req numberRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	history, err := h.service.History(ctx, req.Number)
	if err != nil {
		l.Info().Err(err).Send()

		status, e := errorStatus(err)
		gctx.JSON(status, web.Error(e))

		return
	}

	gctx.JSON(http.StatusOK, responseHistory{Data: dataHistory{history}})
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// Deposit handles http request to deposit money into account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Withdraw)
}

func (h *Handler) changeBalance(
	gctx *gin.Context,
	apply func(ctx context.Context, number, amount string) (domain.Account, error),
) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri numberRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	acc, err := apply(ctx, uri.Number, req.Amount)
	h.respondAccount(gctx, acc, err)
}

// ApplyInterest handles http request to credit interest to a savings account.
func (h *Handler) ApplyInterest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req numberRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	acc, err := h.service.ApplyInterest(ctx, req.Number)
	h.respondAccount(gctx, acc, err)
}
