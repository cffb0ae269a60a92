package domain

import "errors"

// ErrInsufficientFunds indicates that the account does not have sufficient balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// CreateTransferParams is the input data for the transfer between two accounts.
type CreateTransferParams struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
}

// TransferResult is the result of the transfer.
type TransferResult struct {
	FromAccount Summary `json:"from_account"`
	ToAccount   Summary `json:"to_account"`
	Amount      float64 `json:"amount"`
}
