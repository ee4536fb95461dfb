package dto

import (
	"bytes"
	"encoding/json"

	"github.com/iho/minibank/internal/usecase"
)

// Amount carries a monetary amount as its raw JSON literal. Strings and bare
// numbers both decode; the literal is parsed by amount validation downstream,
// so a malformed value fails there with its taxonomy code instead of dying
// inside the JSON decoder.
type Amount string

// UnmarshalJSON accepts a JSON string or any other literal verbatim.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	*a = Amount(bytes.TrimSpace(data))
	return nil
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	AccountID      string `json:"account_id"`
	OwnerName      string `json:"owner_name"`
	InitialBalance Amount `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		AccountID:      r.AccountID,
		OwnerName:      r.OwnerName,
		InitialBalance: string(r.InitialBalance),
	}
}

// AmountRequest represents a deposit or withdrawal request body.
type AmountRequest struct {
	Amount Amount `json:"amount"`
}

// TransferRequest represents a request to transfer between two accounts.
type TransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        Amount `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        string(r.Amount),
	}
}
