package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// AccountResponse represents an account in API responses. Balances are
// rendered as JSON strings so no reader can round them through a float.
type AccountResponse struct {
	ID      string `json:"id"`
	Owner   string `json:"owner"`
	Balance string `json:"balance"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:      a.ID(),
		Owner:   a.Owner(),
		Balance: a.Balance().String(),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}

	return result
}

// ListAccountsResponse is the payload for listing accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// BalanceResponse reports a balance after a deposit or withdrawal.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// NewBalanceResponse builds a balance response.
func NewBalanceResponse(accountID string, balance decimal.Decimal) *BalanceResponse {
	return &BalanceResponse{AccountID: accountID, Balance: balance.String()}
}

// TransactionRecordResponse represents one history entry.
type TransactionRecordResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// HistoryFromDomain converts a transaction history to responses.
func HistoryFromDomain(records []domain.TransactionRecord) []TransactionRecordResponse {
	result := make([]TransactionRecordResponse, len(records))
	for i, r := range records {
		result[i] = TransactionRecordResponse{
			CreatedAt: r.CreatedAt,
			Type:      string(r.Type),
			Amount:    r.Amount.String(),
			Status:    string(r.Status),
			Error:     r.Error,
		}
	}

	return result
}

// HistoryResponse is the payload for an account's transaction history.
type HistoryResponse struct {
	AccountID string                      `json:"account_id"`
	History   []TransactionRecordResponse `json:"history"`
}

// TransferResponse represents a completed transfer.
type TransferResponse struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	FromAccountID string    `json:"from_account_id"`
	ToAccountID   string    `json:"to_account_id"`
	Amount        string    `json:"amount"`
	FromBalance   string    `json:"from_balance"`
	ToBalance     string    `json:"to_balance"`
	Status        string    `json:"status"`
}

// TransferFromReceipt converts a transfer receipt to a response.
func TransferFromReceipt(receipt *usecase.TransferReceipt) *TransferResponse {
	return &TransferResponse{
		ID:            receipt.ID,
		CreatedAt:     receipt.CreatedAt,
		FromAccountID: receipt.FromAccountID,
		ToAccountID:   receipt.ToAccountID,
		Amount:        receipt.Result.Amount.String(),
		FromBalance:   receipt.Result.FromBalance.String(),
		ToBalance:     receipt.Result.ToBalance.String(),
		Status:        receipt.Result.Status,
	}
}

// ErrorResponse represents an error in API responses. Code carries the
// machine-readable taxonomy code when the failure has one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
