package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	OpenAccount(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	Deposit(ctx context.Context, accountID, amount string) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountID, amount string) (decimal.Decimal, error)
	GetHistory(ctx context.Context, accountID string) ([]domain.TransactionRecord, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	bankUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(bankUC AccountService) *AccountHandler {
	return &AccountHandler{bankUC: bankUC}
}

// Open opens a new account.
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.OpenAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeBankingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.bankUC.GetAccount(r.Context(), id)
	if err != nil {
		writeBankingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.bankUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Deposit deposits funds into an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.bankUC.Deposit)
}

// Withdraw withdraws funds from an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.bankUC.Withdraw)
}

func (h *AccountHandler) applyAmount(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, accountID, amount string) (decimal.Decimal, error),
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	balance, err := op(r.Context(), id, string(req.Amount))
	if err != nil {
		writeBankingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewBalanceResponse(id, balance))
}

// History returns the account's transaction history.
func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	history, err := h.bankUC.GetHistory(r.Context(), id)
	if err != nil {
		writeBankingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryResponse{
		AccountID: id,
		History:   dto.HistoryFromDomain(history),
	})
}
