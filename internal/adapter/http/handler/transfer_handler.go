package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferReceipt, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	bankUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(bankUC TransferService) *TransferHandler {
	return &TransferHandler{bankUC: bankUC}
}

// Create performs a transfer between two accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.bankUC.Transfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeBankingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromReceipt(receipt))
}
