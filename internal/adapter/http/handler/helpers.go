package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeBankingError maps a failure from the use case or domain layer to an
// HTTP status and renders it with its taxonomy code when present.
func writeBankingError(w http.ResponseWriter, err error) {
	resp := dto.ErrorResponse{
		Error:   errorLabel(err),
		Message: err.Error(),
	}

	var fault *domain.Error
	if errors.As(err, &fault) {
		resp.Code = fault.Code
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mapBankingError(err))
	json.NewEncoder(w).Encode(resp)
}

// mapBankingError maps failures to HTTP status codes.
func mapBankingError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidInput):
		// Covers invalid amounts as well; InvalidAmount specializes InvalidInput.
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		// Internal invariant violations (Lxxx faults) and anything unknown.
		return http.StatusInternalServerError
	}
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound):
		return "account not found"
	case errors.Is(err, usecase.ErrAccountExists):
		return "account already exists"
	case errors.Is(err, usecase.ErrSameAccount):
		return "invalid transfer"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient funds"
	default:
		return "banking fault"
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return i
}
