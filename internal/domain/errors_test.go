package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestError_Format(t *testing.T) {
	t.Parallel()

	coded := NewFault(CodeConservation, "money not conserved during transfer")
	if coded.Error() != "[L003] money not conserved during transfer" {
		t.Errorf("unexpected formatting: %s", coded.Error())
	}

	codeless := &Error{Kind: KindFault, Message: "something went wrong"}
	if codeless.Error() != "something went wrong" {
		t.Errorf("unexpected formatting: %s", codeless.Error())
	}
}

func TestError_KindMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		target  *Error
		matches bool
	}{
		{
			name:    "invalid input matches its sentinel",
			err:     NewInvalidInput(CodeAccountIDFormat, "bad id"),
			target:  ErrInvalidInput,
			matches: true,
		},
		{
			name:    "invalid amount matches its sentinel",
			err:     NewInvalidAmount("-1"),
			target:  ErrInvalidAmount,
			matches: true,
		},
		{
			name:    "invalid amount specializes invalid input",
			err:     NewInvalidAmount("-1"),
			target:  ErrInvalidInput,
			matches: true,
		},
		{
			name:    "invalid input is not an invalid amount",
			err:     NewInvalidInput(CodeAmountFormat, "not a number"),
			target:  ErrInvalidAmount,
			matches: false,
		},
		{
			name:    "insufficient funds matches its sentinel",
			err:     NewInsufficientFunds("ACCT123456", decimal.NewFromInt(10), decimal.NewFromInt(5)),
			target:  ErrInsufficientFunds,
			matches: true,
		},
		{
			name:    "fault matches its sentinel",
			err:     NewFault(CodeDepositInvariant, "deposit invariant violated"),
			target:  ErrFault,
			matches: true,
		},
		{
			name:    "fault does not match invalid input",
			err:     NewFault(CodeWithdrawalInvariant, "withdrawal invariant violated"),
			target:  ErrInvalidInput,
			matches: false,
		},
		{
			name:    "code-carrying target requires the same code",
			err:     NewInvalidInput(CodeEmptyOwnerName, "owner name cannot be empty"),
			target:  &Error{Kind: KindInvalidInput, Code: CodeAccountIDFormat},
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.matches {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.matches)
			}
		})
	}
}

func TestError_MatchesThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("opening account: %w", NewInvalidAmount(0))
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("wrapped invalid amount should still match ErrInvalidInput")
	}
}

func TestNewInsufficientFunds_CarriesDetails(t *testing.T) {
	t.Parallel()

	err := NewInsufficientFunds("ACCT123456", decimal.NewFromInt(2000), decimal.NewFromInt(1000))

	if err.AccountID != "ACCT123456" {
		t.Errorf("expected account ID carried, got %s", err.AccountID)
	}

	if !err.Requested.Equal(decimal.NewFromInt(2000)) || !err.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected requested/balance carried, got %s/%s", err.Requested, err.Balance)
	}

	for _, part := range []string{"ACCT123456", "2000", "1000", "[T001]"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("expected message to contain %q, got %s", part, err.Error())
		}
	}
}
