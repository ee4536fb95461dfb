package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransfer_Success(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", 1000)
	destination := mustAccount(t, "ACCT654321", "Jane Doe", 500)

	result, err := Transfer(source, destination, 200)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !source.Balance().Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected source balance 800, got %s", source.Balance())
	}

	if !destination.Balance().Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected destination balance 700, got %s", destination.Balance())
	}

	if result.Status != TransferStatusCompleted {
		t.Errorf("expected status completed, got %s", result.Status)
	}

	if !result.FromBalance.Equal(decimal.NewFromInt(800)) || !result.ToBalance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("result balances do not match accounts: %+v", result)
	}

	if !result.Amount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected amount 200, got %s", result.Amount)
	}
}

func TestTransfer_Conservation(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", "123.45")
	destination := mustAccount(t, "ACCT654321", "Jane Doe", "0.55")

	totalBefore := source.Balance().Add(destination.Balance())

	if _, err := Transfer(source, destination, "23.45"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	totalAfter := source.Balance().Add(destination.Balance())
	if !totalBefore.Equal(totalAfter) {
		t.Errorf("money not conserved: %s before, %s after", totalBefore, totalAfter)
	}
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", 100)
	destination := mustAccount(t, "ACCT654321", "Jane Doe", 500)

	result, err := Transfer(source, destination, 200)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if result != nil {
		t.Error("no result may be produced on failure")
	}

	// No mutation at all: the overdraft is detected before the debit.
	if !source.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("source balance must be unchanged, got %s", source.Balance())
	}

	if !destination.Balance().Equal(decimal.NewFromInt(500)) {
		t.Errorf("destination balance must be unchanged, got %s", destination.Balance())
	}

	if len(source.History()) != 0 || len(destination.History()) != 0 {
		t.Error("failed overdraft precheck must not touch either history")
	}
}

func TestTransfer_InvalidAmount(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", 1000)
	destination := mustAccount(t, "ACCT654321", "Jane Doe", 500)

	for _, raw := range []any{"abc", 0, "-50"} {
		if _, err := Transfer(source, destination, raw); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%v: expected ErrInvalidInput, got %v", raw, err)
		}
	}

	if !source.Balance().Equal(decimal.NewFromInt(1000)) || !destination.Balance().Equal(decimal.NewFromInt(500)) {
		t.Error("validation failures must not mutate balances")
	}
}

func TestTransfer_SourceHasNoHistoryRecord(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", 1000)
	destination := mustAccount(t, "ACCT654321", "Jane Doe", 500)

	if _, err := Transfer(source, destination, 200); err != nil {
		t.Fatal(err)
	}

	// The source debit is a low-level mutation; only the destination deposit
	// logs a record.
	if len(source.History()) != 0 {
		t.Errorf("expected no source-side record, got %+v", source.History())
	}

	history := destination.History()
	if len(history) != 1 || history[0].Type != RecordDeposit || history[0].Status != StatusCompleted {
		t.Errorf("expected one completed deposit record on destination, got %+v", history)
	}
}

func TestTransfer_ExactDecimalAmounts(t *testing.T) {
	t.Parallel()

	source := mustAccount(t, "ACCT123456", "John Doe", "10.10")
	destination := mustAccount(t, "ACCT654321", "Jane Doe", "0.01")

	result, err := Transfer(source, destination, "0.03")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := result.FromBalance.String(); got != "10.07" {
		t.Errorf("expected source balance 10.07, got %s", got)
	}

	if got := result.ToBalance.String(); got != "0.04" {
		t.Errorf("expected destination balance 0.04, got %s", got)
	}
}
