package domain

import "github.com/shopspring/decimal"

// TransferStatusCompleted is the only status a TransferResult ever carries;
// failed transfers return an error instead of a result.
const TransferStatusCompleted = "completed"

// TransferResult reports the balances after a completed transfer.
type TransferResult struct {
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
	Amount      decimal.Decimal
	Status      string
}

// Transfer moves amount from source to destination. It borrows both accounts
// for the duration of the call only.
//
// The source debit and destination credit are two sequential mutations, not
// an atomic commit: if the destination deposit fails, the source balance is
// restored to its pre-call value and the same error is returned unmodified.
// The destination is left exactly as Deposit left it, including any failed
// record in its history. A conservation check verifies the total across both
// accounts is unchanged before the result is returned.
func Transfer(source, destination *Account, amount any) (*TransferResult, error) {
	validated, err := ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	if validated.GreaterThan(source.balance) {
		return nil, NewInsufficientFunds(source.id, validated, source.balance)
	}

	// Deliberate low-level debit: the source side of a transfer does not go
	// through Withdraw and leaves no source-side history record.
	sourceBefore := source.balance
	source.balance = source.balance.Sub(validated)

	if _, err := destination.Deposit(validated); err != nil {
		source.balance = sourceBefore

		return nil, err
	}

	totalBefore := sourceBefore.Add(destination.balance.Sub(validated))
	totalAfter := source.balance.Add(destination.balance)

	if !totalBefore.Equal(totalAfter) {
		source.balance = sourceBefore

		return nil, NewFault(CodeConservation, "money not conserved during transfer")
	}

	return &TransferResult{
		FromBalance: source.balance,
		ToBalance:   destination.balance,
		Amount:      validated,
		Status:      TransferStatusCompleted,
	}, nil
}
