package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the class of a banking fault.
type Kind int

const (
	// KindFault covers internal invariant violations: a balance that failed
	// to move in the expected direction, or a conservation check failing
	// during a transfer.
	KindFault Kind = iota
	// KindInvalidInput covers malformed inputs rejected before any mutation.
	KindInvalidInput
	// KindInvalidAmount covers amounts that parse but are zero or negative.
	// It is a specialization of KindInvalidInput and matches the
	// ErrInvalidInput sentinel.
	KindInvalidAmount
	// KindInsufficientFunds covers withdrawals and transfers whose amount
	// exceeds the current balance.
	KindInsufficientFunds
)

// Machine-readable fault codes.
const (
	CodeInvalidAmount       = "E001" // parsed amount <= 0
	CodeAmountFormat        = "E003" // amount cannot be parsed as a decimal
	CodeEmptyAccountID      = "E004" // account ID is empty
	CodeAccountIDFormat     = "E005" // account ID does not match the required pattern
	CodeEmptyOwnerName      = "E006" // owner name is blank
	CodeInsufficientFunds   = "T001"
	CodeDepositInvariant    = "L001" // balance did not increase after deposit
	CodeWithdrawalInvariant = "L002" // balance did not decrease after withdrawal
	CodeConservation        = "L003" // money not conserved during transfer
)

// Error is a banking fault: a kind tag, a human-readable message, and an
// optional machine-readable code. All failures raised by this package are
// *Error values.
type Error struct {
	Kind    Kind
	Code    string
	Message string

	// Populated only for insufficient funds faults.
	AccountID string
	Requested decimal.Decimal
	Balance   decimal.Decimal
}

func (e *Error) Error() string {
	if e.Code != "" {
		return "[" + e.Code + "] " + e.Message
	}

	return e.Message
}

// Is reports whether target matches this fault. A sentinel carrying only a
// kind matches every fault of that kind; a sentinel with a code additionally
// requires the same code. Invalid-amount faults also match the invalid-input
// sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Code != "" && t.Code != e.Code {
		return false
	}

	if t.Kind == e.Kind {
		return true
	}

	return t.Kind == KindInvalidInput && e.Kind == KindInvalidAmount
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrInvalidAmount     = &Error{Kind: KindInvalidAmount}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrFault             = &Error{Kind: KindFault}
)

// NewInvalidInput returns an input validation fault with the given code.
func NewInvalidInput(code, message string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Message: message}
}

// NewInvalidAmount reports a parsed amount that is zero or negative, echoing
// the offending raw value back to the caller.
func NewInvalidAmount(raw any) *Error {
	return &Error{
		Kind:    KindInvalidAmount,
		Code:    CodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount: %v, amount must be positive", raw),
	}
}

// NewInsufficientFunds reports a withdrawal or transfer exceeding the current
// balance, carrying the account ID, the requested amount, and the balance.
func NewInsufficientFunds(accountID string, requested, balance decimal.Decimal) *Error {
	message := fmt.Sprintf(
		"insufficient funds in account %s: attempted to withdraw %s, but balance is %s",
		accountID, requested, balance,
	)

	return &Error{
		Kind:      KindInsufficientFunds,
		Code:      CodeInsufficientFunds,
		Message:   message,
		AccountID: accountID,
		Requested: requested,
		Balance:   balance,
	}
}

// NewFault reports an internal invariant violation.
func NewFault(code, message string) *Error {
	return &Error{Kind: KindFault, Code: code, Message: message}
}
