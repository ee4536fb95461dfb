package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType identifies the direction of a transaction record.
type RecordType string

const (
	RecordDeposit    RecordType = "deposit"
	RecordWithdrawal RecordType = "withdrawal"
)

// RecordStatus is the lifecycle state of a transaction record. A record
// moves pending -> completed or pending -> failed and is terminal once
// appended to the history.
type RecordStatus string

const (
	StatusPending   RecordStatus = "pending"
	StatusCompleted RecordStatus = "completed"
	StatusFailed    RecordStatus = "failed"
)

// TransactionRecord is one entry in an account's append-only history.
type TransactionRecord struct {
	CreatedAt time.Time
	Type      RecordType
	Status    RecordStatus
	Error     string
	Amount    decimal.Decimal
}

// Account holds identity, owner, an exact decimal balance, and an
// append-only transaction history. The balance is always the sum of
// completed deposits minus completed withdrawals since creation and is never
// negative. Accounts are not safe for concurrent use; callers must
// serialize access externally.
type Account struct {
	id      string
	owner   string
	balance decimal.Decimal
	history []TransactionRecord
}

// NewAccount constructs an account with a validated ID, owner, and initial
// balance. The initial balance must be strictly positive. Any validation
// failure aborts construction; no partial account is produced.
func NewAccount(id, owner string, initialBalance any) (*Account, error) {
	id, err := ValidateAccountID(id)
	if err != nil {
		return nil, err
	}

	owner, err = ValidateOwnerName(owner)
	if err != nil {
		return nil, err
	}

	balance, err := ValidateAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	return &Account{id: id, owner: owner, balance: balance}, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Owner returns the account owner's name.
func (a *Account) Owner() string { return a.owner }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns a copy of the transaction history in append order.
func (a *Account) History() []TransactionRecord {
	return append([]TransactionRecord(nil), a.history...)
}

// Snapshot returns a copy of the account that stays consistent after the
// caller releases whatever lock serialized access to the original. The
// history is copied, not shared.
func (a *Account) Snapshot() *Account {
	return &Account{
		id:      a.id,
		owner:   a.owner,
		balance: a.balance,
		history: append([]TransactionRecord(nil), a.history...),
	}
}

// Deposit adds amount to the balance and returns the new balance. A failed
// validation leaves the history untouched; every call that passes validation
// appends exactly one record, completed or failed.
func (a *Account) Deposit(amount any) (decimal.Decimal, error) {
	validated, err := ValidateAmount(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	record := TransactionRecord{
		CreatedAt: time.Now().UTC(),
		Type:      RecordDeposit,
		Status:    StatusPending,
		Amount:    validated,
	}

	previous := a.balance
	a.balance = a.balance.Add(validated)

	// A positive amount over exact arithmetic always increases the balance.
	if !a.balance.GreaterThan(previous) {
		fault := NewFault(CodeDepositInvariant, "deposit invariant violated: balance did not increase")
		record.Status = StatusFailed
		record.Error = fault.Error()
		a.history = append(a.history, record)

		return decimal.Decimal{}, fault
	}

	record.Status = StatusCompleted
	a.history = append(a.history, record)

	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance. An
// amount exceeding the balance fails with an insufficient funds fault and a
// failed history record; the balance is not touched.
func (a *Account) Withdraw(amount any) (decimal.Decimal, error) {
	validated, err := ValidateAmount(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	record := TransactionRecord{
		CreatedAt: time.Now().UTC(),
		Type:      RecordWithdrawal,
		Status:    StatusPending,
		Amount:    validated,
	}

	if validated.GreaterThan(a.balance) {
		record.Status = StatusFailed
		record.Error = "insufficient funds"
		a.history = append(a.history, record)

		return decimal.Decimal{}, NewInsufficientFunds(a.id, validated, a.balance)
	}

	previous := a.balance
	a.balance = a.balance.Sub(validated)

	if !a.balance.LessThan(previous) {
		fault := NewFault(CodeWithdrawalInvariant, "withdrawal invariant violated: balance did not decrease")
		record.Status = StatusFailed
		record.Error = fault.Error()
		a.history = append(a.history, record)

		return decimal.Decimal{}, fault
	}

	record.Status = StatusCompleted
	a.history = append(a.history, record)

	return a.balance, nil
}
