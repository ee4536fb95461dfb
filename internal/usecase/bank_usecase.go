package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
)

var (
	// ErrAccountNotFound is returned when the requested account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when opening an account with an ID already in use.
	ErrAccountExists = errors.New("account already exists")
	// ErrSameAccount is returned when a transfer names the same account twice.
	ErrSameAccount = errors.New("cannot transfer to same account")
)

// BankUseCase orchestrates account operations over a repository. Account
// entities themselves are single-threaded; the use case provides the
// external serialization the domain requires, locking both accounts of a
// transfer in sorted-ID order (deadlock prevention).
type BankUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewBankUseCase creates a new BankUseCase. The metrics parameter may be nil.
func NewBankUseCase(accountRepo AccountRepository, idGen IDGenerator, m *metrics.Metrics) *BankUseCase {
	return &BankUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     m,
		locks:       make(map[string]*sync.Mutex),
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	AccountID      string
	OwnerName      string
	InitialBalance string
}

// OpenAccount validates the input, constructs the account, and stores it.
func (uc *BankUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	account, err := domain.NewAccount(input.AccountID, input.OwnerName, input.InitialBalance)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
	}

	return account, nil
}

// GetAccount retrieves a consistent snapshot of an account by ID. The live
// entity never escapes the per-account lock.
func (uc *BankUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := uc.lockAccounts(id)
	defer unlock()

	return account.Snapshot(), nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *BankUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	accounts, err := uc.accountRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*domain.Account, len(accounts))
	for i, account := range accounts {
		unlock := uc.lockAccounts(account.ID())
		snapshots[i] = account.Snapshot()
		unlock()
	}

	return snapshots, nil
}

// Deposit adds amount to the account and returns the new balance.
func (uc *BankUseCase) Deposit(ctx context.Context, accountID, amount string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	unlock := uc.lockAccounts(accountID)
	defer unlock()

	before := account.Balance()

	balance, err := account.Deposit(amount)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.Deposits.WithLabelValues(metrics.OutcomeFailed).Inc()
			uc.recordFault(err)
		}

		return decimal.Decimal{}, err
	}

	if uc.metrics != nil {
		uc.metrics.Deposits.WithLabelValues(metrics.OutcomeCompleted).Inc()

		observed, _ := balance.Sub(before).Float64()
		uc.metrics.DepositAmount.Observe(observed)
	}

	return balance, nil
}

// Withdraw removes amount from the account and returns the new balance.
func (uc *BankUseCase) Withdraw(ctx context.Context, accountID, amount string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	unlock := uc.lockAccounts(accountID)
	defer unlock()

	balance, err := account.Withdraw(amount)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.Withdrawals.WithLabelValues(metrics.OutcomeFailed).Inc()
			uc.recordFault(err)
		}

		return decimal.Decimal{}, err
	}

	if uc.metrics != nil {
		uc.metrics.Withdrawals.WithLabelValues(metrics.OutcomeCompleted).Inc()
	}

	return balance, nil
}

// GetHistory returns a copy of the account's transaction history.
func (uc *BankUseCase) GetHistory(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	unlock := uc.lockAccounts(accountID)
	defer unlock()

	return account.History(), nil
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        string
}

// TransferReceipt records a completed transfer with a unique ID.
type TransferReceipt struct {
	ID            string
	CreatedAt     time.Time
	FromAccountID string
	ToAccountID   string
	Result        domain.TransferResult
}

// Transfer moves money between two accounts, holding both account locks for
// the duration of the call.
func (uc *BankUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferReceipt, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, ErrSameAccount
	}

	source, err := uc.accountRepo.GetByID(ctx, input.FromAccountID)
	if err != nil {
		return nil, err
	}

	destination, err := uc.accountRepo.GetByID(ctx, input.ToAccountID)
	if err != nil {
		return nil, err
	}

	unlock := uc.lockAccounts(input.FromAccountID, input.ToAccountID)
	defer unlock()

	result, err := domain.Transfer(source, destination, input.Amount)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.Transfers.WithLabelValues(metrics.OutcomeFailed).Inc()
			uc.recordFault(err)
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.Transfers.WithLabelValues(metrics.OutcomeCompleted).Inc()

		observed, _ := result.Amount.Float64()
		uc.metrics.TransferAmount.Observe(observed)
	}

	return &TransferReceipt{
		ID:            uc.idGen.Generate(),
		CreatedAt:     time.Now().UTC(),
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Result:        *result,
	}, nil
}

// recordFault bumps the per-code fault counter when err carries a taxonomy code.
func (uc *BankUseCase) recordFault(err error) {
	var fault *domain.Error
	if errors.As(err, &fault) && fault.Code != "" {
		uc.metrics.Faults.WithLabelValues(fault.Code).Inc()
	}
}

// lockAccounts acquires the per-account locks for ids in sorted order and
// returns a func releasing them in reverse order.
func (uc *BankUseCase) lockAccounts(ids ...string) func() {
	sort.Strings(ids)

	var locks []*sync.Mutex
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}

		locks = append(locks, uc.lockFor(id))
	}

	for _, l := range locks {
		l.Lock()
	}

	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

func (uc *BankUseCase) lockFor(id string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l, ok := uc.locks[id]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[id] = l
	}

	return l
}
