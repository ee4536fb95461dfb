package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

func newAccount(t *testing.T, id string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(id, "John Doe", 100)
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	return account
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepository()
	ctx := context.Background()

	account := newAccount(t, "ACCT123456")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "ACCT123456")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if got != account {
		t.Error("expected the live entity back, got a different value")
	}

	if _, err := repo.GetByID(ctx, "ACCT000000"); !errors.Is(err, usecase.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_DuplicateCreate(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepository()
	ctx := context.Background()

	original := newAccount(t, "ACCT123456")
	if err := repo.Create(ctx, original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, newAccount(t, "ACCT123456"))
	if !errors.Is(err, usecase.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	got, err := repo.GetByID(ctx, "ACCT123456")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if got != original {
		t.Error("duplicate create must not replace the stored account")
	}
}

func TestAccountRepository_List(t *testing.T) {
	t.Parallel()

	repo := NewAccountRepository()
	ctx := context.Background()

	for _, id := range []string{"ACCT000001", "ACCT000002", "ACCT000003"} {
		if err := repo.Create(ctx, newAccount(t, id)); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}

	accounts, err := repo.List(ctx, 2, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(accounts) != 2 || accounts[0].ID() != "ACCT000002" || accounts[1].ID() != "ACCT000003" {
		t.Errorf("unexpected page: %+v", accounts)
	}
}

func TestULIDGenerator_Unique(t *testing.T) {
	t.Parallel()

	gen := NewULIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}

		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}

		seen[id] = true
	}
}
