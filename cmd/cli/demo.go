package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/minibank/internal/domain"
)

// demoCmd runs a self-contained walkthrough of the banking rules without
// a server: validation failures, an overdraft, a transfer, and the final
// histories, printing each fault with its code.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a local demonstration of the banking rules",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo()
		},
	}
}

func runDemo() {
	fmt.Println("=== Opening accounts ===")

	if _, err := domain.NewAccount("bad id!", "Alice", "1000"); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	alice, err := domain.NewAccount("ACCT123456", "Alice", "1000")
	if err != nil {
		fmt.Printf("Unexpected failure: %v\n", err)
		return
	}
	fmt.Printf("Opened %s for %s with balance %s\n", alice.ID(), alice.Owner(), alice.Balance())

	bob, err := domain.NewAccount("ACCT789012", "Bob", "500")
	if err != nil {
		fmt.Printf("Unexpected failure: %v\n", err)
		return
	}
	fmt.Printf("Opened %s for %s with balance %s\n", bob.ID(), bob.Owner(), bob.Balance())

	fmt.Println("\n=== Deposits and withdrawals ===")

	if balance, err := alice.Deposit("250.50"); err == nil {
		fmt.Printf("Deposited 250.50, balance is now %s\n", balance)
	}

	if _, err := alice.Deposit("-50"); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	if _, err := alice.Deposit("abc"); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	if balance, err := alice.Withdraw("100"); err == nil {
		fmt.Printf("Withdrew 100, balance is now %s\n", balance)
	}

	if _, err := alice.Withdraw("100000"); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	fmt.Println("\n=== Transfer ===")

	totalBefore := alice.Balance().Add(bob.Balance())

	result, err := domain.Transfer(alice, bob, "200")
	if err != nil {
		fmt.Printf("Transfer failed: %v\n", err)
		return
	}
	fmt.Printf("Transferred %s: %s now holds %s, %s now holds %s\n",
		result.Amount, alice.ID(), result.FromBalance, bob.ID(), result.ToBalance)

	totalAfter := alice.Balance().Add(bob.Balance())
	fmt.Printf("Money conserved: %s before, %s after\n", totalBefore, totalAfter)

	if _, err := domain.Transfer(alice, bob, "100000"); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	fmt.Println("\n=== Histories ===")
	printHistory(alice)
	printHistory(bob)
}

func printHistory(account *domain.Account) {
	fmt.Printf("%s (%s):\n", account.ID(), account.Owner())
	for _, record := range account.History() {
		line := fmt.Sprintf("  %-10s %10s  %s", record.Type, record.Amount, record.Status)
		if record.Error != "" {
			line += "  (" + record.Error + ")"
		}
		fmt.Println(line)
	}
}
