package statement

import (
	"testing"
	"time"

	"github.com/lachdavey/ledgerdoc/parser/common"
)

func txOn(year int, month time.Month, day int) common.Transaction {
	return common.Transaction{Date: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func TestAssemble_PeriodAnchorWins(t *testing.T) {
	text := "Statement Period: 01/06/2024 to 30/06/2024"
	// Most recent transaction falls in July; the anchor still decides.
	txs := []common.Transaction{txOn(2024, 6, 28), txOn(2024, 7, 2)}

	stmt := Assemble(text, "ING", txs)

	if stmt.Month != 6 || stmt.Year != 2024 {
		t.Errorf("Expected 6/2024, got %d/%d", stmt.Month, stmt.Year)
	}
}

func TestAssemble_MostRecentTransactionFallback(t *testing.T) {
	txs := []common.Transaction{txOn(2024, 1, 2), txOn(2024, 3, 15), txOn(2024, 2, 20)}

	stmt := Assemble("no anchor here", "ING", txs)

	if stmt.Month != 3 || stmt.Year != 2024 {
		t.Errorf("Expected 3/2024, got %d/%d", stmt.Month, stmt.Year)
	}
}

func TestAssemble_CarriesBankNameAndTransactions(t *testing.T) {
	txs := []common.Transaction{txOn(2024, 3, 15)}

	stmt := Assemble("", "ING Credit Card", txs)

	if stmt.BankName != "ING Credit Card" {
		t.Errorf("Expected bank name 'ING Credit Card', got '%s'", stmt.BankName)
	}
	if len(stmt.Transactions) != 1 {
		t.Errorf("Expected transactions carried through, got %d", len(stmt.Transactions))
	}
}

func TestAssemble_AnchorCaseInsensitive(t *testing.T) {
	text := "STATEMENT PERIOD: 1/2/2024 to 29/2/2024"

	stmt := Assemble(text, "ING", []common.Transaction{txOn(2024, 1, 5)})

	if stmt.Month != 2 || stmt.Year != 2024 {
		t.Errorf("Expected 2/2024, got %d/%d", stmt.Month, stmt.Year)
	}
}
