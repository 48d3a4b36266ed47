package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewTransaction_LargeExpense(t *testing.T) {
	tests := []struct {
		debit string
		want  bool
	}{
		{"0", false},
		{"199.99", false},
		{"200.00", false},
		{"200.01", true},
		{"1200", true},
	}
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		txn := NewTransaction(day, "desc", dec(tt.debit), decimal.Zero, "Auto")
		assert.Equal(t, tt.want, txn.IsLargeExpense, "debit %s", tt.debit)
	}
}

func TestNewTransaction_CreditNeverLarge(t *testing.T) {
	txn := NewTransaction(time.Now(), "Payroll", decimal.Zero, dec("5000"), "Deposits")
	assert.False(t, txn.IsLargeExpense)
}

func TestNewTransaction_CalendarDate(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	txn := NewTransaction(time.Date(2024, 3, 9, 23, 30, 0, 0, loc), "x", decimal.Zero, decimal.Zero, "Unclassified")
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), txn.Date)
}

func TestTransactionNet(t *testing.T) {
	txn := NewTransaction(time.Now(), "x", dec("40.00"), dec("10.00"), "Auto")
	assert.Equal(t, "-30.00", txn.Net().StringFixed(2))
}

func TestCategoryTotalAdd(t *testing.T) {
	var total CategoryTotal
	total = total.Add(NewTransaction(time.Now(), "a", dec("40.00"), decimal.Zero, "Auto"))
	total = total.Add(NewTransaction(time.Now(), "b", decimal.Zero, dec("15.50"), "Auto"))

	assert.Equal(t, "40.00", total.DebitTotal.StringFixed(2))
	assert.Equal(t, "15.50", total.CreditTotal.StringFixed(2))
	assert.Equal(t, "-24.50", total.NetAmount.StringFixed(2))
	assert.Equal(t, 2, total.TransactionCount)
}

func TestCategoryTotalMerge(t *testing.T) {
	a := CategoryTotal{}.Add(NewTransaction(time.Now(), "a", dec("1.25"), decimal.Zero, "X"))
	b := CategoryTotal{}.Add(NewTransaction(time.Now(), "b", decimal.Zero, dec("3.00"), "X"))

	got := a.Merge(b)
	assert.Equal(t, "1.25", got.DebitTotal.StringFixed(2))
	assert.Equal(t, "3.00", got.CreditTotal.StringFixed(2))
	assert.Equal(t, "1.75", got.NetAmount.StringFixed(2))
	assert.Equal(t, 2, got.TransactionCount)
}
