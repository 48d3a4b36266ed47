package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LargeExpenseThreshold is the debit above which a transaction is flagged.
var LargeExpenseThreshold = decimal.NewFromInt(200)

// Transaction represents one accepted bank CSV row after categorization.
// Build it with NewTransaction and pass it by value.
type Transaction struct {
	Date           time.Time       // calendar date, midnight UTC
	Description    string
	Debit          decimal.Decimal // expense magnitude, never negative
	Credit         decimal.Decimal // income magnitude, never negative
	Category       string
	IsLargeExpense bool
}

// NewTransaction returns a Transaction with IsLargeExpense derived from debit.
func NewTransaction(date time.Time, description string, debit, credit decimal.Decimal, category string) Transaction {
	return Transaction{
		Date:           CalendarDate(date),
		Description:    description,
		Debit:          debit,
		Credit:         credit,
		Category:       category,
		IsLargeExpense: debit.GreaterThan(LargeExpenseThreshold),
	}
}

// Net returns credit minus debit.
func (t Transaction) Net() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// CalendarDate truncates t to midnight UTC of its own year, month and day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
