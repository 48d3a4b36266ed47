package model

import "github.com/shopspring/decimal"

// CategoryTotal accumulates the transactions of one category.
type CategoryTotal struct {
	DebitTotal       decimal.Decimal
	CreditTotal      decimal.Decimal
	NetAmount        decimal.Decimal // CreditTotal - DebitTotal, kept incrementally
	TransactionCount int
}

// Add folds txn into the total.
func (c CategoryTotal) Add(txn Transaction) CategoryTotal {
	return CategoryTotal{
		DebitTotal:       c.DebitTotal.Add(txn.Debit),
		CreditTotal:      c.CreditTotal.Add(txn.Credit),
		NetAmount:        c.NetAmount.Add(txn.Credit.Sub(txn.Debit)),
		TransactionCount: c.TransactionCount + 1,
	}
}

// Merge combines two totals of the same category.
func (c CategoryTotal) Merge(o CategoryTotal) CategoryTotal {
	return CategoryTotal{
		DebitTotal:       c.DebitTotal.Add(o.DebitTotal),
		CreditTotal:      c.CreditTotal.Add(o.CreditTotal),
		NetAmount:        c.NetAmount.Add(o.NetAmount),
		TransactionCount: c.TransactionCount + o.TransactionCount,
	}
}

// CategoryTotals maps a category name to its totals. Only categories with at
// least one transaction are present.
type CategoryTotals map[string]CategoryTotal
