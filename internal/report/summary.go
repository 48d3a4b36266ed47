// Package report turns a processed session into a human-readable report.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finreport/internal/aggregate"
	"github.com/cleared-dev/finreport/internal/categorize"
	"github.com/cleared-dev/finreport/internal/model"
)

// Options controls which categories get special treatment.
type Options struct {
	Title              string
	ExcludedCategory   string // left out of the income/expense totals
	InterestCategory   string
	BusinessCategories []string
	GeneratedAt        time.Time
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Title:              "Financial Report",
		ExcludedCategory:   categorize.Transfers,
		InterestCategory:   categorize.InterestPaid,
		BusinessCategories: categorize.BusinessCategories(),
	}
}

// Summary is everything a renderer needs.
type Summary struct {
	Title       string
	DateRange   string
	GeneratedAt time.Time

	TotalExpenses decimal.Decimal
	TotalIncome   decimal.Decimal
	Net           decimal.Decimal

	Interest   InterestSummary
	Business   BusinessSummary
	Categories []CategoryRow
	Details    []CategoryDetail

	Unclassified     []aggregate.DescriptionCount
	Errors           []string
	TransactionCount int
}

// InterestSummary lists interest charges.
type InterestSummary struct {
	Transactions []model.Transaction
	Total        decimal.Decimal
}

// BusinessSummary holds the deductible spending per business category.
type BusinessSummary struct {
	Total      decimal.Decimal
	Categories []CategoryAmount
	// Any is set when at least one transaction fell in a business category.
	Any bool
}

// CategoryAmount pairs a category with one amount.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// CategoryRow is one line of the category summary table.
type CategoryRow struct {
	Name   string
	Anchor string
	model.CategoryTotal
}

// CategoryDetail lists one category's transactions by date.
type CategoryDetail struct {
	Name         string
	Anchor       string
	Transactions []model.Transaction
}

// Empty reports whether there is nothing to report.
func (s Summary) Empty() bool { return s.TransactionCount == 0 }

// Summarize computes the report figures for txns.
func Summarize(txns []model.Transaction, errs []string, opts Options) Summary {
	totals := aggregate.Aggregate(txns)
	s := Summary{
		Title:            opts.Title,
		DateRange:        aggregate.DateRangeSummary(txns),
		GeneratedAt:      opts.GeneratedAt,
		Errors:           errs,
		TransactionCount: len(txns),
		Unclassified:     aggregate.Unclassified(txns, categorize.Unclassified),
	}
	if s.Title == "" {
		s.Title = DefaultOptions().Title
	}

	s.TotalExpenses, s.TotalIncome = decimal.Zero, decimal.Zero
	for cat, t := range totals {
		if cat == opts.ExcludedCategory {
			continue
		}
		s.TotalExpenses = s.TotalExpenses.Add(t.DebitTotal)
		s.TotalIncome = s.TotalIncome.Add(t.CreditTotal)
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpenses)

	s.Interest.Total = decimal.Zero
	for _, txn := range txns {
		if txn.Category == opts.InterestCategory {
			s.Interest.Transactions = append(s.Interest.Transactions, txn)
			s.Interest.Total = s.Interest.Total.Add(txn.Debit)
		}
	}

	s.Business.Total = decimal.Zero
	for _, cat := range opts.BusinessCategories {
		t, ok := totals[cat]
		if !ok {
			continue
		}
		s.Business.Any = true
		s.Business.Total = s.Business.Total.Add(t.DebitTotal)
		if t.DebitTotal.IsPositive() {
			s.Business.Categories = append(s.Business.Categories, CategoryAmount{Name: cat, Amount: t.DebitTotal})
		}
	}

	for _, cat := range aggregate.Categories(totals) {
		t := totals[cat]
		if !t.DebitTotal.IsPositive() && !t.CreditTotal.IsPositive() {
			continue
		}
		s.Categories = append(s.Categories, CategoryRow{Name: cat, Anchor: Anchor(cat), CategoryTotal: t})
	}

	groups := aggregate.ByCategory(txns)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Details = append(s.Details, CategoryDetail{Name: name, Anchor: Anchor(name), Transactions: groups[name]})
	}

	return s
}

// Anchor returns the in-page link target for a category.
func Anchor(category string) string {
	return "category-" + strings.ToLower(strings.Join(strings.Fields(category), "-"))
}
