// Package aggregate folds categorized transactions into per-category totals.
package aggregate

import (
	"sort"
	"time"

	"github.com/cleared-dev/finreport/internal/model"
)

// DateLayout renders dates in report summaries, e.g. 1/5/2024.
const DateLayout = "1/2/2006"

// Aggregate sums debits, credits and net amount per category. The result
// does not depend on the order of txns.
func Aggregate(txns []model.Transaction) model.CategoryTotals {
	totals := make(model.CategoryTotals)
	for _, txn := range txns {
		totals[txn.Category] = totals[txn.Category].Add(txn)
	}
	return totals
}

// Merge combines totals computed over disjoint transaction sets.
func Merge(parts ...model.CategoryTotals) model.CategoryTotals {
	out := make(model.CategoryTotals)
	for _, p := range parts {
		for cat, t := range p {
			out[cat] = out[cat].Merge(t)
		}
	}
	return out
}

// DateRange returns the earliest and latest transaction dates. ok is false
// when txns is empty.
func DateRange(txns []model.Transaction) (first, last time.Time, ok bool) {
	if len(txns) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = txns[0].Date, txns[0].Date
	for _, txn := range txns[1:] {
		if txn.Date.Before(first) {
			first = txn.Date
		}
		if txn.Date.After(last) {
			last = txn.Date
		}
	}
	return first, last, true
}

// DateRangeSummary formats the span of txns as "1/5/2024 - 1/6/2024", a
// single date when all transactions share one day, or "" when txns is empty.
func DateRangeSummary(txns []model.Transaction) string {
	first, last, ok := DateRange(txns)
	if !ok {
		return ""
	}
	if first.Equal(last) {
		return first.Format(DateLayout)
	}
	return first.Format(DateLayout) + " - " + last.Format(DateLayout)
}

// ByCategory groups txns by category, each group sorted by date. Rows on the
// same date keep their input order.
func ByCategory(txns []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, txn := range txns {
		groups[txn.Category] = append(groups[txn.Category], txn)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].Date.Before(g[j].Date) })
	}
	return groups
}

// Unclassified returns the distinct descriptions that matched no rule, with
// how often each occurred, most frequent first.
func Unclassified(txns []model.Transaction, unclassified string) []DescriptionCount {
	counts := make(map[string]int)
	var order []string
	for _, txn := range txns {
		if txn.Category != unclassified {
			continue
		}
		if _, seen := counts[txn.Description]; !seen {
			order = append(order, txn.Description)
		}
		counts[txn.Description]++
	}

	out := make([]DescriptionCount, len(order))
	for i, d := range order {
		out[i] = DescriptionCount{Description: d, Count: counts[d]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// DescriptionCount is one entry of Unclassified.
type DescriptionCount struct {
	Description string
	Count       int
}

// Categories returns the keys of totals sorted by name.
func Categories(totals model.CategoryTotals) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
