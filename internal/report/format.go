package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finreport/internal/aggregate"
	"github.com/cleared-dev/finreport/internal/model"
)

// Currency formats d as US dollars, e.g. -$1,234.56.
func Currency(d decimal.Decimal) string {
	r := d.Round(2)
	abs := r.Abs()
	whole := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	s := fmt.Sprintf("$%s.%02d", humanize.Comma(whole), cents)
	if r.IsNegative() {
		return "-" + s
	}
	return s
}

// amountOrDash renders zero as "-".
func amountOrDash(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return Currency(d)
}

func formatDate(t model.Transaction) string {
	return t.Date.Format(aggregate.DateLayout)
}
