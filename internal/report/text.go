package report

import (
	"bufio"
	"fmt"
	"io"
)

// Text writes a plain-text version of the report.
func Text(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	if s.Empty() {
		fmt.Fprintln(bw, "No transactions to report.")
		writeTextErrors(bw, s.Errors)
		return bw.Flush()
	}

	fmt.Fprintln(bw, s.Title)
	fmt.Fprintf(bw, "Date Range: %s\n", s.DateRange)
	fmt.Fprintf(bw, "Transactions: %d\n\n", s.TransactionCount)

	fmt.Fprintf(bw, "Total Expenses: %s\n", Currency(s.TotalExpenses))
	fmt.Fprintf(bw, "Total Income:   %s\n", Currency(s.TotalIncome))
	fmt.Fprintf(bw, "Net Amount:     %s\n", Currency(s.Net))

	if len(s.Interest.Transactions) > 0 {
		fmt.Fprintf(bw, "\nInterest Paid: %s (%d charges)\n", Currency(s.Interest.Total), len(s.Interest.Transactions))
	}
	if s.Business.Any {
		fmt.Fprintf(bw, "\nBusiness Deductions: %s\n", Currency(s.Business.Total))
		for _, c := range s.Business.Categories {
			fmt.Fprintf(bw, "  %s: %s\n", c.Name, Currency(c.Amount))
		}
	}

	fmt.Fprintln(bw, "\nCategory Breakdown:")
	for _, c := range s.Categories {
		fmt.Fprintf(bw, "  %-45s %12s %12s %12s %4d\n",
			c.Name, amountOrDash(c.DebitTotal), amountOrDash(c.CreditTotal), Currency(c.NetAmount), c.TransactionCount)
	}

	if len(s.Unclassified) > 0 {
		fmt.Fprintln(bw, "\nUnclassified Descriptions:")
		for _, u := range s.Unclassified {
			fmt.Fprintf(bw, "  %dx %s\n", u.Count, u.Description)
		}
	}

	writeTextErrors(bw, s.Errors)
	return bw.Flush()
}

func writeTextErrors(w io.Writer, errs []string) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w, "\nErrors:")
	for _, e := range errs {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
