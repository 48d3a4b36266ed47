package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX workbook.
const (
	SheetSummary      = "Summary"
	SheetTransactions = "Transactions"
	SheetErrors       = "Errors"
)

// XLSX writes the report as an Excel workbook.
func XLSX(w io.Writer, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, s); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetTransactions); err != nil {
		return fmt.Errorf("creating transactions sheet: %w", err)
	}
	if err := writeTransactionsSheet(f, s); err != nil {
		return err
	}

	if len(s.Errors) > 0 {
		if _, err := f.NewSheet(SheetErrors); err != nil {
			return fmt.Errorf("creating errors sheet: %w", err)
		}
		for i, e := range s.Errors {
			if err := setRow(f, SheetErrors, i+1, []any{cellText(e)}); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s Summary) error {
	rows := [][]any{
		{cellText(s.Title)},
		{"Date Range", s.DateRange},
		{"Total Expenses", s.TotalExpenses.InexactFloat64()},
		{"Total Income", s.TotalIncome.InexactFloat64()},
		{"Net Amount", s.Net.InexactFloat64()},
		{"Interest Paid", s.Interest.Total.InexactFloat64()},
		{"Business Deductions", s.Business.Total.InexactFloat64()},
		{},
		{"Category", "Expenses", "Income", "Net", "Transactions"},
	}
	for _, c := range s.Categories {
		rows = append(rows, []any{
			cellText(c.Name),
			c.DebitTotal.InexactFloat64(),
			c.CreditTotal.InexactFloat64(),
			c.NetAmount.InexactFloat64(),
			c.TransactionCount,
		})
	}
	for i, r := range rows {
		if err := setRow(f, SheetSummary, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactionsSheet(f *excelize.File, s Summary) error {
	if err := setRow(f, SheetTransactions, 1, []any{"Date", "Description", "Category", "Debit", "Credit", "Large Expense"}); err != nil {
		return err
	}
	row := 2
	for _, d := range s.Details {
		for _, t := range d.Transactions {
			err := setRow(f, SheetTransactions, row, []any{
				formatDate(t),
				cellText(t.Description),
				cellText(t.Category),
				t.Debit.InexactFloat64(),
				t.Credit.InexactFloat64(),
				t.IsLargeExpense,
			})
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

// cellText keeps spreadsheet apps from evaluating bank text as a formula.
func cellText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
