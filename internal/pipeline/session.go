package pipeline

import (
	"time"

	"github.com/cleared-dev/finreport/internal/aggregate"
	"github.com/cleared-dev/finreport/internal/model"
)

// Session holds everything one run produced. A new Session is built for
// every run; nothing carries over between runs.
type Session struct {
	ID        string
	StartedAt time.Time

	// Results has one entry per source, in input order.
	Results      []model.ProcessingResult
	Transactions []model.Transaction
	Errors       []string
}

// Totals aggregates the session's transactions per category.
func (s *Session) Totals() model.CategoryTotals {
	return aggregate.Aggregate(s.Transactions)
}

// DateRange returns the first and last transaction dates.
func (s *Session) DateRange() (first, last time.Time, ok bool) {
	return aggregate.DateRange(s.Transactions)
}

// DateRangeSummary formats DateRange for display.
func (s *Session) DateRangeSummary() string {
	return aggregate.DateRangeSummary(s.Transactions)
}

// Empty reports whether the run produced no transactions.
func (s *Session) Empty() bool {
	return len(s.Transactions) == 0
}

// SkippedRows sums skipped rows over all files.
func (s *Session) SkippedRows() int {
	n := 0
	for _, r := range s.Results {
		n += r.SkippedRows
	}
	return n
}

// FailedFiles returns the names of files stopped by a file-level error.
func (s *Session) FailedFiles() []string {
	var names []string
	for _, r := range s.Results {
		if r.Fatal {
			names = append(names, r.File)
		}
	}
	return names
}
