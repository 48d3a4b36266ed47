package importer

import "strings"

// NotFound marks a column that the header row does not provide.
const NotFound = -1

// HeaderMapping locates the columns of interest in one file's header row.
// It is built once per file and never mutated.
type HeaderMapping struct {
	DateColumn        int
	DescriptionColumn int
	DebitColumn       int
	CreditColumn      int
	AmountColumn      int
}

// DetectHeaders maps raw header cells to column indexes.
//
// Date and description take the first header containing "date" and
// "description"/"merchant" respectively. Amount columns are matched on exact
// tokens and a later duplicate overwrites an earlier one.
func DetectHeaders(headers []string) HeaderMapping {
	m := HeaderMapping{
		DateColumn:        NotFound,
		DescriptionColumn: NotFound,
		DebitColumn:       NotFound,
		CreditColumn:      NotFound,
		AmountColumn:      NotFound,
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for i, h := range normalized {
		if strings.Contains(h, "date") {
			m.DateColumn = i
			break
		}
	}

	for i, h := range normalized {
		if strings.Contains(h, "description") || strings.Contains(h, "merchant") {
			m.DescriptionColumn = i
			break
		}
	}

	for i, h := range normalized {
		switch h {
		case "debit", "withdrawal":
			m.DebitColumn = i
		case "credit", "deposit":
			m.CreditColumn = i
		case "amount":
			m.AmountColumn = i
		}
	}

	return m
}

// Validate reports whether the mapping can drive row parsing.
func (m HeaderMapping) Validate() error {
	if m.DateColumn == NotFound || m.DescriptionColumn == NotFound {
		return ErrMissingRequiredColumns
	}
	if m.DebitColumn == NotFound && m.CreditColumn == NotFound && m.AmountColumn == NotFound {
		return ErrMissingAmountColumns
	}
	return nil
}

// DualColumns reports whether separate debit and credit columns are mapped.
func (m HeaderMapping) DualColumns() bool {
	return m.DebitColumn != NotFound && m.CreditColumn != NotFound
}
