package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finreport/internal/model"
)

// Categorizer assigns a category name to a transaction description.
type Categorizer interface {
	Categorize(description string) string
}

// Parser turns the text of one bank CSV export into a ProcessingResult.
type Parser struct {
	categorizer Categorizer
	log         zerolog.Logger
}

// NewParser creates a Parser that categorizes rows with c.
func NewParser(c Categorizer, log zerolog.Logger) *Parser {
	return &Parser{categorizer: c, log: log}
}

type rowOutcome int

const (
	rowAccepted rowOutcome = iota
	rowSkipped
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse processes content read from the file called name. It never fails:
// file-level problems are reported in the result's Errors with Fatal set, and
// row-level problems skip the row.
func (p *Parser) Parse(name string, content []byte) model.ProcessingResult {
	result := model.ProcessingResult{File: name}

	text, err := normalizeContent(content)
	if err != nil {
		return FailedResult(name, err)
	}

	lines := strings.Split(text, "\n")
	result.TotalRows = len(lines)
	if len(lines) < 2 {
		return failWith(result, ErrNoDataRows)
	}

	headers := SplitFields(strings.TrimSuffix(lines[0], "\r"))
	mapping := DetectHeaders(headers)
	p.log.Debug().
		Str("file", name).
		Strs("headers", headers).
		Int("date", mapping.DateColumn).
		Int("description", mapping.DescriptionColumn).
		Int("debit", mapping.DebitColumn).
		Int("credit", mapping.CreditColumn).
		Int("amount", mapping.AmountColumn).
		Msg("header mapping")

	if err := mapping.Validate(); err != nil {
		return failWith(result, err)
	}

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		txn, outcome, err := p.parseRow(line, len(headers), mapping)
		if err != nil {
			fe := &FileError{File: name, Row: i + 1, Err: err}
			result.Errors = append(result.Errors, fe.Error())
			result.SkippedRows++
			continue
		}
		if outcome == rowSkipped {
			p.log.Debug().Str("file", name).Int("row", i+1).Msg("row skipped")
			result.SkippedRows++
			continue
		}
		if !txn.Debit.IsZero() && !txn.Credit.IsZero() {
			result.ConflictingRows++
			p.log.Warn().Str("file", name).Int("row", i+1).
				Str("debit", txn.Debit.String()).Str("credit", txn.Credit.String()).
				Msg("row has both debit and credit")
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result
}

// FailedResult returns the result for a file that could not be processed.
func FailedResult(name string, err error) model.ProcessingResult {
	return failWith(model.ProcessingResult{File: name}, err)
}

func failWith(result model.ProcessingResult, err error) model.ProcessingResult {
	var fe *FileError
	if !errors.As(err, &fe) {
		fe = &FileError{File: result.File, Err: err}
	}
	result.Errors = append(result.Errors, fe.Error())
	result.Fatal = true
	return result
}

func normalizeContent(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return "", ErrEmptyFile
	}
	if bytes.IndexByte(content, 0) != -1 || !utf8.Valid(content) {
		return "", ErrNotText
	}
	return strings.TrimSpace(string(content)), nil
}

func (p *Parser) parseRow(line string, width int, m HeaderMapping) (txn model.Transaction, outcome rowOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	fields := SplitFields(line)
	if len(fields) < width {
		return model.Transaction{}, rowSkipped, nil
	}

	date, err := ParseDate(fields[m.DateColumn])
	if err != nil {
		return model.Transaction{}, rowSkipped, nil
	}

	description := fields[m.DescriptionColumn]
	if description == "" {
		return model.Transaction{}, rowSkipped, nil
	}

	debit, credit := resolveAmounts(fields, m)
	category := p.categorizer.Categorize(description)

	return model.NewTransaction(date, description, debit, credit, category), rowAccepted, nil
}

// resolveAmounts turns the mapped amount fields into debit and credit
// magnitudes. Separate columns win over a signed amount column.
func resolveAmounts(fields []string, m HeaderMapping) (debit, credit decimal.Decimal) {
	switch {
	case m.DualColumns():
		return ParseAmount(fields[m.DebitColumn]).Abs(), ParseAmount(fields[m.CreditColumn]).Abs()
	case m.AmountColumn != NotFound:
		amount := ParseAmount(fields[m.AmountColumn])
		if amount.IsNegative() {
			return amount.Abs(), decimal.Zero
		}
		return decimal.Zero, amount
	case m.DebitColumn != NotFound:
		return ParseAmount(fields[m.DebitColumn]).Abs(), decimal.Zero
	case m.CreditColumn != NotFound:
		return decimal.Zero, ParseAmount(fields[m.CreditColumn]).Abs()
	}
	return decimal.Zero, decimal.Zero
}
