package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/finreport/internal/model"
)

// SplitFields splits one CSV line on commas outside double quotes. A quote
// toggles the quoted state and is dropped from the value; doubled quotes are
// not treated as an escape. Each field is trimmed.
func SplitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}

// ParseDate parses M/D/Y (two-digit years pivot at 50) or, failing a
// three-part slash form, any layout dateparse recognizes. The result is a
// calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(s)

	parts := strings.Split(cleaned, "/")
	if len(parts) == 3 {
		month, okM := leadingInt(parts[0])
		day, okD := leadingInt(parts[1])
		year, okY := leadingInt(parts[2])
		if !okM || !okD || !okY {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		if year < 100 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
		return calendarDate(year, month, day, s)
	}

	if cleaned == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	t, err := dateparse.ParseAny(cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return model.CalendarDate(t), nil
}

func calendarDate(year, month, day int, raw string) (time.Time, error) {
	if year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 1); reject it instead.
	if t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// leadingInt parses the leading decimal digits of s after trimming spaces.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if digits == 9 {
			return 0, false
		}
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	return n, digits > 0
}

// ParseAmount keeps the digits, minus signs and decimal points of s and parses
// the longest numeric prefix of what remains. Unparseable input yields zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == '−', r == '–':
			b.WriteByte('-')
		}
	}

	num := numericPrefix(b.String())
	if num == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// numericPrefix returns the longest prefix of s shaped like -?D*(.D+)? that
// holds at least one digit, with a leading zero added before a bare point.
func numericPrefix(s string) string {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[start:i]

	var frac string
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		frac = s[i+1 : j]
	}

	if intPart == "" && frac == "" {
		return ""
	}
	if intPart == "" {
		intPart = "0"
	}
	out := intPart
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
