package importer

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// File-level failures. Each stops processing of the file it occurs in.
var (
	ErrEmptyFile              = errors.New("file is empty")
	ErrNotText                = errors.New("file is not valid UTF-8 text")
	ErrNoDataRows             = errors.New("no data rows found")
	ErrMissingRequiredColumns = errors.New("could not detect required Date and Description columns")
	ErrMissingAmountColumns   = errors.New("could not detect amount columns (Debit/Credit or Amount)")
)

// ErrInvalidDate is returned by ParseDate for text that is not a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// FileError tags an error with the file and, for row failures, the 1-based
// line number (the header is line 1). File-level reasons are reported as
// sentences, so their first letter is upper-cased.
type FileError struct {
	File string
	Row  int // 0 for file-level errors
	Err  error
}

func (e *FileError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("File %s, row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("File %s: %s", e.File, sentence(e.Err.Error()))
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (e *FileError) Unwrap() error { return e.Err }
