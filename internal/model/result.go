package model

// ProcessingResult is the outcome of parsing one input file.
type ProcessingResult struct {
	File         string
	Transactions []Transaction
	Errors       []string // "File <name>: ..." or "File <name>, row <n>: ..."
	SkippedRows  int
	TotalRows    int // includes the header row

	// Fatal is set when a file-level error stopped processing of the file.
	Fatal bool

	// ConflictingRows counts rows where both debit and credit were non-zero.
	// Such rows are kept as-is.
	ConflictingRows int
}
