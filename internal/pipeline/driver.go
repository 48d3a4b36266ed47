// Package pipeline runs a batch of bank exports through parsing and
// categorization and collects the outcome in a Session.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/finreport/internal/importer"
	"github.com/cleared-dev/finreport/internal/model"
)

// DefaultReadConcurrency bounds concurrent source reads when unset.
const DefaultReadConcurrency = 4

// Driver runs sessions.
type Driver struct {
	parser      *importer.Parser
	log         zerolog.Logger
	concurrency int
	now         func() time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithReadConcurrency sets how many sources are read at once.
func WithReadConcurrency(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithClock overrides the session start time source.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// NewDriver creates a Driver that categorizes rows with c.
func NewDriver(c importer.Categorizer, log zerolog.Logger, opts ...Option) *Driver {
	d := &Driver{
		parser:      importer.NewParser(c, log),
		log:         log,
		concurrency: DefaultReadConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type readResult struct {
	data []byte
	err  error
}

// Run processes sources and returns a fresh Session. It does not fail:
// every problem becomes an error string in the session. Sources are read
// concurrently; parsing and merging follow input order.
func (d *Driver) Run(ctx context.Context, sources []Source) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		StartedAt: d.now(),
	}
	log := d.log.With().Str("session", s.ID).Logger()

	reads := make([]readResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				reads[i] = readResult{err: err}
				return nil
			}
			data, err := src.ReadAll()
			reads[i] = readResult{data: data, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, src := range sources {
		var result model.ProcessingResult
		if reads[i].err != nil {
			result = importer.FailedResult(src.Name(), reads[i].err)
		} else {
			result = d.parser.Parse(src.Name(), reads[i].data)
		}

		log.Info().
			Str("file", result.File).
			Int("transactions", len(result.Transactions)).
			Int("skipped", result.SkippedRows).
			Int("errors", len(result.Errors)).
			Bool("fatal", result.Fatal).
			Msg("file processed")

		s.Results = append(s.Results, result)
		s.Transactions = append(s.Transactions, result.Transactions...)
		s.Errors = append(s.Errors, result.Errors...)
	}

	log.Info().
		Int("files", len(sources)).
		Int("transactions", len(s.Transactions)).
		Int("errors", len(s.Errors)).
		Msg("session complete")
	return s
}
