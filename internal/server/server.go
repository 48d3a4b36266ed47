// Package server exposes report generation over HTTP: upload a batch of bank
// exports, get the rendered report back.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/cleared-dev/finreport/internal/logger"
	"github.com/cleared-dev/finreport/internal/pipeline"
	"github.com/cleared-dev/finreport/internal/report"
)

// UploadField is the multipart field holding the CSV files.
const UploadField = "files"

// ReportIDHeader carries the id under which a generated report is cached.
const ReportIDHeader = "X-Report-ID"

// Config tunes a Server.
type Config struct {
	MaxUploadBytes int64
	RatePerSecond  float64
	Burst          int
	CacheTTL       time.Duration
	Report         report.Options
}

// Server renders reports for uploaded files. It keeps generated reports in
// memory only, for CacheTTL.
type Server struct {
	driver  *pipeline.Driver
	cfg     Config
	log     zerolog.Logger
	limiter *rate.Limiter
	reports *cache.Cache
}

// New creates a Server that runs uploads through driver.
func New(driver *pipeline.Driver, cfg Config, log zerolog.Logger) *Server {
	return &Server{
		driver:  driver,
		cfg:     cfg,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		reports: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/reports", s.handleCreateReport)
		r.Get("/reports/{id}", s.handleGetReport)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	sources, err := s.readUpload(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("rejected upload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := s.driver.Run(r.Context(), sources)

	opts := s.cfg.Report
	opts.GeneratedAt = session.StartedAt
	var buf bytes.Buffer
	if err := report.HTML(&buf, report.Summarize(session.Transactions, session.Errors, opts)); err != nil {
		log.Error().Err(err).Msg("rendering report")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.reports.Set(session.ID, buf.Bytes(), cache.DefaultExpiration)
	log.Info().
		Str("report_id", session.ID).
		Int("files", len(sources)).
		Int("transactions", len(session.Transactions)).
		Int("errors", len(session.Errors)).
		Msg("report generated")

	w.Header().Set(ReportIDHeader, session.ID)
	writeHTML(w, http.StatusCreated, buf.Bytes())
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cached, ok := s.reports.Get(id)
	if !ok {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	w.Header().Set(ReportIDHeader, id)
	writeHTML(w, http.StatusOK, cached.([]byte))
}

// readUpload collects every file of the multipart UploadField, in form order.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]pipeline.Source, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[UploadField]
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files in field %q", UploadField)
	}

	sources := make([]pipeline.Source, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
		}
		sources = append(sources, pipeline.BytesSource{Filename: fh.Filename, Data: data})
	}
	return sources, nil
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
