package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/finreport/internal/categorize"
	"github.com/cleared-dev/finreport/internal/config"
	"github.com/cleared-dev/finreport/internal/logger"
	"github.com/cleared-dev/finreport/internal/report"
)

// app is the loaded project a command works on.
type app struct {
	dir string // directory holding the config file
	cfg *config.Config
	log zerolog.Logger
}

// loadApp reads the config (defaults when absent), applies .env and
// FINREPORT_* overrides and builds the logger writing to logOut.
func loadApp(g *globalFlags, logOut io.Writer) (*app, error) {
	absConfig, err := filepath.Abs(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	dir := filepath.Dir(absConfig)

	cfg, err := config.LoadOrDefault(absConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	log, err := logger.NewWithWriter(logOut, cfg.Log.Level, logger.Format(cfg.Log.Format))
	if err != nil {
		return nil, err
	}
	return &app{dir: dir, cfg: cfg, log: log}, nil
}

// path resolves p against the project directory.
func (a *app) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.dir, p)
}

func (a *app) rulesPath() string {
	return a.path(a.cfg.RulesFile)
}

func (a *app) categorizer() (*categorize.Categorizer, error) {
	c, err := categorize.Load(a.rulesPath())
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return c, nil
}

func (a *app) reportOptions() report.Options {
	return report.Options{
		Title:              a.cfg.Report.Title,
		ExcludedCategory:   a.cfg.Report.ExcludedCategory,
		InterestCategory:   a.cfg.Report.InterestCategory,
		BusinessCategories: a.cfg.Report.BusinessCategories,
	}
}
