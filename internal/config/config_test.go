package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Report.Title = "Household 2024"
	cfg.Report.BusinessCategories = []string{"Web Hosting"}
	cfg.Pipeline.ReadConcurrency = 2
	cfg.Server.CacheTTL = time.Hour

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Financial Report", cfg.Report.Title)
	assert.Equal(t, "Transfers", cfg.Report.ExcludedCategory)
	assert.Equal(t, "Interest Paid", cfg.Report.InterestCategory)
	assert.Len(t, cfg.Report.BusinessCategories, 4)
	assert.Equal(t, "html", cfg.Report.Format)
	assert.Equal(t, "rules/categorization-rules.yaml", cfg.RulesFile)
	assert.Equal(t, 4, cfg.Pipeline.ReadConcurrency)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: text\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "Financial Report", cfg.Report.Title)
	assert.Equal(t, 4, cfg.Pipeline.ReadConcurrency)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: pdf\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, `invalid report format "pdf"`)

	require.NoError(t, os.WriteFile(path, []byte("pipeline: [oops"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "title: Financial Report")
	assert.Contains(t, contents, "excluded_category: Transfers")
	assert.Contains(t, contents, "read_concurrency: 4")
	assert.Contains(t, contents, "rules_file: rules/categorization-rules.yaml")
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINREPORT_REPORT_TITLE=From Dotenv\nFINREPORT_READ_CONCURRENCY=8\n"), 0o644))
	t.Setenv("FINREPORT_REPORT_FORMAT", "xlsx")
	t.Setenv("FINREPORT_READ_CONCURRENCY", "2")
	t.Setenv("FINREPORT_CACHE_TTL", "90s")
	// godotenv.Load sets variables that were not already set; register them for cleanup.
	t.Setenv("FINREPORT_REPORT_TITLE", "")
	require.NoError(t, os.Unsetenv("FINREPORT_REPORT_TITLE"))

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envFile))

	assert.Equal(t, "From Dotenv", cfg.Report.Title)
	assert.Equal(t, "xlsx", cfg.Report.Format)
	assert.Equal(t, 2, cfg.Pipeline.ReadConcurrency)
	assert.Equal(t, 90*time.Second, cfg.Server.CacheTTL)
}

func TestApplyEnv_MissingFileAndBadValues(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), ".env")))
	assert.Equal(t, Default(), cfg)

	t.Setenv("FINREPORT_READ_CONCURRENCY", "many")
	assert.ErrorContains(t, ApplyEnv(Default(), ""), "FINREPORT_READ_CONCURRENCY")

	t.Setenv("FINREPORT_READ_CONCURRENCY", "0")
	assert.ErrorContains(t, ApplyEnv(Default(), ""), "read_concurrency")
}
