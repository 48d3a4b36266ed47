package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/finreport/internal/categorize"
)

// FileName is the config file written by `finreport init`.
const FileName = "finreport.yaml"

// Config represents the top-level finreport.yaml configuration.
type Config struct {
	Report    ReportConfig   `yaml:"report"`
	RulesFile string         `yaml:"rules_file"`
	Pipeline  PipelineConfig `yaml:"pipeline"`
	Server    ServerConfig   `yaml:"server"`
	Log       LogConfig      `yaml:"log"`
}

// ReportConfig controls report content and output.
type ReportConfig struct {
	Title              string   `yaml:"title"`
	ExcludedCategory   string   `yaml:"excluded_category"`
	InterestCategory   string   `yaml:"interest_category"`
	BusinessCategories []string `yaml:"business_categories"`
	Format             string   `yaml:"format"` // html, xlsx or text
}

// PipelineConfig tunes batch processing.
type PipelineConfig struct {
	ReadConcurrency int `yaml:"read_concurrency"`
}

// ServerConfig configures `finreport serve`.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	Burst          int           `yaml:"burst"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

// LogConfig sets the default log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Load reads a finreport.yaml file from disk. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load that returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Title:              "Financial Report",
			ExcludedCategory:   categorize.Transfers,
			InterestCategory:   categorize.InterestPaid,
			BusinessCategories: categorize.BusinessCategories(),
			Format:             "html",
		},
		RulesFile: categorize.RulesFile,
		Pipeline: PipelineConfig{
			ReadConcurrency: 4,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			MaxUploadBytes: 10 << 20,
			RatePerSecond:  5,
			Burst:          10,
			CacheTTL:       30 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "html", "xlsx", "text":
	default:
		return fmt.Errorf("invalid report format %q (want html, xlsx or text)", c.Report.Format)
	}
	if c.Pipeline.ReadConcurrency < 1 {
		return fmt.Errorf("pipeline.read_concurrency must be at least 1, got %d", c.Pipeline.ReadConcurrency)
	}
	if c.Server.MaxUploadBytes < 1 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	return nil
}
