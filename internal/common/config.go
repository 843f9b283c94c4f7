package common

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats for the serialized report.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all application configuration
type Config struct {
	PDF     PDFConfig     `yaml:"pdf"`
	Output  OutputConfig  `yaml:"output"`
	Profile ProfileConfig `yaml:"profile"`
	Log     LogConfig     `yaml:"log"`
}

// PDFConfig holds text extraction configuration
type PDFConfig struct {
	Pdftotext   string        `yaml:"pdftotext"`
	MaxPages    int           `yaml:"max_pages"`
	PageTimeout time.Duration `yaml:"page_timeout"`
}

// OutputConfig holds report serialization configuration
type OutputConfig struct {
	Format   string `yaml:"format"`
	Validate bool   `yaml:"validate"`
}

// ProfileConfig holds batch profiling configuration
type ProfileConfig struct {
	Workers     int `yaml:"workers"`
	MaxPages    int `yaml:"max_pages"`
	SampleChars int `yaml:"sample_chars"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		PDF: PDFConfig{
			Pdftotext:   "pdftotext",
			PageTimeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Format:   FormatJSON,
			Validate: true,
		},
		Profile: ProfileConfig{
			Workers:     4,
			MaxPages:    10,
			SampleChars: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig starts from defaults, applies the YAML file at path (if any)
// and then environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewAppError(CodeConfig, "read config file", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, NewAppError(CodeConfig, "parse config file", err)
		}
	}

	cfg.PDF.Pdftotext = getEnv("PDFTOTEXT_BIN", cfg.PDF.Pdftotext)
	cfg.PDF.MaxPages = getEnvAsInt("PDF_MAX_PAGES", cfg.PDF.MaxPages)
	cfg.PDF.PageTimeout = getEnvAsDuration("PDF_PAGE_TIMEOUT", cfg.PDF.PageTimeout)
	cfg.Output.Format = strings.ToLower(getEnv("OUTPUT_FORMAT", cfg.Output.Format))
	cfg.Output.Validate = getEnvAsBool("OUTPUT_VALIDATE", cfg.Output.Validate)
	cfg.Profile.Workers = getEnvAsInt("PROFILE_WORKERS", cfg.Profile.Workers)
	cfg.Profile.MaxPages = getEnvAsInt("PROFILE_MAX_PAGES", cfg.Profile.MaxPages)
	cfg.Profile.SampleChars = getEnvAsInt("PROFILE_SAMPLE_CHARS", cfg.Profile.SampleChars)
	cfg.Log.Level = strings.ToLower(getEnv("LOG_LEVEL", cfg.Log.Level))

	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("pdf.pdftotext", c.PDF.Pdftotext, Required).
		Field("pdf.max_pages", c.PDF.MaxPages, NonNegative).
		Field("output.format", c.Output.Format, OneOf(FormatJSON, FormatYAML)).
		Field("profile.workers", c.Profile.Workers, Positive).
		Field("profile.max_pages", c.Profile.MaxPages, Positive).
		Field("profile.sample_chars", c.Profile.SampleChars, NonNegative).
		Field("log.level", c.Log.Level, OneOf("debug", "info", "warn", "error"))
	if err := v.Error(); err != nil {
		return NewAppError(CodeConfig, "invalid configuration", err)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// String renders the config for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("pdftotext=%s max_pages=%d format=%s validate=%t workers=%d",
		c.PDF.Pdftotext, c.PDF.MaxPages, c.Output.Format, c.Output.Validate, c.Profile.Workers)
}
