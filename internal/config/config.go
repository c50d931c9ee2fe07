package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/statements/internal/extract"
	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/normalize"
)

type Config struct {
	App struct {
		Name     string     `envconfig:"APP_NAME" default:"statements"`
		LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	}

	Extractor struct {
		Backend       string `envconfig:"EXTRACTOR_BACKEND" default:"native"`
		PdftotextPath string `envconfig:"PDFTOTEXT_PATH" default:"pdftotext"`
	}

	Parser struct {
		DetectionPages int  `envconfig:"DETECTION_PAGES" default:"2"`
		StrictAmounts  bool `envconfig:"PARSER_STRICT_AMOUNTS" default:"false"`
		// Year pins the year of dates printed without one. Zero infers it
		// from the document.
		Year        int `envconfig:"PARSER_YEAR" default:"0"`
		Concurrency int `envconfig:"PARSE_CONCURRENCY" default:"4"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Extractor.Backend {
	case extract.BackendNative, extract.BackendPdftotext:
	default:
		errs = append(errs, fmt.Errorf("EXTRACTOR_BACKEND must be %q or %q, got %q",
			extract.BackendNative, extract.BackendPdftotext, c.Extractor.Backend))
	}

	if c.Parser.DetectionPages < 1 {
		errs = append(errs, fmt.Errorf("DETECTION_PAGES must be positive, got %d", c.Parser.DetectionPages))
	}

	if c.Parser.Year < 0 {
		errs = append(errs, fmt.Errorf("PARSER_YEAR must not be negative, got %d", c.Parser.Year))
	}

	if c.Parser.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("PARSE_CONCURRENCY must be positive, got %d", c.Parser.Concurrency))
	}

	return errors.Join(errs...)
}

func (c *Config) AmountPolicy() normalize.AmountPolicy {
	if c.Parser.StrictAmounts {
		return normalize.RejectUnparsableAmount
	}

	return normalize.ZeroOnUnparsableAmount
}

func (c *Config) YearPolicy() normalize.YearPolicy {
	if c.Parser.Year > 0 {
		return normalize.FixedYear(c.Parser.Year)
	}

	return normalize.InferYearFromDocument{}
}

// ParserOptions returns the strategy options the parser settings describe.
func (c *Config) ParserOptions() []scan.Option {
	return []scan.Option{
		scan.WithAmountPolicy(c.AmountPolicy()),
		scan.WithYearPolicy(c.YearPolicy()),
	}
}
