package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Spec kinds for a Format.
const (
	KindSingle = "single" // one signed amount column
	KindTwo    = "two"    // separate expense and income columns
)

// FileName is the default config file name.
const FileName = "ledgersum.yaml"

// Config represents the top-level ledgersum.yaml configuration.
type Config struct {
	Formats    []Format    `yaml:"formats,omitempty"`
	Statements []Statement `yaml:"statements,omitempty"`
}

// Format describes how to read one kind of statement file.
type Format struct {
	Name          string `yaml:"name"`
	Kind          string `yaml:"kind"`
	AmountColumn  string `yaml:"amount_column,omitempty"`
	ExpenseColumn string `yaml:"expense_column,omitempty"`
	IncomeColumn  string `yaml:"income_column,omitempty"`
	Separator     string `yaml:"separator,omitempty"` // single character, default ","
	Quote         string `yaml:"quote,omitempty"`     // single character, empty disables quoting
}

// Statement is one file to summarize and the format it uses.
type Statement struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Env holds process settings read from the environment.
type Env struct {
	LogLevel   string `env:"LEDGERSUM_LOG_LEVEL"  envDefault:"warn"`
	LogFormat  string `env:"LEDGERSUM_LOG_FORMAT" envDefault:"console"`
	ConfigPath string `env:"LEDGERSUM_CONFIG"`
}

// LoadEnv reads Env from environment variables.
func LoadEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Load reads and validates a ledgersum.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
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

// Default returns a Config with one format of each kind and no statements.
func Default() *Config {
	return &Config{
		Formats: []Format{
			{
				Name:          "checking",
				Kind:          KindTwo,
				ExpenseColumn: "Debit",
				IncomeColumn:  "Credit",
				Quote:         `"`,
			},
			{
				Name:         "card",
				Kind:         KindSingle,
				AmountColumn: "Amount",
				Quote:        `"`,
			},
		},
	}
}

// Validate checks every format for completeness.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i, f := range c.Formats {
		key := strings.ToLower(f.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("format %d: duplicate name %q", i+1, f.Name))
		}
		seen[key] = true
		if err := f.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("format %d: %w", i+1, err))
		}
	}
	for i, s := range c.Statements {
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("statement %d: path is required", i+1))
		}
		if s.Format == "" {
			errs = append(errs, fmt.Errorf("statement %d: format is required", i+1))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the fields required by Kind are set.
func (f Format) Validate() error {
	if f.Name == "" {
		return errors.New("name is required")
	}
	switch f.Kind {
	case KindSingle:
		if f.AmountColumn == "" {
			return fmt.Errorf("%s: amount_column is required", f.Name)
		}
	case KindTwo:
		if f.ExpenseColumn == "" || f.IncomeColumn == "" {
			return fmt.Errorf("%s: expense_column and income_column are required", f.Name)
		}
		if f.ExpenseColumn == f.IncomeColumn {
			return fmt.Errorf("%s: expense_column and income_column must differ", f.Name)
		}
	default:
		return fmt.Errorf("%s: unknown kind %q", f.Name, f.Kind)
	}
	if f.Separator != "" && utf8.RuneCountInString(f.Separator) != 1 {
		return fmt.Errorf("%s: separator must be a single character", f.Name)
	}
	if f.Quote != "" && utf8.RuneCountInString(f.Quote) != 1 {
		return fmt.Errorf("%s: quote must be a single character", f.Name)
	}
	return nil
}
