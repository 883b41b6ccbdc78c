package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cashlens-dev/cashlens/internal/underwriting"
)

// Config represents the top-level cashlens.yaml configuration.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Report   ReportConfig   `yaml:"report"`
	LogLevel string         `yaml:"log_level"`
}

// ScenarioConfig describes a proposed loan for pro-forma analysis.
// Either all three fields are set or none; a partial scenario is a
// configuration error.
type ScenarioConfig struct {
	Amount     string  `yaml:"amount"` // decimal string, e.g. "10000.00"
	AnnualRate float64 `yaml:"annual_rate"`
	TermMonths int     `yaml:"term_months"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	BarWidth int  `yaml:"bar_width"`
	ShowBars bool `yaml:"show_bars"`
}

// LoanScenario converts the scenario block into a loan scenario, or nil
// when the block is unset.
func (c *Config) LoanScenario() (*underwriting.LoanScenario, error) {
	s := c.Scenario
	if s.Amount == "" && s.AnnualRate == 0 && s.TermMonths == 0 {
		return nil, nil
	}
	if s.Amount == "" || s.TermMonths == 0 {
		return nil, fmt.Errorf("scenario requires amount, annual_rate and term_months together")
	}

	amount, err := decimal.NewFromString(s.Amount)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario amount %q: %w", s.Amount, err)
	}
	return &underwriting.LoanScenario{
		Amount:     amount,
		AnnualRate: s.AnnualRate,
		TermMonths: s.TermMonths,
	}, nil
}

// Load reads a cashlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			BarWidth: 20,
			ShowBars: true,
		},
		LogLevel: "info",
	}
}
