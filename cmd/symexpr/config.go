package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration for the symexpr CLI.
//
// Everything here maps onto a package-level Options value; the CLI does
// no tuning of its own beyond flag overrides.
type Config struct {
	// Dataset section: where the rows come from.
	Dataset struct {
		// Path to a headerless numeric CSV; last column is the target.
		Path string `yaml:"path" validate:"required"`

		// TestFraction of rows held out for the final report.
		TestFraction float64 `yaml:"test_fraction" validate:"gte=0,lt=1"`

		// Seed for the deterministic train/test split.
		Seed int64 `yaml:"seed"`
	} `yaml:"dataset"`

	// Task section: library and reward.
	Task struct {
		// FunctionSet names the operator tokens, e.g. [add, sub, mul, sin].
		FunctionSet []string `yaml:"function_set" validate:"required,min=1"`

		// Metric is the reward metric name (see package metric).
		Metric       string    `yaml:"metric" validate:"required"`
		MetricParams []float64 `yaml:"metric_params"`

		// Threshold is the test-NMSE success bar; 0 keeps the default.
		Threshold float64 `yaml:"threshold" validate:"gte=0"`

		// FixedConsts registers extra fixed-constant terminals c1, c2, ….
		FixedConsts []float64 `yaml:"fixed_consts"`
	} `yaml:"task"`

	// Search section: sampling and evaluation budgets.
	Search struct {
		// Samples per run.
		Samples int `yaml:"samples" validate:"gte=1"`

		// Seed for the sequence sampler; 0 keeps the default stream.
		Seed int64 `yaml:"seed"`

		// MinLength/MaxLength/MaxDepth are the structural bounds.
		MinLength int `yaml:"min_length" validate:"gte=1"`
		MaxLength int `yaml:"max_length" validate:"gtefield=MinLength"`
		MaxDepth  int `yaml:"max_depth" validate:"gte=1"`

		// MaxConstants caps mutable constants per expression; 0 disables.
		MaxConstants int `yaml:"max_constants" validate:"gte=0"`

		// OptimizeConsts fits mutable constants before scoring.
		OptimizeConsts bool `yaml:"optimize_consts"`

		// Workers bounds parallel candidate evaluation; 0 means 1.
		Workers int `yaml:"workers" validate:"gte=0"`
	} `yaml:"search"`
}

// LoadConfig reads, parses and validates the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// defaultConfig pre-fills the fields YAML may omit.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Dataset.TestFraction = 0.2
	cfg.Task.Metric = "inv_nrmse"
	cfg.Search.Samples = 1000
	cfg.Search.MinLength = 4
	cfg.Search.MaxLength = 30
	cfg.Search.MaxDepth = 17
	cfg.Search.OptimizeConsts = true
	cfg.Search.Workers = 1

	return cfg
}
