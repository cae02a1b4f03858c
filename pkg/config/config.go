// Package config loads boomi-validate settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file (.boomi-validate.yml), environment variables, and
// command-line flags. The YAML file is checked against an embedded JSON
// schema before it is decoded.
//
//	# .boomi-validate.yml
//	blocklist:
//	  - ab12cd34-5678-90ef-ghij-klmnopqrstuv
//	recover: true
//	max-reported-hits: 10
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/githubnext/boomi-validate/pkg/boomixml"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/envutil"
	"github.com/githubnext/boomi-validate/pkg/fileutil"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/rules"
	"github.com/githubnext/boomi-validate/pkg/validator"
)

var configLog = logger.New("config:config")

// Config holds every setting of a validation run.
type Config struct {
	Blocklist       []string `yaml:"blocklist"`
	Recover         bool     `yaml:"recover"`
	Output          string   `yaml:"output"`
	SummaryEnv      string   `yaml:"summary-env"`
	MaxReportedHits int      `yaml:"max-reported-hits"`
	MaxFileBytes    int64    `yaml:"max-file-bytes"`

	// Source is the file the config was loaded from, if any.
	Source string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Blocklist:       append([]string(nil), constants.DefaultBlocklist...),
		Output:          constants.DefaultReportFile,
		SummaryEnv:      constants.StepSummaryEnvVar,
		MaxReportedHits: constants.DefaultMaxReportedHits,
		MaxFileBytes:    constants.DefaultMaxFileBytes,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path loads constants.DefaultConfigFile when it exists and falls back to
// the defaults otherwise; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if !fileutil.FileExists(constants.DefaultConfigFile) {
			configLog.Print("No config file, using defaults")
			return cfg, nil
		}
		path = constants.DefaultConfigFile
	}

	configLog.Printf("Loading config: %s", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.TrimSpace(string(content)) != "" {
		if err := validateWithSchema(content); err != nil {
			return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() {
	c.Recover = envutil.GetBoolFromEnv(constants.RecoverEnvVar, c.Recover, configLog)
	c.MaxReportedHits = envutil.GetIntFromEnv(constants.MaxHitsEnvVar, c.MaxReportedHits, 1, constants.MaxReportedHitsLimit, configLog)
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	collector := NewErrorCollector()

	for i, id := range c.Blocklist {
		if strings.TrimSpace(id) == "" {
			collector.Add(fmt.Errorf("blocklist entry %d is blank", i+1))
		}
	}
	if strings.TrimSpace(c.Output) == "" {
		collector.Add(errors.New("output path must not be empty"))
	}
	if strings.TrimSpace(c.SummaryEnv) == "" {
		collector.Add(errors.New("summary-env must not be empty"))
	}
	if c.MaxReportedHits < 1 || c.MaxReportedHits > constants.MaxReportedHitsLimit {
		collector.Add(fmt.Errorf("max-reported-hits must be between 1 and %d, got %d", constants.MaxReportedHitsLimit, c.MaxReportedHits))
	}
	if c.MaxFileBytes < 1 {
		collector.Add(fmt.Errorf("max-file-bytes must be positive, got %d", c.MaxFileBytes))
	}

	if collector.HasErrors() {
		configLog.Printf("Config validation failed: %d problem(s)", collector.Count())
	}
	return collector.FormattedError("configuration")
}

// ValidatorOptions converts the config into validator options.
func (c Config) ValidatorOptions() validator.Options {
	return validator.Options{
		Blocklist: rules.NewBlocklist(c.Blocklist...),
		Parse: boomixml.Options{
			Recover:  c.Recover,
			MaxBytes: c.MaxFileBytes,
		},
		MaxReportedHits: c.MaxReportedHits,
	}
}
