package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"license-applier/internal/diagnostic"
	"license-applier/internal/header"
	"license-applier/internal/license"
	"license-applier/internal/logging"
)

// Config is the full configuration of a run.
type Config struct {
	Action         string            `yaml:"action,omitempty"`
	LicenseFile    string            `yaml:"licenseFile,omitempty"`
	PropertyValues map[string]string `yaml:"propertyValues,omitempty"`
	Paths          []string          `yaml:"paths,omitempty"`
	Jobs           int               `yaml:"jobs,omitempty"`
	Log            logging.Config    `yaml:"log,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
// A relative licenseFile is resolved against the directory of path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if cfg.LicenseFile != "" && !filepath.IsAbs(cfg.LicenseFile) {
		cfg.LicenseFile = filepath.Join(filepath.Dir(path), cfg.LicenseFile)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Action == "" {
		cfg.Action = header.DefaultAction.String()
	}

	if cfg.PropertyValues == nil {
		cfg.PropertyValues = map[string]string{}
	}

	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}

	if cfg.Jobs == 0 {
		cfg.Jobs = runtime.NumCPU()
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = string(logging.FormatConsole)
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the configuration without touching the license file.
func (c *Config) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if _, err := header.ParseAction(c.Action); err != nil {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("unknown action %q", c.Action), "", c.Action)
	}

	if c.LicenseFile == "" {
		res.AddError(diagnostic.CodeInvalidConfig, "licenseFile is required", "", c.Action)
	}

	if c.Jobs < 0 {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("jobs must not be negative, got %d", c.Jobs), "", c.Action)
	}

	return res
}

// Build compiles the license template and returns a ready Applier.
func (c *Config) Build() (*header.Applier, error) {
	action, err := header.ParseAction(c.Action)
	if err != nil {
		return nil, err
	}

	tmpl, err := license.LoadFile(c.LicenseFile, license.Bindings(c.PropertyValues))
	if err != nil {
		return nil, err
	}

	return header.NewApplier(tmpl, action), nil
}
