package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for licensegen.
type Config struct {
	Scanner   ScannerConfig     `yaml:"scanner"`
	Output    OutputConfig      `yaml:"output"`
	Overrides map[string]string `yaml:"overrides"` // dependency name -> repository URL
}

// ScannerConfig describes the external license scanner invocation.
type ScannerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// OutputConfig describes the report destination.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: the stock license-checker
// invocation restricted to production dependencies, a CSV report in the
// working directory, and the known repository overrides for dependencies
// that ship without repository metadata.
func Default() *Config {
	return &Config{
		Scanner: ScannerConfig{
			Command: "license-checker",
			Args:    []string{"--json", "--production"},
		},
		Output: OutputConfig{
			Path:   "LICENSE-3rdparty.csv",
			Format: "csv",
		},
		Overrides: map[string]string{
			"eyes": "https://github.com/cloudhead/eyes.js",
		},
	}
}

// Load reads and parses a configuration file on top of the defaults.
// User-supplied overrides are merged into the built-in table, with the
// user's entries winning on conflict.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations:
// the working directory, ./.config, ./configs, the XDG config home, and the
// user's home directory. Returns the first file found or an error if none is.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}
	if xdg.ConfigHome != "" {
		locations = append(
			locations,
			xdg.ConfigHome,
			filepath.Join(xdg.ConfigHome, "licensegen"),
		)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, homeDir)
	}

	patterns := []string{
		".licensegen.yaml",
		".licensegen.yml",
		"licensegen.yaml",
		"licensegen.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Scanner.Command == "" {
		return errors.New("scanner.command is required")
	}
	if cfg.Output.Path == "" {
		return errors.New("output.path is required")
	}
	if cfg.Output.Format == "" {
		return errors.New("output.format is required")
	}
	return nil
}
