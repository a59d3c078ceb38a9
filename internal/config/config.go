// Package config resolves regequiv settings from defaults, an optional
// YAML file and REGEQUIV_* environment variables. Command-line flags are
// applied on top by the cli package, which validates the merged result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds settings shared by every command.
type Config struct {
	Format  string `yaml:"format"  env:"REGEQUIV_FORMAT"`
	Verbose bool   `yaml:"verbose" env:"REGEQUIV_VERBOSE"`
	Witness bool   `yaml:"witness" env:"REGEQUIV_WITNESS"`

	// Normalize NFC-normalizes regexes and inputs before compiling, so
	// precomposed and decomposed spellings read as the same symbols.
	Normalize bool `yaml:"normalize" env:"REGEQUIV_NORMALIZE"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{Format: FormatText}
}

// Load starts from Default, applies the YAML file at path when path is
// non-empty, then the environment. The result is not validated: flags may
// still override it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty file decodes to io.EOF and leaves the defaults alone
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate rejects unknown output formats.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q: must be %s or %s", c.Format, FormatText, FormatJSON)
}
