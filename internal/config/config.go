// Package config loads termindex settings from a YAML file.
//
// Lookup order: an explicit path (the --config flag), otherwise
// .termindex.yaml in the working directory when present, otherwise
// defaults. Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ierrors "github.com/mutro/termindex/internal/errors"
	"github.com/mutro/termindex/internal/source"
	"github.com/mutro/termindex/internal/terms"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".termindex.yaml"

// Config is the complete termindex configuration.
type Config struct {
	Mode     string         `yaml:"mode"`
	Output   string         `yaml:"output"`
	LogLevel string         `yaml:"log_level"`
	Source   SourceConfig   `yaml:"source"`
	Document DocumentConfig `yaml:"document"`
}

// SourceConfig configures how page text is obtained.
type SourceConfig struct {
	// PDFBackend is one of auto, native, pdftotext.
	PDFBackend string `yaml:"pdf_backend"`
	// Converter is the office binary used to turn .docx into PDF.
	Converter string `yaml:"converter"`
	// Raw disables Unicode compatibility normalization of page text.
	Raw bool `yaml:"raw"`
}

// DocumentConfig sets the metadata written into the rendered index.
type DocumentConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Mode:     string(terms.ModeWords),
		LogLevel: "warn",
		Source: SourceConfig{
			PDFBackend: source.BackendAuto,
			Converter:  source.DefaultConverter,
		},
		Document: DocumentConfig{
			Title:  "Index table",
			Author: "Mutro",
		},
	}
}

// Load reads the config at path, or FileName in dir when path is empty.
// A missing FileName is not an error; a missing explicit path is.
func Load(path, dir string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, ierrors.ConfigError(fmt.Sprintf("reading config %s", path), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ierrors.ConfigError(fmt.Sprintf("parsing config %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := terms.ValidateMode(c.Mode); err != nil {
		return ierrors.ConfigError("invalid mode", err)
	}

	switch c.Source.PDFBackend {
	case source.BackendAuto, source.BackendNative, source.BackendPdftotext:
	default:
		return ierrors.ConfigError(fmt.Sprintf("invalid pdf_backend %q (valid options: auto, native, pdftotext)", c.Source.PDFBackend), nil)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ierrors.ConfigError(fmt.Sprintf("invalid log_level %q", c.LogLevel), nil)
	}

	if strings.TrimSpace(c.Source.Converter) == "" {
		return ierrors.ConfigError("converter must not be empty", nil)
	}
	return nil
}

// WriteYAML writes the config to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ierrors.IOFailure(fmt.Sprintf("writing config %s", path), err)
	}
	return nil
}
