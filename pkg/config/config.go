// Package config handles the optional sqlfix configuration file.
//
// The config file is a small YAML document that tunes formatting behavior. It
// is entirely optional: when no file exists at the given path, defaults apply
// and the tool behaves identically to an unconfigured run.
//
//	format:
//	  indent: 12
package config

import (
	"io"
	"os"

	"github.com/palladin/sqlfix/pkg/consts"
	"github.com/palladin/sqlfix/pkg/sqlfmt"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Format contains formatting-specific configuration settings.
	Format struct {
		// Indent specifies the number of spaces used to indent projection
		// terms and table references in rewritten literals
		Indent int `yaml:"indent,omitempty"`
	}

	// Config represents the sqlfix configuration.
	Config struct {
		// Format contains formatting-specific configuration settings
		Format Format `yaml:"format"`
	}
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Format: Format{Indent: consts.DefaultIndent},
	}
}

// LoadConfig parses a sqlfix configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Unset values default
// to the standard settings, so a partial (or empty) document is valid.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Format.Indent < 0 {
		return nil, errors.Errorf("invalid indent: %d", cfg.Format.Indent)
	}
	if cfg.Format.Indent == 0 {
		cfg.Format.Indent = consts.DefaultIndent
	}

	return &cfg, nil
}

// LoadConfigFile loads the configuration at path. A missing file is not an
// error; in that case the default configuration is returned.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file: %s", path)
	}

	return cfg, nil
}

// FormatterOptions converts the configuration into formatter options.
func (c *Config) FormatterOptions() sqlfmt.Options {
	return sqlfmt.Options{Indent: c.Format.Indent}
}
