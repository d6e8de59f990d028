// Package config loads the optional .paginate.yaml file: pagination
// defaults plus logging settings, with a semver gate on the schema version.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/stokpanel/paginate/internal/logging"
	"github.com/stokpanel/paginate/internal/paginator"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = ".paginate.yaml"

// supportedSchema is the config schema constraint this build understands.
const supportedSchema = "< 2.0.0"

// ErrUnsupportedVersion reports a config file written for a newer schema.
var ErrUnsupportedVersion = errors.New("unsupported config schema version")

// Defaults holds pagination fallbacks applied to every document.
type Defaults struct {
	// PageSize overrides the built-in default page size for containers that
	// carry no data-paginate-size. Non-positive values are ignored.
	PageSize int `yaml:"page_size"`
}

// Config is the full file schema.
type Config struct {
	Version  string         `yaml:"version"`
	Defaults Defaults       `yaml:"defaults"`
	Logging  logging.Config `yaml:"logging"`
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Version:  "1",
		Defaults: Defaults{PageSize: paginator.DefaultPageSize},
		Logging:  logging.Config{Level: "info", Format: "console"},
	}
}

// Load reads the config file at path, or DefaultFileName when path is empty.
// A missing default file is not an error; explicit paths must exist. File
// values are merged over the built-in defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	merge(&cfg, file)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// merge overlays non-zero file values onto the defaults.
func merge(dst *Config, src Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.Defaults.PageSize > 0 {
		dst.Defaults.PageSize = src.Defaults.PageSize
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
}

// Validate checks the schema version against the supported constraint.
func (c Config) Validate() error {
	if c.Version == "" {
		return nil
	}
	version, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("invalid config version %q: %w", c.Version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, c.Version, supportedSchema)
	}
	return nil
}
