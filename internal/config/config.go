// Package config loads the application settings and the grid layout from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const (
	// SchemaVersion is written into new layout files
	SchemaVersion = "1.0"

	// SchemaConstraint is the range of layout schema versions this build reads
	SchemaConstraint = "^1"
)

var (
	// ErrInvalidLayout is wrapped by every validation failure
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrUnsupportedVersion is returned for a schema version outside SchemaConstraint
	ErrUnsupportedVersion = errors.New("unsupported layout version")
)

// Config is one layout file: application settings plus the root grid
type Config struct {
	Version string    `yaml:"version"`
	App     AppConfig `yaml:"app"`
	Layout  GridNode  `yaml:"layout"`

	// Source is the file the config was read from; empty for the built-in default
	Source string `yaml:"-"`
}

// AppConfig holds the settings that are not part of the layout
type AppConfig struct {
	LogLevel  string `yaml:"logLevel"`
	LogFile   string `yaml:"logFile"`
	HistoryDB string `yaml:"historyDB"`
	Sound     bool   `yaml:"sound"`
	Watch     bool   `yaml:"watch"`
}

// Load loads configuration with priority:
// 1. Explicit path (the --config flag)
// 2. Project-level: ./.gridconsole.yaml
// 3. Global: <user config dir>/gridconsole/config.yaml
// 4. Default: built-in demo layout
func Load(explicit string) (*Config, error) {
	return LoadWithPlatform(explicit, DefaultPlatform)
}

// LoadWithPlatform allows injecting a custom platform provider for testing
func LoadWithPlatform(explicit string, platform PlatformProvider) (*Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}

	if wd, err := platform.Getwd(); err == nil {
		projectConfig := filepath.Join(wd, ProjectFileName)
		if isFile(projectConfig) {
			return LoadFile(projectConfig)
		}
	}

	if globalConfig := GlobalConfigPathWithPlatform(platform); globalConfig != "" && isFile(globalConfig) {
		return LoadFile(globalConfig)
	}

	return DefaultConfig(), nil
}

// LoadFile loads and validates the configuration at path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the schema version and the whole layout tree. All layout
// problems are reported together; each one wraps ErrInvalidLayout.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}
	return validateGrid("layout", &c.Layout)
}

// CheckVersion verifies that version satisfies SchemaConstraint.
// An empty version is read as SchemaVersion.
func CheckVersion(version string) error {
	if version == "" {
		version = SchemaVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SchemaConstraint)
	}
	return nil
}

// Marshal encodes the config back to YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
