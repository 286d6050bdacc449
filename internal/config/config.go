// Package config provides configuration management for nncalc.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for values that cannot be defaulted.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultFile is the file written by "config init".
const DefaultFile = ".nncalc.yaml"

var candidates = []string{".nncalc.yaml", ".nncalc.yml"}

// Config represents the nncalc configuration file.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose"`
	Strict  bool `yaml:"strict"`

	// Output settings
	Display DisplayConfig `yaml:"display"`

	// Interactive settings
	REPL REPLConfig `yaml:"repl"`
}

// DisplayConfig contains output-related configuration.
type DisplayConfig struct {
	Format string `yaml:"format,omitempty"`
}

// REPLConfig contains interactive loop configuration.
type REPLConfig struct {
	Prompt      string `yaml:"prompt,omitempty"`
	Banner      bool   `yaml:"banner"`
	HistorySize int    `yaml:"historySize,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Format: "text",
		},
		REPL: REPLConfig{
			Prompt:      "nncalc> ",
			Banner:      true,
			HistorySize: 100,
		},
	}
}

// Load loads configuration from the OS filesystem, falling back to defaults.
func Load(configFile string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), configFile)
}

// LoadFS loads configuration from fs. An empty configFile tries the default
// locations and returns defaults when none exists.
func LoadFS(fs afero.Fs, configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		for _, candidate := range candidates {
			if _, err := fs.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(fs, configFile); err != nil {
			return nil, err
		}
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFromFile(fs afero.Fs, filename string) error {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Display.Format == "" {
		c.Display.Format = "text"
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "nncalc> "
	}

	if c.REPL.HistorySize <= 0 {
		c.REPL.HistorySize = 100
	}
}

// Validate reports values that cannot be corrected by defaulting.
func (c *Config) Validate() error {
	switch c.Display.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: display format %q (want text or json)", ErrInvalidConfig, c.Display.Format)
	}

	return nil
}

// Save saves the configuration to a file on the OS filesystem.
func (c *Config) Save(filename string) error {
	return c.SaveFS(afero.NewOsFs(), filename)
}

// SaveFS saves the configuration to filename on fs.
func (c *Config) SaveFS(fs afero.Fs, filename string) error {
	dir := filepath.Dir(filename)
	if err := fs.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := afero.WriteFile(fs, filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write YAML config file: %w", err)
	}

	return nil
}

// Exists reports whether filename exists on the OS filesystem.
func Exists(filename string) bool {
	return ExistsFS(afero.NewOsFs(), filename)
}

// ExistsFS reports whether filename exists on fs.
func ExistsFS(fs afero.Fs, filename string) bool {
	ok, err := afero.Exists(fs, filename)

	return err == nil && ok
}
