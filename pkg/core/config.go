// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRequiredVersion is the oldest nrfjprog library the binding accepts
	DefaultRequiredVersion = "10.12.1"

	// DefaultStripComponents drops the top-level directory of vendor archives
	DefaultStripComponents = 1

	// DefaultInclude selects headers and shared libraries from vendor archives
	DefaultInclude = `\.(h|dylib|so(\.[0-9]+)*)$`
)

// Config holds installer configuration
type Config struct {
	RequiredVersion string            `yaml:"required_version"`
	Home            string            `yaml:"home"`    // Download directory
	LibDir          string            `yaml:"lib_dir"` // Extracted library directory
	StripComponents int               `yaml:"strip_components"`
	Include         string            `yaml:"include"`
	URLs            map[string]string `yaml:"urls"`    // "os/arch" -> artifact URL
	Timeout         time.Duration     `yaml:"timeout"` // 0 waits forever
	Debug           bool              `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := baseConfig()
	cfg.finish()
	return cfg
}

func baseConfig() *Config {
	return &Config{
		RequiredVersion: DefaultRequiredVersion,
		Home:            getDefaultHome(),
		StripComponents: DefaultStripComponents,
		Include:         DefaultInclude,
		URLs:            make(map[string]string),
	}
}

// finish applies environment overrides and derives unset paths
func (c *Config) finish() {
	if home := os.Getenv("NRFJPROG_HOME"); home != "" {
		c.Home = home
	}
	if lib := os.Getenv("NRFJPROG_LIB_DIR"); lib != "" {
		c.LibDir = lib
	}
	if c.LibDir == "" {
		c.LibDir = filepath.Join(c.Home, "lib")
	}
	if c.URLs == nil {
		c.URLs = make(map[string]string)
	}
}

// DefaultConfigPath is used when no path is given to LoadConfig
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nrfjprog", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Values missing from the file keep
// their defaults; environment variables win over both.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := baseConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.finish()
	return cfg, cfg.Validate()
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate rejects values the installer cannot work with
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home must not be empty")
	}
	if c.LibDir == "" {
		return fmt.Errorf("lib_dir must not be empty")
	}
	if c.StripComponents < 0 {
		return fmt.Errorf("strip_components must not be negative, got %d", c.StripComponents)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

func getDefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "nrfjprog")
	}

	return filepath.Join(home, ".nrfjprog")
}
