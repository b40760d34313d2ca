// nrfjprog.go
package nrfjprog

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nrfjprog-go/nrfjprog/pkg/core"
	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
	"github.com/nrfjprog-go/nrfjprog/pkg/installer"
	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

// Re-export types for convenience
type (
	ErrorCode     = errormsg.ErrorCode
	LowLevelError = errormsg.LowLevelError
	Version       = jprog.Version
	Library       = jprog.Library
	Platform      = platform.Platform
	Target        = platform.Target
	Config        = installer.Config
	Result        = installer.Result
	Manager       = installer.Manager
	// Settings is the on-disk user configuration
	Settings = core.Config
)

// DefaultSettings returns the user configuration with defaults and
// environment overrides applied
func DefaultSettings() *Settings {
	return core.DefaultConfig()
}

// LoadSettings reads the user configuration at path. An empty path uses the
// default location; a missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	return core.LoadConfig(path)
}

// NewManager creates an installer for cfg
func NewManager(cfg *Config) (*Manager, error) {
	return installer.NewManager(cfg)
}

// Open loads the installed nrfjprog library from dirs or the system locations
func Open(dirs ...string) (*Library, error) {
	return jprog.Open(dirs...)
}

// Detect returns the platform of the running process
func Detect() Platform {
	return platform.Detect()
}

// EnsureInstalled makes sure the library described by settings is installed
// on the running platform. A progress bar is drawn when stderr is a terminal.
// A nil settings loads the default configuration file.
func EnsureInstalled(ctx context.Context, settings *Settings) (*Result, error) {
	if settings == nil {
		var err error
		settings, err = core.LoadConfig("")
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	cfg, err := installer.ConfigFrom(settings)
	if err != nil {
		return nil, err
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg.Progress = os.Stderr
	}

	mgr, err := installer.NewManager(cfg)
	if err != nil {
		return nil, err
	}
	return mgr.Run(ctx, platform.Detect())
}
