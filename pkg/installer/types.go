// pkg/installer/types.go
package installer

import (
	"context"
	"io"
	"log"
	"regexp"
	"time"

	"github.com/spf13/afero"

	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

// VersionProber reports the version of the installed vendor library
type VersionProber interface {
	InstalledVersion() (jprog.Version, error)
}

// Launcher hands an installer executable to the operating system
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Config configures the installer
type Config struct {
	RequiredVersion string            // Minimum accepted library version, e.g. "10.12.1"
	DownloadDir     string            // Where artifacts are downloaded to
	LibDir          string            // Where archives are extracted to
	StripComponents int               // Leading path components dropped from archive entries
	Include         *regexp.Regexp    // Archive entries to extract (nil = DefaultInclude)
	URLs            map[string]string // Per "os/arch" URL overrides
	Timeout         time.Duration     // Download timeout, 0 = none
	Debug           bool              // Enable debug logging
	Logger          *log.Logger       // Custom logger (optional)
	Stderr          io.Writer         // Diagnostics, default os.Stderr
	Progress        io.Writer         // Progress bar output, nil disables it

	Fs       afero.Fs      // Default afero.NewOsFs()
	Prober   VersionProber // Default *jprog.Prober over LibDir
	Launcher Launcher      // Default OSLauncher for the running OS
	Client   *Client       // Default NewClient()
}

// Result describes what a run found and did
type Result struct {
	Platform           platform.Platform
	Target             *platform.Target
	Required           string
	Installed          *jprog.Version // nil when the probe failed
	ProbeErr           error
	UsedHeaderFallback bool
	InstallRequired    bool
	Downloaded         bool
	Extracted          int  // Files written to LibDir
	Launched           bool // Installer executable started
	CleanedUp          bool
}
