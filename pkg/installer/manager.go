// pkg/installer/manager.go
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

// Manager makes sure a compatible nrfjprog library is installed
type Manager struct {
	config   *Config
	fs       afero.Fs
	prober   VersionProber
	launcher Launcher
	client   *Client
	logger   *log.Logger
	stderr   io.Writer
}

// NewManager creates a new installer
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := ValidateVersion(cfg.RequiredVersion); err != nil {
		return nil, fmt.Errorf("required version: %w", err)
	}
	if cfg.DownloadDir == "" || cfg.LibDir == "" {
		return nil, fmt.Errorf("DownloadDir and LibDir are required")
	}
	if cfg.Include == nil {
		cfg.Include = DefaultInclude
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[DEBUG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	m := &Manager{
		config:   cfg,
		fs:       cfg.Fs,
		prober:   cfg.Prober,
		launcher: cfg.Launcher,
		client:   cfg.Client,
		logger:   logger,
		stderr:   cfg.Stderr,
	}

	if m.fs == nil {
		m.fs = afero.NewOsFs()
	}
	if m.prober == nil {
		m.prober = &jprog.Prober{Dirs: []string{cfg.LibDir}}
	}
	if m.launcher == nil {
		m.launcher = OSLauncher{GOOS: runtime.GOOS}
	}
	if m.client == nil {
		m.client = NewClient()
		m.client.SetProgress(cfg.Progress)
	}
	if m.stderr == nil {
		m.stderr = os.Stderr
	}

	if cfg.Debug {
		m.logger.Printf("Initialized installer")
		m.logger.Printf("  RequiredVersion: %s", cfg.RequiredVersion)
		m.logger.Printf("  DownloadDir: %s", cfg.DownloadDir)
		m.logger.Printf("  LibDir: %s", cfg.LibDir)
		m.logger.Printf("  Timeout: %s", cfg.Timeout)
	}

	return m, nil
}

// Check detects the platform and probes the installed library without
// changing anything. The only error it returns is an unsupported platform.
func (m *Manager) Check(p platform.Platform) (*Result, error) {
	res := &Result{Platform: p, Required: m.config.RequiredVersion}

	m.logger.Printf("Step 1: Detecting platform...")
	target, err := m.detect(p)
	if err != nil {
		m.report("Unsupported platform %s", p)
		return res, err
	}
	res.Target = target
	m.logger.Printf("  ✓ %s uses %s %s", p, target.Kind, target.URL)

	m.logger.Printf("Step 2: Probing installed nrfjprog library...")
	m.probe(res)
	return res, nil
}

// Run detects the platform, probes the installed library and installs the
// vendor artifact when needed. Every step failure is reported on Stderr and
// returned joined into a single error. Cleanup runs after any download
// attempt, whatever happened before it.
func (m *Manager) Run(ctx context.Context, p platform.Platform) (*Result, error) {
	res, err := m.Check(p)
	if err != nil {
		return res, err
	}

	if !res.InstallRequired {
		m.logger.Printf("  ✓ No installation required")
		return res, nil
	}

	var errs []error
	dest := filepath.Join(m.config.DownloadDir, res.Target.FileName)

	m.logger.Printf("Step 3: Downloading %s...", res.Target.URL)
	if err := m.download(ctx, res.Target.URL, dest); err != nil {
		m.report("Failed to download %s: %v", res.Target.URL, err)
		errs = append(errs, err)
	} else {
		res.Downloaded = true
		m.logger.Printf("  ✓ Download complete")

		m.logger.Printf("Step 4: Installing %s...", res.Target.Kind)
		if err := m.install(ctx, res, dest); err != nil {
			m.report("Failed to install nrfjprog: %v", err)
			errs = append(errs, err)
		} else {
			m.logger.Printf("  ✓ Install complete")
		}
	}

	m.logger.Printf("Step 5: Removing %s...", dest)
	if err := m.cleanup(dest); err != nil {
		m.report("Failed to remove %s: %v", dest, err)
		errs = append(errs, err)
	} else {
		res.CleanedUp = true
		m.logger.Printf("  ✓ Cleanup complete")
	}

	return res, errors.Join(errs...)
}

func (m *Manager) detect(p platform.Platform) (*platform.Target, error) {
	target, err := platform.Classify(p)
	if err != nil {
		return nil, &StepError{Step: "detect", Target: p.String(), Kind: ErrPlatformNotSupported, Err: err}
	}

	if url := m.config.URLs[p.String()]; url != "" {
		t := target.WithURL(url)
		target = &t
	}
	return target, nil
}

// probe fills in the installed version and decides whether to install
func (m *Manager) probe(res *Result) {
	installed, err := m.prober.InstalledVersion()
	if err == nil {
		res.Installed = &installed
		res.InstallRequired = Required(installed, res.Required)
		m.logger.Printf("  ✓ Installed %s, required %s", installed, res.Required)
		return
	}

	res.ProbeErr = &StepError{Step: "probe", Kind: ErrVersionProbe, Err: err}
	m.warn("Could not query installed nrfjprog library: %s", strings.TrimSpace(err.Error()))

	if header := platform.HeaderFallbackPath(res.Platform.OS); header != "" {
		if _, err := m.fs.Stat(header); err == nil {
			m.logger.Printf("  ✓ Found %s, assuming nrfjprog is installed", header)
			res.UsedHeaderFallback = true
			return
		}
	}

	res.InstallRequired = true
}

func (m *Manager) download(ctx context.Context, url, dest string) error {
	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	written, err := m.client.DownloadFile(ctx, url, m.fs, dest)
	if err != nil {
		return &StepError{Step: "download", Target: url, Kind: ErrDownloadFailed, Err: err}
	}

	m.logger.Printf("  ✓ Downloaded %d bytes to %s", written, dest)
	return nil
}

func (m *Manager) install(ctx context.Context, res *Result, dest string) error {
	switch res.Target.Kind {
	case platform.KindArchive:
		libDir := m.config.LibDir
		if err := m.fs.RemoveAll(libDir); err != nil {
			return &StepError{Step: "install", Target: libDir, Kind: ErrInstallFailed, Err: err}
		}
		if err := m.fs.MkdirAll(libDir, 0755); err != nil {
			return &StepError{Step: "install", Target: libDir, Kind: ErrInstallFailed, Err: err}
		}

		stats, err := Extract(m.fs, dest, libDir, ExtractOptions{
			StripComponents: m.config.StripComponents,
			Include:         m.config.Include,
			Logger:          m.logger,
		})
		res.Extracted = stats.Files + stats.Symlinks
		if err != nil {
			return &StepError{Step: "install", Target: dest, Kind: ErrInstallFailed, Err: err}
		}
		m.logger.Printf("  ✓ Extracted %d files, %d symlinks, skipped %d", stats.Files, stats.Symlinks, stats.Skipped)

	case platform.KindInstaller:
		if err := m.launcher.Launch(ctx, dest); err != nil {
			return &StepError{Step: "install", Target: dest, Kind: ErrInstallFailed, Err: err}
		}
		res.Launched = true
		m.logger.Printf("  ✓ Started %s", dest)

	default:
		return &StepError{Step: "install", Target: dest, Kind: ErrInstallFailed, Err: fmt.Errorf("unknown artifact kind %s", res.Target.Kind)}
	}

	return nil
}

func (m *Manager) cleanup(dest string) error {
	if err := m.fs.Remove(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StepError{Step: "cleanup", Target: dest, Kind: ErrCleanupFailed, Err: err}
	}
	return nil
}

func (m *Manager) report(format string, args ...interface{}) {
	fmt.Fprintf(m.stderr, "✗ "+format+"\n", args...)
}

func (m *Manager) warn(format string, args ...interface{}) {
	fmt.Fprintf(m.stderr, "! "+format+"\n", args...)
}
