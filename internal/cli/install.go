// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/installer"
	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

func runInstall(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mgr, err := newManager(cmd)
	if err != nil {
		return err
	}

	res, err := mgr.Run(ctx, platform.Detect())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case !res.InstallRequired:
		fmt.Fprintf(out, "✓ nrfjprog library is up to date (required %s)\n", res.Required)
	case res.Launched:
		fmt.Fprintf(out, "✓ Started the nrfjprog installer, finish it to complete the installation\n")
	default:
		fmt.Fprintf(out, "✓ Installed nrfjprog library to %s (%d files)\n", config.LibDir, res.Extracted)
	}
	return nil
}

// newManager builds an installer from the loaded configuration. The progress
// bar is only drawn on a terminal.
func newManager(cmd *cobra.Command) (*installer.Manager, error) {
	cfg, err := installer.ConfigFrom(config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Stderr = cmd.ErrOrStderr()

	if f, ok := cfg.Stderr.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		cfg.Progress = f
	}

	return installer.NewManager(cfg)
}
