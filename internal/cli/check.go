// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the installed nrfjprog library version",
	Long:  `Probe the installed nrfjprog library and report whether an install is required. Nothing is downloaded.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	mgr, err := newManager(cmd)
	if err != nil {
		return err
	}

	res, err := mgr.Check(platform.Detect())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s\n", res.Platform)
	fmt.Fprintf(out, "Artifact: %s (%s)\n", res.Target.URL, res.Target.Kind)
	fmt.Fprintf(out, "Required: %s\n", res.Required)
	if res.Installed != nil {
		fmt.Fprintf(out, "Installed: %s\n", res.Installed)
	} else {
		fmt.Fprintf(out, "Installed: unknown\n")
	}
	if res.UsedHeaderFallback {
		fmt.Fprintf(out, "Found %s\n", platform.HeaderFallbackPath(res.Platform.OS))
	}
	fmt.Fprintf(out, "Install required: %t\n", res.InstallRequired)

	return nil
}
