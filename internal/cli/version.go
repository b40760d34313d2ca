// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/core"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "nrfjprog-install version %s\n", rootCmd.Version)
		fmt.Fprintf(out, "requires nrfjprog library %s\n", core.DefaultRequiredVersion)
	},
}
