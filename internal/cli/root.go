// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/core"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
)

// rootCmd installs the nrfjprog library when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "nrfjprog-install",
	Short: "Install the nrfjprog library",
	Long: `nrfjprog-install - nrfjprog library installer

Checks the installed nrfjprog library and, when it is missing or older than
the required version, downloads the vendor package for this platform and
unpacks or runs it. Meant to be run as a package install hook.`,
	Version:       "0.1.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runInstall,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nrfjprog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the configuration. A file that cannot be read, parsed or
// validated stops the command instead of falling back to defaults.
func initConfig() error {
	cfg, err := core.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config = cfg

	// Override config with flags
	if debug {
		config.Debug = true
	}
	return nil
}
