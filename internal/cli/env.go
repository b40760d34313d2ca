// internal/cli/env.go
package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/env"
)

var envExportsOnly bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the installed library directory",
	Long: `Show the libraries and headers in the install directory, the flags to build
against them and the loader path exports.

Examples:
  nrfjprog-install env
  eval "$(nrfjprog-install env --exports)"`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envExportsOnly, "exports", false, "only print the loader path exports")
}

func runEnv(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	e := env.New(config.LibDir, runtime.GOOS)

	if envExportsOnly {
		for _, line := range e.Exports() {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	fsys := afero.NewOsFs()
	libs, err := e.Libraries(fsys)
	if err != nil {
		return err
	}
	headers, err := e.Headers(fsys)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Library directory: %s\n", e.LibDir)
	if len(libs) == 0 {
		fmt.Fprintf(out, "No libraries installed, run nrfjprog-install\n")
	}
	for _, lib := range libs {
		fmt.Fprintf(out, "  %s %s\n", lib.Name, lib.Path)
	}
	fmt.Fprintf(out, "Headers: %d\n", len(headers))

	flags := e.CompilerFlags()
	fmt.Fprintf(out, "CFLAGS: %s\n", strings.Join(flags.IncludeFlags, " "))
	fmt.Fprintf(out, "LDFLAGS: %s\n", strings.Join(append(flags.LibraryFlags, flags.LinkFlags...), " "))
	for _, line := range e.Exports() {
		fmt.Fprintln(out, line)
	}
	return nil
}
