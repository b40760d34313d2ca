// internal/cli/explain.go
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

var (
	explainOperation string
	explainLog       string
	explainJSON      bool
)

var explainCmd = &cobra.Command{
	Use:   "explain <code> [lowlevel]",
	Short: "Format the message for an error code",
	Long: `Format the error message the binding reports for a code.

Codes are names or numbers. Examples:
  nrfjprog-install explain CouldNotLoadDLL
  nrfjprog-install explain 9 NVMC_ERROR --operation "erasing page"
  nrfjprog-install explain --json -- CouldNotProgram -20`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainOperation, "operation", "calling nrfjprog", "operation that failed")
	explainCmd.Flags().StringVar(&explainLog, "log", "", "library log output to append")
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "print the error as JSON")
}

func runExplain(cmd *cobra.Command, args []string) error {
	code, err := parseErrorCode(args[0])
	if err != nil {
		return err
	}

	lowLevel := errormsg.SUCCESS
	if len(args) > 1 {
		if lowLevel, err = parseLowLevelError(args[1]); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	e := errormsg.New(code, explainOperation, explainLog, lowLevel)
	if e == nil {
		fmt.Fprintf(out, "%s is not an error\n", code)
		return nil
	}

	if explainJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	}

	fmt.Fprint(out, e.Error())
	return nil
}

// parseErrorCode accepts a code name or number. Numbers outside the table are
// allowed and format as Unknown.
func parseErrorCode(s string) (errormsg.ErrorCode, error) {
	if code, ok := errormsg.ParseErrorCode(s); ok {
		return code, nil
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown error code %q", s)
	}
	return errormsg.ErrorCode(n), nil
}

func parseLowLevelError(s string) (errormsg.LowLevelError, error) {
	if code, ok := errormsg.ParseLowLevelError(s); ok {
		return code, nil
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown lowlevel error %q", s)
	}
	return errormsg.LowLevelError(n), nil
}
