// internal/cli/codes.go
package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

var codesLowLevel bool

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List binding error codes",
	Long:  `List the binding error codes, or with --lowlevel the error codes of the nrfjprog library.`,
	Args:  cobra.NoArgs,
	RunE:  runCodes,
}

func init() {
	codesCmd.Flags().BoolVar(&codesLowLevel, "lowlevel", false, "list nrfjprog library error codes")
}

func runCodes(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())

	if codesLowLevel {
		table.Header("Code", "Name")
		for _, code := range errormsg.LowLevelErrors() {
			if err := table.Append([]string{strconv.Itoa(int(code)), code.String()}); err != nil {
				return err
			}
		}
		return table.Render()
	}

	table.Header("Code", "Hex", "Name")
	for _, code := range errormsg.Codes() {
		if err := table.Append([]string{strconv.Itoa(int(code)), "0x" + strconv.FormatInt(int64(code), 16), code.String()}); err != nil {
			return err
		}
	}
	return table.Render()
}
