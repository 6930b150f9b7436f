package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exec <command line>: run a single command, e.g. exec markpaid 1 m/2024-01.
func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run one address book command and exit",
		Example: `  addressbook exec list
  addressbook exec markpaid 1 m/2024-01 m/2024-02
  addressbook exec unpaid 2024-03`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := service.Execute(cmd.Context(), strings.Join(args, " "))
			if res.Feedback != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
			}
			return err
		},
	}
}
