package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"addressbook/internal/core"
	"addressbook/internal/export"
	"addressbook/internal/log"
)

var (
	exportOut  string
	exportFrom string
	exportTo   string
)

// export --out fees.xlsx [--from YYYY-MM --to YYYY-MM]: write a fee report.
func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a fee report workbook",
		Long: "Write an .xlsx report with one row per contact and one column per month.\n" +
			"Without --from/--to the columns are every month anyone has paid for.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts := service.Contacts()
			months, err := export.ReportMonths(contacts, core.MonthPaid(exportFrom), core.MonthPaid(exportTo))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := export.FeeReport(&buf, contacts, months); err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, buf.Bytes(), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", exportOut, err)
			}

			logger.WithComponent(log.ComponentExport).Info("Fee report written",
				"path", exportOut,
				"contacts", len(contacts),
				log.FieldMonths, len(months))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d contacts and %d months to %s\n", len(contacts), len(months), exportOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&exportOut, "out", "fees.xlsx", "output file")
	cmd.Flags().StringVar(&exportFrom, "from", "", "first month of the report (YYYY-MM)")
	cmd.Flags().StringVar(&exportTo, "to", "", "last month of the report (YYYY-MM)")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}
