package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"riskeval/internal/report"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the PDF assessment report",
		Long: `Export the paginated PDF report: tier-count summary, the record
table, and one detail block per record.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if outPath == "" {
				outPath = fmt.Sprintf("Informe_Riesgos_NTP330_%s.pdf", time.Now().Format("2006-01-02"))
			}

			f, err := os.Create(outPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "creating report file", err)
			}

			generated := time.Now().Format(s.cfg.DateFormat)
			if err := report.WritePDF(f, s.mgr.Records(), generated); err != nil {
				f.Close()
				os.Remove(outPath)
				if errors.Is(err, report.ErrNoRecords) {
					fmt.Fprintln(cmd.OutOrStdout(), s.cfg.Messages.EmptyReport)
					return NewExitError(ExitFailure, "nothing to report")
				}
				return WrapExitError(ExitFailure, "exporting report", err)
			}
			if err := f.Close(); err != nil {
				return WrapExitError(ExitFailure, "writing report file", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default Informe_Riesgos_NTP330_<date>.pdf)")
	return cmd
}
