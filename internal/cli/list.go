package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"riskeval/internal/report"
	"riskeval/internal/risk"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded risk evaluations",
		Long: `List recorded risk evaluations, ordered by the chosen criterion.

Criteria: priority (default; most severe first, ties by score),
score, name, area.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			criterion := risk.Criterion(sortBy)
			if !isValidCriterion(criterion) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid sort criterion %q: must be one of %v", sortBy, risk.ValidCriteria))
			}

			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			s.mgr.ReSort(criterion)
			records := s.mgr.Records()

			switch rootOpts.Format {
			case "json":
				out := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
				return out.Success(records)
			case "html":
				return report.WriteHTMLTable(cmd.OutOrStdout(), records)
			default:
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no risks recorded")
					return nil
				}
				return report.WriteTable(cmd.OutOrStdout(), records, criterion)
			}
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(risk.DefaultCriterion), "sort criterion (priority|score|name|area)")
	return cmd
}

func isValidCriterion(c risk.Criterion) bool {
	for _, v := range risk.ValidCriteria {
		if c == v {
			return true
		}
	}
	return false
}
