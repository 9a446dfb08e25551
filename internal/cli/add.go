package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"riskeval/internal/manager"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new risk evaluation",
		Long: `Record a new risk evaluation.

The three NTP 330 levels are mandatory; run 'riskeval scales' to see the
allowed values.

Example:
  riskeval add --name "Falling objects" --area Warehouse --nd 6 --ne 3 --nc 25`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.mgr.Submit(cmd.Context(), flags.toInput(cmd))
			if err != nil {
				return reportSubmitError(cmd, rootOpts, err)
			}

			return printSubmitResult(cmd, rootOpts, s, res)
		},
	}

	flags.register(cmd)
	return cmd
}

// reportSubmitError renders a rejected submission: one line per field
// violation for validation failures, the storage error otherwise. Either
// way the collection was not mutated.
func reportSubmitError(cmd *cobra.Command, rootOpts *RootOptions, err error) error {
	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	if ve, ok := manager.AsValidationError(err); ok {
		if rootOpts.Format == "json" {
			out.Error("VALIDATION", "submission rejected", ve.Verdict.Errors)
		} else {
			for _, fe := range ve.Verdict.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", fe)
			}
		}
		return NewExitError(ExitFailure, "validation failed")
	}

	out.Error("STORAGE", err.Error(), nil)
	return WrapExitError(ExitFailure, "record was not saved", err)
}

func printSubmitResult(cmd *cobra.Command, rootOpts *RootOptions, s *session, res manager.Result) error {
	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	if rootOpts.Format == "json" {
		return out.Success(res.Record)
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.cfg.Messages.Saved)
	fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", res.Record.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "NR = %d - Tier %s (%s)\n",
		res.Record.Score, res.Assessment.Tier, res.Assessment.Label)
	return nil
}
