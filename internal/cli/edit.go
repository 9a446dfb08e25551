package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing risk evaluation",
		Long: `Edit an existing risk evaluation in place.

Only the fields named by flags change; everything else keeps its current
value. The record keeps its id and creation date, and its score and tier
are recomputed.

Example:
  riskeval edit 0195d3a2-… --nd 10 --nc 60`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			base, ok := s.mgr.BeginEdit(args[0])
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("no record with id %s", args[0]))
			}

			res, err := s.mgr.Submit(cmd.Context(), flags.merge(cmd, base))
			if err != nil {
				// Leave no cursor dangling on a rejected edit.
				s.mgr.CancelEdit()
				return reportSubmitError(cmd, rootOpts, err)
			}

			return printSubmitResult(cmd, rootOpts, s, res)
		},
	}

	flags.register(cmd)
	return cmd
}
