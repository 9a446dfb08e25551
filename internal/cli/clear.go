package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:           "clear",
		Short:         "Delete ALL risk evaluations",
		Long:          "Delete every recorded risk evaluation. This cannot be undone.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, "refusing to delete all records without --yes")
			}

			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			n := s.mgr.Len()
			if err := s.mgr.ClearAll(cmd.Context()); err != nil {
				out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				out.Error("STORAGE", err.Error(), nil)
				return WrapExitError(ExitFailure, "records were not cleared", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", s.cfg.Messages.Cleared, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deleting every record")
	return cmd
}
