package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"riskeval/internal/config"
	"riskeval/internal/risk"
)

// NewScalesCommand creates the scales command.
func NewScalesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scales",
		Short:         "Show the NTP 330 ordinal scales",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.Config)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading config", err)
			}

			if rootOpts.Format == "json" {
				out := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
				return out.Success(cfg.Scales)
			}

			printScale(cmd, "ND (deficiency level)", cfg.Scales.Deficiency)
			printScale(cmd, "NE (exposure level)", cfg.Scales.Exposure)
			printScale(cmd, "NC (consequence level)", cfg.Scales.Consequence)
			return nil
		},
	}
	return cmd
}

func printScale(cmd *cobra.Command, title string, scale risk.Scale) {
	fmt.Fprintln(cmd.OutOrStdout(), title)
	for _, l := range scale {
		fmt.Fprintf(cmd.OutOrStdout(), "  %3d  %s\n", l.Value, l.Label)
	}
}
