// Package cli is the command surface of riskeval. It plays the role the
// HTML form and table played in the original: it binds flags into raw
// input for the record manager and renders the manager's outcomes.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"riskeval/internal/config"
	"riskeval/internal/manager"
	"riskeval/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB      string // overrides the configured store path
	Config  string // optional config file
	Verbose bool
	Format  string // "text" | "json" | "html"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "html"}

// NewRootCommand creates the root command for the riskeval CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "riskeval",
		Short: "riskeval - NTP 330 workplace risk assessment",
		Long: `Record workplace-hazard evaluations, score them per NTP 330
(NR = ND x NE x NC), and export a summary report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to the record database (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|html)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewScalesCommand(opts))

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// session bundles the opened store and manager for one command run.
type session struct {
	cfg config.Config
	st  *store.Store
	mgr *manager.Manager
}

// openSession loads configuration, opens the store and builds a manager
// over the persisted record set. Callers must Close when done.
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}

	path := cfg.Store.Path
	if opts.DB != "" {
		path = opts.DB
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening store", err)
	}

	mgr, err := manager.New(ctx, st,
		manager.WithScales(&cfg.Scales),
		manager.WithCollation(cfg.LanguageTag()),
		manager.WithDateFormat(cfg.DateFormat),
	)
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "loading records", err)
	}

	return &session{cfg: cfg, st: st, mgr: mgr}, nil
}

// Close releases the session's store.
func (s *session) Close() error {
	return s.st.Close()
}
