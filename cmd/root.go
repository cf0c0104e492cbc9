package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/priosched/internal/app"
	"github.com/thenoetrevino/priosched/internal/config"
	"github.com/thenoetrevino/priosched/internal/logging"
	"github.com/thenoetrevino/priosched/internal/user"
)

var rootCmd = &cobra.Command{
	Use:   "priosched",
	Short: "Priosched - order tasks by priority",
	Long: `Priosched reads tasks interactively and prints them in priority order.

Each task line has the form:
  task_name task_type color [start_time] [end_time]

  task_type  fx (fixed, needs a start time) or fl (floating)
  color      0 = Red (high), 1 = Orange (medium), anything else = Blue (low)
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	closeLog, err := logging.Init()
	if err != nil {
		// Logging is best effort; the run continues with the discard logger
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	defer func() { _ = closeLog() }()

	logger := logging.Logger
	logger.Info("run started", "user", user.Name())

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.Default()
	}

	a := app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), app.WithLogger(logger))
	if err := a.Run(); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}

	logger.Info("run finished")
	return nil
}

// Execute runs the root command. Failures are reported on stderr but never
// change the exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
