package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynbuf/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// NewRootCommand builds the dynbuf command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dynbuf",
		Short: "Growable float64 buffer driver",
		Long: `dynbuf drives a growable float64 buffer from a stream of commands.

The buffer is seeded with a count followed by that many values; every
append (1 x) or remove (2) command re-runs the numeric tasks and prints
the buffer before aggregation, after aggregation and after scaling.

Examples:
  echo "4 1 -2 3 -4 1 5 0" | dynbuf run
  dynbuf run -i commands.txt --config dynbuf.yaml
  dynbuf limits --pushes 25
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogging(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRunCommand())
	root.AddCommand(newLimitsCommand())
	return root
}

// Execute runs the root command with os.Args until it finishes or the
// process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

func initLogging(cmd *cobra.Command) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if p := cfg.Path(); p != "" {
		slog.Debug("loaded config", "path", p, "limits", fmt.Sprintf("%+v", cfg.Limits()))
	}
	return cfg, nil
}

func openInput(path string) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
