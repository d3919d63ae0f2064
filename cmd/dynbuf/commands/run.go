package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynbuf/internal/console"
)

func newRunCommand() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a command session",
		Long: `Read a seed count and values, then commands until 0 or end of input:

  1 x   append x
  2     remove the last element
  0     stop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if inputFile != "" && inputFile != "-" {
				f, closeFn, err := openInput(inputFile)
				if err != nil {
					return err
				}
				defer closeFn()
				in = f
			}

			s, err := console.New(cmd.OutOrStdout(),
				console.WithLogger(slog.Default()),
				console.WithLimits(cfg.Limits()),
				console.WithStopOnError(cfg.Session.StopOnError),
			)
			if err != nil {
				return err
			}
			return s.Run(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file (default: stdin)")
	return cmd
}
