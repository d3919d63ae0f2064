package commands

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

func newLimitsCommand() *cobra.Command {
	var (
		pushes    int
		writeFile string
	)

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the capacity policy and growth schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if writeFile != "" {
				if err := cfg.Save(writeFile); err != nil {
					return err
				}
				slog.Info("wrote config", "path", writeFile)
			}
			return printLimits(cmd.OutOrStdout(), cfg.Limits(), pushes)
		},
	}

	cmd.Flags().StringVarP(&writeFile, "write", "w", "", "write the effective configuration to this file")
	cmd.Flags().IntVarP(&pushes, "pushes", "n", 0, "also print length and capacity after each of n appends")
	return cmd
}

// printLimits writes the policy and, for pushes > 0, the capacity reached
// after every append that changed it.
func printLimits(w io.Writer, l buffer.Limits, pushes int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Min\tMax\tStep\n")
	fmt.Fprintf(tw, "---\t---\t----\n")
	fmt.Fprintf(tw, "%d\t%d\t%d\n", l.Min, l.Max, l.Step)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write limits: %w", err)
	}
	if pushes <= 0 {
		return nil
	}

	b, err := buffer.New(0, buffer.WithLimits(l))
	if err != nil {
		return err
	}
	defer b.Release()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Push\tLen\tCap\n")
	fmt.Fprintf(tw, "----\t---\t---\n")
	fmt.Fprintf(tw, "0\t%d\t%d\n", b.Len(), b.Cap())
	for i := 1; i <= pushes; i++ {
		prev := b.Cap()
		if err := b.PushBack(0); err != nil {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%v\n", i, b.Len(), b.Cap(), err)
			break
		}
		if b.Cap() != prev || i == pushes {
			fmt.Fprintf(tw, "%d\t%d\t%d\n", i, b.Len(), b.Cap())
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write growth schedule: %w", err)
	}
	return nil
}
