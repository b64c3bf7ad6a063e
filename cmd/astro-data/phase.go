package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/York-Lucis/astro-data/pkg/lunar"
)

// newPhaseCmd reports the Moon's phase at a single instant, as opposed
// to the root command's transition search over a range.
func newPhaseCmd() *cobra.Command {
	var timeStr string

	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Show the Moon's phase at a given instant (default: now)",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().UTC()
			if timeStr != "" {
				var err error
				t, err = time.Parse(time.RFC3339, timeStr)
				if err != nil {
					return fmt.Errorf("parsing time: %w", err)
				}
			}

			phase := lunar.Calculate(t)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Moon Phase for %s\n", t.Format(time.RFC3339))
			fmt.Fprintf(out, "  Phase:        %.1f%% (%.4f)\n", phase.Phase*100, phase.Phase)
			fmt.Fprintf(out, "  Phase Name:   %s\n", phase.PhaseName)
			fmt.Fprintf(out, "  Illumination: %.1f%%\n", phase.Illumination*100)
			fmt.Fprintf(out, "  Age:          %.1f days\n", phase.AgeDays)
			if phase.IsWaxing {
				fmt.Fprintf(out, "  Direction:    Waxing\n")
			} else {
				fmt.Fprintf(out, "  Direction:    Waning\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeStr, "time", "", "UTC time to calculate phase for (RFC3339, e.g. 2024-01-15T12:00:00Z)")
	return cmd
}
