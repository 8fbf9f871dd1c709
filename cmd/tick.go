package cmd

import (
	"fmt"
	"time"

	"github.com/MyelinBots/heartbeat-go/repeater"
	"github.com/spf13/cobra"
)

// tick exercises a bare repeater without database or IRC.
func newTickCommand() *cobra.Command {
	var interval, duration time.Duration
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Print a tick on every interval for a fixed duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			begin := time.Now()
			r, err := repeater.New(interval, repeater.Bind2(func(n *int, begin time.Time) error {
				*n++
				_, err := fmt.Fprintf(out, "tick %d +%s\n", *n, time.Since(begin).Round(time.Millisecond))
				return err
			}, new(int), begin), repeater.WithName("tick"))
			if err != nil {
				return err
			}
			r.Start()
			select {
			case <-time.After(duration):
			case <-cmd.Context().Done():
			}
			r.Stop()
			_, err = fmt.Fprintf(out, "%d ticks in %s\n", r.Runs(), time.Since(begin).Round(time.Millisecond))
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "time between ticks")
	cmd.Flags().DurationVar(&duration, "for", 5*time.Second, "how long to run")
	return cmd
}
