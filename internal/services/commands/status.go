package commands

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// StatusHandler answers !beat with the loop state and stored beat count.
func (c *CommandControllerImpl) StatusHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		st := c.beats.Status()

		state := "paused"
		if c.runner.Running() {
			state = "running"
		}
		parts := []string{
			fmt.Sprintf("heartbeat %s: %s every %s", st.Source, state, c.runner.Interval()),
			fmt.Sprintf("runs %d", c.runner.Runs()),
			fmt.Sprintf("seq %d", st.Sequence),
		}

		total, err := c.beats.Total(ctx)
		if err != nil {
			c.reply(ctx, strings.Join(append(parts, "stored ?"), " | "))
			return err
		}
		parts = append(parts, fmt.Sprintf("stored %d", total))

		if !st.LastBeatAt.IsZero() {
			parts = append(parts, "last "+st.LastBeatAt.UTC().Format(time.RFC3339))
		}
		if st.LastError != nil {
			parts = append(parts, "error: "+st.LastError.Error())
		}
		c.reply(ctx, strings.Join(parts, " | "))
		return nil
	}
}
