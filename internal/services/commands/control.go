package commands

import (
	"context"
	"fmt"

	"github.com/MyelinBots/heartbeat-go/internal/services/context_manager"
	"github.com/apex/log"
)

// PauseHandler stops the heartbeat loop. Stop waits for a beat in progress.
func (c *CommandControllerImpl) PauseHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		nick := context_manager.GetNickContext(ctx)
		if !c.runner.Running() {
			c.reply(ctx, "heartbeat is already paused")
			return nil
		}
		c.runner.Stop()
		log.WithField("nick", nick).Info("heartbeat paused")
		c.reply(ctx, fmt.Sprintf("heartbeat paused by %s", nick))
		return nil
	}
}

func (c *CommandControllerImpl) ResumeHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		nick := context_manager.GetNickContext(ctx)
		if c.runner.Running() {
			c.reply(ctx, "heartbeat is already running")
			return nil
		}
		c.runner.Start()
		log.WithField("nick", nick).Info("heartbeat resumed")
		c.reply(ctx, fmt.Sprintf("heartbeat resumed by %s, every %s", nick, c.runner.Interval()))
		return nil
	}
}
