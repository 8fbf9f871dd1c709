package commands

import (
	"context"

	"github.com/MyelinBots/heartbeat-go/internal/services/context_manager"
)

func (c *CommandControllerImpl) HelpHandler() Handler {
	return func(ctx context.Context, args ...string) error {
		nick := context_manager.GetNickContext(ctx)

		lines := []string{
			"💓 Hi " + nick + "! I record a heartbeat on a fixed interval.",
			" * !beat :::: Show loop state, runs and stored beats",
			" * !pause :::: Stop the heartbeat loop",
			" * !resume :::: Start the heartbeat loop again",
			" * !heartbeat :::: Show this help",
		}
		for _, l := range lines {
			c.reply(ctx, l)
		}
		return nil
	}
}
