package commands

import (
	"context"
	"strings"
	"time"

	"github.com/MyelinBots/heartbeat-go/internal/services/context_manager"
	"github.com/MyelinBots/heartbeat-go/internal/services/heartbeat"
	irc "github.com/fluffle/goirc/client"
)

type Handler func(ctx context.Context, args ...string) error

type CommandController interface {
	HandleCommand(ctx context.Context, line *irc.Line) error
	AddCommand(command string, handler Handler)
}

// Runner is the part of a repeater the commands drive.
type Runner interface {
	Start()
	Stop()
	Running() bool
	Runs() int64
	Interval() time.Duration
}

type IRCClient interface {
	Privmsg(channel, message string)
}

type CommandControllerImpl struct {
	runner    Runner
	beats     heartbeat.HeartbeatService
	IrcClient IRCClient
	Channel   string
	commands  map[string]Handler
}

func NewCommandController(runner Runner, beats heartbeat.HeartbeatService, client IRCClient, channel string) *CommandControllerImpl {
	return &CommandControllerImpl{
		runner:    runner,
		beats:     beats,
		IrcClient: client,
		Channel:   channel,
		commands:  make(map[string]Handler),
	}
}

// HandleCommand parses an IRC line and dispatches to the correct handler
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, line *irc.Line) error {
	if line == nil || len(line.Args) < 2 {
		return nil
	}

	command := strings.Fields(line.Args[1])
	if len(command) == 0 {
		return nil
	}

	handler, exists := c.commands[strings.ToLower(command[0])]
	if !exists {
		return nil
	}
	ctx = context_manager.SetNickContext(ctx, line.Nick)
	if target := line.Args[0]; strings.HasPrefix(target, "#") {
		ctx = context_manager.SetChannelContext(ctx, target)
	} else {
		// private message: answer the sender
		ctx = context_manager.SetChannelContext(ctx, line.Nick)
	}
	return handler(ctx, command[1:]...)
}

func (c *CommandControllerImpl) AddCommand(command string, handler Handler) {
	c.commands[strings.ToLower(command)] = handler
}

func (c *CommandControllerImpl) reply(ctx context.Context, message string) {
	c.IrcClient.Privmsg(context_manager.GetChannelContext(ctx, c.Channel), message)
}
