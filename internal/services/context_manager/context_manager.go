package context_manager

import (
	"context"
	"strings"
)

type Nick struct{}

type Channel struct{}

// SetNickContext stores the lowercased nickname into context
func SetNickContext(ctx context.Context, nick string) context.Context {
	return context.WithValue(ctx, Nick{}, strings.ToLower(nick))
}

func GetNickContext(ctx context.Context) string {
	nick, _ := ctx.Value(Nick{}).(string)
	return nick
}

// SetChannelContext stores the channel a command was received on
func SetChannelContext(ctx context.Context, channel string) context.Context {
	return context.WithValue(ctx, Channel{}, channel)
}

// GetChannelContext returns the stored channel, or fallback when none is set.
func GetChannelContext(ctx context.Context, fallback string) string {
	if channel, ok := ctx.Value(Channel{}).(string); ok && channel != "" {
		return channel
	}
	return fallback
}
