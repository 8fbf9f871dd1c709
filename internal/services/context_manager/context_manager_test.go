package context_manager

import (
	"context"
	"testing"
)

func TestSetNickContext(t *testing.T) {
	ctx := SetNickContext(context.Background(), "TestPlayer")

	nick := GetNickContext(ctx)
	if nick != "testplayer" {
		t.Errorf("expected lowercased nick 'testplayer', got %q", nick)
	}
}

func TestGetNickContext_Empty(t *testing.T) {
	nick := GetNickContext(context.Background())
	if nick != "" {
		t.Errorf("expected empty nick from fresh context, got %q", nick)
	}
}

func TestSetNickContext_Overwrite(t *testing.T) {
	ctx := SetNickContext(context.Background(), "op1")
	ctx = SetNickContext(ctx, "op2")

	nick := GetNickContext(ctx)
	if nick != "op2" {
		t.Errorf("expected nick 'op2', got %q", nick)
	}
}

func TestChannelContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{
			name: "unset uses fallback",
			ctx:  context.Background(),
			want: "#default",
		},
		{
			name: "empty uses fallback",
			ctx:  SetChannelContext(context.Background(), ""),
			want: "#default",
		},
		{
			name: "stored channel",
			ctx:  SetChannelContext(context.Background(), "#ops"),
			want: "#ops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetChannelContext(tt.ctx, "#default")
			if got != tt.want {
				t.Errorf("GetChannelContext() = %q, want %q", got, tt.want)
			}
		})
	}
}
