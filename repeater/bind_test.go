package repeater_test

import (
	"errors"
	"testing"

	"github.com/MyelinBots/heartbeat-go/repeater"
	"github.com/stretchr/testify/assert"
)

func TestBind(t *testing.T) {
	var got string
	fn := repeater.Bind(func(s string) error {
		got = s
		return nil
	}, "zone.example")
	assert.NoError(t, fn())
	assert.Equal(t, "zone.example", got)
}

func TestBind2(t *testing.T) {
	errBad := errors.New("bad")
	fn := repeater.Bind2(func(a int, b int) error {
		if a+b != 5 {
			return errBad
		}
		return nil
	}, 2, 3)
	assert.NoError(t, fn())
}

func TestBindArgs(t *testing.T) {
	args := []any{"a", 1}
	var got []any
	fn := repeater.BindArgs(func(xs ...any) error {
		got = xs
		return nil
	}, args...)
	args[0] = "changed"
	assert.NoError(t, fn())
	assert.Equal(t, []any{"a", 1}, got)
}
