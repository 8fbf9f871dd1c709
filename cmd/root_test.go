package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "x.x.x\n", out)
}

func TestTick(t *testing.T) {
	out, err := execute(t, "tick", "--interval", "100ms", "--for", "250ms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "tick 1 +"))
	assert.True(t, strings.HasPrefix(lines[2], "tick 3 +"))
	assert.True(t, strings.HasPrefix(lines[3], "3 ticks in "))
}

func TestTick_InvalidInterval(t *testing.T) {
	_, err := execute(t, "tick", "--interval", "0s", "--for", "10ms")
	assert.ErrorContains(t, err, "interval must be positive")
}

func TestMigrate_UnknownDirection(t *testing.T) {
	_, err := execute(t, "migrate", "sideways")
	assert.ErrorContains(t, err, `unknown migration direction "sideways"`)
}
