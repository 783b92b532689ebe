package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/tprint/printer"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	cmd := newCommand("test", &out, &errw)
	err := cmd.Run(context.Background(), append([]string{"tprint"}, args...))
	return out.String(), errw.String(), err
}

func TestPrintFormat(t *testing.T) {
	out, errw, err := run(t, "The number is: {}", "5")
	require.NoError(t, err)
	assert.Equal(t, "The number is: 5", out)
	assert.Empty(t, errw)
}

func TestPrintNewline(t *testing.T) {
	out, _, err := run(t, "-n", "{{}} {}", "x")
	require.NoError(t, err)
	assert.Equal(t, "{} x\n", out)
}

func TestMismatchReported(t *testing.T) {
	out, errw, err := run(t, "--newline", "The number is: {}", "5", "6", "7")
	require.Error(t, err)
	assert.True(t, printer.IsMismatch(err))
	assert.ErrorIs(t, err, printer.ErrTooManyArguments)
	assert.Equal(t, "The number is: 5\n", out)
	assert.Equal(t, "[ERROR]: too many arguments for format string\n", errw)
}

func TestMissingFormat(t *testing.T) {
	_, _, err := run(t)
	require.Error(t, err)
	assert.False(t, printer.IsMismatch(err))
	assert.Contains(t, err.Error(), "usage:")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, colorEnabled(&buf, false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(&buf, false))
}
