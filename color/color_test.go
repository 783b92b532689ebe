package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForegroundColors(t *testing.T) {
	c := Color{}

	assert.Equal(t, "\033[31mhello\033[0m", c.Red("hello"))
	assert.Equal(t, "\033[33mhello\033[0m", c.Yellow("hello"))
	assert.Equal(t, "\033[90mhello\033[0m", c.Gray("hello"))
}

func TestStyles(t *testing.T) {
	c := Color{}

	assert.Equal(t, "\033[1mhello\033[0m", c.Bold("hello"))
	assert.Equal(t, "\033[2mhello\033[0m", c.Dim("hello"))
}

func TestDisabled(t *testing.T) {
	c := Color{Disabled: true}

	assert.Equal(t, "hello", c.Red("hello"))
	assert.Equal(t, "hello", c.Bold("hello"))
}

func TestComposable(t *testing.T) {
	c := Color{}

	assert.Equal(t, "\033[1m\033[31merr\033[0m\033[0m", c.Bold(c.Red("err")))
}

func TestEmptyString(t *testing.T) {
	assert.Equal(t, "\033[31m\033[0m", Color{}.Red(""))
}
