// Package color wraps text in ANSI escape sequences for terminal output.
package color

// Color applies ANSI styles. The zero value emits escape sequences; set
// Disabled to pass text through untouched.
type Color struct {
	Disabled bool
}

func (c Color) colorize(code, s string) string {
	if c.Disabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Foreground colors

func (c Color) Red(s string) string    { return c.colorize("31", s) }
func (c Color) Yellow(s string) string { return c.colorize("33", s) }
func (c Color) Gray(s string) string   { return c.colorize("90", s) }

// Styles

func (c Color) Bold(s string) string { return c.colorize("1", s) }
func (c Color) Dim(s string) string  { return c.colorize("2", s) }
