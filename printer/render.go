package printer

import (
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Renderable is anything that can write its textual form to a sink.
type Renderable interface {
	Render(w io.Writer) error
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func(w io.Writer) error

func (f RenderFunc) Render(w io.Writer) error { return f(w) }

// value renders an arbitrary Go value with fmt's default formatting, so
// fmt.Stringer and error implementations are honoured.
type value struct{ v any }

func (v value) Render(w io.Writer) error {
	_, err := fmt.Fprint(w, v.v)
	return err
}

// Renderables builds the argument sequence for one call. Arguments that
// already implement Renderable are used as-is.
func Renderables(args []any) []Renderable {
	return lo.Map(args, func(a any, _ int) Renderable {
		if r, ok := a.(Renderable); ok {
			return r
		}
		return value{a}
	})
}
