// Package printer writes "{}" templated text. Each "{}" in a format is
// replaced by the next argument, "{{" and "}}" produce literal braces, and
// any other byte, including a brace that forms no pair, is copied as-is.
//
// The number of placeholders must match the number of arguments. Output is
// written as the format is scanned and is never rolled back: with too few
// arguments the text up to the unsatisfied placeholder has been written,
// with too many the whole format has.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rubiojr/tprint/scanner"
)

// Fprint substitutes args into format and writes the result to w. It takes
// no lock and writes no diagnostic; a count mismatch is returned as a
// *MismatchError. A failing sink stops the scan and its error is returned.
func Fprint(w io.Writer, format string, args ...any) error {
	return render(w, format, Renderables(args))
}

// Sprint is like Fprint but returns the text. On error the text written
// before the failure is still returned.
func Sprint(format string, args ...any) (string, error) {
	var sb strings.Builder
	err := Fprint(&sb, format, args...)
	return sb.String(), err
}

func render(w io.Writer, format string, args []Renderable) error {
	idx := 0
	c := scanner.New(format)
	for tok, ok := c.Next(); ok; tok, ok = c.Next() {
		if tok.Kind != scanner.Placeholder {
			if _, err := io.WriteString(w, tok.Text); err != nil {
				return fmt.Errorf("writing format text at offset %d: %w", tok.Pos, err)
			}
			continue
		}
		if idx >= len(args) {
			return &MismatchError{
				Err:          ErrTooFewArguments,
				Placeholders: scanner.CountPlaceholders(format),
				Args:         len(args),
				Offset:       tok.Pos,
			}
		}
		if err := args[idx].Render(w); err != nil {
			return fmt.Errorf("rendering argument %d: %w", idx, err)
		}
		idx++
	}
	if idx < len(args) {
		return &MismatchError{
			Err:          ErrTooManyArguments,
			Placeholders: idx,
			Args:         len(args),
			Offset:       len(format),
		}
	}
	return nil
}
