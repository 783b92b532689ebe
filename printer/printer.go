package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rubiojr/tprint/color"
)

// stdMu serialises every Printer that was not given its own lock, so calls
// sharing stdout never interleave.
var stdMu sync.Mutex

// Printer writes formatted text to an output sink and count-mismatch
// diagnostics to an error sink. A Printer is safe for concurrent use; the
// lock is held for the whole of each call and must not be re-acquired from
// inside an argument's Render.
type Printer struct {
	out   io.Writer
	errw  io.Writer
	mu    sync.Locker
	color color.Color
}

// Option configures a Printer.
type Option func(*Printer)

// WithOutput sets the sink formatted text is written to.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) { p.out = w }
}

// WithErrorOutput sets the sink diagnostics are written to.
func WithErrorOutput(w io.Writer) Option {
	return func(p *Printer) { p.errw = w }
}

// WithLock replaces the process-wide lock. Printers sharing a sink must
// share a lock.
func WithLock(l sync.Locker) Option {
	return func(p *Printer) { p.mu = l }
}

// WithColor enables ANSI styling of the diagnostic prefix.
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color.Disabled = !enabled }
}

// New returns a Printer writing to os.Stdout and os.Stderr under the
// process-wide lock, without color, unless options say otherwise.
func New(opts ...Option) *Printer {
	p := &Printer{
		out:   os.Stdout,
		errw:  os.Stderr,
		mu:    &stdMu,
		color: color.Color{Disabled: true},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Print writes format with args substituted. On a count mismatch a one-line
// diagnostic goes to the error sink and the *MismatchError is returned.
func (p *Printer) Print(format string, args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.print(format, args)
}

// Println is Print followed by a newline. The newline is written even when
// Print fails, and the Print error is still returned.
func (p *Printer) Println(format string, args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.print(format, args)
	if _, werr := io.WriteString(p.out, "\n"); werr != nil && err == nil {
		err = fmt.Errorf("writing newline: %w", werr)
	}
	return err
}

func (p *Printer) print(format string, args []any) error {
	err := render(p.out, format, Renderables(args))
	var me *MismatchError
	if errors.As(err, &me) {
		p.diagnose(me)
	}
	return err
}

func (p *Printer) diagnose(me *MismatchError) {
	prefix := p.color.Bold(p.color.Red("[ERROR]:"))
	// Nowhere left to report a failing error sink.
	_, _ = fmt.Fprintf(p.errw, "%s %v\n", prefix, me.Err)
}

var (
	defaultOnce    sync.Once
	defaultPrinter *Printer
)

// Default returns the Printer used by the package-level functions.
func Default() *Printer {
	defaultOnce.Do(func() { defaultPrinter = New() })
	return defaultPrinter
}

// Print writes to standard output using the default Printer.
func Print(format string, args ...any) error {
	return Default().Print(format, args...)
}

// Println writes to standard output using the default Printer, followed by
// a newline.
func Println(format string, args ...any) error {
	return Default().Println(format, args...)
}
