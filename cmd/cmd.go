package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rubiojr/tprint/printer"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the tprint CLI with the given version string.
func Execute(version string) {
	cmd := newCommand(version, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		// The printer has already reported count mismatches on stderr.
		if !printer.IsMismatch(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newCommand(version string, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                   "tprint",
		Usage:                  "Print text with {} placeholders replaced by arguments",
		ArgsUsage:              "<format> [args...]",
		Version:                version,
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "newline",
				Aliases: []string{"n"},
				Usage:   "Append a newline to the output",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color in diagnostics",
			},
		},
		Action: printAction,
	}
}

func printAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tprint [-n] <format> [args...]")
	}

	p := printer.New(
		printer.WithOutput(cmd.Root().Writer),
		printer.WithErrorOutput(cmd.Root().ErrWriter),
		printer.WithColor(colorEnabled(cmd.Root().ErrWriter, cmd.Bool("no-color"))),
	)

	tail := cmd.Args().Tail()
	args := make([]any, len(tail))
	for i, a := range tail {
		args[i] = a
	}

	if cmd.Bool("newline") {
		return p.Println(cmd.Args().First(), args...)
	}
	return p.Print(cmd.Args().First(), args...)
}

// colorEnabled reports whether diagnostics written to w may use ANSI color:
// only for terminals, and never with --no-color or NO_COLOR set.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
