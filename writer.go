// Package cliargs binds command-line tokens onto the fields of a declared
// arguments container, with type coercion, required and optional arguments,
// boolean flags and enumerated values, after validating the container's
// declaration up front.
package cliargs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikeschinkel/go-dt/dtx"
)

// Writer is the user-facing output of a CLI: results go to Printf, errors to
// Errorf.
type Writer interface {
	Printf(string, ...any)
	Errorf(string, ...any)
	V2() Writer
	Writer() io.Writer
	ErrWriter() io.Writer
}

var _ Writer = (*cliWriter)(nil)

// cliWriter writes to stdout/stderr for normal CLI usage
type cliWriter struct {
	writer    io.Writer
	errWriter io.Writer
	quiet     bool
	v2        Writer
	useLevel  Verbosity
	verbosity Verbosity
}

type WriterArgs struct {
	Quiet     bool
	Verbosity Verbosity
	Stdout    io.Writer // OPTIONAL: defaults to os.Stdout
	Stderr    io.Writer // OPTIONAL: defaults to os.Stderr
}

// NewWriter creates a console Writer. It panics on a verbosity outside 1..3.
//
//goland:noinspection GoUnusedExportedFunction
func NewWriter(args *WriterArgs) Writer {
	if args == nil {
		args = &WriterArgs{
			Verbosity: LowVerbosity,
		}
	}
	_, err := ParseVerbosity(int(args.Verbosity))
	if err != nil {
		dtx.Panicf("Invalid verbosity for cliargs.NewWriter(): %v", err)
	}
	w := &cliWriter{
		writer:    args.Stdout,
		errWriter: args.Stderr,
		quiet:     args.Quiet,
		verbosity: args.Verbosity,
		useLevel:  LowVerbosity,
	}
	if w.writer == nil {
		w.writer = os.Stdout
	}
	if w.errWriter == nil {
		w.errWriter = os.Stderr
	}
	return w
}

func (w *cliWriter) Writer() io.Writer {
	return w.writer
}

func (w *cliWriter) ErrWriter() io.Writer {
	return w.errWriter
}

// V2 returns a Writer that prints only at MediumVerbosity or above
func (w *cliWriter) V2() Writer {
	if w.v2 != nil {
		goto end
	}
	w.v2 = &cliWriter{
		writer:    w.writer,
		errWriter: w.errWriter,
		quiet:     w.quiet,
		verbosity: w.verbosity,
		useLevel:  MediumVerbosity,
	}
end:
	return w.v2
}

// Printf writes formatted output to stdout
func (w *cliWriter) Printf(format string, args ...any) {
	if w.quiet {
		goto end
	}
	if w.verbosity < w.useLevel {
		goto end
	}
	_, _ = fmt.Fprintf(w.writer, format, args...)
end:
	return
}

// Errorf writes formatted error output to stderr
func (w *cliWriter) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.errWriter, format, flattenErrors(args)...)
}

// flattenErrors replaces newlines in error arguments with semicolons
func flattenErrors(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		err, ok := arg.(error)
		if !ok {
			out[i] = arg
			continue
		}
		out[i] = strings.ReplaceAll(err.Error(), "\n", "; ")
	}
	return out
}
