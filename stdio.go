package cliargs

import (
	"fmt"
	"io"
	"os"

	"github.com/mikeschinkel/go-dt"
)

// Stdoutf writes to os.Stdout without a Writer, e.g. before one exists
func Stdoutf(format string, args ...any) {
	Stdiof(os.Stdout, format, args...)
}

// Stderrf writes to os.Stderr without a Writer, e.g. before one exists
func Stderrf(format string, args ...any) {
	Stdiof(os.Stderr, format, args...)
}

func Stdiof(w io.Writer, format string, args ...any) {
	_, err := fmt.Fprintf(w, format, args...)
	dt.LogOnError(err)
}
