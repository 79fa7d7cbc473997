package cliargs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mikeschinkel/go-dt/dtx"
)

// BufferedWriter implements Writer and captures all output in buffers for testing
type BufferedWriter struct {
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	mu        *sync.RWMutex // Shared with the V2 writer
	quiet     bool
	verbosity Verbosity
	useLevel  Verbosity
	v2Writer  *BufferedWriter
}

var _ Writer = (*BufferedWriter)(nil)

// NewBufferedWriter creates a BufferedWriter at HighVerbosity so every level prints
func NewBufferedWriter() *BufferedWriter {
	return &BufferedWriter{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		mu:        &sync.RWMutex{},
		verbosity: HighVerbosity,
		useLevel:  LowVerbosity,
	}
}

// NewBufferedWriterWithVerbosity creates a BufferedWriter with the given verbosity
func NewBufferedWriterWithVerbosity(verbosity Verbosity) *BufferedWriter {
	_, err := ParseVerbosity(int(verbosity))
	if err != nil {
		dtx.Panicf("Invalid verbosity for BufferedWriter: %v", err)
	}
	w := NewBufferedWriter()
	w.verbosity = verbosity
	return w
}

// Printf writes formatted output to the stdout buffer
func (w *BufferedWriter) Printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.quiet || w.verbosity < w.useLevel {
		return
	}
	w.stdout.WriteString(fmt.Sprintf(format, args...))
}

// Errorf writes formatted error output to the stderr buffer
func (w *BufferedWriter) Errorf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stderr.WriteString(fmt.Sprintf(format, flattenErrors(args)...))
}

// V2 returns a Writer for verbosity level 2 sharing the same buffers
func (w *BufferedWriter) V2() Writer {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.v2Writer == nil {
		w.v2Writer = &BufferedWriter{
			stdout:    w.stdout,
			stderr:    w.stderr,
			mu:        w.mu,
			quiet:     w.quiet,
			verbosity: w.verbosity,
			useLevel:  MediumVerbosity,
		}
	}
	return w.v2Writer
}

func (w *BufferedWriter) Writer() io.Writer {
	return w.stdout
}

func (w *BufferedWriter) ErrWriter() io.Writer {
	return w.stderr
}

// GetStdout returns the current stdout buffer contents
func (w *BufferedWriter) GetStdout() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stdout.String()
}

// GetStderr returns the current stderr buffer contents
func (w *BufferedWriter) GetStderr() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stderr.String()
}

// ContainsStderr returns true if the stderr buffer contains s
func (w *BufferedWriter) ContainsStderr(s string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return strings.Contains(w.stderr.String(), s)
}

// SetQuiet suppresses all Printf output
func (w *BufferedWriter) SetQuiet(quiet bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.quiet = quiet
}

// Reset clears both buffers
func (w *BufferedWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stdout.Reset()
	w.stderr.Reset()
}
