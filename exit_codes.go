package cliargs

import (
	"errors"
)

// Exit codes for programs that bind their arguments with this package.
// Lower numbers indicate earlier failures:
//   - 1: The user supplied invalid arguments; fix the command line and retry
//   - 2: Configuration (environment, files) could not be loaded
//   - 3: The arguments container is malformed; a programming error
//   - 4: Expected/handled error during execution
//   - 5: Unexpected/unhandled error during execution
//
// Note: Exit codes 128 and above are reserved for signal-related exits.
// See: https://tldp.org/LDP/abs/html/exitcodes.html

//goland:noinspection GoUnusedConst
const (
	ExitSuccess             = 0 // Successful execution
	ExitArgsParseError      = 1 // Command-line argument parsing failed
	ExitConfigLoadError     = 2 // Configuration loading failed
	ExitSchemaError         = 3 // Arguments container declaration is invalid
	ExitKnownRuntimeError   = 4 // Expected/known runtime error during execution
	ExitUnknownRuntimeError = 5 // Unexpected/unknown runtime error
)

// ExitCodeFor maps err to the exit code a CLI should terminate with
func ExitCodeFor(err error) (code int) {
	var pe *ParseError
	var se *SchemaError

	switch {
	case err == nil:
		code = ExitSuccess
	case errors.As(err, &pe):
		code = ExitArgsParseError
	case errors.As(err, &se):
		code = ExitSchemaError
	default:
		code = ExitUnknownRuntimeError
	}
	return code
}

// ReportError writes err to w's error stream and returns the exit code for it.
// A nil err writes nothing.
func ReportError(w Writer, err error) int {
	if err != nil {
		w.Errorf("%s\n", err)
	}
	return ExitCodeFor(err)
}
