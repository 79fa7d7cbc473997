package cliargs

import (
	"errors"

	"github.com/mikeschinkel/go-dt"
)

type Verbosity int

const (
	NoVerbosity Verbosity = iota
	LowVerbosity
	MediumVerbosity
	HighVerbosity
)

var (
	ErrInvalidVerbosity = errors.New("invalid verbosity level")
	ErrVerbosityTooLow  = errors.New("verbosity too low; must be between 1..3 inclusive")
	ErrVerbosityTooHigh = errors.New("verbosity too high; must be between 1..3 inclusive")
)

// ParseVerbosity validates a verbosity level for a Writer
func ParseVerbosity(verbosity int) (v Verbosity, err error) {
	v = Verbosity(verbosity)
	switch {
	case v < LowVerbosity:
		err = ErrVerbosityTooLow

	case v > HighVerbosity:
		err = ErrVerbosityTooHigh
	}
	if err != nil {
		err = dt.NewErr(
			ErrInvalidVerbosity,
			err,
			"verbosity", verbosity,
		)
		v = -1
	}
	return v, err
}
