package cliargs

import (
	"errors"
	"fmt"

	"github.com/mikeschinkel/go-dt"
)

// Schema errors: the declared container is malformed. They depend only on the
// Descriptor and repeat identically on every call.
var (
	ErrSchema             = errors.New("invalid arguments container")
	ErrNotAContainer      = errors.New("type is not an arguments container")
	ErrTypeMismatch       = errors.New("field type does not match its annotation")
	ErrInvalidEnumMapping = errors.New("enum mapping names an unknown member")
	ErrEmptyKey           = errors.New("argument key is empty")
	ErrDuplicateKey       = errors.New("argument key is declared more than once")
	ErrConstructionFailed = errors.New("arguments container construction failed")
)

// Parse errors: the supplied tokens are malformed.
var (
	ErrParse                   = errors.New("invalid arguments")
	ErrUnknownArgument         = errors.New("unknown argument")
	ErrRepeatedArgument        = errors.New("repeated argument")
	ErrMissingValue            = errors.New("missing argument value")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrInvalidValue            = errors.New("invalid argument value")
)

// SchemaError reports a defect in a Descriptor. Kind is one of the ErrXxx
// schema sentinels; errors.Is matches both Kind and ErrSchema.
type SchemaError struct {
	Kind      error
	Container string
	Field     string
	Message   string
	cause     error
}

func (e *SchemaError) Error() string {
	return e.Message
}

func (e *SchemaError) Unwrap() []error {
	errs := []error{ErrSchema, e.Kind}
	switch e.Kind {
	case ErrEmptyKey:
		errs = append(errs, dt.ErrEmpty)
	case ErrDuplicateKey:
		errs = append(errs, dt.ErrInvalidDuplicateFlag)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func newSchemaError(kind error, container, field string, format string, args ...any) *SchemaError {
	return &SchemaError{
		Kind:      kind,
		Container: container,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
	}
}

// ParseError reports tokens that do not satisfy a schema. Kind is one of the
// ErrXxx parse sentinels; errors.Is matches both Kind and ErrParse.
type ParseError struct {
	Kind        error
	Key         string
	Value       string
	Description string
	Message     string
	cause       error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() []error {
	errs := []error{ErrParse, e.Kind}
	switch e.Kind {
	case ErrMissingRequiredArgument:
		errs = append(errs, dt.ErrFlagIsRequired)
	case ErrInvalidValue:
		errs = append(errs, dt.ErrFlagValidationFailed)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

func newParseError(kind error, key string, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsSchemaError reports whether err is, or wraps, a *SchemaError
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsParseError reports whether err is, or wraps, a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
