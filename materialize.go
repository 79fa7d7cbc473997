package cliargs

import (
	"fmt"
	"strconv"

	"github.com/mikeschinkel/go-dt"
)

// Materialize builds a T from the Descriptor's factory and assigns every
// binding of bt to it, converting raw tokens to each field's declared type.
// Fields absent from bt keep whatever value the factory gave them. On the
// first failure the partially built value is discarded and the zero T is
// returned.
func Materialize[T any](d *Descriptor[T], s *Schema[T], bt *BindingTable) (obj T, err error) {
	var zero T

	obj, err = construct(d)
	if err != nil {
		goto end
	}
	obj, err = materialize(obj, s, bt)
end:
	if err != nil {
		obj = zero
	}
	return obj, err
}

// materialize assigns bt onto an already constructed obj; values first, then
// flags, each in declaration order.
func materialize[T any](obj T, s *Schema[T], bt *BindingTable) (T, error) {
	var zero T
	var spec FieldSpec
	var key string
	var raw string
	var flag bool
	var value any
	var ok bool
	var err error

	for _, key = range s.keys {
		raw, ok = bt.values[key]
		if !ok {
			continue
		}
		spec = s.specs[key]
		value, err = coerce(spec, raw)
		if err != nil {
			goto end
		}
		s.assigners[key](&obj, value)
	}

	for _, key = range s.keys {
		flag, ok = bt.flags[key]
		if !ok {
			continue
		}
		s.assigners[key](&obj, flag)
	}

end:
	if err != nil {
		obj = zero
	}
	return obj, err
}

// construct calls the Descriptor's factory. A factory that fails or panics is
// a defect of the declared container, not of the user's input.
func construct[T any](d *Descriptor[T]) (obj T, err error) {
	var name string

	if d == nil {
		err = newSchemaError(ErrNotAContainer, "", "",
			"nil descriptor is not an arguments container")
		goto end
	}
	name = d.Name
	if d.New == nil {
		goto end
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = &SchemaError{
			Kind:      ErrConstructionFailed,
			Container: name,
			Message:   fmt.Sprintf("constructor of %s must not panic: %v", name, r),
		}
	}()
	obj, err = d.New()
	if err != nil {
		err = &SchemaError{
			Kind:      ErrConstructionFailed,
			Container: name,
			Message:   fmt.Sprintf("constructor of %s must not fail: %v", name, err),
			cause:     dt.WithErr(err, "container", name),
		}
	}
end:
	return obj, err
}

// coerce converts raw into the Go value of spec.Type
func coerce(spec FieldSpec, raw string) (value any, err error) {
	var i int64
	var f float64
	var member string
	var ok bool

	switch spec.Type {
	case IntType:
		i, err = strconv.ParseInt(raw, 10, strconv.IntSize)
		value = int(i)
	case Int64Type:
		i, err = strconv.ParseInt(raw, 10, 64)
		value = i
	case Float32Type:
		f, err = strconv.ParseFloat(raw, 32)
		value = float32(f)
	case Float64Type:
		f, err = strconv.ParseFloat(raw, 64)
		value = f
	case StringType:
		value = raw
	case EnumType:
		member, ok = spec.lookupToken(raw)
		if !ok {
			err = invalidValueError(spec, raw, spec.ErrorDescription, nil)
			goto end
		}
		value = member
	case BoolType, UnknownType:
		// Extract rejects Value annotations on these types
		err = invalidValueError(spec, raw, spec.ErrorDescription, nil)
		goto end
	}
	if err != nil {
		err = invalidValueError(spec, raw,
			fmt.Sprintf("%s; but argument was: %s", spec.ErrorDescription, raw), err)
	}
end:
	return value, err
}

func invalidValueError(spec FieldSpec, raw, msg string, cause error) *ParseError {
	if spec.ErrorDescription == "" {
		msg = fmt.Sprintf("invalid value for argument %s: %s", spec.Key, raw)
	}
	if cause != nil {
		cause = dt.WithErr(cause, "argument", spec.Key, "value", raw)
	}
	return &ParseError{
		Kind:        ErrInvalidValue,
		Key:         spec.Key,
		Value:       raw,
		Description: spec.ErrorDescription,
		Message:     msg,
		cause:       cause,
	}
}
