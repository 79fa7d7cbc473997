package cliargs

import (
	"maps"
)

// BindingTable is the result of matching tokens against a Schema, before any
// type coercion. Every Flag key of the schema is present in Flags.
type BindingTable struct {
	values map[string]string
	flags  map[string]bool
}

// Value returns the raw token supplied for a Value or Enumerated key
func (bt *BindingTable) Value(key string) (raw string, ok bool) {
	raw, ok = bt.values[key]
	return raw, ok
}

// Flag returns the supplied or defaulted value of a Flag key
func (bt *BindingTable) Flag(key string) (value bool, ok bool) {
	value, ok = bt.flags[key]
	return value, ok
}

// Values returns a copy of the raw value bindings
func (bt *BindingTable) Values() map[string]string {
	return maps.Clone(bt.values)
}

// Flags returns a copy of the flag bindings
func (bt *BindingTable) Flags() map[string]bool {
	return maps.Clone(bt.flags)
}

// Bind scans tokens left to right against s. A key may appear at most once.
// A Flag key consumes one token; any other key consumes itself and the token
// after it. Required keys that were not supplied are checked only after the
// whole scan, so unknown or repeated arguments are reported first.
func Bind[T any](s *Schema[T], tokens []string) (bt *BindingTable, err error) {
	var spec FieldSpec
	var token string
	var key string
	var ok bool

	used := make(map[string]struct{}, len(tokens))
	bt = &BindingTable{
		values: make(map[string]string),
		flags:  make(map[string]bool),
	}

	for i := 0; i < len(tokens); i++ {
		token = tokens[i]
		spec, ok = s.specs[token]
		if !ok {
			err = newParseError(ErrUnknownArgument, token,
				"unexpected argument: %s", token)
			goto end
		}
		_, ok = used[token]
		if ok {
			err = newParseError(ErrRepeatedArgument, token,
				"argument is repeated: %s", token)
			goto end
		}
		used[token] = struct{}{}

		if spec.Kind == FlagField {
			bt.flags[token] = true
			continue
		}
		if i+1 == len(tokens) {
			err = newParseError(ErrMissingValue, token,
				"no value for argument: %s", token)
			goto end
		}
		i++
		bt.values[token] = tokens[i]
	}

	for _, key = range s.keys {
		_, ok = used[key]
		if ok {
			continue
		}
		spec = s.specs[key]
		switch {
		case spec.Kind == FlagField:
			bt.flags[key] = spec.DefaultFlagValue
		case spec.Required:
			err = &ParseError{
				Kind:        ErrMissingRequiredArgument,
				Key:         key,
				Description: spec.ErrorDescription,
				Message:     missingRequiredMessage(key, spec.ErrorDescription),
			}
			goto end
		}
	}

end:
	if err != nil {
		bt = nil
	}
	return bt, err
}

func missingRequiredMessage(key, description string) string {
	if description == "" {
		return "missing required argument: " + key
	}
	return "missing required argument: " + key + "; " + description
}
