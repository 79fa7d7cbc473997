package cliargs

import (
	"slices"
)

// Schema maps each recognized key of an arguments container to its FieldSpec.
// A Schema is immutable once extracted and may be shared between goroutines.
type Schema[T any] struct {
	container string
	keys      []string // Declaration order
	specs     map[string]FieldSpec
	assigners map[string]func(*T, any)
	ignored   []string
}

// Container returns the name of the Descriptor the schema was extracted from
func (s *Schema[T]) Container() string {
	return s.container
}

// Keys returns the recognized keys in declaration order
func (s *Schema[T]) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of recognized keys
func (s *Schema[T]) Len() int {
	return len(s.keys)
}

// Field returns the FieldSpec bound to key
func (s *Schema[T]) Field(key string) (fs FieldSpec, ok bool) {
	fs, ok = s.specs[key]
	if ok {
		fs = fs.clone()
	}
	return fs, ok
}

// Fields returns every FieldSpec in declaration order
func (s *Schema[T]) Fields() []FieldSpec {
	fields := make([]FieldSpec, len(s.keys))
	for i, key := range s.keys {
		fields[i] = s.specs[key].clone()
	}
	return fields
}

// Ignored returns the names of declared fields that carry no single binding
// annotation and are therefore not part of the schema.
func (s *Schema[T]) Ignored() []string {
	return slices.Clone(s.ignored)
}

type boundField[T any] struct {
	field Field[T]
	spec  FieldSpec
}

// Extract validates a Descriptor and derives its Schema. Validation runs in a
// fixed order: container marker, field types, enum mappings, then keys. The
// first violation is returned as a *SchemaError.
func Extract[T any](d *Descriptor[T]) (s *Schema[T], err error) {
	var bound []boundField[T]
	var ignored []string

	if d == nil {
		err = newSchemaError(ErrNotAContainer, "", "",
			"nil descriptor is not an arguments container")
		goto end
	}
	if !d.IsContainer {
		err = newSchemaError(ErrNotAContainer, d.Name, "",
			"type %s must be declared as an arguments container", d.Name)
		goto end
	}

	bound, ignored = collectFields(d.Fields)

	err = checkFieldTypes(d.Name, bound)
	if err != nil {
		goto end
	}

	err = checkEnumMappings(d.Name, bound)
	if err != nil {
		goto end
	}

	s, err = buildSchema(d.Name, bound)
	if err != nil {
		goto end
	}
	s.ignored = ignored

end:
	return s, err
}

// collectFields keeps the fields that carry exactly one of the Value, Flag or
// Enumerated annotations and resolves their FieldSpec.
func collectFields[T any](fields []Field[T]) (bound []boundField[T], ignored []string) {
	var f Field[T]
	var a Annotation
	var spec FieldSpec
	var kinds int
	var notRequired bool

	for _, f = range fields {
		spec = FieldSpec{Name: f.name, Type: f.typ}
		kinds = 0
		notRequired = false
		for _, a = range f.annotations {
			switch ann := a.(type) {
			case Value:
				kinds++
				spec.Kind = ValueField
				spec.Key = ann.Key
				spec.ErrorDescription = ann.ErrorDescription
			case Flag:
				kinds++
				spec.Kind = FlagField
				spec.Key = ann.Key
				spec.DefaultFlagValue = ann.Default
			case Enumerated:
				kinds++
				spec.Kind = EnumeratedField
				spec.Key = ann.Key
				spec.ErrorDescription = ann.ErrorDescription
				spec.Mapping = slices.Clone(ann.Mapping)
			case NotRequired:
				notRequired = true
			}
		}
		if kinds != 1 {
			ignored = append(ignored, f.name)
			continue
		}
		spec.Required = spec.Kind != FlagField && !notRequired
		bound = append(bound, boundField[T]{field: f, spec: spec})
	}
	return bound, ignored
}

func checkFieldTypes[T any](container string, bound []boundField[T]) (err error) {
	var bf boundField[T]
	var expected string
	var ok bool

	for _, bf = range bound {
		switch bf.spec.Kind {
		case FlagField:
			ok = bf.spec.Type == BoolType
			expected = BoolType.String()
		case EnumeratedField:
			ok = bf.spec.Type == EnumType
			expected = EnumType.String()
		case ValueField:
			ok = bf.spec.Type.isScalar()
			expected = "int, int64, float32, float64 or string"
		case UnknownKind:
			ok = false
			expected = "annotated"
		}
		if ok {
			continue
		}
		err = newSchemaError(ErrTypeMismatch, container, bf.spec.Name,
			"field %s must be %s for a %s annotation, but it is %s",
			bf.spec.Name, expected, bf.spec.Kind, bf.spec.Type)
		goto end
	}
end:
	return err
}

// checkEnumMappings verifies every mapped member name exists. Tokens are not
// required to be unique.
func checkEnumMappings[T any](container string, bound []boundField[T]) (err error) {
	var bf boundField[T]
	var pair MapPair

	for _, bf = range bound {
		if bf.spec.Kind != EnumeratedField {
			continue
		}
		for _, pair = range bf.spec.Mapping {
			if slices.Contains(bf.field.members, pair.Member) {
				continue
			}
			err = newSchemaError(ErrInvalidEnumMapping, container, bf.spec.Name,
				"field %s maps token '%s' to '%s', which is not a member of its enumeration",
				bf.spec.Name, pair.Token, pair.Member)
			goto end
		}
	}
end:
	return err
}

func buildSchema[T any](container string, bound []boundField[T]) (s *Schema[T], err error) {
	var bf boundField[T]
	var existing FieldSpec
	var exists bool

	s = &Schema[T]{
		container: container,
		keys:      make([]string, 0, len(bound)),
		specs:     make(map[string]FieldSpec, len(bound)),
		assigners: make(map[string]func(*T, any), len(bound)),
	}
	for _, bf = range bound {
		if bf.spec.Key == "" {
			err = newSchemaError(ErrEmptyKey, container, bf.spec.Name,
				"field %s has an empty argument key", bf.spec.Name)
			goto end
		}
		existing, exists = s.specs[bf.spec.Key]
		if exists {
			err = newSchemaError(ErrDuplicateKey, container, bf.spec.Name,
				"same key '%s' for fields %s and %s",
				bf.spec.Key, existing.Name, bf.spec.Name)
			goto end
		}
		s.keys = append(s.keys, bf.spec.Key)
		s.specs[bf.spec.Key] = bf.spec
		s.assigners[bf.spec.Key] = bf.field.assign
	}
end:
	if err != nil {
		s = nil
	}
	return s, err
}
