package cliargs

import (
	"github.com/mikeschinkel/go-dt/dtx"
)

// Descriptor declares an arguments container: the type T whose fields are
// populated from command-line tokens. Fields that carry no Value, Flag or
// Enumerated annotation are part of T but are ignored by the engine.
type Descriptor[T any] struct {
	Name        string
	IsContainer bool              // Marks T as an arguments container
	New         func() (T, error) // OPTIONAL: factory; nil means the zero value of T
	Fields      []Field[T]
}

// NewContainer returns a Descriptor marked as an arguments container
func NewContainer[T any](name string, fields ...Field[T]) *Descriptor[T] {
	return &Descriptor[T]{
		Name:        name,
		IsContainer: true,
		Fields:      fields,
	}
}

// Field declares one field of T along with its annotations. Use Int, Int64,
// Float32, Float64, String, Bool or Enum to create one.
type Field[T any] struct {
	name        string
	typ         ValueType
	members     []string // Enumeration member names, in declared order
	assign      func(*T, any)
	annotations []Annotation
}

// Name returns the declared field name
func (f Field[T]) Name() string {
	return f.name
}

// Type returns the declared field type
func (f Field[T]) Type() ValueType {
	return f.typ
}

// Int declares an int field
func Int[T any](name string, target func(*T) *int, annotations ...Annotation) Field[T] {
	return newField(name, IntType, target, annotations)
}

// Int64 declares an int64 field
func Int64[T any](name string, target func(*T) *int64, annotations ...Annotation) Field[T] {
	return newField(name, Int64Type, target, annotations)
}

// Float32 declares a float32 field
func Float32[T any](name string, target func(*T) *float32, annotations ...Annotation) Field[T] {
	return newField(name, Float32Type, target, annotations)
}

// Float64 declares a float64 field
func Float64[T any](name string, target func(*T) *float64, annotations ...Annotation) Field[T] {
	return newField(name, Float64Type, target, annotations)
}

// String declares a string field; its raw token is assigned verbatim.
func String[T any](name string, target func(*T) *string, annotations ...Annotation) Field[T] {
	return newField(name, StringType, target, annotations)
}

// Bool declares a bool field, the only type a Flag annotation accepts.
func Bool[T any](name string, target func(*T) *bool, annotations ...Annotation) Field[T] {
	return newField(name, BoolType, target, annotations)
}

// EnumMember names one value of an enumeration type E
type EnumMember[E any] struct {
	Name  string
	Value E
}

// Enum declares a field whose type is the enumeration described by members.
// Enumerated mappings refer to members by Name.
func Enum[T, E any](name string, target func(*T) *E, members []EnumMember[E], annotations ...Annotation) Field[T] {
	var m EnumMember[E]
	var ok bool

	names := make([]string, 0, len(members))
	values := make(map[string]E, len(members))
	for _, m = range members {
		_, ok = values[m.Name]
		if ok {
			continue
		}
		names = append(names, m.Name)
		values[m.Name] = m.Value
	}
	f := newField(name, EnumType, target, annotations)
	f.members = names
	f.assign = func(t *T, v any) {
		*target(t) = values[v.(string)]
	}
	return f
}

func newField[T, V any](name string, vt ValueType, target func(*T) *V, annotations []Annotation) Field[T] {
	if target == nil {
		dtx.Panicf("cliargs: nil target for field '%s'", name)
	}
	return Field[T]{
		name:        name,
		typ:         vt,
		annotations: annotations,
		assign: func(t *T, v any) {
			*target(t) = v.(V)
		},
	}
}
