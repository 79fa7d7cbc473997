package cliargs

// FieldKind identifies which annotation bound a field into a schema
type FieldKind int

const (
	UnknownKind FieldKind = iota
	ValueField
	FlagField
	EnumeratedField
)

func (k FieldKind) String() (s string) {
	switch k {
	case ValueField:
		s = "value"
	case FlagField:
		s = "flag"
	case EnumeratedField:
		s = "enumerated"
	case UnknownKind:
		s = "unknown"
	}
	return s
}

// ValueType is the declared type of a container field, and thus the type a
// raw token is coerced into.
type ValueType int

const (
	UnknownType ValueType = iota
	IntType
	Int64Type
	Float32Type
	Float64Type
	StringType
	BoolType
	EnumType
)

func (vt ValueType) String() (s string) {
	switch vt {
	case IntType:
		s = "int"
	case Int64Type:
		s = "int64"
	case Float32Type:
		s = "float32"
	case Float64Type:
		s = "float64"
	case StringType:
		s = "string"
	case BoolType:
		s = "bool"
	case EnumType:
		s = "enumeration"
	case UnknownType:
		s = "unknown"
	}
	return s
}

// isScalar reports whether vt can be bound with a Value annotation
func (vt ValueType) isScalar() bool {
	switch vt {
	case IntType, Int64Type, Float32Type, Float64Type, StringType:
		return true
	case BoolType, EnumType, UnknownType:
	}
	return false
}

// FieldSpec is the resolved binding metadata of one schema field
type FieldSpec struct {
	Key              string
	Name             string
	Kind             FieldKind
	Type             ValueType
	Required         bool
	DefaultFlagValue bool
	ErrorDescription string
	Mapping          []MapPair
}

// lookupToken returns the member name mapped to token. The first matching
// pair wins when a token is listed more than once.
func (fs FieldSpec) lookupToken(token string) (member string, ok bool) {
	for _, pair := range fs.Mapping {
		if pair.Token != token {
			continue
		}
		member = pair.Member
		ok = true
		goto end
	}
end:
	return member, ok
}

func (fs FieldSpec) clone() FieldSpec {
	if fs.Mapping != nil {
		fs.Mapping = append([]MapPair(nil), fs.Mapping...)
	}
	return fs
}
