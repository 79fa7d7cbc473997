package cliargs

// Annotation is the binding metadata attached to a declared field. The
// recognized shapes are Value, Flag, Enumerated and the NotRequired marker.
type Annotation interface {
	annotation()
}

// Value binds a field to a key that is followed by one value token.
type Value struct {
	Key              string
	ErrorDescription string
}

// Flag binds a bool field to a key whose presence alone sets it to true.
type Flag struct {
	Key     string
	Default bool // Value used when the key is absent
}

// MapPair maps an external token onto the name of an enumeration member.
type MapPair struct {
	Token  string
	Member string
}

// Enumerated binds an enumeration field to a key followed by one of the
// Mapping tokens.
type Enumerated struct {
	Key              string
	ErrorDescription string
	Mapping          []MapPair
}

// NotRequired marks a Value or Enumerated field as optional.
type NotRequired struct{}

func (Value) annotation()       {}
func (Flag) annotation()        {}
func (Enumerated) annotation()  {}
func (NotRequired) annotation() {}
