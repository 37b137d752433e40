package value

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	SequenceType
	MappingType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		NumberType:   "Number",
		StringType:   "String",
		SequenceType: "Sequence",
		MappingType:  "Mapping",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Number":   NumberType,
		"String":   StringType,
		"Sequence": SequenceType,
		"Mapping":  MappingType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Types returns every member of the closed set of value types.
func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		SequenceType,
		MappingType,
	}
}

// Valid reports whether t is one of the types returned by Types.
func (t Type) Valid() bool {
	return t >= NullType && t <= MappingType
}
