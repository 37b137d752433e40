package value

import (
	"fmt"
	"maps"
	"slices"
)

// Value is a node of a YAML core-schema data tree.
//
// Fields are populated according to Type:
//
//   - BoolType: Bool
//   - NumberType: exactly one of Int64, Uint64, Float64
//   - StringType: String
//   - SequenceType: Values, in order
//   - MappingType: Keys[i] is the key of Values[i]; keys are unique
type Value struct {
	Type Type

	String  string
	Bool    bool
	Int64   *int64
	Uint64  *uint64
	Float64 *float64

	Keys   []string
	Values []*Value
}

// Member is a single key/value pair of a mapping.
type Member struct {
	Key   string
	Value *Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Value {
	return &Value{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromUint(v uint64) *Value {
	return &Value{
		Type:   NumberType,
		Uint64: &v,
	}
}

func FromFloat(f float64) *Value {
	return &Value{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromString(v string) *Value {
	return &Value{
		Type:   StringType,
		String: v,
	}
}

// FromSlice returns a sequence of vs.  A nil element is stored as null.
func FromSlice(vs []*Value) *Value {
	res := &Value{
		Type:   SequenceType,
		Values: make([]*Value, len(vs)),
	}
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.Values[i] = v
	}
	return res
}

// FromMap returns a mapping of m with keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   MappingType,
		Keys:   make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		if v == nil {
			v = Null()
		}
		res.Keys = append(res.Keys, k)
		res.Values = append(res.Values, v)
	}
	return res
}

// FromMembers returns a mapping holding members in the given order.
// It fails with ErrDuplicateKey if two members share a key.
func FromMembers(members []Member) (*Value, error) {
	res := &Value{
		Type:   MappingType,
		Keys:   make([]string, 0, len(members)),
		Values: make([]*Value, 0, len(members)),
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m.Key]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, m.Key)
		}
		seen[m.Key] = struct{}{}
		v := m.Value
		if v == nil {
			v = Null()
		}
		res.Keys = append(res.Keys, m.Key)
		res.Values = append(res.Values, v)
	}
	return res, nil
}

// Members returns the key/value pairs of a mapping in stored order,
// or nil if v is not a mapping.
func (v *Value) Members() []Member {
	if v.Type != MappingType {
		return nil
	}
	res := make([]Member, len(v.Keys))
	for i, k := range v.Keys {
		res[i] = Member{Key: k, Value: v.Values[i]}
	}
	return res
}

// Get returns the value stored under key in a mapping.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Type != MappingType {
		return nil, false
	}
	i := slices.Index(v.Keys, key)
	if i == -1 {
		return nil, false
	}
	return v.Values[i], true
}

// SortedKeys returns the keys of a mapping in code point order.
func (v *Value) SortedKeys() []string {
	keys := slices.Clone(v.Keys)
	slices.Sort(keys)
	return keys
}

// Len returns the number of elements of a sequence or members of a mapping.
func (v *Value) Len() int {
	return len(v.Values)
}

func (v *Value) IsNull() bool {
	return v == nil || v.Type == NullType
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		String: v.String,
		Bool:   v.Bool,
	}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Uint64 != nil {
		u := *v.Uint64
		res.Uint64 = &u
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	if v.Keys != nil {
		res.Keys = slices.Clone(v.Keys)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	return res
}
