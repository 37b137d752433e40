package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// FromAny converts a host Go value into a Value.
//
// nil (and a nil pointer) become null.  Integers, floats, bools and strings
// become scalars, slices and arrays become sequences and maps become
// mappings.  Map keys may be any scalar; they are converted with KeyString.
// A *Value is returned as is.  Anything else yields ErrUnsupportedType.
func FromAny(x any) (*Value, error) {
	if v, ok := FromScalar(x); ok {
		return v, nil
	}
	switch x := x.(type) {
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x, nil
	case []any:
		return fromAnySlice(x)
	case map[string]any:
		members := make([]Member, 0, len(x))
		for k, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return FromMembers(members)
	case map[any]any:
		members := make([]Member, 0, len(x))
		for k, e := range x {
			key, err := KeyString(k)
			if err != nil {
				return nil, err
			}
			v, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			members = append(members, Member{Key: key, Value: v})
		}
		return FromMembers(members)
	case []Member:
		return FromMembers(x)
	}
	return fromReflect(reflect.ValueOf(x))
}

// FromScalar converts x to a scalar Value.  It reports false if x is not
// nil, a bool, a number, a string or a time.
func FromScalar(x any) (*Value, bool) {
	switch x := x.(type) {
	case nil:
		return Null(), true
	case bool:
		return FromBool(x), true
	case string:
		return FromString(x), true
	case int:
		return FromInt(int64(x)), true
	case int8:
		return FromInt(int64(x)), true
	case int16:
		return FromInt(int64(x)), true
	case int32:
		return FromInt(int64(x)), true
	case int64:
		return FromInt(x), true
	case uint:
		return fromUnsigned(uint64(x)), true
	case uint8:
		return fromUnsigned(uint64(x)), true
	case uint16:
		return fromUnsigned(uint64(x)), true
	case uint32:
		return fromUnsigned(uint64(x)), true
	case uint64:
		return fromUnsigned(x), true
	case float32:
		return FromFloat(float64(x)), true
	case float64:
		return FromFloat(x), true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), true
		}
		if f, err := x.Float64(); err == nil {
			return FromFloat(f), true
		}
		return FromString(x.String()), true
	case time.Time:
		return FromString(x.Format(time.RFC3339Nano)), true
	}
	return nil, false
}

// KeyString converts a scalar mapping key to its string form.
func KeyString(k any) (string, error) {
	switch k := k.(type) {
	case string:
		return k, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(k), nil
	case float32:
		return strconv.FormatFloat(float64(k), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), nil
	case time.Time:
		return k.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return k.String(), nil
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.String:
		return rv.String(), nil
	}
	return "", fmt.Errorf("%w: %T", ErrKeyType, k)
}

func fromUnsigned(u uint64) *Value {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return FromUint(u)
}

func fromAnySlice(xs []any) (*Value, error) {
	vs := make([]*Value, len(xs))
	for i, e := range xs {
		v, err := FromAny(e)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		vs[i] = v
	}
	return FromSlice(vs), nil
}

func fromReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUnsigned(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		fallthrough
	case reflect.Array:
		vs := make([]*Value, rv.Len())
		for i := range vs {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vs[i] = v
		}
		return FromSlice(vs), nil
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		members := make([]Member, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := KeyString(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			v, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			members = append(members, Member{Key: key, Value: v})
		}
		return FromMembers(members)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}
