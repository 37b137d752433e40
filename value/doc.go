// Package value provides the in-memory data model consumed by the kyaml
// canonical writer.
//
// # Overview
//
// A Value is a recursive tagged union over the YAML core schema: null,
// boolean, number, string, sequence and mapping.  Values carry no comments,
// tags, anchors or position information; two values are interchangeable
// exactly when they are structurally equal.
//
// # Value Types
//
// The Type field selects which other fields are meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: one of Int64, Uint64 (integers above math.MaxInt64) or Float64
//   - StringType: String
//   - SequenceType: Values, order significant
//   - MappingType: Keys and Values, parallel slices, keys unique
//
// Mapping order as stored is the ingestion order and carries no meaning; the
// writer sorts keys.  Integer versus floating point representation is kept
// as ingested.
//
// # Creating Values
//
//	v := value.FromMap(map[string]*value.Value{
//	    "name": value.FromString("alice"),
//	    "age":  value.FromInt(30),
//	})
//	s := value.FromSlice([]*value.Value{value.FromInt(1), value.Null()})
//
// Host Go values convert with FromAny, where nil becomes null:
//
//	v, err := value.FromAny(map[string]any{"tags": []any{"dev", "ops"}})
//
// # Comparison
//
// Compare defines a total order and Equal is structural equality.  Mapping
// members compare in sorted key order.
//
// # Thread Safety
//
// Values are plain data.  They may be read from multiple goroutines but must
// not be mutated concurrently.
package value
