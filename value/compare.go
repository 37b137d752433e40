package value

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Mappings compare by their members in sorted key order, so two mappings
// holding the same members in different orders are equal.  A nil value
// compares equal to null.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Sequence < Mapping
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case SequenceType:
		return 4
	case MappingType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: integer < float
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return compareIntegers(a, b)
}

func numberSubRank(v *Value) int {
	if v.Float64 != nil {
		return 1
	}
	return 0
}

func compareIntegers(a, b *Value) int {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Uint64 != nil && b.Uint64 != nil:
		return cmp.Compare(*a.Uint64, *b.Uint64)
	case a.Int64 != nil && b.Uint64 != nil:
		if *a.Int64 < 0 {
			return -1
		}
		return cmp.Compare(uint64(*a.Int64), *b.Uint64)
	case a.Uint64 != nil && b.Int64 != nil:
		return -compareIntegers(b, a)
	}
	// malformed numbers without a representation sort first
	return cmp.Compare(hasInteger(a), hasInteger(b))
}

func hasInteger(v *Value) int {
	if v.Int64 != nil || v.Uint64 != nil {
		return 1
	}
	return 0
}

func compareSequences(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMappings(a, b *Value) int {
	keysA := a.SortedKeys()
	keysB := b.SortedKeys()
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		va, _ := a.Get(keysA[i])
		vb, _ := b.Get(keysB[i])
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
