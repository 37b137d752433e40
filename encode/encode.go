package encode

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/kyaml/value"
)

// DocumentMarker starts every encoded document.
const DocumentMarker = "---"

type EncState struct {
	depth, indent int
	maxDepth      int

	colorType value.Type
	Color     func(value.Type, ColorAttr, string) string
}

// Encode writes the canonical KYAML rendering of v to w.
//
// The output is the document marker line, the rendered value and a
// trailing newline.  A nil v encodes as null.  Nothing is written to w
// if v cannot be encoded.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		return fmt.Errorf("%w: indent must be positive, got %d", ErrEncoding, es.indent)
	}
	buf := bytes.NewBuffer(nil)
	marker := applyColor(es, value.NullType, MarkerColor, DocumentMarker)
	if err := writeString(buf, marker+"\n"); err != nil {
		return err
	}
	if err := encode(v, buf, es); err != nil {
		return err
	}
	if err := writeString(buf, "\n"); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// String returns the canonical KYAML rendering of v.
func String(v *value.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	return writeString(w, applyColor(es, es.colorType, SepColor, sep))
}

// Main encode function

func encode(v *value.Value, w io.Writer, es *EncState) error {
	if v == nil {
		v = value.Null()
	}
	es.colorType = v.Type

	switch v.Type {
	case value.NullType:
		return encodeNull(w, es)
	case value.BoolType:
		return encodeBool(v, w, es)
	case value.NumberType:
		return encodeNumber(v, w, es)
	case value.StringType:
		return encodeString(v, w, es)
	case value.SequenceType:
		return encodeSequence(v, w, es)
	case value.MappingType:
		return encodeMapping(v, w, es)
	default:
		return fmt.Errorf("%w: unknown value type %d", ErrEncoding, int(v.Type))
	}
}

func enter(es *EncState) error {
	es.depth++
	if es.maxDepth > 0 && es.depth > es.maxDepth {
		return fmt.Errorf("%w: nesting exceeds max depth %d", ErrEncoding, es.maxDepth)
	}
	return nil
}

// Sequence encoding

func encodeSequence(v *value.Value, w io.Writer, es *EncState) error {
	n := len(v.Values)
	if n == 0 {
		return writeSep(w, es, "[]")
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	if err := enter(es); err != nil {
		return err
	}
	for i, item := range v.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(item, w, es); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		if i < n-1 {
			es.colorType = value.SequenceType
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.colorType = value.SequenceType
	return writeSep(w, es, "]")
}

// Mapping encoding

func encodeMapping(v *value.Value, w io.Writer, es *EncState) error {
	if len(v.Keys) != len(v.Values) {
		return fmt.Errorf("%w: mapping has %d keys and %d values", ErrEncoding, len(v.Keys), len(v.Values))
	}
	n := len(v.Keys)
	if n == 0 {
		return writeSep(w, es, "{}")
	}
	order := sortedIndices(v.Keys)
	for i := 1; i < n; i++ {
		if v.Keys[order[i-1]] == v.Keys[order[i]] {
			return fmt.Errorf("%w: duplicate key %q", ErrEncoding, v.Keys[order[i]])
		}
	}
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	if err := enter(es); err != nil {
		return err
	}
	for i, j := range order {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, v.Keys[j], es); err != nil {
			return err
		}
		if err := encode(v.Values[j], w, es); err != nil {
			return fmt.Errorf("%s: %w", strconv.Quote(v.Keys[j]), err)
		}
		if i < n-1 {
			es.colorType = value.MappingType
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.colorType = value.MappingType
	return writeSep(w, es, "}")
}

// sortedIndices returns the indices of keys ordered by code point
// comparison of the keys they refer to.
func sortedIndices(keys []string) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})
	return order
}

// Field writing

func writeField(w io.Writer, k string, es *EncState) error {
	f := applyColor(es, value.MappingType, FieldColor, FormatKey(k))
	sep := applyColor(es, value.MappingType, SepColor, ":")
	return writeString(w, f+sep+" ")
}

// Scalar encoding

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.NullType, ValueColor, "null"))
}

func encodeBool(v *value.Value, w io.Writer, es *EncState) error {
	s := strconv.FormatBool(v.Bool)
	return writeString(w, applyColor(es, value.BoolType, ValueColor, s))
}

func encodeNumber(v *value.Value, w io.Writer, es *EncState) error {
	s, err := FormatNumber(v)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, value.NumberType, ValueColor, s))
}

func encodeString(v *value.Value, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, value.StringType, ValueColor, Quote(v.String)))
}

// Color application helpers

func applyColor(es *EncState, t value.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
