package ingest

import (
	"bytes"
	"fmt"

	"github.com/signadot/kyaml/debug"
	"github.com/signadot/kyaml/value"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Ingest parses a single YAML document into a value.
//
// Block and flow styles are both accepted.  Empty input is null.  On
// failure the returned error is an *Error and no value is returned.
func Ingest(d []byte, opts ...IngestOption) (*value.Value, error) {
	is := &ingestState{}
	for _, opt := range opts {
		opt(is)
	}
	var parseOpts []parser.Option
	decOpts := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if is.allowDuplicates {
		parseOpts = append(parseOpts, parser.AllowDuplicateMapKey())
		decOpts = append(decOpts, yaml.AllowDuplicateMapKey())
	}
	file, err := parser.ParseBytes(d, 0, parseOpts...)
	if err != nil {
		return nil, newError(err, yaml.FormatError(err, false, is.sourceInErrors))
	}
	var body ast.Node
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		if body != nil {
			return nil, newError(ErrMultiDocument, ErrMultiDocument.Error())
		}
		body = doc.Body
	}
	var x any
	if body != nil {
		body = retypeFloats(body)
		dec := yaml.NewDecoder(bytes.NewReader(nil), decOpts...)
		if err := dec.DecodeFromNode(body, &x); err != nil {
			return nil, newError(err, yaml.FormatError(err, false, is.sourceInErrors))
		}
	}
	v, err := is.toValue(x, 0)
	if err != nil {
		return nil, newError(err, err.Error())
	}
	if debug.Ingest() {
		debug.Logf("ingested %d bytes:\n%s", len(d), debug.KYAML{Value: v})
	}
	return v, nil
}

// IngestString is Ingest for string input.
func IngestString(s string, opts ...IngestOption) (*value.Value, error) {
	return Ingest([]byte(s), opts...)
}

func (is *ingestState) toValue(x any, depth int) (*value.Value, error) {
	if v, ok := value.FromScalar(x); ok {
		return v, nil
	}
	if is.maxDepth > 0 && depth >= is.maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrDepth, is.maxDepth)
	}
	switch x := x.(type) {
	case yaml.MapSlice:
		return is.mapSliceValue(x, depth)
	case []any:
		vs := make([]*value.Value, len(x))
		for i, e := range x {
			v, err := is.toValue(e, depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = v
		}
		return value.FromSlice(vs), nil
	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(x))
		for k, e := range x {
			ms = append(ms, yaml.MapItem{Key: k, Value: e})
		}
		return is.mapSliceValue(ms, depth)
	}
	return nil, fmt.Errorf("%w: %T", value.ErrUnsupportedType, x)
}

func (is *ingestState) mapSliceValue(ms yaml.MapSlice, depth int) (*value.Value, error) {
	members := make([]value.Member, 0, len(ms))
	index := make(map[string]int, len(ms))
	for _, item := range ms {
		key, err := value.KeyString(item.Key)
		if err != nil {
			return nil, err
		}
		v, err := is.toValue(item.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		if i, ok := index[key]; ok {
			if !is.allowDuplicates {
				return nil, fmt.Errorf("%w %q", value.ErrDuplicateKey, key)
			}
			members[i].Value = v
			continue
		}
		index[key] = len(members)
		members = append(members, value.Member{Key: key, Value: v})
	}
	return value.FromMembers(members)
}
