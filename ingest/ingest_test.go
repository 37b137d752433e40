package ingest

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/kyaml/value"
)

func TestIngest(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *value.Value
	}{
		{"string", "---\n\"hello\"\n", value.FromString("hello")},
		{"int", "---\n42\n", value.FromInt(42)},
		{"negative int", "-3", value.FromInt(-3)},
		{"float", "---\n3.14\n", value.FromFloat(3.14)},
		{"true", "---\ntrue\n", value.FromBool(true)},
		{"false", "---\nfalse\n", value.FromBool(false)},
		{"null", "---\nnull\n", value.Null()},
		{"empty", "", value.Null()},
		{"flow mapping", "---\n{\n  age: 30,\n  name: \"john\"\n}\n",
			value.FromMap(map[string]*value.Value{
				"age":  value.FromInt(30),
				"name": value.FromString("john"),
			})},
		{"flow sequence", "---\n[\n  \"a\",\n  \"b\",\n  \"c\"\n]\n",
			value.FromSlice([]*value.Value{value.FromString("a"), value.FromString("b"), value.FromString("c")})},
		{"block", "name: John\nage: 30\ntags:\n  - dev\n  - ops\n",
			value.FromMap(map[string]*value.Value{
				"name": value.FromString("John"),
				"age":  value.FromInt(30),
				"tags": value.FromSlice([]*value.Value{value.FromString("dev"), value.FromString("ops")}),
			})},
		{"nested block", "user:\n  name: Dave\n  roles:\n    - admin\n    - user\n",
			value.FromMap(map[string]*value.Value{
				"user": value.FromMap(map[string]*value.Value{
					"name":  value.FromString("Dave"),
					"roles": value.FromSlice([]*value.Value{value.FromString("admin"), value.FromString("user")}),
				}),
			})},
		{"empty collections", "a: {}\nb: []\n",
			value.FromMap(map[string]*value.Value{
				"a": value.FromMap(nil),
				"b": value.FromSlice(nil),
			})},
		{"scalar keys", "{1: one, true: two}",
			value.FromMap(map[string]*value.Value{
				"1":    value.FromString("one"),
				"true": value.FromString("two"),
			})},
		{"exponent float", "1e3", value.FromFloat(1000)},
		{"signed exponent float", "-2E+5", value.FromFloat(-2e5)},
		{"quoted exponent", "\"1e3\"", value.FromString("1e3")},
		{"mixed floats", "[1.0, 1e+3, .5, -.inf]",
			value.FromSlice([]*value.Value{
				value.FromFloat(1), value.FromFloat(1000), value.FromFloat(0.5), value.FromFloat(math.Inf(-1)),
			})},
		{"anchored exponent", "a: &x 1e3\nb: *x\n",
			value.FromMap(map[string]*value.Value{
				"a": value.FromFloat(1000),
				"b": value.FromFloat(1000),
			})},
		{"exponent lookalike", "1e3x", value.FromString("1e3x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IngestString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(tt.want, got) {
				t.Errorf("Ingest(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIngestKeepsIntegerFloatDistinction(t *testing.T) {
	v, err := IngestString("[1, 1.0]")
	if err != nil {
		t.Fatal(err)
	}
	if v.Values[0].Int64 == nil {
		t.Errorf("1 should ingest as an integer: %+v", v.Values[0])
	}
	if v.Values[1].Float64 == nil {
		t.Errorf("1.0 should ingest as a float: %+v", v.Values[1])
	}
}

func TestIngestKeepsSourceOrder(t *testing.T) {
	v, err := IngestString("zebra: 1\napple: 2\nmiddle: 3\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "apple", "middle"}
	for i, k := range want {
		if v.Keys[i] != k {
			t.Fatalf("keys = %v, want %v", v.Keys, want)
		}
	}
}

func TestIngestErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"invalid", "{{{invalid}}}"},
		{"unterminated flow", "{a: 1"},
		{"unterminated quote", "\"abc"},
		{"duplicate keys", "a: 1\na: 2\n"},
		{"multiple documents", "---\na: 1\n---\nb: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := IngestString(tt.in)
			if err == nil {
				t.Fatalf("expected error, got %+v", v)
			}
			if v != nil {
				t.Errorf("partial value returned: %+v", v)
			}
			if !errors.Is(err, ErrIngest) {
				t.Errorf("expected ErrIngest, got %v", err)
			}
			var ie *Error
			if !errors.As(err, &ie) || ie.Msg == "" {
				t.Errorf("expected *Error with message, got %#v", err)
			}
		})
	}
}

func TestIngestMultiDocument(t *testing.T) {
	_, err := IngestString("1\n---\n2\n")
	if !errors.Is(err, ErrMultiDocument) {
		t.Fatalf("expected ErrMultiDocument, got %v", err)
	}
}

func TestIngestAllowDuplicateKeys(t *testing.T) {
	v, err := IngestString("a: 1\na: 2\n", AllowDuplicateKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromMap(map[string]*value.Value{"a": value.FromInt(2)})
	if !value.Equal(want, v) {
		t.Errorf("got %+v, want %+v", v, want)
	}
}

func TestIngestMaxDepth(t *testing.T) {
	_, err := IngestString("[[[1]]]", MaxDepth(2))
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth, got %v", err)
	}
	if _, err := IngestString("[[[1]]]", MaxDepth(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIngestSourceInErrors(t *testing.T) {
	in := "a: 1\na: 2\n"
	var plain, withSrc *Error
	_, err := IngestString(in)
	if !errors.As(err, &plain) {
		t.Fatalf("expected *Error, got %v", err)
	}
	_, err = IngestString(in, SourceInErrors(true))
	if !errors.As(err, &withSrc) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !strings.Contains(withSrc.Msg, "a: 2") {
		t.Errorf("source line missing from %q", withSrc.Msg)
	}
	if len(withSrc.Msg) <= len(plain.Msg) {
		t.Errorf("source not added: %q vs %q", withSrc.Msg, plain.Msg)
	}
}
