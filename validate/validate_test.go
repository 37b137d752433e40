package validate

import (
	"testing"

	"github.com/signadot/kyaml/encode"
	"github.com/signadot/kyaml/ingest"
	"github.com/signadot/kyaml/value"
)

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"canonical mapping", "---\n{\n  age: 25,\n  name: \"Bob\"\n}\n", true},
		{"canonical scalar", "---\n42\n", true},
		{"canonical empty", "---\n{}\n", true},
		{"extra whitespace", "---\n{\n      age: 25,\n name:   \"Bob\"\n}\n\n\n", true},
		{"single line", "--- { age: 25, name: \"Bob\" }", true},
		{"block style", "name: Charlie\nage: 35\n", false},
		{"missing marker", "{\n  age: 25,\n  name: \"Bob\"\n}\n", false},
		{"unsorted keys", "---\n{\n  name: \"Bob\",\n  age: 25\n}\n", false},
		{"quoted safe key", "---\n{\n  \"name\": \"Alice\"\n}\n", false},
		{"bare string", "---\nhello\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := IsCanonical([]byte(tt.in))
			if res.Valid != tt.valid {
				t.Fatalf("Valid = %t, want %t (error %q)", res.Valid, tt.valid, res.Error)
			}
			if tt.valid && res.Error != "" {
				t.Errorf("unexpected error %q", res.Error)
			}
			if !tt.valid && res.Error != NotCanonicalMessage {
				t.Errorf("Error = %q, want %q", res.Error, NotCanonicalMessage)
			}
			if res.Canonical == nil {
				t.Error("missing canonical rendering")
			}
		})
	}
}

func TestIsCanonicalIngestionFailure(t *testing.T) {
	res := IsCanonical([]byte("{{{invalid}}}"))
	if res.Valid {
		t.Fatal("invalid input validated")
	}
	if res.Error == "" || res.Error == NotCanonicalMessage {
		t.Errorf("expected an ingestion message, got %q", res.Error)
	}
	if res.Canonical != nil {
		t.Errorf("unexpected canonical output %q", res.Canonical)
	}
}

func TestCanonicalFixedPoint(t *testing.T) {
	values := []*value.Value{
		value.Null(),
		value.FromString("with \"quotes\" and\nnewline"),
		value.FromFloat(1e300),
		value.FromFloat(2),
		value.FromSlice(nil),
		value.FromMap(map[string]*value.Value{
			"on":     value.FromBool(false),
			"a b":    value.FromSlice([]*value.Value{value.FromInt(-1), value.FromMap(nil)}),
			"nested": value.FromMap(map[string]*value.Value{"x.y": value.FromString("")}),
		}),
	}
	for _, v := range values {
		s, err := encode.String(v)
		if err != nil {
			t.Fatal(err)
		}
		res := IsCanonical([]byte(s))
		if !res.Valid {
			t.Errorf("rendering of %+v is not canonical: %s\n%s", v, res.Error, s)
		}
		back, err := ingest.IngestString(s)
		if err != nil {
			t.Fatal(err)
		}
		if !value.Equal(v, back) {
			t.Errorf("round trip changed value:\n%s\ngot %+v", s, back)
		}
	}
}

func TestIsCanonicalIndent(t *testing.T) {
	in := "---\n[\n    1\n]\n"
	res := IsCanonical([]byte(in), EncodeOptions(encode.Indent(4)))
	if !res.Valid {
		t.Fatal(res.Error)
	}
	if string(res.Canonical) != in {
		t.Errorf("canonical = %q", res.Canonical)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  a  ", "a"},
		{"a\n\t b\r\nc", "a b c"},
		{"\"two  spaces\"", "\"two spaces\""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDiff(t *testing.T) {
	if d := Diff("same\n", "same\n"); d != "" {
		t.Errorf("expected no diff, got %q", d)
	}
	got := Diff("---\n{\n  b: 1,\n  a: 2\n}\n", "---\n{\n  a: 2,\n  b: 1\n}\n")
	if got == "" {
		t.Fatal("expected a diff")
	}
	var minus, plus int
	for _, ln := range splitLines(got) {
		switch ln[0] {
		case '-':
			minus++
		case '+':
			plus++
		}
	}
	if minus == 0 || plus == 0 {
		t.Errorf("diff lacks removals or additions:\n%s", got)
	}
}
