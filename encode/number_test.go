package encode

import (
	"math"
	"testing"

	"github.com/signadot/kyaml/value"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.14, "3.14"},
		{0.1, "0.1"},
		{1, "1.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-2.5, "-2.5"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1.0e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{-1e-10, "-1.0e-10"},
		{math.NaN(), ".nan"},
		{math.Inf(1), ".inf"},
		{math.Inf(-1), "-.inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatFloat(tt.in); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   *value.Value
		want string
	}{
		{value.FromInt(42), "42"},
		{value.FromInt(-7), "-7"},
		{value.FromUint(math.MaxUint64), "18446744073709551615"},
		{value.FromFloat(2.5), "2.5"},
	}
	for _, tt := range tests {
		got, err := FormatNumber(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
