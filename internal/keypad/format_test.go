package keypad

import (
	"math"
	"testing"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 8, want: "8"},
		{in: -3, want: "-3"},
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 2.5, want: "2.5"},
		{in: 0.1 + 0.2, want: "0.30000000000000004"},
		{in: 1.0 / 3.0, want: "0.3333333333333333"},
		{in: 123456789012, want: "123456789012"},
		{in: 1e21, want: "1e+21"},
		{in: 1e-7, want: "0.0000001"},
		{in: 1.5e-8, want: "1.5e-08"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
		{in: math.NaN(), want: "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatResult(tc.in); got != tc.want {
				t.Fatalf("FormatResult(%v): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "="} {
		op, err := ParseOperator(sym)
		if err != nil {
			t.Fatalf("ParseOperator(%q): %v", sym, err)
		}
		if op.String() != sym {
			t.Fatalf("expected %q, got %q", sym, op)
		}
	}

	if _, err := ParseOperator("^"); err == nil {
		t.Fatal("expected error for unknown operator")
	}

	if OpEquals.Arithmetic() {
		t.Fatal("equals must not be arithmetic")
	}
	if !OpDivide.Arithmetic() {
		t.Fatal("divide must be arithmetic")
	}
}
