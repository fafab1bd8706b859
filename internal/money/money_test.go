package money

import (
	"fmt"
	"testing"
)

func TestParseDollars(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"42.50", 4250},
		{"0.01", 1},
		{"100", 10000},
		{"6.66", 666},
		{"42.505", 4251}, // ties round away from zero
		{"-5", -500},
	}
	for _, tc := range cases {
		got, err := ParseDollars(tc.in)
		if err != nil {
			t.Fatalf("ParseDollars(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDollars(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDollarsRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "abc", "12.3.4", "$5"} {
		if _, err := ParseDollars(in); err == nil {
			t.Fatalf("ParseDollars(%q): expected error", in)
		}
	}
}

func TestDollarsCentsRoundTrip(t *testing.T) {
	// Any positive decimal with at most two fraction digits survives the
	// dollars -> cents -> dollars round trip exactly.
	for cents := int64(1); cents < 5000; cents += 7 {
		s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
		got, err := ParseDollars(s)
		if err != nil {
			t.Fatalf("ParseDollars(%q): %v", s, err)
		}
		if got != cents {
			t.Fatalf("round trip %q: got %d cents, want %d", s, got, cents)
		}
		back := Dollars(got)
		if fmt.Sprintf("%.2f", back) != s {
			t.Fatalf("Dollars(%d) = %v, want %s", got, back, s)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{4250, "$42.50"},
		{0, "$0.00"},
		{5, "$0.05"},
		{100000, "$1000.00"},
		{-150, "-$1.50"},
	}
	for _, tc := range cases {
		if got := Format(tc.cents); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
