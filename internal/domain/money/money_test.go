package money

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2700.009, 2700.01},
		{10080.000000000002, 10080},
		{0, 0},
		{1.004, 1.0},
		{1.006, 1.01},
		{333.33000000000004, 333.33},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(10080); got != "10080.00 MAD" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := Format(2700.5); got != "2700.50 MAD" {
		t.Fatalf("unexpected format: %q", got)
	}
}
