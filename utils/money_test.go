package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{12.344, 12.34},
		{12.346, 12.35},
		{8.5181, 8.52},
		{-2.341, -2.34},
		{99.999, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
