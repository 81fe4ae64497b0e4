package watch

import "testing"

func TestFloorMod(t *testing.T) {
	for _, tt := range []struct {
		a, m, want int
	}{
		{0, 7, 0},
		{6, 7, 6},
		{7, 7, 0},
		{-1, 7, 6},
		{-7, 7, 0},
		{-8, 31, 23},
		{216, 217, 216},
		{-216, 217, 1},
	} {
		if got := floorMod(tt.a, tt.m); got != tt.want {
			t.Fatalf("floorMod(%d, %d) = %d, want %d", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestGCD(t *testing.T) {
	for _, tt := range []struct {
		a, b, want int
	}{
		{7, 31, 1},
		{31, 7, 1},
		{6, 9, 3},
		{12, 8, 4},
		{5, 0, 5},
	} {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Fatalf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
