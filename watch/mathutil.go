package watch

import "golang.org/x/exp/constraints"

// floorMod returns a mod m in [0, m) for positive m. Go's % operator
// truncates toward zero, which yields negative results for negative a.
func floorMod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// gcd returns the greatest common divisor of a and b.
func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
