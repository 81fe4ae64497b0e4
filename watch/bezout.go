package watch

import "fmt"

// Bezout coefficients for the wheel moduli, satisfying 9*7 + (-2)*31 = 1.
const (
	bezoutDay  = 9
	bezoutDate = -2
)

// BezoutCoefficients returns a pair (m1, m2) with m1*n1 + m2*n2 = 1.
// Only the dial's modulus pair (7, 31) is supported; any other pair fails
// with an error wrapping ErrUnsupportedModuli rather than returning wrong
// coefficients. Generalizing means running the extended Euclidean algorithm
// here instead of the fixed table.
func BezoutCoefficients(n1, n2 int) (int, int, error) {
	if gcd(n1, n2) != 1 {
		return 0, 0, unsupportedModuliError(fmt.Sprintf("(%d, %d) are not coprime", n1, n2))
	}
	if n1 == dayModulus && n2 == dateModulus {
		return bezoutDay, bezoutDate, nil
	}
	return 0, 0, unsupportedModuliError(fmt.Sprintf("(%d, %d), only (%d, %d) is supported",
		n1, n2, dayModulus, dateModulus))
}

// combineResidues is the CRT reconstruction for the wheel moduli: the unique
// value in [0, cycleLength) congruent to dayDelta mod 7 and dateDelta mod 31.
func combineResidues(dayDelta, dateDelta int) int {
	return floorMod(dayDelta*bezoutDate*dateModulus+dateDelta*bezoutDay*dayModulus, cycleLength)
}
