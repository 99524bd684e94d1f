package internal

import "math"

const Tolerance = 1e-6

// Used by tests and by callers comparing derived geometry. Looser than
// Tolerance because trig round trips lose a few digits.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
