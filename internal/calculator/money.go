package calculator

import "math"

// epsilon is the tolerance for float comparisons on monetary values.
// Sums are rounded to 2 decimals before comparison, so any residue beyond
// this is a real mismatch, not float noise.
const epsilon = 1e-9

// Round2 rounds a monetary value to 2 fractional digits, half away from
// zero. Applied after every arithmetic operation that produces a monetary
// value so floating-point drift cannot accumulate across repeated
// operations.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
