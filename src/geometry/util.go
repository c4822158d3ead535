package geometry

import "math"

// ApproxEqual reports whether a and b differ by at most
// DefaultTolerance. NaN operands never compare equal.
func ApproxEqual(a, b float64) bool {
	return ApproxEqualTol(a, b, DefaultTolerance)
}

// ApproxEqualTol is ApproxEqual with a caller-supplied tolerance.
func ApproxEqualTol(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// hashComponents rounds each component to its DefaultTolerance grid
// index and runs the index bytes through FNV-1a. Rounding to the
// integer index (not back to a float) keeps -0 and +0 in the same
// bucket.
func hashComponents(components ...float64) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range components {
		cell := uint64(int64(math.Round(c / DefaultTolerance)))
		for shift := 0; shift < 64; shift += 8 {
			h ^= (cell >> shift) & 0xFF
			h *= fnvPrime64
		}
	}
	return h
}
