package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var v2 = NewVector2d

func TestApproxEqual(t *testing.T) {
	for idx, tc := range []struct {
		a, b  float64
		equal bool
	}{
		{0, 0, true},
		{1, 1, true},
		{1, 1.000009, true},  // 9e-6 < 1e-5
		{1, 1.00002, false},  // 2e-5 > 1e-5
		{0, 1e-5, true},      // boundary is inclusive
		{0, 1.1e-5, false},
		{-1, 1, false},
		{math.NaN(), math.NaN(), false},
		{math.NaN(), 0, false},
		{math.Inf(1), math.Inf(1), false}, // inf-inf is NaN
		{math.Inf(1), 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%v~%v=%v", idx, tc.a, tc.b, tc.equal), func(t *testing.T) {
			require.Equal(t, tc.equal, ApproxEqual(tc.a, tc.b))
			require.Equal(t, tc.equal, ApproxEqual(tc.b, tc.a))
		})
	}
}

func TestApproxEqualTol(t *testing.T) {
	for idx, tc := range []struct {
		a, b, tol float64
		equal     bool
	}{
		{1, 1.5, 1, true},
		{1, 2.5, 1, false},
		{1, 1.000009, 1e-6, false}, // tighter than default
		{100, 104, 5, true},
		{1, 1, 0, true}, // zero tolerance still admits identity
		{1, 1.0000001, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%v~%v@%v=%v", idx, tc.a, tc.b, tc.tol, tc.equal), func(t *testing.T) {
			require.Equal(t, tc.equal, ApproxEqualTol(tc.a, tc.b, tc.tol))
		})
	}
}

func TestHashComponentsQuantization(t *testing.T) {
	// Values inside the same tolerance cell must collide.
	require.Equal(t, hashComponents(1, 2), hashComponents(1.0000001, 2))
	require.Equal(t, hashComponents(0.0), hashComponents(math.Copysign(0, -1)))

	// Order and dimensionality must matter.
	require.NotEqual(t, hashComponents(1, 2), hashComponents(2, 1))
	require.NotEqual(t, hashComponents(1, 2), hashComponents(1, 2, 0))

	// Distinct cells should not collide for everyday values.
	require.NotEqual(t, hashComponents(1, 0), hashComponents(1.001, 0))
}
