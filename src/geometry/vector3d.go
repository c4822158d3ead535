package geometry

import (
	"fmt"
	"math"
)

// Vector3d is a double-precision vector in 3-space. The zero value is
// the zero vector. Deliberately a separate concrete type from
// Vector2d: mixing dimensionalities should not compile.
type Vector3d struct {
	X float64
	Y float64
	Z float64
}

func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

func (v Vector3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3d) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// SetLength rescales v in place so its length equals l, preserving
// direction. A zero vector stays at the origin no matter what l is.
func (v *Vector3d) SetLength(l float64) {
	if v.IsZero() {
		v.X, v.Y, v.Z = 0, 0, 0
		return
	}
	f := l / v.Length()
	v.X *= f
	v.Y *= f
	v.Z *= f
}

func (v Vector3d) IsZero() bool {
	return ApproxEqual(v.Length(), 0)
}

func (v Vector3d) IsUnit() bool {
	return ApproxEqual(v.Length(), 1)
}

// Normalized returns the unit vector pointing the way v does. The
// zero vector comes back unchanged.
func (v Vector3d) Normalized() Vector3d {
	if v.IsZero() {
		return Vector3dZero
	}
	return v.Scale(1 / v.Length())
}

func (v Vector3d) Dot(o Vector3d) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector cross product, perpendicular to both v and
// o with magnitude |v||o|sin(angle).
func (v Vector3d) Cross(o Vector3d) Vector3d {
	return Vector3d{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// VectorTo returns the displacement from the tip of v to the tip of o.
func (v Vector3d) VectorTo(o Vector3d) Vector3d {
	return o.Subtract(v)
}

func (v Vector3d) DistanceTo(o Vector3d) float64 {
	return v.VectorTo(o).Length()
}

// AngleTo returns the angle between v and o in radians, in [0, pi].
// Zero if either vector is zero.
func (v Vector3d) AngleTo(o Vector3d) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	c := v.Dot(o) / (v.Length() * o.Length())
	// rounding can push the cosine just outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// Equals compares componentwise within DefaultTolerance.
func (v Vector3d) Equals(o Vector3d) bool {
	return v.EqualsTol(o, DefaultTolerance)
}

func (v Vector3d) EqualsTol(o Vector3d, tolerance float64) bool {
	return ApproxEqualTol(v.X, o.X, tolerance) &&
		ApproxEqualTol(v.Y, o.Y, tolerance) &&
		ApproxEqualTol(v.Z, o.Z, tolerance)
}

func (v Vector3d) Negated() Vector3d {
	return Vector3d{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3d) Add(o Vector3d) Vector3d {
	return Vector3d{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3d) Subtract(o Vector3d) Vector3d {
	return Vector3d{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3d) Scale(s float64) Vector3d {
	return Vector3d{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides componentwise. Scalars within DefaultTolerance of zero
// are rejected with ErrDivideByZero instead of passing through to
// inf/NaN.
func (v Vector3d) Div(s float64) (Vector3d, error) {
	if ApproxEqual(s, 0) {
		return Vector3dZero, fmt.Errorf("%s / %v: %w", v, s, ErrDivideByZero)
	}
	return Vector3d{X: v.X / s, Y: v.Y / s, Z: v.Z / s}, nil
}

// Hash folds the components, quantized to the DefaultTolerance grid,
// through FNV-1a. See Vector2d.Hash for the grid-boundary caveat.
func (v Vector3d) Hash() uint64 {
	return hashComponents(v.X, v.Y, v.Z)
}

func (v Vector3d) String() string {
	return fmt.Sprintf("(%v; %v; %v)", v.X, v.Y, v.Z)
}
