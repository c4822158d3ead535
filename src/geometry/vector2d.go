package geometry

import (
	"fmt"
	"math"
)

// Vector2d is a double-precision vector in the plane. The zero value
// is the zero vector. Equality is tolerance-based throughout; never
// compare vectors with == if you want this package's semantics.
type Vector2d struct {
	X float64
	Y float64
}

func NewVector2d(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

func (v Vector2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2d) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// SetLength rescales v in place so its length equals l, preserving
// direction. A zero vector has no direction to preserve and stays at
// the origin no matter what l is.
func (v *Vector2d) SetLength(l float64) {
	if v.IsZero() {
		v.X, v.Y = 0, 0
		return
	}
	f := l / v.Length()
	v.X *= f
	v.Y *= f
}

func (v Vector2d) IsZero() bool {
	return ApproxEqual(v.Length(), 0)
}

func (v Vector2d) IsUnit() bool {
	return ApproxEqual(v.Length(), 1)
}

// Normalized returns the unit vector pointing the way v does. The
// zero vector comes back unchanged.
func (v Vector2d) Normalized() Vector2d {
	if v.IsZero() {
		return Vector2dZero
	}
	return v.Scale(1 / v.Length())
}

func (v Vector2d) Dot(o Vector2d) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the scalar determinant X*o.Y - Y*o.X, the signed area of
// the parallelogram spanned by v and o.
func (v Vector2d) Cross(o Vector2d) float64 {
	return v.X*o.Y - v.Y*o.X
}

// VectorTo returns the displacement from the tip of v to the tip of o.
func (v Vector2d) VectorTo(o Vector2d) Vector2d {
	return o.Subtract(v)
}

func (v Vector2d) DistanceTo(o Vector2d) float64 {
	return v.VectorTo(o).Length()
}

// AngleTo returns the angle between v and o in radians, in [0, pi].
// Zero if either vector is zero.
func (v Vector2d) AngleTo(o Vector2d) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	c := v.Dot(o) / (v.Length() * o.Length())
	// rounding can push the cosine just outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// Equals compares componentwise within DefaultTolerance.
func (v Vector2d) Equals(o Vector2d) bool {
	return v.EqualsTol(o, DefaultTolerance)
}

func (v Vector2d) EqualsTol(o Vector2d, tolerance float64) bool {
	return ApproxEqualTol(v.X, o.X, tolerance) &&
		ApproxEqualTol(v.Y, o.Y, tolerance)
}

func (v Vector2d) Negated() Vector2d {
	return Vector2d{X: -v.X, Y: -v.Y}
}

func (v Vector2d) Add(o Vector2d) Vector2d {
	return Vector2d{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2d) Subtract(o Vector2d) Vector2d {
	return Vector2d{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2d) Scale(s float64) Vector2d {
	return Vector2d{X: v.X * s, Y: v.Y * s}
}

// Div divides componentwise. Scalars within DefaultTolerance of zero
// are rejected with ErrDivideByZero instead of passing through to
// inf/NaN.
func (v Vector2d) Div(s float64) (Vector2d, error) {
	if ApproxEqual(s, 0) {
		return Vector2dZero, fmt.Errorf("%s / %v: %w", v, s, ErrDivideByZero)
	}
	return Vector2d{X: v.X / s, Y: v.Y / s}, nil
}

// Hash folds the components, quantized to the DefaultTolerance grid,
// through FNV-1a. Vectors that are Equals and land in the same grid
// cell hash identically; values straddling a cell boundary within
// tolerance may not.
func (v Vector2d) Hash() uint64 {
	return hashComponents(v.X, v.Y)
}

func (v Vector2d) String() string {
	return fmt.Sprintf("(%v; %v)", v.X, v.Y)
}
