package geometry

import "errors"

// ErrDivideByZero is returned when a vector is divided by a scalar
// within DefaultTolerance of zero. It is the only error this package
// produces.
var ErrDivideByZero = errors.New("geometry: divide by zero scalar")
