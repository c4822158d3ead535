package geometry

import "fmt"

// Line3d is a point and a direction. Pure data: Direction is not
// required to be non-zero or normalized.
type Line3d struct {
	PointOnLine Vector3d
	Direction   Vector3d
}

func NewLine3d(pointOnLine, direction Vector3d) Line3d {
	return Line3d{PointOnLine: pointOnLine, Direction: direction}
}

func (l Line3d) String() string {
	return fmt.Sprintf("%s + t%s", l.PointOnLine, l.Direction)
}
