package geometry

import "fmt"

// Line2d is a point and a direction. Pure data: Direction is not
// required to be non-zero or normalized.
type Line2d struct {
	PointOnLine Vector2d
	Direction   Vector2d
}

func NewLine2d(pointOnLine, direction Vector2d) Line2d {
	return Line2d{PointOnLine: pointOnLine, Direction: direction}
}

func (l Line2d) String() string {
	return fmt.Sprintf("%s + t%s", l.PointOnLine, l.Direction)
}
