package geometry

// DefaultTolerance is the absolute difference two float64 values may
// have and still be considered equal by this package.
const DefaultTolerance = 1e-5

var (
	Vector2dZero  = Vector2d{}
	Vector2dXAxis = Vector2d{X: 1}
	Vector2dYAxis = Vector2d{Y: 1}

	Vector3dZero  = Vector3d{}
	Vector3dXAxis = Vector3d{X: 1}
	Vector3dYAxis = Vector3d{Y: 1}
	Vector3dZAxis = Vector3d{Z: 1}
)
