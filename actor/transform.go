package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places a shape in the plane: a rotation (radians, counterclockwise)
// around the local origin followed by a translation.
type Transform struct {
	Position mgl64.Vec2
	Rotation float64
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec2{0, 0},
		Rotation: 0,
	}
}

// Apply maps a local point to world space.
func (t Transform) Apply(point mgl64.Vec2) mgl64.Vec2 {
	if t.Rotation == 0 {
		return point.Add(t.Position)
	}

	return mgl64.Rotate2D(t.Rotation).Mul2x1(point).Add(t.Position)
}
