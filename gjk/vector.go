package gjk

import "github.com/go-gl/mathgl/mgl64"

// Negate returns -v.
func Negate(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.X(), -v.Y()}
}

// Perpendicular rotates v a quarter turn clockwise: (x, y) -> (y, -x).
func Perpendicular(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}

// TripleProduct expands the vector triple product a × (b × c) in the plane
// as b(a·c) - a(b·c).
//
// With a = c = AB and b = AO it yields the component of AO orthogonal to AB:
// the edge normal of AB pointing toward the origin.
func TripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	ac := a.Dot(c)
	bc := b.Dot(c)

	return mgl64.Vec2{
		b.X()*ac - a.X()*bc,
		b.Y()*ac - a.Y()*bc,
	}
}
