package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is the collision shape: the ordered vertices of a convex polygon.
// Winding order is free. Convexity is not checked, a concave vertex list
// gives an unspecified answer rather than an error.
type Polygon []mgl64.Vec2

// AveragePoint returns the arithmetic mean of the vertices.
// It is only a heuristic for the first search direction, not the area centroid.
// It panics on an empty polygon.
func (p Polygon) AveragePoint() mgl64.Vec2 {
	if len(p) == 0 {
		panic("actor: AveragePoint of an empty polygon")
	}

	var sum mgl64.Vec2
	for _, v := range p {
		sum = sum.Add(v)
	}

	return sum.Mul(1.0 / float64(len(p)))
}

// IndexOfFurthestPoint returns the index of the vertex with the largest
// projection on direction. Ties go to the first vertex in order.
func (p Polygon) IndexOfFurthestPoint(direction mgl64.Vec2) int {
	maxProduct := direction.Dot(p[0])
	index := 0
	for i := 1; i < len(p); i++ {
		product := direction.Dot(p[i])
		if product > maxProduct {
			maxProduct = product
			index = i
		}
	}

	return index
}

// Support returns the vertex furthest along direction.
func (p Polygon) Support(direction mgl64.Vec2) mgl64.Vec2 {
	return p[p.IndexOfFurthestPoint(direction)]
}

// ComputeAABB returns the bounding box of the vertices.
func (p Polygon) ComputeAABB() AABB {
	if len(p) == 0 {
		return AABB{}
	}

	min := p[0]
	max := p[0]
	for _, v := range p[1:] {
		min[0] = math.Min(min[0], v[0])
		min[1] = math.Min(min[1], v[1])

		max[0] = math.Max(max[0], v[0])
		max[1] = math.Max(max[1], v[1])
	}

	return AABB{Min: min, Max: max}
}

// Transformed returns a copy of the polygon moved into world space.
func (p Polygon) Transformed(transform Transform) Polygon {
	world := make(Polygon, len(p))
	for i, v := range p {
		world[i] = transform.Apply(v)
	}

	return world
}
