package actor

import (
	"github.com/google/uuid"
)

// BodyType represents the type of body
type BodyType int

const (
	// BodyTypeDynamic bodies are tested against every other body
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are never tested against other static bodies
	// (e.g., level geometry, walls)
	BodyTypeStatic
)

// Body is a polygon placed in the world.
type Body struct {
	ID   uuid.UUID
	Name string

	Transform Transform
	BodyType  BodyType
	// IsTrigger bodies report trigger events instead of overlap events
	IsTrigger bool

	// Shape in local space
	Shape Polygon

	world Polygon
	aabb  AABB
}

// NewBody creates a body and computes its world-space geometry
func NewBody(transform Transform, shape Polygon, bodyType BodyType) *Body {
	body := &Body{
		ID:        uuid.New(),
		Transform: transform,
		BodyType:  bodyType,
		Shape:     shape,
	}
	body.Update()

	return body
}

// Update recomputes the world vertices and the AABB from the transform.
// Call it after moving the body.
func (b *Body) Update() {
	b.world = b.Shape.Transformed(b.Transform)
	b.aabb = b.world.ComputeAABB()
}

// WorldVertices returns the vertices in world space, as of the last Update
func (b *Body) WorldVertices() Polygon {
	return b.world
}

func (b *Body) AABB() AABB {
	return b.aabb
}
