package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func TestNewTransform(t *testing.T) {
	transform := NewTransform()
	p := mgl64.Vec2{3, 4}

	if result := transform.Apply(p); result != p {
		t.Errorf("Identity transform moved %v to %v", p, result)
	}
}

func TestTransformApply(t *testing.T) {
	transform := Transform{Position: mgl64.Vec2{10, 0}, Rotation: math.Pi}
	result := transform.Apply(mgl64.Vec2{1, 0})

	if !vec2Equal(result, mgl64.Vec2{9, 0}, 1e-12) {
		t.Errorf("Apply() = %v, want (9, 0)", result)
	}
}

func TestNewBody(t *testing.T) {
	body := NewBody(Transform{Position: mgl64.Vec2{2, 2}}, unitSquare, BodyTypeDynamic)

	if body.ID == uuid.Nil {
		t.Error("Expected NewBody to assign an ID")
	}

	world := body.WorldVertices()
	if len(world) != len(unitSquare) {
		t.Fatalf("Expected %d world vertices, got %d", len(unitSquare), len(world))
	}
	if world[2] != (mgl64.Vec2{3, 3}) {
		t.Errorf("Expected world vertex (3, 3), got %v", world[2])
	}

	aabb := body.AABB()
	if aabb.Min != (mgl64.Vec2{2, 2}) || aabb.Max != (mgl64.Vec2{3, 3}) {
		t.Errorf("Unexpected AABB %v", aabb)
	}
}

func TestBodyUpdate(t *testing.T) {
	body := NewBody(NewTransform(), unitSquare, BodyTypeDynamic)

	body.Transform.Position = mgl64.Vec2{-5, 0}
	// world geometry is stale until Update
	if body.AABB().Min != (mgl64.Vec2{0, 0}) {
		t.Errorf("Expected AABB to stay at the origin before Update, got %v", body.AABB())
	}

	body.Update()
	if body.AABB().Min != (mgl64.Vec2{-5, 0}) || body.AABB().Max != (mgl64.Vec2{-4, 1}) {
		t.Errorf("Unexpected AABB after Update: %v", body.AABB())
	}
}
