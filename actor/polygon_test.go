package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Helper functions
func vec2Equal(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance
}

var unitSquare = Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestPolygonAveragePoint(t *testing.T) {
	tests := []struct {
		name     string
		polygon  Polygon
		expected mgl64.Vec2
	}{
		{"single vertex", Polygon{{3, -2}}, mgl64.Vec2{3, -2}},
		{"unit square", unitSquare, mgl64.Vec2{0.5, 0.5}},
		{"triangle", Polygon{{4, 11}, {4, 5}, {9, 9}}, mgl64.Vec2{17.0 / 3.0, 25.0 / 3.0}},
		// mean of the vertices, not the area centroid
		{"duplicated vertex", Polygon{{0, 0}, {0, 0}, {3, 0}}, mgl64.Vec2{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.polygon.AveragePoint()
			if !vec2Equal(result, tt.expected, 1e-12) {
				t.Errorf("AveragePoint() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPolygonAveragePoint_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected AveragePoint on an empty polygon to panic")
		}
	}()

	Polygon{}.AveragePoint()
}

func TestPolygonIndexOfFurthestPoint(t *testing.T) {
	tests := []struct {
		name      string
		direction mgl64.Vec2
		expected  int
	}{
		{"+X ties between (1,0) and (1,1), first wins", mgl64.Vec2{1, 0}, 1},
		{"+Y ties between (1,1) and (0,1), first wins", mgl64.Vec2{0, 1}, 2},
		{"-X ties between (0,0) and (0,1), first wins", mgl64.Vec2{-1, 0}, 0},
		{"diagonal", mgl64.Vec2{1, 1}, 2},
		{"anti-diagonal", mgl64.Vec2{-1, 1}, 3},
		{"zero direction keeps the first vertex", mgl64.Vec2{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := unitSquare.IndexOfFurthestPoint(tt.direction)
			if result != tt.expected {
				t.Errorf("IndexOfFurthestPoint(%v) = %d, want %d", tt.direction, result, tt.expected)
			}
		})
	}
}

func TestPolygonSupport(t *testing.T) {
	quad := Polygon{{5, 7}, {7, 3}, {10, 2}, {12, 7}}

	if s := quad.Support(mgl64.Vec2{1, 0}); s != (mgl64.Vec2{12, 7}) {
		t.Errorf("Support(+X) = %v, want (12, 7)", s)
	}
	if s := quad.Support(mgl64.Vec2{0, -1}); s != (mgl64.Vec2{10, 2}) {
		t.Errorf("Support(-Y) = %v, want (10, 2)", s)
	}
	// (5,7) and (12,7) tie on +Y
	if s := quad.Support(mgl64.Vec2{0, 1}); s != (mgl64.Vec2{5, 7}) {
		t.Errorf("Support(+Y) = %v, want (5, 7)", s)
	}
}

func TestPolygonComputeAABB(t *testing.T) {
	quad := Polygon{{5, 7}, {7, 3}, {10, 2}, {12, 7}}
	aabb := quad.ComputeAABB()

	if aabb.Min != (mgl64.Vec2{5, 2}) || aabb.Max != (mgl64.Vec2{12, 7}) {
		t.Errorf("ComputeAABB() = %v, want min (5, 2) max (12, 7)", aabb)
	}

	if empty := (Polygon{}).ComputeAABB(); empty != (AABB{}) {
		t.Errorf("Expected zero AABB for an empty polygon, got %v", empty)
	}
}

func TestPolygonTransformed(t *testing.T) {
	t.Run("translation only", func(t *testing.T) {
		world := unitSquare.Transformed(Transform{Position: mgl64.Vec2{2, 3}})
		expected := Polygon{{2, 3}, {3, 3}, {3, 4}, {2, 4}}
		for i := range expected {
			if !vec2Equal(world[i], expected[i], 1e-12) {
				t.Errorf("vertex %d = %v, want %v", i, world[i], expected[i])
			}
		}
	})

	t.Run("quarter turn then translation", func(t *testing.T) {
		world := unitSquare.Transformed(Transform{Position: mgl64.Vec2{1, 0}, Rotation: math.Pi / 2})
		expected := Polygon{{1, 0}, {1, 1}, {0, 1}, {0, 0}}
		for i := range expected {
			if !vec2Equal(world[i], expected[i], 1e-12) {
				t.Errorf("vertex %d = %v, want %v", i, world[i], expected[i])
			}
		}
	})

	t.Run("source is left untouched", func(t *testing.T) {
		local := Polygon{{1, 1}}
		local.Transformed(Transform{Position: mgl64.Vec2{5, 5}})
		if local[0] != (mgl64.Vec2{1, 1}) {
			t.Errorf("Transformed modified its receiver: %v", local[0])
		}
	})
}
