package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Utility Function Tests
// =============================================================================

func TestAABBOverlaps_Separated(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Separated on X axis (positive)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{2, 0}, Max: mgl64.Vec2{3, 1}},
		},
		{
			name:  "Separated on X axis (negative)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{-2, 0}, Max: mgl64.Vec2{-1, 1}},
		},
		{
			name:  "Separated on Y axis (positive)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{0, 2}, Max: mgl64.Vec2{1, 3}},
		},
		{
			name:  "Separated on Y axis (negative)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{0, -2}, Max: mgl64.Vec2{1, -1}},
		},
		{
			name:  "Separated diagonally",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{1.5, 1.5}, Max: mgl64.Vec2{2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should not overlap")
			}
			// Test symmetry
			if tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should not overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Overlapping(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Partial overlap",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 2}},
			aabb2: AABB{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{3, 3}},
		},
		{
			name:  "Contained",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}},
			aabb2: AABB{Min: mgl64.Vec2{4, 4}, Max: mgl64.Vec2{6, 6}},
		},
		{
			name:  "Touching edge",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{1, 0}, Max: mgl64.Vec2{2, 1}},
		},
		{
			name:  "Degenerate (point) inside",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{0.5, 0.5}, Max: mgl64.Vec2{0.5, 0.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should overlap")
			}
			if !tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should overlap (symmetry test)")
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	aabb := AABB{Min: mgl64.Vec2{-1, -1}, Max: mgl64.Vec2{1, 1}}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		expected bool
	}{
		{"center", mgl64.Vec2{0, 0}, true},
		{"on min corner", mgl64.Vec2{-1, -1}, true},
		{"on max edge", mgl64.Vec2{1, 0}, true},
		{"outside X", mgl64.Vec2{1.01, 0}, false},
		{"outside Y", mgl64.Vec2{0, -1.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := aabb.ContainsPoint(tt.point); result != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}
