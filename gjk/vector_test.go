package gjk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNegate(t *testing.T) {
	if v := Negate(mgl64.Vec2{3, -4}); v != (mgl64.Vec2{-3, 4}) {
		t.Errorf("Negate() = %v, want (-3, 4)", v)
	}
}

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		in, expected mgl64.Vec2
	}{
		{mgl64.Vec2{1, 0}, mgl64.Vec2{0, -1}},
		{mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}},
		{mgl64.Vec2{2, 3}, mgl64.Vec2{3, -2}},
	}

	for _, tt := range tests {
		result := Perpendicular(tt.in)
		if result != tt.expected {
			t.Errorf("Perpendicular(%v) = %v, want %v", tt.in, result, tt.expected)
		}
		if result.Dot(tt.in) != 0 {
			t.Errorf("Perpendicular(%v) is not orthogonal to its input", tt.in)
		}
	}
}

func TestTripleProduct(t *testing.T) {
	t.Run("normal of AB toward the origin", func(t *testing.T) {
		// A = (1, 1), B = (-1, 1)
		ab := mgl64.Vec2{-2, 0}
		ao := mgl64.Vec2{-1, -1}

		result := TripleProduct(ab, ao, ab)
		if result != (mgl64.Vec2{0, -4}) {
			t.Errorf("TripleProduct() = %v, want (0, -4)", result)
		}
	})

	t.Run("zero when the origin is on the line", func(t *testing.T) {
		ab := mgl64.Vec2{-2, 0}
		ao := mgl64.Vec2{-1, 0}

		if result := TripleProduct(ab, ao, ab); result.LenSqr() != 0 {
			t.Errorf("Expected zero vector, got %v", result)
		}
	})

	t.Run("expansion b(a.c) - a(b.c)", func(t *testing.T) {
		a := mgl64.Vec2{1, 2}
		b := mgl64.Vec2{3, -1}
		c := mgl64.Vec2{0.5, 4}

		expected := b.Mul(a.Dot(c)).Sub(a.Mul(b.Dot(c)))
		if result := TripleProduct(a, b, c); result != expected {
			t.Errorf("TripleProduct() = %v, want %v", result, expected)
		}
	})
}
