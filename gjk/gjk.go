// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for 2D collision detection.
//
// GJK detects whether two convex polygons overlap by testing if their Minkowski difference
// contains the origin. The algorithm builds a simplex incrementally, converging toward
// the origin in typically 2-6 iterations.
//
// Only a boolean verdict is produced: no penetration depth, normal or contact points.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Casey Muratori: "Implementing GJK" (2006)
package gjk

import (
	"github.com/akmonengine/gjk2d/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

const (
	// MinMaxIterations is the smallest default iteration ceiling.
	MinMaxIterations = 32

	// IterationsPerVertex scales the default ceiling with the combined vertex count.
	// Each support point is a vertex of the Minkowski difference, so a convex
	// input converges well before that.
	IterationsPerVertex = 4
)

var (
	// ErrEmptyShape is returned when one of the polygons has no vertex.
	ErrEmptyShape = errors.New("gjk: empty shape")

	// ErrMaxIterations is returned when the iteration ceiling is reached without a verdict.
	// It signals non-convex input, NaN coordinates or numerical trouble.
	ErrMaxIterations = errors.New("gjk: iteration limit reached")
)

// Config tunes GJK. The zero value matches the reference thresholds with
// a ceiling of max(MinMaxIterations, IterationsPerVertex * vertex count).
type Config struct {
	// MaxIterations caps the main loop. Zero or negative selects the default ceiling.
	MaxIterations int

	// Tolerance, when positive, treats a search direction whose squared length
	// is <= Tolerance² as zero. Zero keeps the exact == 0 checks.
	// Separation and containment decisions are always exact.
	Tolerance float64
}

func (c Config) maxIterations(a, b actor.Polygon) int {
	if c.MaxIterations > 0 {
		return c.MaxIterations
	}

	return max(MinMaxIterations, IterationsPerVertex*(len(a)+len(b)))
}

func (c Config) degenerate(direction mgl64.Vec2) bool {
	if c.Tolerance > 0 {
		return direction.LenSqr() <= c.Tolerance*c.Tolerance
	}

	return direction.LenSqr() == 0
}

// Result is the verdict of one GJK run.
type Result struct {
	Collision bool
	// Iterations counts the support points fetched after the initial one
	Iterations int
	// Simplex is the last simplex, for diagnostics
	Simplex Simplex
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// Returns:
//
//	Support point: furthestPoint(A, direction) - furthestPoint(B, -direction)
func MinkowskiSupport(a, b actor.Polygon, direction mgl64.Vec2) mgl64.Vec2 {
	supportA := a.Support(direction)
	supportB := b.Support(Negate(direction))
	return supportA.Sub(supportB)
}

// Intersects reports whether the convex polygons a and b overlap, with the default Config.
// Any error from GJK (empty shape, iteration limit) reads as no overlap.
func Intersects(a, b actor.Polygon) bool {
	result, err := GJK(a, b, Config{})
	return err == nil && result.Collision
}

// GJK performs collision detection between two convex polygons.
//
// Algorithm overview:
//  1. Start with the direction between the vertex averages of A and B
//  2. Get first support point in Minkowski difference
//  3. Iteratively refine a segment/triangle simplex toward the origin
//  4. If a triangle encloses the origin → collision
//  5. If a support point does not pass the origin → no collision
//
// Shapes touching on an edge or a vertex are reported as not colliding:
// the early exit uses <= 0 while the enclosing test uses a strict < 0.
//
// Returns ErrEmptyShape if a polygon has no vertex, and ErrMaxIterations (with
// the partial result) if the ceiling from config is reached.
func GJK(a, b actor.Polygon, config Config) (Result, error) {
	var result Result
	if len(a) == 0 || len(b) == 0 {
		return result, errors.Wrapf(ErrEmptyShape, "%d and %d vertices", len(a), len(b))
	}
	simplex := &result.Simplex

	// Initial direction from the average point of B to the one of A
	direction := a.AveragePoint().Sub(b.AveragePoint())
	if config.degenerate(direction) {
		direction = mgl64.Vec2{1, 0}
	}

	simplex.Push(MinkowskiSupport(a, b, direction))
	if simplex.Last().Dot(direction) <= 0 {
		return result, nil
	}

	// New direction towards the origin from this first point
	direction = Negate(simplex.Last())

	maxIterations := config.maxIterations(a, b)
	for result.Iterations < maxIterations {
		result.Iterations++

		newPoint := MinkowskiSupport(a, b, direction)

		// The new point does not pass the origin along the direction:
		// the direction is a separating axis.
		if newPoint.Dot(direction) <= 0 {
			return result, nil
		}

		simplex.Push(newPoint)
		if containsOrigin(simplex, &direction, config) {
			result.Collision = true
			return result, nil
		}
	}

	return result, errors.Wrapf(ErrMaxIterations, "%d iterations over %d and %d vertices",
		result.Iterations, len(a), len(b))
}

// containsOrigin tests if the simplex encloses the origin and otherwise
// reduces it and updates the search direction.
func containsOrigin(simplex *Simplex, direction *mgl64.Vec2, config Config) bool {
	switch simplex.Count {
	case 2:
		segment(simplex, direction, config)
		return false
	case 3:
		return triangle(simplex, direction)
	}
	return false
}

// segment handles the 2 point simplex (A newest, B oldest): the new direction
// is the normal of AB on the side of the origin.
func segment(simplex *Simplex, direction *mgl64.Vec2, config Config) {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := Negate(a)

	*direction = TripleProduct(ab, ao, ab)
	// The origin lies on the line AB, any normal will do
	if config.degenerate(*direction) {
		*direction = Perpendicular(ab)
	}
}

// triangle handles the 3 point simplex (A newest, B, C oldest).
//
// Tests on which side of the edges AC and AB the origin lies:
//   - outside AC: keep the segment CA, search along its normal
//   - outside AB: keep the segment BA, search along its normal
//   - inside both: the triangle encloses the origin → collision
//
// The edge BC needs no test, the origin was on A's side of it when A was found.
func triangle(simplex *Simplex, direction *mgl64.Vec2) bool {
	a := simplex.Points[2] // Most recent point
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := Negate(a)

	// Normal to AC, away from B
	acPerp := TripleProduct(ab, ac, ac)
	if acPerp.Dot(ao) >= 0 {
		simplex.Discard(1)
		*direction = acPerp
		return false
	}

	// Normal to AB, away from C
	abPerp := TripleProduct(ac, ab, ab)
	if abPerp.Dot(ao) < 0 {
		return true
	}

	simplex.Discard(0)
	*direction = abPerp
	return false
}
