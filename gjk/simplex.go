package gjk

import "github.com/go-gl/mathgl/mgl64"

// Simplex is a stack of up to 3 points in the Minkowski difference space,
// oldest first.
// Size progression: 1 point → 2 points (segment) → 3 points (triangle),
// then back to a segment each time the triangle does not enclose the origin.
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

// Push appends the newest point. Pushing on a full simplex is a bug in the
// caller and panics.
func (s *Simplex) Push(point mgl64.Vec2) {
	if s.Count == len(s.Points) {
		panic("gjk: push on a full simplex")
	}
	s.Points[s.Count] = point
	s.Count++
}

// Last returns the newest point.
func (s *Simplex) Last() mgl64.Vec2 {
	return s.Points[s.Count-1]
}

// Discard removes the point at index i, keeping the others in order.
func (s *Simplex) Discard(i int) {
	copy(s.Points[i:s.Count], s.Points[i+1:s.Count])
	s.Count--
}

// Slice returns the held points, oldest first.
func (s *Simplex) Slice() []mgl64.Vec2 {
	return s.Points[:s.Count]
}
