// Package geometry implements the exact-integer plane primitives that
// the coloring engine builds on: points, segments, orientation and the
// segment crossing predicate. All arithmetic is done in int64 and is
// exact for coordinates that fit in 31 bits, so that intermediate
// products fit in 62 bits.
package geometry

import "fmt"

// Point is an integer point in the plane.
type Point struct {
	X, Y int64
}

// MakePoint builds a Point from raw coordinates.
func MakePoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Less orders points lexicographically by (x, then y), the canonical
// order used to normalize a Segment's endpoints.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Inside reports whether p lies in the closed axis-aligned bounding box
// spanned by a and b.
func (p Point) Inside(a, b Point) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// l2sqTieBreak returns the squared Euclidean distance between p and q,
// used only as an angular-sort tie-break (DSatHull's convex hull scan).
// The original C++ source squares (x-p.x) twice instead of using the
// y-difference for the second term; that is a bug (spec.md §9), and this
// port reproduces the *intent* (a true squared L2 distance) rather than
// the typo.
func (p Point) l2sqTieBreak(q Point) int64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
