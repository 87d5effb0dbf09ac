package geometry

import "fmt"

// Segment is a straight-line segment whose endpoints are canonicalized
// so that P is lexicographically no greater than Q. This mirrors the
// teacher's `visibility2d.Segment` shape (a pair of endpoints plus
// derived attributes) but replaces its float64 lighting fields with the
// exact-integer attributes the coloring engine requires.
type Segment struct {
	P, Q Point
}

// MakeSegment builds a canonicalized Segment from two endpoints.
func MakeSegment(a, b Point) Segment {
	if a.Less(b) || a.Equal(b) {
		return Segment{P: a, Q: b}
	}
	return Segment{P: b, Q: a}
}

// Equal reports whether two segments have identical endpoints (after
// canonicalization).
func (s Segment) Equal(t Segment) bool {
	return s.P.Equal(t.P) && s.Q.Equal(t.Q)
}

// Slope returns the segment's slope as a real number, for comparison
// purposes only (the Angle heuristic's sort key). Vertical segments
// return +Inf, which sorts consistently with math.Inf(1).
func (s Segment) Slope() float64 {
	dx := float64(s.Q.X - s.P.X)
	dy := float64(s.Q.Y - s.P.Y)
	return dy / dx
}

// BoundingBox returns the segment's axis-aligned bounding box as
// (minX, minY, maxX, maxY).
func (s Segment) BoundingBox() (minX, minY, maxX, maxY int64) {
	minX, maxX = s.P.X, s.Q.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY = s.P.Y, s.Q.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.P, s.Q)
}

// orientation returns the sign of the cross product that determines the
// turn from (s.P, s.Q) to r: +1 clockwise, 0 collinear, -1 counter-
// clockwise. This is the exact-integer orientation predicate of
// spec.md §4.1, ported from `original_source/src/primitives.hpp`
// (`Segment::orientation`) and from the teacher's float64 analogue in
// `common/visibility2d/breakintersections/breakintersections.go`
// (`computeDirection`).
func orientation(p, q, r Point) int {
	d1 := q.Y - p.Y
	d2 := r.X - q.X
	d3 := q.X - p.X
	d4 := r.Y - q.Y
	val := d1*d2 - d3*d4
	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}

// Orientation exposes the orientation predicate of a point r relative
// to this segment's directed line (P -> Q).
func (s Segment) Orientation(r Point) int {
	return orientation(s.P, s.Q, r)
}

// Crosses reports whether s and t cross, per the predicate of
// spec.md §4.2. Two segments sharing only a common endpoint (no other
// overlap) do not cross; identical segments never cross each other by
// convention (same-color exclusion for a single segment is handled by
// index identity elsewhere, not by this predicate).
func (s Segment) Crosses(t Segment) bool {
	o1 := s.Orientation(t.P)
	o2 := s.Orientation(t.Q)
	o3 := t.Orientation(s.P)
	o4 := t.Orientation(s.Q)

	if o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return o1 != o2 && o3 != o4
	}

	// Collinearity is present somewhere among the four triples. Handle
	// the collinear cases by endpoint identity, per spec.md §4.2.
	if t.P != s.P && t.Q != s.Q && t.P != s.Q && t.Q != s.P {
		// Four pairwise-distinct endpoints: cross iff any endpoint of
		// one segment lies inside the bounding box of the other.
		return t.P.Inside(s.P, s.Q) || t.Q.Inside(s.P, s.Q) ||
			s.P.Inside(t.P, t.Q) || s.Q.Inside(t.P, t.Q)
	}

	if s.Equal(t) {
		return false
	}

	// Three points among the four endpoints, not all collinear: no
	// crossing beyond the shared endpoint.
	if o1 != 0 || o2 != 0 || o3 != 0 || o4 != 0 {
		return false
	}

	// Three points among the four endpoints, all collinear: exactly one
	// endpoint is shared; cross iff the non-shared endpoint of either
	// segment lies within the other's bounding box.
	switch {
	case t.P == s.P:
		return s.Q.Inside(t.P, t.Q) || t.Q.Inside(s.P, s.Q)
	case t.Q == s.Q:
		return s.P.Inside(t.P, t.Q) || t.P.Inside(s.P, s.Q)
	case t.P == s.Q:
		return s.P.Inside(t.P, t.Q) || t.Q.Inside(s.P, s.Q)
	default: // t.Q == s.P
		return s.Q.Inside(t.P, t.Q) || t.P.Inside(s.P, s.Q)
	}
}
