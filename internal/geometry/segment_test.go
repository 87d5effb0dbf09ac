package geometry

import "testing"

func seg(x1, y1, x2, y2 int64) Segment {
	return MakeSegment(MakePoint(x1, y1), MakePoint(x2, y2))
}

func TestCrossesSimpleX(t *testing.T) {
	s := seg(0, 0, 10, 0)
	u := seg(5, -5, 5, 5)
	if !s.Crosses(u) {
		panic("expected the two segments to cross")
	}
	if !u.Crosses(s) {
		panic("Crosses should be symmetric")
	}
}

func TestDisjointSegmentsDoNotCross(t *testing.T) {
	s := seg(0, 0, 2, 0)
	u := seg(3, 0, 5, 0)
	if s.Crosses(u) {
		panic("collinear, non-overlapping segments must not cross")
	}
}

func TestSharedEndpointOnlyDoesNotCross(t *testing.T) {
	a := seg(0, 0, 1, 1)
	b := seg(1, 1, 2, 0)
	c := seg(0, 0, 2, 0)
	if a.Crosses(b) || b.Crosses(c) || a.Crosses(c) {
		panic("segments sharing only an endpoint must not cross")
	}
}

func TestFanAtCommonPointDoesNotCross(t *testing.T) {
	apex := MakePoint(0, 0)
	rays := []Point{
		MakePoint(10, 0),
		MakePoint(0, 10),
		MakePoint(-10, 0),
		MakePoint(0, -10),
		MakePoint(7, 7),
	}
	segs := make([]Segment, len(rays))
	for i, p := range rays {
		segs[i] = MakeSegment(apex, p)
	}
	for i := range segs {
		for j := range segs {
			if i == j {
				continue
			}
			if segs[i].Crosses(segs[j]) {
				panic("fan segments only share the apex; they must not cross")
			}
		}
	}
}

func TestDuplicateSegmentsDoNotCross(t *testing.T) {
	a := seg(0, 0, 4, 4)
	b := seg(0, 0, 4, 4)
	if a.Crosses(b) {
		panic("identical segments must not report crossing")
	}
}

func TestTriangleWithCrossingDiagonal(t *testing.T) {
	// Triangle (0,0)-(6,0)-(3,6); a vertical line through the
	// interior crosses two of its three edges.
	e1 := seg(0, 0, 6, 0)
	e2 := seg(6, 0, 3, 6)
	e3 := seg(3, 6, 0, 0)
	diag := seg(2, -2, 2, 8)

	if e1.Crosses(e2) || e2.Crosses(e3) || e3.Crosses(e1) {
		panic("triangle edges share only endpoints and must not cross each other")
	}
	if !diag.Crosses(e1) || !diag.Crosses(e3) {
		panic("expected the diagonal to cross two triangle edges")
	}
}

func TestOrientationSign(t *testing.T) {
	p, q := MakePoint(0, 0), MakePoint(10, 0)
	left := MakePoint(5, 5)
	right := MakePoint(5, -5)
	on := MakePoint(5, 0)

	s := MakeSegment(p, q)
	above := s.Orientation(left)
	below := s.Orientation(right)
	if above == 0 || below == 0 || above == below {
		panic("expected opposite nonzero orientations on either side of the line")
	}
	if s.Orientation(on) != 0 {
		panic("expected collinear orientation")
	}
}
