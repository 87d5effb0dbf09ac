package geometry

import "sort"

// ConvexHull computes the convex hull of a point multiset (duplicates
// are tolerated; collinear boundary points are discarded), following
// the angular-sort-then-monotone-stack scan of
// `original_source/src/dsathull.hpp` (`convex_hull` / `convex_hull_sorted`
// / `angular_sort`). Ported to Go with exact int64 arithmetic throughout,
// matching spec.md §4.4's requirement to avoid floating point in the
// DSatHull area comparisons.
func ConvexHull(points []Point) []Point {
	if len(points) <= 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	pivot := pts[len(pts)-1]
	rest := pts[:len(pts)-1]

	sort.Slice(rest, func(i, j int) bool {
		o := orientation(pivot, rest[i], rest[j])
		if o == 0 {
			return pivot.l2sqTieBreak(rest[i]) < pivot.l2sqTieBreak(rest[j])
		}
		return o == 1
	})

	sorted := append(append([]Point{}, rest...), pivot)

	hull := []Point{sorted[len(sorted)-1]}
	for i := 0; i < len(sorted)-1; i++ {
		for len(hull) >= 2 && orientation(sorted[i], hull[len(hull)-1], hull[len(hull)-2]) >= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sorted[i])
	}

	return hull
}

// PolygonArea2 returns twice the signed area of a polygon given in
// hull order, as an exact integer (spec.md §4.4: "twice the signed
// area (integer) to avoid floating point"). Ported from
// `original_source/src/dsathull.hpp`'s `polyArea2`.
func PolygonArea2(poly []Point) int64 {
	if len(poly) == 0 {
		return 0
	}
	last := poly[len(poly)-1]
	a := (last.X + poly[0].X) * (last.Y - poly[0].Y)
	for i := 1; i < len(poly); i++ {
		a += (poly[i-1].X + poly[i].X) * (poly[i-1].Y - poly[i].Y)
	}
	return a
}
