package coloring

import (
	"github.com/dhconnelly/rtreego"

	"github.com/shadoks-lab/planecolor/internal/geometry"
)

// IntersectionMap is the precomputed symmetric bit-packed adjacency
// over segment indices of spec.md §3/§4.3. It is immutable once built.
type IntersectionMap struct {
	n    int
	rows []bitrow
}

// N returns the number of segments the map was built over.
func (m *IntersectionMap) N() int {
	return m.n
}

// Crosses is a pure bit read: true iff segments i and j cross.
func (m *IntersectionMap) Crosses(i, j int) bool {
	if i == j {
		return false
	}
	return m.rows[i].get(j)
}

// Degree returns the number of segments crossing segment i.
func (m *IntersectionMap) Degree(i int) int {
	return m.rows[i].popcount()
}

func newIntersectionMap(n int) *IntersectionMap {
	m := &IntersectionMap{n: n, rows: make([]bitrow, n)}
	for i := range m.rows {
		m.rows[i] = newBitrow(n)
	}
	return m
}

func (m *IntersectionMap) markCrossing(i, j int) {
	m.rows[i].set(j)
	m.rows[j].set(i)
}

// segmentSpatial adapts a geometry.Segment to rtreego.Spatial so that
// candidate crossing pairs can be pruned by bounding-box overlap before
// the exact orientation predicate runs (spec.md §4.7 in SPEC_FULL.md).
// The teacher's collision subsystem uses the identical pattern
// (arenaserver/collision/types.go's MovementState.Bounds()).
type segmentSpatial struct {
	index int
	rect  *rtreego.Rect
}

func (s *segmentSpatial) Bounds() *rtreego.Rect {
	return s.rect
}

// boundingRect builds a padded float64 rtreego.Rect for a segment.
// Padding avoids degenerate zero-width/zero-height rects for axis
// aligned segments, mirroring the teacher's epsilon padding of point
// bounding boxes (arenaserver/updatestate.go).
func boundingRect(s geometry.Segment) *rtreego.Rect {
	const eps = 0.5
	minX, minY, maxX, maxY := s.BoundingBox()
	origin := []float64{float64(minX) - eps, float64(minY) - eps}
	lengths := []float64{float64(maxX-minX) + 2*eps, float64(maxY-minY) + 2*eps}
	rect, err := rtreego.NewRect(origin, lengths)
	if err != nil {
		// Cannot happen: lengths are always strictly positive because
		// of the epsilon padding above.
		panic(err)
	}
	return rect
}

// BuildIntersectionMap constructs the IntersectionMap for a geometric
// segment set (spec.md §4.3, non-DIMACS case), evaluating the exact
// crossing predicate only for pairs whose bounding boxes overlap.
func BuildIntersectionMap(segs *geometry.SegmentSet) *IntersectionMap {
	n := segs.Len()
	m := newIntersectionMap(n)
	if n < 2 {
		return m
	}

	items := make([]rtreego.Spatial, n)
	spatials := make([]*segmentSpatial, n)
	for i := 0; i < n; i++ {
		sp := &segmentSpatial{index: i, rect: boundingRect(segs.At(i))}
		spatials[i] = sp
		items[i] = sp
	}
	tree := rtreego.NewTree(2, 4, 16, items...)

	for i := 0; i < n; i++ {
		matches := tree.SearchIntersect(spatials[i].rect, func(results []rtreego.Spatial, object rtreego.Spatial) (refuse, abort bool) {
			return object.(*segmentSpatial).index <= i, false
		})
		for _, match := range matches {
			j := match.(*segmentSpatial).index
			if segs.At(i).Crosses(segs.At(j)) {
				m.markCrossing(i, j)
			}
		}
	}
	return m
}

// BuildIntersectionMapFromPairs constructs the IntersectionMap directly
// from a DIMACS-style adjacency list of 0-based (i, j) pairs known to
// cross, per spec.md §4.3 ("the matrix may be loaded from an external
// adjacency list").
func BuildIntersectionMapFromPairs(n int, pairs [][2]int) *IntersectionMap {
	m := newIntersectionMap(n)
	for _, pr := range pairs {
		m.markCrossing(pr[0], pr[1])
	}
	return m
}
