package coloring

import (
	"sort"

	"github.com/shadoks-lab/planecolor/internal/geometry"
)

// dsaturStrategy pluggably decides which admissible class a
// DSatur-ordered segment joins, and is notified once the placement is
// committed. DSatHull is "a parameterization of DSatur over a
// color-choice function... model it as a strategy value, not a
// subclass" (spec.md §9).
type dsaturStrategy interface {
	choose(state *CoreState, i int, admissible []int) int // -1 => open a new class
	placed(state *CoreState, classIdx, i int)
}

// firstAdmissibleStrategy is DSatur's own color rule: the first
// admissible class, or a new one (spec.md §4.4's DSatur row).
type firstAdmissibleStrategy struct{}

func (firstAdmissibleStrategy) choose(state *CoreState, i int, admissible []int) int {
	if len(admissible) == 0 {
		return -1
	}
	return admissible[0]
}

func (firstAdmissibleStrategy) placed(state *CoreState, classIdx, i int) {}

// dsaturColor implements the shared DSatur segment-selection order:
// repeatedly pick the uncolored segment with maximum saturation,
// ties broken by higher crossing degree, and among the tied
// candidates pick uniformly at random among the top <= 8 (spec.md
// §4.4). The class each picked segment joins is delegated to strategy.
func dsaturColor(state *CoreState, strategy dsaturStrategy) *Coloring {
	n := state.N()
	state.Coloring = NewColoring(n)
	if n == 0 {
		return state.Coloring
	}

	colored := make([]bool, n)
	dsat := make([]int, n)
	neighborColors := make([]map[int]bool, n)
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		neighborColors[i] = make(map[int]bool)
		degree[i] = state.Intersections.Degree(i)
	}

	for remaining := n; remaining > 0; remaining-- {
		bestDsat := -1
		var candidates []int
		for i := 0; i < n; i++ {
			if colored[i] {
				continue
			}
			switch {
			case dsat[i] > bestDsat:
				bestDsat = dsat[i]
				candidates = []int{i}
			case dsat[i] == bestDsat:
				candidates = append(candidates, i)
			}
		}
		sort.Slice(candidates, func(a, b int) bool {
			i, j := candidates[a], candidates[b]
			if degree[i] != degree[j] {
				return degree[i] > degree[j]
			}
			return i < j
		})
		top := candidates
		if len(top) > 8 {
			top = top[:8]
		}
		pick := top[state.IntRand.Intn(len(top))]
		colored[pick] = true

		var admissible []int
		for c := 0; c < state.Coloring.NumColors(); c++ {
			if state.Coloring.Admits(state.Intersections, c, pick) {
				admissible = append(admissible, c)
			}
		}
		chosen := strategy.choose(state, pick, admissible)
		if chosen < 0 {
			chosen = state.Coloring.NewClass()
		}
		state.Coloring.Place(chosen, pick)
		strategy.placed(state, chosen, pick)

		for u := 0; u < n; u++ {
			if colored[u] {
				continue
			}
			if state.Intersections.Crosses(pick, u) && !neighborColors[u][chosen] {
				neighborColors[u][chosen] = true
				dsat[u]++
			}
		}
	}
	return state.Coloring
}

// DSaturHeuristic is spec.md §4.4's DSatur row: DSatur order, first
// admissible class.
type DSaturHeuristic struct{}

func (DSaturHeuristic) Color(state *CoreState) *Coloring {
	return dsaturColor(state, firstAdmissibleStrategy{})
}

// dsatHullStrategy is DSatHull's color rule: among admissible classes,
// the one whose endpoint convex hull grows least in (twice-signed)
// area when the new segment's endpoints are added; a new class starts
// its hull at {p, q} (spec.md §4.4's DSatHull row). Only hull vertices
// are retained between insertions — interior points can never rejoin a
// hull as more points are added, so recomputing from `hull ∪ {p, q}`
// on every insertion is equivalent to recomputing from the full
// endpoint multiset every time, per spec.md §4.4's recomputation rule.
type dsatHullStrategy struct {
	hulls map[int][]geometry.Point
}

func newDSatHullStrategy() *dsatHullStrategy {
	return &dsatHullStrategy{hulls: make(map[int][]geometry.Point)}
}

func (d *dsatHullStrategy) choose(state *CoreState, i int, admissible []int) int {
	if len(admissible) == 0 {
		return -1
	}
	seg := state.Segments.At(i)
	best := admissible[0]
	var bestDiff int64
	have := false
	for _, c := range admissible {
		old := d.hulls[c]
		oldArea := geometry.PolygonArea2(old)
		candidate := append(append([]geometry.Point{}, old...), seg.P, seg.Q)
		diff := geometry.PolygonArea2(geometry.ConvexHull(candidate)) - oldArea
		if !have || diff < bestDiff {
			have, bestDiff, best = true, diff, c
		}
	}
	return best
}

func (d *dsatHullStrategy) placed(state *CoreState, classIdx, i int) {
	seg := state.Segments.At(i)
	old := d.hulls[classIdx]
	d.hulls[classIdx] = geometry.ConvexHull(append(append([]geometry.Point{}, old...), seg.P, seg.Q))
}

// DSatHullHeuristic is spec.md §4.4's DSatHull row.
type DSatHullHeuristic struct{}

func (DSatHullHeuristic) Color(state *CoreState) *Coloring {
	return dsaturColor(state, newDSatHullStrategy())
}
