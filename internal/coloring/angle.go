package coloring

import "sort"

// AngleHeuristic orders segments by ascending slope (ties by index),
// rotates that order to a uniform-random start, then places each in
// the first admissible class, per spec.md §4.4's Angle row.
// `original_source/src/angle.hpp` builds its work list ascending from
// the rotation offset but consumes it from the back
// (`uncolored.back()`/`pop_back()`, inherited from Greedy), so
// segments actually reach `first_available` walking *backward* from
// just before the offset, wrapping around; this port builds the same
// work list the source does and then walks it back-to-front to match.
type AngleHeuristic struct{}

func (AngleHeuristic) Color(state *CoreState) *Coloring {
	n := state.N()
	state.Coloring = NewColoring(n)
	if n == 0 {
		return state.Coloring
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slopes := make([]float64, n)
	for i := 0; i < n; i++ {
		slopes[i] = state.Segments.At(i).Slope()
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if slopes[i] != slopes[j] {
			return slopes[i] < slopes[j]
		}
		return i < j
	})

	offset := state.IntRand.Intn(n)
	uncolored := make([]int, n)
	for si := 0; si < n; si++ {
		uncolored[si] = order[(si+offset)%n]
	}
	for k := n - 1; k >= 0; k-- {
		state.Coloring.PlaceFirstAvailable(state.Intersections, uncolored[k])
	}
	return state.Coloring
}
