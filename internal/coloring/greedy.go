package coloring

// Heuristic is the "plain value implementing a Color capability" of
// spec.md §9: given a CoreState with an empty coloring, it fills
// state.Coloring and returns it.
type Heuristic interface {
	Color(state *CoreState) *Coloring
}

// GreedyHeuristic places each segment in the first admissible class,
// per spec.md §4.4's Greedy row. `original_source/src/greedy.hpp`
// builds its work list in reverse index order but consumes it from the
// back (`uncolored.back()`/`pop_back()`), so the segments actually
// reach `first_available` in plain ascending index order; this port
// visits them ascending directly rather than reproducing the
// build-then-pop-from-back indirection. It is stateless and its
// traversal order is fixed, so the CLI forces repetitions=1 for it
// (SPEC_FULL.md §4, ported from `main.cpp`).
type GreedyHeuristic struct{}

func (GreedyHeuristic) Color(state *CoreState) *Coloring {
	state.Coloring = NewColoring(state.N())
	for i := 0; i < state.N(); i++ {
		state.Coloring.PlaceFirstAvailable(state.Intersections, i)
	}
	return state.Coloring
}
