package coloring

import "sort"

// BadHeuristic keeps a "good"/"bad" partition of segments across
// successive calls, per spec.md §4.4's Bad row: the first call treats
// every segment as good; after the pass every segment that landed in
// the last class is demoted to bad for the next call, while everyone
// else is promoted back to good. `original_source/src/bad.hpp` builds
// its work list as good-ascending followed by bad-ascending, then
// inherits Greedy's back()/pop_back() consumption, so segments
// actually reach `first_available` bad-descending first, then
// good-descending; this port builds the same good++bad work list and
// walks it back-to-front to match. The struct is the persistent state
// that would otherwise live as instance fields on the source's Bad
// object.
type BadHeuristic struct {
	good []int
	bad  []int
	init bool
}

func (b *BadHeuristic) sortBySlope(state *CoreState, indices []int) {
	sort.SliceStable(indices, func(a, c int) bool {
		i, j := indices[a], indices[c]
		si, sj := state.Segments.At(i).Slope(), state.Segments.At(j).Slope()
		if si != sj {
			return si < sj
		}
		return i < j
	})
}

func (b *BadHeuristic) Color(state *CoreState) *Coloring {
	n := state.N()
	if !b.init {
		b.good = make([]int, n)
		for i := range b.good {
			b.good[i] = i
		}
		b.bad = nil
		b.init = true
	}

	good := append([]int{}, b.good...)
	bad := append([]int{}, b.bad...)
	b.sortBySlope(state, good)
	b.sortBySlope(state, bad)
	uncolored := append(good, bad...)

	state.Coloring = NewColoring(n)
	for k := len(uncolored) - 1; k >= 0; k-- {
		state.Coloring.PlaceFirstAvailable(state.Intersections, uncolored[k])
	}

	classes := state.Coloring.Classes()
	lastIdx := len(classes) - 1
	var newGood, newBad []int
	for k, cls := range classes {
		if k == lastIdx {
			newBad = append(newBad, cls...)
		} else {
			newGood = append(newGood, cls...)
		}
	}
	b.good, b.bad = newGood, newBad
	return state.Coloring
}
