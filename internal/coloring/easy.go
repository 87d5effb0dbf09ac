package coloring

import "github.com/shadoks-lab/planecolor/common/utils"

// EasyList is the ordered list of segments removed by the degree-
// peeling pre-pass (spec.md §3); it is populated by RemoveEasySegs and
// drained by AddEasySegs.
type EasyList = []int

// RemoveEasySegs repeatedly removes the remaining segment with the
// smallest crossing degree, so long as that degree is strictly below
// bound, decrementing its neighbors' remaining degree and appending the
// removed index to state.EasyList in removal order (spec.md §4.6). It
// also strips removed segments from the current coloring. Assumes
// state.EasyList is empty on entry, matching its "populated at the
// start of each optimizer attempt" lifecycle (spec.md §3).
func (s *CoreState) RemoveEasySegs(bound int) {
	n := s.N()
	removed := make([]bool, n)
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		degree[i] = s.Intersections.Degree(i)
	}
	s.EasyList = nil

	for {
		best := -1
		for i := 0; i < n; i++ {
			if removed[i] {
				continue
			}
			if best < 0 || degree[i] < degree[best] {
				best = i
			}
		}
		if best < 0 || degree[best] >= bound {
			break
		}
		removed[best] = true
		s.EasyList = append(s.EasyList, best)
		s.Coloring.Remove(best)
		for j := 0; j < n; j++ {
			if !removed[j] && s.Intersections.Crosses(best, j) {
				degree[j]--
			}
		}
	}
	s.Coloring.PruneEmpty()
}

// AddEasySegs re-inserts state.EasyList in reverse removal order,
// greedily placing each in the first admissible existing class. Finding
// no admissible class is an internal invariant violation (the peeling
// bound guarantees one exists) and halts the process (spec.md §4.6,
// §7 "Internal invariant violation").
func (s *CoreState) AddEasySegs() {
	for k := len(s.EasyList) - 1; k >= 0; k-- {
		i := s.EasyList[k]
		placed := false
		for c := 0; c < s.Coloring.NumColors(); c++ {
			if s.Coloring.Admits(s.Intersections, c, i) {
				s.Coloring.Place(c, i)
				placed = true
				break
			}
		}
		utils.Assert(placed, "add_easy_segs: no admissible class for a peeled segment")
	}
	s.EasyList = nil
}
