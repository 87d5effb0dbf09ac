package coloring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shadoks-lab/planecolor/internal/geometry"
)

func mustSeg(x1, y1, x2, y2 int64) geometry.Segment {
	return geometry.MakeSegment(geometry.MakePoint(x1, y1), geometry.MakePoint(x2, y2))
}

func TestIntersectionMapSymmetricAndIrreflexive(t *testing.T) {
	segs := geometry.NewSegmentSet([]geometry.Segment{
		mustSeg(0, 0, 10, 0),
		mustSeg(5, -5, 5, 5),
		mustSeg(0, 0, 2, 0),
	})
	m := BuildIntersectionMap(segs)

	for i := 0; i < m.N(); i++ {
		assert.False(t, m.Crosses(i, i), "crosses(i,i) must be false")
		for j := 0; j < m.N(); j++ {
			assert.Equal(t, m.Crosses(i, j), m.Crosses(j, i), "crosses must be symmetric")
		}
	}
	assert.True(t, m.Crosses(0, 1))
}

func TestScenarioS1TwoCrossingSegments(t *testing.T) {
	segs := geometry.NewSegmentSet([]geometry.Segment{
		mustSeg(0, 0, 10, 0),
		mustSeg(5, -5, 5, 5),
	})
	m := BuildIntersectionMap(segs)
	state := NewCoreState(segs, m, 1)

	for _, h := range []Heuristic{GreedyHeuristic{}, AngleHeuristic{}, &BadHeuristic{}, DSaturHeuristic{}, DSatHullHeuristic{}} {
		h.Color(state)
		assert.Equal(t, 2, state.Coloring.NumColors())
		assert.True(t, state.Coloring.Valid(m))
	}
}

func TestScenarioS2PairwiseDisjoint(t *testing.T) {
	segs := geometry.NewSegmentSet([]geometry.Segment{
		mustSeg(0, 0, 2, 0),
		mustSeg(3, 0, 5, 0),
		mustSeg(6, 0, 8, 0),
	})
	m := BuildIntersectionMap(segs)
	state := NewCoreState(segs, m, 1)

	for _, h := range []Heuristic{GreedyHeuristic{}, AngleHeuristic{}, DSaturHeuristic{}, DSatHullHeuristic{}} {
		h.Color(state)
		assert.Equal(t, 1, state.Coloring.NumColors())
	}
}

func TestScenarioS3SharedEndpointsNoCross(t *testing.T) {
	segs := geometry.NewSegmentSet([]geometry.Segment{
		mustSeg(0, 0, 1, 1),
		mustSeg(1, 1, 2, 0),
		mustSeg(0, 0, 2, 0),
	})
	m := BuildIntersectionMap(segs)
	state := NewCoreState(segs, m, 1)
	GreedyHeuristic{}.Color(state)
	assert.Equal(t, 1, state.Coloring.NumColors())
}

func TestScenarioS6CompleteGraphNeedsFullColors(t *testing.T) {
	n := 5
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	m := BuildIntersectionMapFromPairs(n, pairs)
	state := NewCoreState(nil, m, 1)

	for _, h := range []Heuristic{GreedyHeuristic{}, DSaturHeuristic{}} {
		h.Color(state)
		assert.Equal(t, n, state.Coloring.NumColors())
	}

	opt := &ConflictOptimizer{Params: Params{Power: 1.2, NoiseMean: 1.0, NoiseVar: 0.15, MaxQueue: 1000, DFS: true, Easy: true}}
	before := state.Coloring.NumColors()
	opt.Attempt(state, time.Now().Add(time.Hour), nil)
	assert.Equal(t, before, state.Coloring.NumColors(), "a clique-complete graph cannot be improved")
}

func TestColoringInvariantsHold(t *testing.T) {
	co := NewColoring(4)
	co.Place(co.NewClass(), 0)
	co.Place(co.NewClass(), 1)
	co.Place(0, 2)

	if co.ColorOf(2) != 0 {
		panic("expected segment 2 in class 0")
	}
	co.Remove(1)
	co.PruneEmpty()
	if co.NumColors() != 1 {
		panic("expected the emptied class to be pruned")
	}
	if co.ColorOf(0) != 0 || co.ColorOf(2) != 0 {
		panic("pruning must renumber survivors consistently")
	}
}

func TestEasyPeelAndReinsertPreservesColoring(t *testing.T) {
	segs := geometry.NewSegmentSet([]geometry.Segment{
		mustSeg(0, 0, 10, 0),
		mustSeg(5, -5, 5, 5),
		mustSeg(1, 1, 2, 2),
		mustSeg(3, 3, 4, 4),
	})
	m := BuildIntersectionMap(segs)
	state := NewCoreState(segs, m, 1)
	GreedyHeuristic{}.Color(state)

	before := make([]int, state.N())
	for i := range before {
		before[i] = state.Coloring.ColorOf(i)
	}

	state.RemoveEasySegs(state.Coloring.NumColors() - 1)
	state.AddEasySegs()

	assert.True(t, state.Coloring.Valid(m))
	for i := range before {
		assert.GreaterOrEqual(t, state.Coloring.ColorOf(i), 0, "every segment must be colored again")
	}
}
