// Package coloring implements the segment-intersection-graph coloring
// engine: the bitset adjacency model, the constructive heuristics, the
// conflict optimizer and the easy-segment peeler.
package coloring

import (
	"math"
	"math/rand"

	"github.com/shadoks-lab/planecolor/internal/geometry"
)

// CoreState bundles everything a heuristic or the optimizer needs: the
// segment set, the immutable intersection model, the coloring under
// construction, an optional clique, and the two independent RNG streams
// (spec.md §5, §9's "make the global RNG explicit"). This replaces the
// source's Instance→Solution→DSatur→DSatHull inheritance chain with a
// single composed value passed to plain heuristic functions (spec.md
// §9), following the teacher's preference for small composed structs
// over deep embedding (e.g. `arenamaster/state.State`).
type CoreState struct {
	Segments      *geometry.SegmentSet
	Intersections *IntersectionMap
	Coloring      *Coloring
	Clique        []int
	EasyList      EasyList

	IntRand   *rand.Rand // Angle's rotation offset, DSatur's top-K tie-break
	NoiseRand *rand.Rand // best_color's Gaussian noise
}

// NewCoreState builds a CoreState over an already-built intersection
// model, seeding both RNG streams from seed. Passing the same seed
// twice reproduces the same run, per spec.md §5's reproducibility note.
func NewCoreState(segs *geometry.SegmentSet, m *IntersectionMap, seed int64) *CoreState {
	return &CoreState{
		Segments:      segs,
		Intersections: m,
		Coloring:      NewColoring(m.N()),
		IntRand:       rand.New(rand.NewSource(seed)),
		NoiseRand:     rand.New(rand.NewSource(seed ^ 0x5bd1e995)),
	}
}

// N is the number of segments.
func (s *CoreState) N() int {
	return s.Intersections.N()
}

// IsClique reports whether segment i belongs to the supplied clique.
func (s *CoreState) IsClique(i int) bool {
	for _, c := range s.Clique {
		if c == i {
			return true
		}
	}
	return false
}

// gaussianNoise draws a strictly positive sample mean + variance·Z, with
// Z standard normal, resampling while the draw is ≤ 0.001 (spec.md
// §4.5.3). The `noise_var` parameter therefore acts as the standard
// deviation of the draw: the source scales by it directly rather than
// by its square root, and this port preserves that scaling.
func gaussianNoise(r *rand.Rand, mean, variance float64) float64 {
	for {
		v := mean + variance*r.NormFloat64()
		if v > 0.001 {
			return v
		}
	}
}

// infQueueCount is the +∞ value the queue-count bookkeeping pins
// clique members at so they are never displaced (spec.md §3,
// QueueCount).
const infQueueCount = math.MaxInt32
