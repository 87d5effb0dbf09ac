package coloring

import (
	"math"
	"time"
)

// Params bundles the conflict optimizer's tuning knobs of spec.md §6.3.
// It is the coloring package's own view of the parameters file; S2
// (internal/instance.Parameters) converts the JSON document into this
// shape.
type Params struct {
	Power      float64
	NoiseMean  float64
	NoiseVar   float64
	MaxQueue   int
	MaxRunTime time.Duration
	DFS        bool
	Easy       bool
	Loop       bool
	LoopTime   time.Duration
}

// loopSchedule is the cyclic power schedule of spec.md §4.5.1.
var loopSchedule = []float64{1.1, 1.2, 1.3, 1.5, 2.0}

// queueCounts is spec.md §3's QueueCount: per-segment enqueue counters
// for the current elimination attempt, with clique members clamped to
// +∞ so best_color never selects them for displacement.
type queueCounts struct {
	counts []int
}

func newQueueCounts(state *CoreState) *queueCounts {
	qc := &queueCounts{counts: make([]int, state.N())}
	qc.reset(state)
	return qc
}

func (qc *queueCounts) reset(state *CoreState) {
	for i := range qc.counts {
		qc.counts[i] = 0
	}
	for _, c := range state.Clique {
		qc.counts[c] = infQueueCount
	}
}

// bestColor is spec.md §4.5.3's scored move. One noise sample is drawn
// per class considered, unconditionally, and that same sample serves
// two roles: it turns the running best into this iteration's
// comparison threshold (minConflictNoised = minConflict / noise), and,
// only if the class becomes the new best, it re-noises the class's raw
// cost into the next running best (minConflict = cost * noise) — the
// same draw both times, never two independent ones.
func bestColor(state *CoreState, qc *queueCounts, p Params, s int) (class int, blocked bool) {
	best := -1
	var minConflict, minConflictNoised float64
	have := false

	for c := 0; c < state.Coloring.NumColors(); c++ {
		noise := gaussianNoise(state.NoiseRand, p.NoiseMean, p.NoiseVar)
		if have {
			minConflictNoised = minConflict / noise
		}
		cost, ineligible := scoreClass(state, qc, p, s, c, have, minConflictNoised)
		if ineligible {
			continue
		}
		if !have || cost < minConflictNoised {
			have = true
			best = c
			minConflict = cost * noise
		}
	}
	if !have {
		return -1, true
	}
	return best, false
}

func scoreClass(state *CoreState, qc *queueCounts, p Params, s, c int, haveBest bool, bestSoFar float64) (cost float64, ineligible bool) {
	for _, t := range state.Coloring.Class(c) {
		if !state.Intersections.Crosses(s, t) {
			continue
		}
		if qc.counts[t] >= p.MaxQueue {
			return 0, true
		}
		cost += math.Pow(float64(qc.counts[t]), p.Power) + 1
		if haveBest && cost > bestSoFar {
			return 0, true
		}
	}
	return cost, false
}

// shuffleMove tries to relocate segment s out of class from into any
// other class that admits it without crossing, taking the first such
// class (spec.md §4.5.2/§4.5.4 step 1). Reports whether it moved.
func shuffleMove(state *CoreState, from, s int) bool {
	for c := 0; c < state.Coloring.NumColors(); c++ {
		if c == from {
			continue
		}
		if state.Coloring.Admits(state.Intersections, c, s) {
			state.Coloring.Remove(s)
			state.Coloring.Place(c, s)
			return true
		}
	}
	return false
}

// shufflePass is spec.md §4.5.2: classes are sorted by ascending size,
// then every segment is offered a free move; repeated up to 11 times,
// stopping early after a pass with no move and restarting the count
// whenever a pass erases a class. A class that
// empties is erased and the scan reindexed immediately, the instant it
// happens, not once at the end of the pass — otherwise a class visited
// later in the same pass can shuffle a member straight back into an
// emptied class before it's pruned, undoing the reduction just made.
func shufflePass(state *CoreState) bool {
	improved := false
	for iter := 0; iter < 11; iter++ {
		state.Coloring.SortBySize()
		before := state.Coloring.NumColors()
		changed := false
		for c := 0; c < state.Coloring.NumColors(); c++ {
			members := append(ColorClass{}, state.Coloring.Class(c)...)
			for _, s := range members {
				if state.Coloring.ColorOf(s) != c {
					continue
				}
				if shuffleMove(state, c, s) {
					changed = true
				}
			}
			if len(state.Coloring.Class(c)) == 0 {
				state.Coloring.RemoveClass(c)
				c--
			}
		}
		if !changed {
			break
		}
		improved = true
		if state.Coloring.NumColors() < before {
			iter = -1
		}
	}
	return improved
}

// eventKind tags a single DFS-repair mutation for rollback.
type eventKind int

const (
	eventAdded eventKind = iota
	eventRemoved
)

type event struct {
	kind  eventKind
	class int
	seg   int
}

func undo(state *CoreState, events []event) {
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if e.kind == eventAdded {
			state.Coloring.Remove(e.seg)
		} else {
			state.Coloring.Place(e.class, e.seg)
		}
	}
}

// classConflicts returns the members of class c crossing e and whether
// c is a usable trial class at all — spec.md §4.5.5's "enumerate
// classes where e crosses at most breadth segments, none of which is
// in forbidden". ok is false (conflicts meaningless) when e crosses
// more than breadth members or crosses a forbidden one.
func classConflicts(state *CoreState, c, e, breadth int, forbidden map[int]bool) (conflicts []int, ok bool) {
	for _, t := range state.Coloring.Class(c) {
		if !state.Intersections.Crosses(e, t) {
			continue
		}
		if forbidden[t] {
			return nil, false
		}
		conflicts = append(conflicts, t)
		if len(conflicts) > breadth {
			return nil, false
		}
	}
	return conflicts, true
}

// dfsOptimize is spec.md §4.5.5's bounded DFS repair: place every
// segment of todo without touching forbidden, displacing at most
// breadth incumbents per trial class and recursing depth-1 levels
// deeper on the displaced set. On failure the entire event log for
// this call is rolled back before returning, so a caller only ever
// needs to undo its own tentative moves, never a failed callee's.
func dfsOptimize(state *CoreState, todo []int, forbidden map[int]bool, breadth, depth int) ([]event, bool) {
	if depth == 1 {
		breadth = 0
	}
	var log []event

	for _, e := range todo {
		placed := false
		for c := 0; c < state.Coloring.NumColors(); c++ {
			conflicts, ok := classConflicts(state, c, e, breadth, forbidden)
			if !ok {
				continue
			}
			checkpoint := len(log)

			for _, x := range conflicts {
				state.Coloring.Remove(x)
				log = append(log, event{eventRemoved, c, x})
			}
			state.Coloring.Place(c, e)
			log = append(log, event{eventAdded, c, e})

			subForbidden := make(map[int]bool, len(forbidden)+1)
			for k := range forbidden {
				subForbidden[k] = true
			}
			subForbidden[e] = true

			subLog, ok := dfsOptimize(state, conflicts, subForbidden, breadth, depth-1)
			if ok {
				log = append(log, subLog...)
				placed = true
				break
			}
			undo(state, log[checkpoint:])
			log = log[:checkpoint]
		}
		if !placed {
			undo(state, log)
			return nil, false
		}
	}
	return log, true
}

// ConflictOptimizer runs one elimination attempt at a time, per
// spec.md §4.5.1's outer loop; Run drives repeated attempts against a
// deadline.
type ConflictOptimizer struct {
	Params Params
}

// eliminateClass tries to remove class c entirely: first a direct
// shuffle of each member, then — if that doesn't empty it — the
// scored-move/DFS-assisted repair of spec.md §4.5.4. onTimeout is
// invoked (and the attempt aborted) the instant the deadline passes,
// matching spec.md §7's "process exits cleanly deep inside DFS
// elimination" behavior; the caller supplies a callback that persists
// state and terminates the process.
func eliminateClass(state *CoreState, qc *queueCounts, p Params, c int, deadline time.Time, onTimeout func(*CoreState)) bool {
	members := append(ColorClass{}, state.Coloring.Class(c)...)
	for _, s := range members {
		shuffleMove(state, c, s)
	}
	if len(state.Coloring.Class(c)) == 0 {
		state.Coloring.PruneEmpty()
		return true
	}

	saved := state.Coloring.Clone()
	remaining := state.Coloring.RemoveClass(c)
	qc.reset(state)

	mainQueue := append([]int{}, remaining...)
	var dfsQueue []int

	for len(mainQueue) > 0 || len(dfsQueue) > 0 {
		if time.Now().After(deadline) {
			if onTimeout != nil {
				onTimeout(state)
			}
			return false
		}

		if p.DFS && len(dfsQueue) > 0 {
			s := dfsQueue[0]
			dfsQueue = dfsQueue[1:]
			depth := 3
			switch len(mainQueue) {
			case 1:
				depth = 5
			case 2:
				depth = 7
			}
			if _, ok := dfsOptimize(state, []int{s}, map[int]bool{}, 3, depth); !ok {
				mainQueue = append(mainQueue, s)
			}
			continue
		}

		s := mainQueue[0]
		mainQueue = mainQueue[1:]
		chosen, blocked := bestColor(state, qc, p, s)
		if blocked {
			state.Coloring.RestoreFrom(saved)
			return false
		}
		conflicts := state.Coloring.Conflicts(state.Intersections, chosen, s)
		for _, t := range conflicts {
			state.Coloring.Remove(t)
		}
		state.Coloring.Place(chosen, s)
		dfsQueue = append(dfsQueue, conflicts...)
		qc.counts[s]++
	}

	state.Coloring.PruneEmpty()
	return true
}

// Attempt runs exactly one shuffle pass plus one DFS-assisted
// elimination try over the classes (ascending by size), stopping at
// the first class it manages to eliminate. This mirrors the source's
// `while (new_size != old_size) { ...; return true; }` in the outer
// optimizer loop: the unconditional return means the body never
// executes more than once, so a single Attempt call is exactly one
// improvement-or-not round (spec.md §9, open question). Callers loop
// Attempt themselves (see Run) to get repeated rounds.
func (o *ConflictOptimizer) Attempt(state *CoreState, deadline time.Time, onTimeout func(*CoreState)) bool {
	if o.Params.Easy {
		bound := state.Coloring.NumColors() - 1
		if bound > 0 {
			state.RemoveEasySegs(bound)
		}
	}

	shufflePass(state)

	qc := newQueueCounts(state)
	state.Coloring.SortBySize()
	improved := false
	for c := 0; c < state.Coloring.NumColors(); c++ {
		if eliminateClass(state, qc, o.Params, c, deadline, onTimeout) {
			improved = true
			break
		}
	}

	if o.Params.Easy && len(state.EasyList) > 0 {
		state.AddEasySegs()
	}
	return improved
}

// Run drives repeated Attempt calls until the deadline passes,
// reporting every strict improvement through onImprove (spec.md
// §4.5.1 step 3: "persist the solution ... and restart"). When Loop is
// enabled, Power is force-started at 1.1 and cycled through
// loopSchedule every LoopTime, per spec.md §6.3.
func (o *ConflictOptimizer) Run(state *CoreState, start time.Time, onImprove func(*CoreState, time.Duration), onTimeout func(*CoreState)) {
	deadline := start.Add(o.Params.MaxRunTime)
	if o.Params.Loop {
		o.Params.Power = 1.1
	}
	scheduleIdx := 0

	for time.Now().Before(deadline) {
		if o.Params.Loop {
			elapsed := time.Since(start)
			idx := int(elapsed/o.Params.LoopTime) % len(loopSchedule)
			if idx != scheduleIdx {
				scheduleIdx = idx
			}
			o.Params.Power = loopSchedule[scheduleIdx]
		}

		before := state.Coloring.NumColors()
		o.Attempt(state, deadline, onTimeout)
		after := state.Coloring.NumColors()
		if after < before && onImprove != nil {
			onImprove(state, time.Since(start))
		}
	}
}
