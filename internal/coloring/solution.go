package coloring

import "sort"

// ColorClass is an ordered sequence of segment indices sharing a color.
// No two indices in the same class may cross (spec.md §3).
type ColorClass []int

// Coloring is a sequence of ColorClass values together with the
// derived colorOf side table, matching spec.md §3's data model and the
// "array per class + parallel colorOf table" redesign of spec.md §9
// (in place of the source's doubly-linked color classes).
type Coloring struct {
	classes []ColorClass
	colorOf []int
}

// NewColoring returns an empty coloring over n segments, all
// unassigned (colorOf = -1).
func NewColoring(n int) *Coloring {
	co := &Coloring{colorOf: make([]int, n)}
	for i := range co.colorOf {
		co.colorOf[i] = -1
	}
	return co
}

// NumColors returns the number of (non-empty) color classes.
func (c *Coloring) NumColors() int {
	return len(c.classes)
}

// ColorOf returns the class index of segment i, or -1 if unassigned.
func (c *Coloring) ColorOf(i int) int {
	return c.colorOf[i]
}

// Class returns the k-th color class. Callers must not mutate the
// returned slice's backing array through append; use the Coloring's
// mutators instead.
func (c *Coloring) Class(k int) ColorClass {
	return c.classes[k]
}

// Classes returns all color classes.
func (c *Coloring) Classes() []ColorClass {
	return c.classes
}

// Admits reports whether segment i can join class k without crossing
// any of its current members.
func (c *Coloring) Admits(m *IntersectionMap, k, i int) bool {
	for _, j := range c.classes[k] {
		if m.Crosses(i, j) {
			return false
		}
	}
	return true
}

// Conflicts returns the members of class k that cross segment i.
func (c *Coloring) Conflicts(m *IntersectionMap, k, i int) []int {
	var out []int
	for _, j := range c.classes[k] {
		if m.Crosses(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// Place appends segment i to class k and updates colorOf.
func (c *Coloring) Place(k, i int) {
	c.classes[k] = append(c.classes[k], i)
	c.colorOf[i] = k
}

// Remove deletes segment i from its current class, leaving it
// unassigned. A no-op if i is already unassigned.
func (c *Coloring) Remove(i int) {
	k := c.colorOf[i]
	if k < 0 {
		return
	}
	cls := c.classes[k]
	for idx, s := range cls {
		if s == i {
			cls = append(cls[:idx], cls[idx+1:]...)
			break
		}
	}
	c.classes[k] = cls
	c.colorOf[i] = -1
}

// NewClass appends a new empty class and returns its index.
func (c *Coloring) NewClass() int {
	c.classes = append(c.classes, ColorClass{})
	return len(c.classes) - 1
}

// PlaceFirstAvailable assigns segment i to the first class that admits
// it, opening a new class if none does (spec.md §4.4's shared
// construction rule). Returns the chosen class index.
func (c *Coloring) PlaceFirstAvailable(m *IntersectionMap, i int) int {
	for k := range c.classes {
		if c.Admits(m, k, i) {
			c.Place(k, i)
			return k
		}
	}
	k := c.NewClass()
	c.Place(k, i)
	return k
}

// PruneEmpty deletes empty classes and renumbers the survivors,
// keeping colorOf consistent (spec.md §3 invariant: "Empty classes are
// deleted").
func (c *Coloring) PruneEmpty() {
	kept := make([]ColorClass, 0, len(c.classes))
	for _, cls := range c.classes {
		if len(cls) == 0 {
			continue
		}
		idx := len(kept)
		kept = append(kept, cls)
		for _, seg := range cls {
			c.colorOf[seg] = idx
		}
	}
	c.classes = kept
}

// RemoveClass deletes class k outright, unassigning its members and
// renumbering the remaining classes. Returns the removed class's
// members (the caller is responsible for re-placing them).
func (c *Coloring) RemoveClass(k int) ColorClass {
	removed := c.classes[k]
	for _, seg := range removed {
		c.colorOf[seg] = -1
	}
	c.classes = append(c.classes[:k], c.classes[k+1:]...)
	for idx := k; idx < len(c.classes); idx++ {
		for _, seg := range c.classes[idx] {
			c.colorOf[seg] = idx
		}
	}
	return removed
}

// SortBySize reorders classes by ascending size (spec.md §4.5.2 and
// §4.5.4's "sort classes by ascending size"), stably, and keeps
// colorOf consistent.
func (c *Coloring) SortBySize() {
	sort.SliceStable(c.classes, func(i, j int) bool {
		return len(c.classes[i]) < len(c.classes[j])
	})
	for idx, cls := range c.classes {
		for _, seg := range cls {
			c.colorOf[seg] = idx
		}
	}
}

// Clone deep-copies the coloring, used to snapshot state before a
// speculative DFS elimination attempt (spec.md §4.5.4).
func (c *Coloring) Clone() *Coloring {
	classes := make([]ColorClass, len(c.classes))
	for i, cls := range c.classes {
		cp := make(ColorClass, len(cls))
		copy(cp, cls)
		classes[i] = cp
	}
	colorOf := make([]int, len(c.colorOf))
	copy(colorOf, c.colorOf)
	return &Coloring{classes: classes, colorOf: colorOf}
}

// RestoreFrom replaces this coloring's contents with other's,
// implementing the "restore the saved coloring" rollback of
// spec.md §4.5.4.
func (c *Coloring) RestoreFrom(other *Coloring) {
	c.classes = other.classes
	c.colorOf = other.colorOf
}

// Valid reports whether every class is crossing-free and every
// segment 0..n-1 appears in exactly one class (spec.md §8, invariants
// 1 and 2).
func (c *Coloring) Valid(m *IntersectionMap) bool {
	n := len(c.colorOf)
	seen := make([]bool, n)
	for _, cls := range c.classes {
		for i, a := range cls {
			if seen[a] {
				return false
			}
			seen[a] = true
			for _, b := range cls[i+1:] {
				if m.Crosses(a, b) {
					return false
				}
			}
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}
