package geometry

// SegmentSet is a finite, index-addressable collection of segments.
// Indices 0..N are the sole identity used by every downstream
// component (spec.md §3).
type SegmentSet struct {
	segments []Segment
}

// NewSegmentSet wraps a slice of segments as a SegmentSet. The slice is
// copied so callers can freely mutate their own copy afterwards.
func NewSegmentSet(segments []Segment) *SegmentSet {
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return &SegmentSet{segments: cp}
}

// Len returns the number of segments, N.
func (s *SegmentSet) Len() int {
	return len(s.segments)
}

// At returns the i-th segment.
func (s *SegmentSet) At(i int) Segment {
	return s.segments[i]
}

// All returns the underlying segment slice. Callers must not mutate it.
func (s *SegmentSet) All() []Segment {
	return s.segments
}
