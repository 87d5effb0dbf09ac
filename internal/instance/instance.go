package instance

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/shadoks-lab/planecolor/internal/coloring"
	"github.com/shadoks-lab/planecolor/internal/geometry"
)

// rawDocument is the untyped envelope of spec.md §6.1, wide enough to
// hold either an Instance_CGSHOP2022 document or a DIMACS-style one;
// the Type field decides which fields matter.
type rawDocument struct {
	Type  string    `json:"type"`
	ID    string    `json:"id"`
	X     []int64   `json:"x"`
	Y     []int64   `json:"y"`
	EdgeI []int     `json:"edge_i"`
	EdgeJ []int     `json:"edge_j"`
	Edges int       `json:"edges"`
	Pairs [][2]int  `json:"pairs"`
}

// Instance is the loaded, ready-to-color problem: a segment set with
// geometry (nil for DIMACS-style instances) plus the intersection
// model built from one or the other.
type Instance struct {
	ID            string
	Segments      *geometry.SegmentSet
	Intersections *coloring.IntersectionMap
}

const cgshopType = "Instance_CGSHOP2022"

// Load reads and parses an instance file, dispatching on its `type`
// field (spec.md §6.1). When the document carries no `id` (always true
// for DIMACS-style instances, and possible for malformed
// Instance_CGSHOP2022 ones), a synthetic UUID is assigned so solution
// output always has a stable `"instance"` field (SPEC_FULL.md §4.8).
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading instance file %q", path)
	}
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parsing instance file %q", path)
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewV4().String()
	}

	if raw.Type == cgshopType {
		return loadGeometric(id, raw)
	}
	return loadDimacs(id, raw)
}

func loadGeometric(id string, raw rawDocument) (*Instance, error) {
	if len(raw.X) != len(raw.Y) {
		return nil, errors.Errorf("instance %q: x/y arrays have different lengths (%d vs %d)", id, len(raw.X), len(raw.Y))
	}
	if len(raw.EdgeI) != len(raw.EdgeJ) {
		return nil, errors.Errorf("instance %q: edge_i/edge_j arrays have different lengths (%d vs %d)", id, len(raw.EdgeI), len(raw.EdgeJ))
	}

	points := make([]geometry.Point, len(raw.X))
	for i := range points {
		points[i] = geometry.MakePoint(raw.X[i], raw.Y[i])
	}

	segs := make([]geometry.Segment, len(raw.EdgeI))
	for i := range segs {
		a, b := raw.EdgeI[i], raw.EdgeJ[i]
		if a < 0 || a >= len(points) || b < 0 || b >= len(points) {
			return nil, errors.Errorf("instance %q: edge %d references out-of-range vertex", id, i)
		}
		segs[i] = geometry.MakeSegment(points[a], points[b])
	}

	set := geometry.NewSegmentSet(segs)
	return &Instance{
		ID:            id,
		Segments:      set,
		Intersections: coloring.BuildIntersectionMap(set),
	}, nil
}

func loadDimacs(id string, raw rawDocument) (*Instance, error) {
	pairs := make([][2]int, len(raw.Pairs))
	for i, pr := range raw.Pairs {
		if pr[0] < 1 || pr[0] > raw.Edges || pr[1] < 1 || pr[1] > raw.Edges {
			return nil, errors.Errorf("instance %q: pair %d out of range for %d edges", id, i, raw.Edges)
		}
		pairs[i] = [2]int{pr[0] - 1, pr[1] - 1}
	}
	return &Instance{
		ID:            id,
		Segments:      nil,
		Intersections: coloring.BuildIntersectionMapFromPairs(raw.Edges, pairs),
	}, nil
}

// infoDocument carries the optional clique lower bound, ported from
// `original_source/src/instance.hpp`'s `parse_info_file`: the field is
// a flat integer array, not a nested object (SPEC_FULL.md §4).
type infoDocument struct {
	Clique []int `json:"clique"`
}

// LoadClique reads an info file's clique field. An empty path returns
// a nil clique (none supplied).
func LoadClique(path string) ([]int, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading info file %q", path)
	}
	var doc infoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing info file %q", path)
	}
	return doc.Clique, nil
}
