package instance

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/shadoks-lab/planecolor/internal/coloring"
)

const timeLayout = "20060102-150405"

// Meta is spec.md §6.2's solution metadata block.
type Meta struct {
	Input       string  `json:"input"`
	Author      string  `json:"author"`
	StartTime   string  `json:"start_time"`
	Host        string  `json:"host"`
	SaveTime    string  `json:"save_time"`
	ElapsedTime float64 `json:"elapsed_time"`
	LastMeta    string  `json:"last_meta"`
}

// Document is the Solution_CGSHOP2022 envelope of spec.md §6.2.
type Document struct {
	Type      string `json:"type"`
	Instance  string `json:"instance"`
	NumColors int    `json:"num_colors"`
	Meta      Meta   `json:"meta"`
	Colors    []int  `json:"colors"`
}

// BuildDocument assembles a solution document from a completed
// coloring over n segments, per spec.md §6.2's field shapes and
// timestamp format.
func BuildDocument(instanceID string, co *coloring.Coloring, n int, inputPath string, start time.Time, elapsed time.Duration) Document {
	colors := make([]int, n)
	for i := 0; i < n; i++ {
		colors[i] = co.ColorOf(i)
	}
	host, _ := os.Hostname()
	return Document{
		Type:      "Solution_CGSHOP2022",
		Instance:  instanceID,
		NumColors: co.NumColors(),
		Meta: Meta{
			Input:       inputPath,
			Author:      "planecolor",
			StartTime:   start.Format(timeLayout),
			Host:        host,
			SaveTime:    time.Now().Format(timeLayout),
			ElapsedTime: elapsed.Seconds(),
			LastMeta:    "",
		},
		Colors: colors,
	}
}

// WriteDocument serializes and writes a solution document.
func WriteDocument(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding solution document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing solution file %q", path)
	}
	return nil
}

// ReadDocument reads and parses a solution file, for warm-starts
// (spec.md §6.3's `solution` parameter).
func ReadDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, errors.Wrapf(err, "reading solution file %q", path)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrapf(err, "parsing solution file %q", path)
	}
	return doc, nil
}

// ColoringFromDocument rebuilds a Coloring from a solution document's
// dense `colors` array, deriving the color count as `1 + max(colors)`
// (SPEC_FULL.md §4, ported from `Solution::read`'s round-trip rule)
// rather than trusting the document's own `num_colors` field.
func ColoringFromDocument(doc Document, n int) *coloring.Coloring {
	numColors := 0
	for _, c := range doc.Colors {
		if c+1 > numColors {
			numColors = c + 1
		}
	}
	co := coloring.NewColoring(n)
	for k := 0; k < numColors; k++ {
		co.NewClass()
	}
	for i, c := range doc.Colors {
		if i >= n {
			break
		}
		co.Place(c, i)
	}
	return co
}
