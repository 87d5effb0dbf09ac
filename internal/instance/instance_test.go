package instance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shadoks-lab/planecolor/internal/coloring"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGeometricInstance(t *testing.T) {
	doc := `{
		"type": "Instance_CGSHOP2022",
		"id": "toy",
		"x": [0, 10, 5, 5],
		"y": [0, 0, -5, 5],
		"edge_i": [0, 2],
		"edge_j": [1, 3]
	}`
	path := writeTemp(t, "toy.json", doc)

	inst, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "toy", inst.ID)
	assert.Equal(t, 2, inst.Intersections.N())
	assert.True(t, inst.Intersections.Crosses(0, 1))
}

func TestLoadDimacsInstanceAssignsSyntheticID(t *testing.T) {
	doc := `{"type": "adjacency", "edges": 3, "pairs": [[1,2],[2,3]]}`
	path := writeTemp(t, "k.json", doc)

	inst, err := Load(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, inst.ID)
	assert.Nil(t, inst.Segments)
	assert.True(t, inst.Intersections.Crosses(0, 1))
	assert.True(t, inst.Intersections.Crosses(1, 2))
	assert.False(t, inst.Intersections.Crosses(0, 2))
}

func TestResolveMaxQueueAutoFormula(t *testing.T) {
	p := DefaultParameters()
	p.ResolveMaxQueue(75000)
	assert.Equal(t, 2000, p.MaxQueue)

	p2 := DefaultParameters()
	p2.MaxQueue = 42
	p2.ResolveMaxQueue(75000)
	assert.Equal(t, 42, p2.MaxQueue, "an explicit value must not be overridden")
}

func TestSolutionRoundTrip(t *testing.T) {
	co := coloring.NewColoring(3)
	co.Place(co.NewClass(), 0)
	co.Place(co.NewClass(), 1)
	co.Place(0, 2)

	doc := BuildDocument("toy", co, 3, "toy.json", time.Now(), time.Second)
	path := filepath.Join(t.TempDir(), "sol.json")
	assert.NoError(t, WriteDocument(path, doc))

	readBack, err := ReadDocument(path)
	assert.NoError(t, err)

	rebuilt := ColoringFromDocument(readBack, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, co.ColorOf(i), rebuilt.ColorOf(i))
	}
}
