// Package instance owns the JSON wire formats of spec.md §6: instance
// documents, solution documents and the parameters bundle, plus loading
// them into the geometry/coloring domain types.
package instance

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/shadoks-lab/planecolor/internal/coloring"
)

// Parameters is the JSON tuning bundle of spec.md §6.3. DFS and Easy
// are pointers so an absent key is distinguishable from an explicit
// false, matching the "default true" documented for both.
type Parameters struct {
	Instance   string  `json:"instance"`
	Solution   string  `json:"solution"`
	Info       string  `json:"info"`
	Algorithm  string  `json:"algorithm"`
	Power      float64 `json:"power"`
	NoiseMean  float64 `json:"noise_mean"`
	NoiseVar   float64 `json:"noise_var"`
	MaxQueue   int     `json:"max_queue"`
	MaxRunTime int     `json:"max_run_time"`
	DFS        *bool   `json:"dfs"`
	Easy       *bool   `json:"easy"`
	Loop       bool    `json:"loop"`
	LoopTime   int     `json:"loop_time"`
}

// DefaultParameters returns spec.md §6.3's documented defaults.
// MaxQueue is left at 0, the sentinel for "auto"; ResolveMaxQueue fills
// it in once N is known.
func DefaultParameters() Parameters {
	dfs, easy := true, true
	return Parameters{
		Algorithm:  "greedy",
		Power:      1.2,
		NoiseMean:  1.0,
		NoiseVar:   0.15,
		MaxRunTime: 3600,
		DFS:        &dfs,
		Easy:       &easy,
		LoopTime:   3600,
	}
}

// LoadParameters reads a parameters file over the defaults; an empty
// path returns the defaults untouched.
func LoadParameters(path string) (Parameters, error) {
	p := DefaultParameters()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrapf(err, "reading parameters file %q", path)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, errors.Wrapf(err, "parsing parameters file %q", path)
	}
	return p, nil
}

// ResolveMaxQueue fills in the "auto" max_queue value, ported verbatim
// from `original_source/src/solution.hpp`'s `process_parameters`
// (SPEC_FULL.md §3): round(2000 * (75000/N)^2).
func (p *Parameters) ResolveMaxQueue(n int) {
	if p.MaxQueue < 1 && n > 0 {
		p.MaxQueue = int(math.Round(2000 * math.Pow(75000/float64(n), 2)))
	}
}

// ToColoringParams converts the wire bundle into the coloring
// package's own Params shape, resolving the DFS/Easy default-true
// pointers.
func (p Parameters) ToColoringParams() coloring.Params {
	dfs, easy := true, true
	if p.DFS != nil {
		dfs = *p.DFS
	}
	if p.Easy != nil {
		easy = *p.Easy
	}
	return coloring.Params{
		Power:      p.Power,
		NoiseMean:  p.NoiseMean,
		NoiseVar:   p.NoiseVar,
		MaxQueue:   p.MaxQueue,
		MaxRunTime: time.Duration(p.MaxRunTime) * time.Second,
		DFS:        dfs,
		Easy:       easy,
		Loop:       p.Loop,
		LoopTime:   time.Duration(p.LoopTime) * time.Second,
	}
}
