// Command planecolor is the CLI entry point of the coloring engine
// (SPEC_FULL.md §S1/§6.4), built on `github.com/urfave/cli` in the
// teacher's single-flat-command style (`cmd/ba/main.go`'s `train`
// command).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/shadoks-lab/planecolor/common/utils"
	"github.com/shadoks-lab/planecolor/internal/coloring"
	"github.com/shadoks-lab/planecolor/internal/instance"
	"github.com/shadoks-lab/planecolor/internal/stats"
)

func main() {
	app := cli.NewApp()
	app.Name = "planecolor"
	app.Usage = "partition line segments into non-crossing color classes"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "instance, i", Usage: "instance file (required unless given via --parameters)"},
		cli.StringFlag{Name: "solution, s", Usage: "warm-start solution file"},
		cli.StringFlag{Name: "algorithm, a", Value: "", Usage: "greedy, angle, bad, dsatur, dsathull, conflict"},
		cli.IntFlag{Name: "time, t", Value: 0, Usage: "wall-clock cap in seconds over all repetitions"},
		cli.IntFlag{Name: "repetitions, r", Value: 100, Usage: "number of constructive attempts"},
		cli.StringFlag{Name: "parameters, p", Usage: "parameters JSON file"},
		cli.BoolFlag{Name: "debug", Usage: "enable structured debug logging"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(errors.Wrap(err, "planecolor"))
	}
}

func run(c *cli.Context) error {
	utils.DebugEnabled = c.Bool("debug")

	params, err := instance.LoadParameters(c.String("parameters"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if v := c.String("instance"); v != "" {
		params.Instance = v
	}
	if v := c.String("solution"); v != "" {
		params.Solution = v
	}
	if v := c.String("algorithm"); v != "" {
		params.Algorithm = v
	}

	if params.Instance == "" {
		cli.ShowAppHelp(c)
		os.Exit(1)
	}

	heuristicFactory, isConstructive := constructiveHeuristics[params.Algorithm]
	if !isConstructive && params.Algorithm != "conflict" {
		fmt.Fprintf(os.Stderr, "unknown algorithm %q\n", params.Algorithm)
		cli.ShowAppHelp(c)
		os.Exit(2)
	}

	inst, err := instance.Load(params.Instance)
	utils.Check(err, "could not load instance")
	params.ResolveMaxQueue(inst.Intersections.N())

	clique, err := instance.LoadClique(params.Info)
	utils.Check(err, "could not load info file")

	state := coloring.NewCoreState(inst.Segments, inst.Intersections, time.Now().UnixNano())
	state.Clique = clique

	if params.Solution != "" {
		doc, err := instance.ReadDocument(params.Solution)
		utils.Check(err, "could not load warm-start solution")
		state.Coloring = instance.ColoringFromDocument(doc, inst.Intersections.N())
	}

	repetitions := c.Int("repetitions")
	if params.Algorithm == "greedy" {
		repetitions = 1
	}
	timeCap := time.Duration(c.Int("time")) * time.Second

	start := time.Now()
	if isConstructive {
		runConstructive(state, inst, params, heuristicFactory(), repetitions, timeCap, start)
	} else {
		runConflict(state, inst, params, start)
	}
	return nil
}

var constructiveHeuristics = map[string]func() coloring.Heuristic{
	"greedy": func() coloring.Heuristic { return coloring.GreedyHeuristic{} },
	"angle":  func() coloring.Heuristic { return coloring.AngleHeuristic{} },
	"bad":    func() coloring.Heuristic { return &coloring.BadHeuristic{} },
	"dsatur": func() coloring.Heuristic { return coloring.DSaturHeuristic{} },
	"dsathull": func() coloring.Heuristic {
		return coloring.DSatHullHeuristic{}
	},
}

// runConstructive runs a constructive heuristic up to repetitions
// times, writing a new solution file only on strict improvement over
// this run's best-so-far (spec.md §6.4).
func runConstructive(state *coloring.CoreState, inst *instance.Instance, params instance.Parameters, h coloring.Heuristic, repetitions int, timeCap time.Duration, start time.Time) {
	best := -1
	for rep := 0; rep < repetitions; rep++ {
		if timeCap > 0 && time.Since(start) > timeCap {
			break
		}
		h.Color(state)
		n := state.Coloring.NumColors()
		if best == -1 || n < best {
			best = n
			doc := instance.BuildDocument(inst.ID, state.Coloring, inst.Intersections.N(), params.Instance, start, time.Since(start))
			utils.Check(instance.WriteDocument(outputPath(params), doc), "could not write solution")
			utils.Debug("planecolor", fmt.Sprintf("repetition %d: improved to %d colors", rep, n))
		}
	}
}

// runConflict drives the conflict optimizer to the parameters'
// max_run_time budget, persisting the solution and appending to the
// statistics file on every improvement (spec.md §4.5.1, §6.5).
func runConflict(state *coloring.CoreState, inst *instance.Instance, params instance.Parameters, start time.Time) {
	opt := &coloring.ConflictOptimizer{Params: params.ToColoringParams()}

	sinkPath := stats.FileName(inst.ID, opt.Params.Power, opt.Params.NoiseMean, opt.Params.NoiseVar, opt.Params.MaxQueue, opt.Params.DFS, opt.Params.Easy, opt.Params.Loop, opt.Params.LoopTime)
	sink, err := stats.Open(sinkPath)
	utils.Check(err, "could not open statistics file")
	defer sink.Close()

	persist := func(s *coloring.CoreState, elapsed time.Duration) {
		doc := instance.BuildDocument(inst.ID, s.Coloring, inst.Intersections.N(), params.Instance, start, elapsed)
		utils.Check(instance.WriteDocument(outputPath(params), doc), "could not write solution")
		sink.Record(elapsed, s.Coloring.NumColors())
	}

	onTimeout := func(s *coloring.CoreState) {
		persist(s, time.Since(start))
		os.Exit(0)
	}

	opt.Run(state, start, persist, onTimeout)
}

func outputPath(params instance.Parameters) string {
	if params.Solution != "" {
		return params.Solution
	}
	return params.Instance + ".solution.json"
}
