package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/carolinafaccin/gol/engine"
	"github.com/carolinafaccin/gol/model"
	"github.com/carolinafaccin/gol/rules"
	"github.com/carolinafaccin/gol/utils"
)

// simulation bundles everything one playback needs
type simulation struct {
	ruleset  rules.Ruleset
	engine   *engine.Engine
	run      *engine.Run
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	initial  *model.Grid
}

// progressTracker carries the previous frame's fingerprint so the status
// line can tell growth, shrinkage and stagnation apart.
type progressTracker struct {
	prevHash   string
	prevLiving int
}

// initializeSimulation builds the ruleset, the seed grid and the engine,
// and starts the snapshot sequence
func initializeSimulation(config utils.Config) (*simulation, error) {
	ruleset := buildRuleset(config)

	eng, err := engine.New(ruleset)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] building engine")
	}
	eng.SetWorkers(config.Workers)

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
		eng.UsePool(pool)
	}

	initial, err := seedGrid(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] seeding grid")
	}

	run, err := eng.Run(initial, config.Steps)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation] starting run")
	}

	return &simulation{
		ruleset:  ruleset,
		engine:   eng,
		run:      run,
		pool:     pool,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		initial:  initial,
	}, nil
}

// buildRuleset assembles the transition rule from the configured neighbor
// counts. Validation happens in engine.New.
func buildRuleset(config utils.Config) rules.Ruleset {
	return rules.Ruleset{
		Survival:   config.SurvivalRules,
		Birth:      config.BirthRules,
		GrowthOnly: config.GrowthOnly,
	}
}

// seedGrid constructs the initial grid per config: a random fill at the
// configured density, or a named pattern at the grid center or one per
// quadrant
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.Pattern == utils.PatternRandom {
		return model.NewRandomGrid(config.Rows, config.Cols, config.RandomDensity, config.Seed)
	}

	pattern, err := patternByName(config.Pattern)
	if err != nil {
		return nil, err
	}

	if config.PatternLayout == utils.LayoutQuadrants {
		grid, err := model.NewGrid(config.Rows, config.Cols)
		if err != nil {
			return nil, err
		}
		for _, center := range model.QuadrantCenters(config.Rows, config.Cols) {
			if err = grid.PlacePattern(pattern, center); err != nil {
				return nil, err
			}
		}
		return grid, nil
	}

	return model.NewPatternGrid(config.Rows, config.Cols, pattern)
}

// patternByName maps a config pattern name to its bitmap
func patternByName(name string) (model.Pattern, error) {
	switch name {
	case utils.PatternHeart:
		return model.Heart(), nil
	case utils.PatternGlider:
		return model.Glider(), nil
	case utils.PatternBlinker:
		return model.Blinker(), nil
	}
	return model.Pattern{}, errors.Errorf("[patternByName] unknown pattern %q", name)
}

// displaySimulationInfo shows the run parameters before playback starts
func displaySimulationInfo(config utils.Config, sim *simulation) {
	fmt.Printf("Rule: %s | Toroidal %dx%d grid | %d steps\n",
		sim.ruleset, config.Rows, config.Cols, config.Steps)
	fmt.Printf("Seed: %s (%s) | Initial living cells: %d\n",
		config.Pattern, config.PatternLayout, sim.initial.CountLivingCells())
	fmt.Printf("Features: Memory Pool: %v | Workers: %d\n",
		config.UseMemoryPool, sim.engine.Workers())
	fmt.Println("Press Ctrl+C to stop the playback early")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateSimulationState refreshes the stats from the latest snapshot and
// returns the status line ingredients
func updateSimulationState(
	snapshot *model.Grid,
	step int,
	frameDuration time.Duration,
	stats *utils.Stats,
	tracker *progressTracker,
) (int, float64, string) {
	livingCells := snapshot.CountLivingCells()
	density := float64(livingCells) / float64(snapshot.GetRows()*snapshot.GetCols()) * 100

	// Update performance stats
	stats.Update(step, livingCells, frameDuration)

	hash := snapshot.GetGridHash()
	status := classifyProgress(livingCells, hash, tracker)
	tracker.prevHash = hash
	tracker.prevLiving = livingCells

	return livingCells, density, status
}

// classifyProgress labels the step by comparing it against the previous
// snapshot's hash and population
func classifyProgress(livingCells int, hash string, tracker *progressTracker) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case tracker.prevHash == "":
		return "Seeded"
	case hash == tracker.prevHash:
		return "Static"
	case livingCells > tracker.prevLiving:
		return "Growing"
	case livingCells < tracker.prevLiving:
		return "Shrinking"
	default:
		return "Active"
	}
}

// displayStatus shows the current playback status
func displayStatus(
	step, totalSteps, livingCells int,
	density float64,
	status string,
	sim *simulation,
) {
	fmt.Printf("Step: %d/%d | Living: %d | Density: %.1f%% | Status: %s\n",
		step, totalSteps, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak Pop: %d | Runtime: %.1fs\n",
		sim.stats.GenerationsPerSecond, sim.stats.AveragePopulation,
		sim.stats.PeakPopulation, time.Since(sim.stats.StartTime).Seconds())
	fmt.Println()
}

// displayFinalSummary shows the closing report, including the hash of the
// last snapshot so identical runs can be compared at a glance
func displayFinalSummary(config utils.Config, sim *simulation, final *model.Grid) {
	fmt.Printf("Completed %d of %d steps under rule %s in %.1f seconds\n",
		sim.run.StepsTaken(), config.Steps, sim.ruleset,
		time.Since(sim.stats.StartTime).Seconds())
	if final != nil {
		fmt.Printf("Final population: %d | Grid hash: %s\n",
			final.CountLivingCells(), final.GetGridHash())
	}
	fmt.Printf("Average: %.1f avg population, %d peak\n",
		sim.stats.AveragePopulation, sim.stats.PeakPopulation)
}
