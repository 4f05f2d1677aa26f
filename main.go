package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carolinafaccin/gol/model"
	"github.com/carolinafaccin/gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	sim, err := initializeSimulation(config)
	if err != nil {
		fmt.Printf("Failed to set up simulation: %v\n", err)
		os.Exit(1)
	}
	displaySimulationInfo(config, sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		snapshot      *model.Grid
		tracker       progressTracker
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Playback stopped early - remaining snapshots are never computed")
			displayFinalSummary(config, sim, snapshot)
			return
		default:
			// Continue consuming the sequence
		}

		next, ok := sim.run.Next()
		if !ok {
			break
		}

		// The snapshot one generation back fed the step that produced
		// next, so it can be recycled now.
		model.GridToPool(snapshot, sim.pool)
		snapshot = next

		frameStart := time.Now()
		sim.renderer.Clear()

		step := sim.run.StepsTaken()
		livingCells, density, status := updateSimulationState(snapshot, step, time.Since(lastFrameTime), sim.stats, &tracker)
		lastFrameTime = frameStart

		displayStatus(step, config.Steps, livingCells, density, status, sim)
		sim.renderer.Display(snapshot)

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}

	fmt.Println("\n🏁 Simulation complete")
	displayFinalSummary(config, sim, snapshot)
	model.GridToPool(snapshot, sim.pool)
}
