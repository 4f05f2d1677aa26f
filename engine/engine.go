package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/carolinafaccin/gol/model"
	"github.com/carolinafaccin/gol/rules"
)

// Engine computes successive generations of a grid under one ruleset. Every
// step reads only the snapshot it was given and writes a fresh output grid,
// so the next state of a cell can never observe a partially updated
// neighborhood.
type Engine struct {
	rules   rules.Ruleset
	workers int
	pool    *model.GridPool
}

// New returns an engine for the given ruleset. The ruleset is validated
// once here so the step path never has to.
func New(rs rules.Ruleset) (*Engine, error) {
	if err := rs.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid ruleset")
	}
	return &Engine{
		rules:   rs,
		workers: runtime.NumCPU(),
		pool:    model.NewGridPool(),
	}, nil
}

// Rules returns the ruleset the engine applies.
func (e *Engine) Rules() rules.Ruleset {
	return e.rules
}

// Workers returns how many goroutines share the row range of a step.
func (e *Engine) Workers() int {
	return e.workers
}

// SetWorkers sets how many goroutines share the row range of a step.
// Values below 1 restore the default of runtime.NumCPU(). Shards cover
// disjoint row ranges of a read-only input, so the result is identical for
// any worker count.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	e.workers = n
}

// UsePool shares a grid pool between the engine and its consumer. The
// engine always draws output grids from a pool; sharing one lets snapshots
// the consumer releases with Put be recycled into later generations. A
// consumer must only Put a snapshot back after the following snapshot has
// been produced, because each step reads the generation before it.
func (e *Engine) UsePool(pool *model.GridPool) {
	if pool != nil {
		e.pool = pool
	}
}

// Step computes the next generation of the given snapshot. The input grid
// is only read, never written; the result is a fresh grid with the same
// dimensions.
func (e *Engine) Step(g *model.Grid) (*model.Grid, error) {
	if err := validGrid(g); err != nil {
		return nil, errors.Wrap(err, "[Step] invalid input grid")
	}
	return e.step(g), nil
}

// validGrid rejects nil and zero-axis grids before any cell work starts.
func validGrid(g *model.Grid) error {
	if g == nil || g.GetRows() < 1 || g.GetCols() < 1 {
		return model.ErrDimension
	}
	return nil
}

// step runs the transition kernel on an already validated grid.
func (e *Engine) step(g *model.Grid) *model.Grid {
	var (
		rows = g.GetRows()
		cols = g.GetCols()
		next = e.pool.Get(rows, cols)
	)

	if e.workers <= 1 {
		e.stepRows(g, next, 0, rows)
		return next
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + e.workers - 1) / e.workers // Ceiling division
	)
	for i := range e.workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			e.stepRows(g, next, startRow, endRow)
			return nil
		})
	}

	// Row workers always return nil; Wait is only the join point.
	_ = eg.Wait()

	return next
}

// stepRows applies the ruleset to rows [startRow, endRow) of g, writing
// the results into next. Shards receive disjoint row ranges, so concurrent
// calls never touch the same cells of next.
func (e *Engine) stepRows(g, next *model.Grid, startRow, endRow int) {
	cols := g.GetCols()
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cols; col++ {
			if e.rules.Apply(g.LiveNeighbors(row, col), g.Alive(row, col)) {
				next.Set(row, col, true)
			}
		}
	}
}
