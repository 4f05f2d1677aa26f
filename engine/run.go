package engine

import (
	"github.com/pkg/errors"

	"github.com/carolinafaccin/gol/model"
)

// Run is a lazy, finite sequence of grid snapshots: the initial state
// followed by one stepped snapshot per pull, totalSteps+1 snapshots in all.
// The sequence is never materialized up front; the run keeps only the
// latest snapshot, as the read source for the step that follows it.
type Run struct {
	engine  *Engine
	current *model.Grid
	total   int
	yielded int
}

// Run starts a snapshot sequence from the initial grid. The initial grid
// and the step count are validated here, eagerly, so Next cannot fail.
// Each step is a pure function of the snapshot before it, which makes
// stopping early safe and lets any held snapshot seed a fresh Run.
func (e *Engine) Run(initial *model.Grid, totalSteps int) (*Run, error) {
	if err := validGrid(initial); err != nil {
		return nil, errors.Wrap(err, "[Run] invalid initial grid")
	}
	if totalSteps < 0 {
		return nil, errors.Errorf("[Run] totalSteps must be >= 0, got %d", totalSteps)
	}
	return &Run{engine: e, current: initial, total: totalSteps}, nil
}

// Next returns the following snapshot of the sequence, or (nil, false)
// forever once all totalSteps+1 snapshots have been yielded. The sequence
// is not restartable. Ownership of a yielded snapshot passes to the
// caller, who must keep it readable until the next snapshot has been
// produced.
func (r *Run) Next() (*model.Grid, bool) {
	switch {
	case r.yielded == 0:
		r.yielded++
		return r.current, true
	case r.yielded > r.total:
		r.current = nil
		return nil, false
	}

	next := r.engine.step(r.current)
	r.current = next
	r.yielded++
	return next, true
}

// StepsTaken reports how many transitions have been applied so far. The
// initial snapshot counts as zero steps.
func (r *Run) StepsTaken() int {
	if r.yielded == 0 {
		return 0
	}
	return r.yielded - 1
}

// TotalSteps returns the number of transitions the run was asked for.
func (r *Run) TotalSteps() int {
	return r.total
}
