package model

import "sync"

// GridToPool returns a grid to the pool when pooling is enabled. A nil
// pool means pooling is off and the grid is left for the garbage collector.
func GridToPool(g *Grid, pool *GridPool) {
	if g == nil || pool == nil {
		return
	}

	pool.Put(g)
}

// GridPool recycles grid allocations across generations. A snapshot may be
// returned once its holder is done reading it; its backing arrays are then
// reused for a later generation instead of being reallocated.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the requested dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(rows, cols)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}

	// Clear the grid before returning to pool
	g.clear()
	p.pool.Put(g)
}
