package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Grid holds one generation of the cell matrix. Dimensions are fixed for
// the lifetime of a grid and every cell is either dead (false) or alive
// (true). A simulation step never writes into the grid it reads from, so
// any grid a caller holds on to stays valid as a snapshot of its step.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// Cell identifies one grid position by row and column.
type Cell struct {
	Row int
	Col int
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrDimension, "[NewGrid] got %dx%d", rows, cols)
	}
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// NewRandomGrid creates a grid where each cell is independently alive with
// probability density. The same seed always produces the same fill.
func NewRandomGrid(rows, cols int, density float64, seed int64) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[NewRandomGrid] density %v outside [0,1]", density)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid] invalid dimensions")
	}
	rng := rand.New(rand.NewSource(seed))
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = rng.Float64() < density
		}
	}
	return g, nil
}

// GetRows returns the number of rows
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns
func (g *Grid) GetCols() int {
	return g.cols
}

// Get returns the state of a cell, failing with ErrIndex when the
// coordinates lie outside the grid extents.
func (g *Grid) Get(row, col int) (bool, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false, errors.Wrapf(ErrIndex, "[Get] cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.cols {
		g.cells[row][col] = alive
	}
}

// SetCells marks every listed coordinate alive. The whole list is bounds
// checked before any cell is written, so a failing call leaves the grid
// untouched.
func (g *Grid) SetCells(cells []Cell) error {
	for _, cell := range cells {
		if cell.Row < 0 || cell.Row >= g.rows || cell.Col < 0 || cell.Col >= g.cols {
			return errors.Wrapf(ErrBounds, "[SetCells] cell (%d,%d) outside %dx%d grid",
				cell.Row, cell.Col, g.rows, g.cols)
		}
	}
	for _, cell := range cells {
		g.cells[cell.Row][cell.Col] = true
	}
	return nil
}

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap
// toroidally, so any integer pair maps onto the grid.
func (g *Grid) Alive(row, col int) bool {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return g.cells[row][col]
}

// LiveNeighbors counts the live cells in the Moore neighborhood of an
// in-range cell. The grid has no edges: neighbor coordinates wrap to the
// opposite side, so border and corner cells see eight neighbors too.
func (g *Grid) LiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			if g.cells[(row+dr+g.rows)%g.rows][(col+dc+g.cols)%g.cols] {
				count++
			}
		}
	}
	return count
}

// Equal reports whether both grids have the same dimensions and identical
// cell-by-cell values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := &Grid{rows: g.rows, cols: g.cols, cells: make([][]bool, g.rows)}
	for row := range g.cells {
		clone.cells[row] = make([]bool, g.cols)
		copy(clone.cells[row], g.cells[row])
	}
	return clone
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// AliveCells lists the coordinates of every living cell in row-major order.
func (g *Grid) AliveCells() []Cell {
	var alive []Cell
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				alive = append(alive, Cell{Row: row, Col: col})
			}
		}
	}
	return alive
}

// GetGridHash returns an efficient MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// reset resizes the grid in place for reuse from the pool. The recycled
// grid is a brand-new generation, so every surviving cell is cleared.
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// clear kills all cells
func (g *Grid) clear() {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = false
		}
	}
}
