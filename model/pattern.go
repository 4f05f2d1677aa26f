package model

import "github.com/pkg/errors"

// Pattern is a named seed bitmap stamped onto a grid before a run starts.
// Patterns only exist at seeding time; once placed they are ordinary cells.
type Pattern struct {
	Name  string
	Cells [][]bool
}

// Rows returns the bitmap height.
func (p Pattern) Rows() int {
	return len(p.Cells)
}

// Cols returns the bitmap width.
func (p Pattern) Cols() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Heart returns the 6x7 heart bitmap the showcase animations grow from.
func Heart() Pattern {
	return Pattern{
		Name: "heart",
		Cells: [][]bool{
			{false, true, true, false, true, true, false},
			{true, true, true, true, true, true, true},
			{true, true, true, true, true, true, true},
			{false, true, true, true, true, true, false},
			{false, false, true, true, true, false, false},
			{false, false, false, true, false, false, false},
		},
	}
}

// Glider returns the 3x3 glider that travels diagonally under classic rules.
func Glider() Pattern {
	return Pattern{
		Name: "glider",
		Cells: [][]bool{
			{false, true, false},
			{false, false, true},
			{true, true, true},
		},
	}
}

// Blinker returns the period-two oscillator: three live cells in a row.
func Blinker() Pattern {
	return Pattern{
		Name: "blinker",
		Cells: [][]bool{
			{true, true, true},
		},
	}
}

// PlacePattern stamps the pattern bitmap onto the grid with its center on
// the anchor cell. The whole bitmap rectangle must fit inside the grid,
// otherwise the call fails with ErrBounds and writes nothing.
func (g *Grid) PlacePattern(p Pattern, center Cell) error {
	var (
		startRow = center.Row - p.Rows()/2
		startCol = center.Col - p.Cols()/2
	)
	if startRow < 0 || startCol < 0 || startRow+p.Rows() > g.rows || startCol+p.Cols() > g.cols {
		return errors.Wrapf(ErrBounds, "[PlacePattern] %s (%dx%d) anchored at (%d,%d) does not fit %dx%d grid",
			p.Name, p.Rows(), p.Cols(), center.Row, center.Col, g.rows, g.cols)
	}
	for r, row := range p.Cells {
		for c, alive := range row {
			g.cells[startRow+r][startCol+c] = alive
		}
	}
	return nil
}

// NewPatternGrid creates an all-dead grid with the pattern placed at the
// grid center, the anchor the showcase animations use.
func NewPatternGrid(rows, cols int, p Pattern) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewPatternGrid] invalid dimensions")
	}
	if err = g.PlacePattern(p, Cell{Row: rows / 2, Col: cols / 2}); err != nil {
		return nil, err
	}
	return g, nil
}

// QuadrantCenters returns the four anchors that center one pattern in each
// quadrant of the grid. On a 50x50 grid these are (12,12), (12,37),
// (37,12) and (37,37).
func QuadrantCenters(rows, cols int) []Cell {
	return []Cell{
		{Row: rows / 4, Col: cols / 4},
		{Row: rows / 4, Col: 3 * cols / 4},
		{Row: 3 * rows / 4, Col: cols / 4},
		{Row: 3 * rows / 4, Col: 3 * cols / 4},
	}
}
