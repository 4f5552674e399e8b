package engine

import (
	"fmt"

	"github.com/lixenwraith/termtris/constants"
)

// Grid is the well: a fixed 10x20 matrix of locked cells. Each cell
// holds the shape identity that locked into it (ShapeNone = empty).
// Only the Board mutates it, via piece lock and line clears; renderers
// read it through Board snapshots.
type Grid struct {
	cells [constants.GridHeight][constants.GridWidth]Shape
}

// NewGrid creates an empty well
func NewGrid() *Grid {
	return &Grid{}
}

// checkBounds panics on out-of-range indices. Indexing outside the
// well is a programming fault, never a game condition; the placement
// engine bounds-checks before it ever touches the grid.
func (g *Grid) checkBounds(row, col int) {
	if row < 0 || row >= constants.GridHeight || col < 0 || col >= constants.GridWidth {
		panic(fmt.Sprintf("grid index out of bounds: row=%d col=%d", row, col))
	}
}

// IsOccupied reports whether the cell holds a locked block
func (g *Grid) IsOccupied(row, col int) bool {
	g.checkBounds(row, col)
	return g.cells[row][col] != ShapeNone
}

// Cell returns the shape identity locked into the cell
func (g *Grid) Cell(row, col int) Shape {
	g.checkBounds(row, col)
	return g.cells[row][col]
}

// Set writes a cell. Used only while locking a piece.
func (g *Grid) Set(row, col int, s Shape) {
	g.checkBounds(row, col)
	g.cells[row][col] = s
}

// RowFull reports whether every column in the row is occupied
func (g *Grid) RowFull(row int) bool {
	g.checkBounds(row, 0)
	for col := 0; col < constants.GridWidth; col++ {
		if g.cells[row][col] == ShapeNone {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows, shifting everything above each
// removed row down by one and refilling the top with empty rows.
// Rows must be sorted ascending (top to bottom): removing a higher
// row first leaves the indices of the lower ones untouched, which
// keeps the shift well-defined when non-adjacent rows clear together.
func (g *Grid) ClearRows(rows []int) {
	for _, row := range rows {
		g.checkBounds(row, 0)
		for r := row; r >= 1; r-- {
			g.cells[r] = g.cells[r-1]
		}
		g.cells[0] = [constants.GridWidth]Shape{}
	}
}

// OccupiedCount returns the number of locked cells
func (g *Grid) OccupiedCount() int {
	count := 0
	for row := 0; row < constants.GridHeight; row++ {
		for col := 0; col < constants.GridWidth; col++ {
			if g.cells[row][col] != ShapeNone {
				count++
			}
		}
	}
	return count
}

// Reset empties the well for a new game
func (g *Grid) Reset() {
	g.cells = [constants.GridHeight][constants.GridWidth]Shape{}
}
