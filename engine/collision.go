package engine

import "github.com/lixenwraith/termtris/constants"

// Placement engine: validates piece candidates against the well.
// All functions are pure; the Board applies accepted candidates.

// CanPlace reports whether every cell of the piece is inside the well
// side and bottom bounds and free of locked blocks. Rows above the
// visible top are legal: pieces may spawn or kick partially above the
// well.
func CanPlace(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= constants.GridWidth || c.Row >= constants.GridHeight {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if g.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// TryMove returns the translated piece if the target position is
// placeable. A false result means the move is rejected and the caller
// keeps its piece unchanged.
func TryMove(g *Grid, p Piece, dRow, dCol int) (Piece, bool) {
	candidate := p.Translated(dRow, dCol)
	if !CanPlace(g, candidate) {
		return p, false
	}
	return candidate, true
}

// TryRotate rotates the piece, walking the transition's wall-kick
// offsets in order and returning the first candidate that fits.
// A false result means no offset worked and the rotation is rejected.
func TryRotate(g *Grid, p Piece, dir RotationDir) (Piece, bool) {
	rotated := p.Rotated(dir)
	for _, k := range kicksFor(p.Shape, p.Rot, dir) {
		candidate := rotated.Translated(k.dRow, k.dCol)
		if CanPlace(g, candidate) {
			return candidate, true
		}
	}
	return p, false
}

// DropDistance returns the maximum number of rows the piece can
// descend before colliding. Used by hard drop and the ghost piece.
func DropDistance(g *Grid, p Piece) int {
	dist := 0
	for CanPlace(g, p.Translated(dist+1, 0)) {
		dist++
	}
	return dist
}
