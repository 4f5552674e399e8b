package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termtris/constants"
)

// TestCanPlaceBounds verifies side and bottom bounds reject a piece
// while rows above the visible top stay legal
func TestCanPlaceBounds(t *testing.T) {
	g := NewGrid()
	p := Piece{Shape: ShapeO, Row: 5, Col: 4}

	assert.True(t, CanPlace(g, p))
	assert.False(t, CanPlace(g, Piece{Shape: ShapeO, Row: 5, Col: -1}), "negative column")
	assert.False(t, CanPlace(g, Piece{Shape: ShapeO, Row: 5, Col: constants.GridWidth - 1}), "column past right wall")
	assert.False(t, CanPlace(g, Piece{Shape: ShapeO, Row: constants.GridHeight - 1, Col: 4}), "row past floor")
	assert.True(t, CanPlace(g, Piece{Shape: ShapeO, Row: -2, Col: 4}), "above visible top is permitted")
}

// TestCanPlaceOverlap verifies locked cells block placement
func TestCanPlaceOverlap(t *testing.T) {
	g := NewGrid()
	g.Set(6, 4, ShapeZ)

	assert.False(t, CanPlace(g, Piece{Shape: ShapeO, Row: 5, Col: 4}))
	assert.True(t, CanPlace(g, Piece{Shape: ShapeO, Row: 5, Col: 6}))
}

// TestTryMove verifies accepted moves translate and rejected moves
// leave the piece unchanged
func TestTryMove(t *testing.T) {
	g := NewGrid()
	p := Piece{Shape: ShapeT, Row: 5, Col: 4}

	moved, ok := TryMove(g, p, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 5, moved.Col)

	blocked, ok := TryMove(g, Piece{Shape: ShapeT, Row: 5, Col: 0}, 0, -1)
	assert.False(t, ok)
	assert.Equal(t, 0, blocked.Col, "rejected move returns the original piece")
}

// TestTryRotateFree verifies a naive rotation in open space succeeds
// with the zero kick
func TestTryRotateFree(t *testing.T) {
	g := NewGrid()
	p := Piece{Shape: ShapeT, Row: 5, Col: 4}

	rotated, ok := TryRotate(g, p, RotateCW)
	require.True(t, ok)
	assert.Equal(t, 1, rotated.Rot)
	assert.Equal(t, 5, rotated.Row, "no kick applied in open space")
	assert.Equal(t, 4, rotated.Col)
}

// TestTryRotateWallKick verifies a rotation blocked by the wall is
// rescued by a later offset in the transition's kick list
func TestTryRotateWallKick(t *testing.T) {
	g := NewGrid()
	// Vertical I hugging the left wall; the flat result of CW
	// rotation would hang past the wall without a kick
	p := Piece{Shape: ShapeI, Rot: 1, Row: 5, Col: -2}
	require.True(t, CanPlace(g, p))

	rotated, ok := TryRotate(g, p, RotateCW)
	require.True(t, ok)
	assert.Equal(t, 2, rotated.Rot)
	for _, c := range rotated.Cells() {
		assert.GreaterOrEqual(t, c.Col, 0)
		assert.Less(t, c.Col, constants.GridWidth)
	}
}

// TestTryRotateRejected verifies rotation fails cleanly when no kick
// offset fits
func TestTryRotateRejected(t *testing.T) {
	g := NewGrid()
	// Box the vertical I in tightly on both sides along its height
	// and below, so every kick candidate collides
	for row := 0; row < constants.GridHeight; row++ {
		for col := 0; col < constants.GridWidth; col++ {
			g.Set(row, col, ShapeL)
		}
	}
	for row := 4; row < 9; row++ {
		g.Set(row, 0, ShapeNone)
	}
	p := Piece{Shape: ShapeI, Rot: 1, Row: 4, Col: -2}
	require.True(t, CanPlace(g, p))

	same, ok := TryRotate(g, p, RotateCW)
	assert.False(t, ok)
	assert.Equal(t, p, same, "rejected rotation returns the original piece")
}

// TestDropDistance verifies the maximum descent on an empty well and
// on top of a stack
func TestDropDistance(t *testing.T) {
	g := NewGrid()

	i := Spawn(ShapeI) // flat on row 0
	assert.Equal(t, constants.GridHeight-1, DropDistance(g, i))

	// A stack under part of the piece shortens the drop
	g.Set(19, 3, ShapeJ)
	assert.Equal(t, constants.GridHeight-2, DropDistance(g, i))

	// A resting piece has zero distance left
	rested := i.Translated(DropDistance(g, i), 0)
	assert.Zero(t, DropDistance(g, rested))
}
