package engine

// Shape identifies one of the seven tetromino shapes.
// ShapeNone doubles as the empty-cell marker in the Grid.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// NumShapes is the count of real shapes (ShapeNone excluded)
const NumShapes = 7

// NumRotations is the size of the rotation cycle for every shape.
// The O shape stores four identical states so rotation stays uniform.
const NumRotations = 4

// String returns the conventional one-letter shape name
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	}
	return "?"
}

// Cell is a grid coordinate. Row 0 is the top of the well; rows grow
// downward, columns grow rightward.
type Cell struct {
	Row, Col int
}

// rotationTable holds the occupied offsets of every shape in every
// rotation state, relative to the piece anchor (top-left of the
// shape's bounding box). Static data, SRS orientations.
var rotationTable = [8][NumRotations][4]Cell{
	ShapeI: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	ShapeO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	ShapeT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	ShapeS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	ShapeZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	ShapeJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	ShapeL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// Piece is an active tetromino: shape identity, rotation index and
// anchor position in grid space. Value type; movement and rotation
// return candidates instead of mutating.
type Piece struct {
	Shape Shape
	Rot   int
	Row   int
	Col   int
}

// Spawn returns the piece at the canonical spawn position for its
// shape. The I piece spawns one row higher so its row of four sits on
// the top visible row (columns 3-6); O is centered on columns 4-5.
func Spawn(s Shape) Piece {
	p := Piece{Shape: s, Col: 3}
	switch s {
	case ShapeI:
		p.Row = -1
	case ShapeO:
		p.Col = 4
	}
	return p
}

// Cells returns the four absolute grid coordinates the piece covers
func (p Piece) Cells() [4]Cell {
	var out [4]Cell
	for i, c := range rotationTable[p.Shape][p.Rot] {
		out[i] = Cell{Row: p.Row + c.Row, Col: p.Col + c.Col}
	}
	return out
}

// Translated returns a candidate moved by the given delta
func (p Piece) Translated(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotated returns a candidate with the rotation index advanced (CW)
// or retreated (CCW), mod 4. The grid is not consulted; collision and
// wall kicks are the placement engine's job.
func (p Piece) Rotated(dir RotationDir) Piece {
	p.Rot = (p.Rot + int(dir) + NumRotations) % NumRotations
	return p
}

// RotationDir selects the rotation direction
type RotationDir int

const (
	RotateCW  RotationDir = 1
	RotateCCW RotationDir = -1
)
