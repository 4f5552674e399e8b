package engine

// Wall-kick offset tables. When a naive rotation collides, the
// placement engine walks the transition's offset list in order and
// accepts the first candidate that fits.
//
// Static SRS data, stored as (dRow, dCol) deltas in grid space
// (rows grow downward, so the guideline's +y becomes a negative row
// delta). J, L, S, T and Z share one table; I has its own; O has a
// single trivial state and never kicks.

type kickOffset struct {
	dRow, dCol int
}

// dirIndex maps a RotationDir to the second table index
func dirIndex(dir RotationDir) int {
	if dir == RotateCW {
		return 0
	}
	return 1
}

// kicksJLSTZ[fromRot][dirIndex] lists the candidate offsets for the
// transition starting at fromRot in the given direction
var kicksJLSTZ = [NumRotations][2][5]kickOffset{
	0: {
		{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}}, // 0 -> 1
		{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},    // 0 -> 3
	},
	1: {
		{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}}, // 1 -> 2
		{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}}, // 1 -> 0
	},
	2: {
		{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},    // 2 -> 3
		{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}}, // 2 -> 1
	},
	3: {
		{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}}, // 3 -> 0
		{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}}, // 3 -> 2
	},
}

var kicksI = [NumRotations][2][5]kickOffset{
	0: {
		{{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}}, // 0 -> 1
		{{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}}, // 0 -> 3
	},
	1: {
		{{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}}, // 1 -> 2
		{{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}}, // 1 -> 0
	},
	2: {
		{{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}}, // 2 -> 3
		{{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}}, // 2 -> 1
	},
	3: {
		{{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}}, // 3 -> 0
		{{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}}, // 3 -> 2
	},
}

var kicksO = [5]kickOffset{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}

// kicksFor returns the offset list for a shape's rotation transition
func kicksFor(s Shape, fromRot int, dir RotationDir) [5]kickOffset {
	switch s {
	case ShapeI:
		return kicksI[fromRot][dirIndex(dir)]
	case ShapeO:
		return kicksO
	default:
		return kicksJLSTZ[fromRot][dirIndex(dir)]
	}
}
