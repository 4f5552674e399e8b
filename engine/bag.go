package engine

import "math/rand"

// ShapeSource produces the spawn sequence. The Board never touches
// randomness directly, so tests can inject a fixed sequence.
type ShapeSource interface {
	Next() Shape
}

// BagSource is the 7-bag randomizer: a shuffled bag of all seven
// shapes, refilled when empty. Any rolling window of seven spawns from
// bag boundaries contains each shape exactly once.
type BagSource struct {
	rng *rand.Rand
	bag [NumShapes]Shape
	idx int
}

// NewBagSource creates a 7-bag source seeded for reproducibility
func NewBagSource(seed int64) *BagSource {
	b := &BagSource{
		rng: rand.New(rand.NewSource(seed)),
		idx: NumShapes, // force a refill on first Next
	}
	return b
}

// Next returns the next shape from the bag, reshuffling as needed
func (b *BagSource) Next() Shape {
	if b.idx >= NumShapes {
		b.refill()
	}
	s := b.bag[b.idx]
	b.idx++
	return s
}

func (b *BagSource) refill() {
	b.bag = [NumShapes]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
	b.rng.Shuffle(NumShapes, func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
	b.idx = 0
}

// SequenceSource replays a fixed shape sequence, cycling when
// exhausted. Test-only policy for deterministic boards.
type SequenceSource struct {
	shapes []Shape
	idx    int
}

// NewSequenceSource creates a source cycling over the given shapes
func NewSequenceSource(shapes ...Shape) *SequenceSource {
	if len(shapes) == 0 {
		shapes = []Shape{ShapeI}
	}
	return &SequenceSource{shapes: shapes}
}

// Next returns the next shape in the fixed sequence
func (s *SequenceSource) Next() Shape {
	shape := s.shapes[s.idx%len(s.shapes)]
	s.idx++
	return shape
}
