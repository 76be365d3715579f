package tetris

import (
	"fmt"
	"math/rand"
)

// ShapeSource picks the shape of each spawned piece.
type ShapeSource interface {
	Next() Shape
}

// Randomizer names accepted by NewShapeSource.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewShapeSource returns the named randomizer seeded with rng.
// An empty name selects the uniform randomizer.
func NewShapeSource(name string, rng *rand.Rand) (ShapeSource, error) {
	switch name {
	case "", RandomizerUniform:
		return &uniformSource{rng: rng}, nil
	case RandomizerBag:
		return &bagSource{rng: rng}, nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}

// uniformSource draws every shape independently with equal probability.
type uniformSource struct {
	rng *rand.Rand
}

func (s *uniformSource) Next() Shape {
	return Shape(s.rng.Intn(ShapeCount))
}

// bagSource deals shapes from a shuffled bag of all seven, refilling when empty.
type bagSource struct {
	rng *rand.Rand
	bag []Shape
}

func (s *bagSource) Next() Shape {
	if len(s.bag) == 0 {
		s.bag = make([]Shape, ShapeCount)
		for i := range s.bag {
			s.bag[i] = Shape(i)
		}
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	next := s.bag[0]
	s.bag = s.bag[1:]
	return next
}

// FixedSource returns shapes from a list in order, cycling when exhausted.
// Useful for scripted games and tests.
type FixedSource struct {
	Shapes []Shape
	pos    int
}

// Next returns the next shape in the list.
func (s *FixedSource) Next() Shape {
	if len(s.Shapes) == 0 {
		return 0
	}
	next := s.Shapes[s.pos%len(s.Shapes)]
	s.pos++
	return next
}
