package tetris

import "math/rand/v2"

// Source picks the kind of the next piece to spawn.
type Source interface {
	Next() Kind
}

// UniformSource picks each kind independently with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

func NewUniformSource(rng *rand.Rand) *UniformSource {
	return &UniformSource{rng: rng}
}

func (s *UniformSource) Next() Kind {
	return Kind(s.rng.IntN(KindCount))
}

// BagSource deals all seven kinds in a shuffled order before reshuffling.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

func NewBagSource(rng *rand.Rand) *BagSource {
	return &BagSource{rng: rng}
}

func (s *BagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.bag = Kinds()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	kind := s.bag[0]
	s.bag = s.bag[1:]
	return kind
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end.
// It is mostly useful for scripted games and tests.
type SequenceSource struct {
	kinds []Kind
	next  int
}

func NewSequenceSource(kinds ...Kind) *SequenceSource {
	return &SequenceSource{kinds: kinds}
}

func (s *SequenceSource) Next() Kind {
	if len(s.kinds) == 0 {
		return KindO
	}
	kind := s.kinds[s.next%len(s.kinds)]
	s.next++
	return kind
}
