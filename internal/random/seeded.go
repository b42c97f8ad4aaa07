package random

import "math/rand"

// Seeded is a deterministic Source. Two Seeded values built from the same seed
// answer an identical call sequence identically.
type Seeded struct {
	rng *rand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) RollChance(probability float64, _ string) bool {
	checkProbability(probability)
	return s.rng.Float64()*100 < probability
}

func (s *Seeded) RandomReal(min, max float64, _ string) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

func (s *Seeded) RandomInt(min, max int, _ string) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
