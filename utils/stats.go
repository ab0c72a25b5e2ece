package utils

import "github.com/sheikhrachel/go-life/model"

// Stats tracks population over successive generations of a board
type Stats struct {
	Generation        int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
	BoundingBoxSize   int
}

func NewStats() *Stats {
	return &Stats{}
}

// Update records the board as the next generation
func (s *Stats) Update(b *model.Board) {
	s.Generation++
	s.Population = b.Len()
	s.PeakPopulation = max(s.PeakPopulation, s.Population)

	s.BoundingBoxSize = 0
	if r, ok := b.Bounds(); ok {
		s.BoundingBoxSize = r.Area()
	}

	// Exponential moving average for population
	if s.Generation == 1 {
		s.AveragePopulation = float64(s.Population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(s.Population) * 0.1)
	}
}

// Extinct reports whether the last recorded generation had no alive cells
func (s *Stats) Extinct() bool {
	return s.Generation > 0 && s.Population == 0
}
