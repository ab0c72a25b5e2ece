package rules

// Neighbor-count thresholds for Conway's Game of Life.
const (
	SurviveMin = 2
	SurviveMax = 3
	BirthCount = 3
)

/*
ApplyConwayRules reports whether a cell with the given number of alive
neighbors is alive in the next generation.

  - alive, fewer than SurviveMin neighbors: dies (underpopulation)
  - alive, SurviveMin..SurviveMax neighbors: survives
  - alive, more than SurviveMax neighbors: dies (overpopulation)
  - dead, exactly BirthCount neighbors: becomes alive (reproduction)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthCount
}
