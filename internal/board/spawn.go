package board

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.5

// Rand is the random source used for spawning. *math/rand.Rand satisfies it;
// pass a seeded one for reproducible games.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// SpawnTile places a 2 or a 4 (even odds) into a uniformly chosen empty
// cell and returns the new board. A full board is returned unchanged.
func SpawnTile(b Board, rng Rand) Board {
	next, _, _ := SpawnTileOdds(b, rng, DefaultFourProbability)
	return next
}

// SpawnTileOdds is SpawnTile with a configurable chance of spawning a 4.
// It also returns the chosen cell and whether a tile was placed.
//
// One rng.Intn draw picks the cell among the empty ones, then one
// rng.Float64 draw picks the value: below 1-fourProb gives 2, otherwise 4.
func SpawnTileOdds(b Board, rng Rand, fourProb float64) (Board, Cell, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() >= 1-fourProb {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return b, cell, true
}
