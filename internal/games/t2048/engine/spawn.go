package engine

import "math/rand"

// Spawner places new minimum-value tiles on uniformly chosen empty cells.
// The same seed always yields the same sequence of spawns.
type Spawner struct {
	rng   *rand.Rand
	value uint32
}

// NewSpawner creates a spawner seeded with seed that places tiles of value.
// A zero value falls back to MinTileValue.
func NewSpawner(seed int64, value uint32) *Spawner {
	if value == 0 {
		value = MinTileValue
	}
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		value: value,
	}
}

// Value returns the value of spawned tiles.
func (s *Spawner) Value() uint32 {
	return s.value
}

// Spawn inserts one tile on a random empty cell of g.
// Returns false when the board is full.
func (s *Spawner) Spawn(g *Grid) (Tile, bool) {
	empty := g.EmptyPositions()
	if len(empty) == 0 {
		return Tile{}, false
	}

	pos := empty[s.rng.Intn(len(empty))]
	t, err := g.Insert(pos, s.value)
	if err != nil {
		// pos came from EmptyPositions, so Insert cannot fail.
		panic(err)
	}
	return t, true
}

// SpawnInitial places up to n tiles on distinct cells, picking without
// replacement. It stops early if the board fills up.
func (s *Spawner) SpawnInitial(g *Grid, n int) []Tile {
	spawned := make([]Tile, 0, n)
	for range n {
		t, ok := s.Spawn(g)
		if !ok {
			break
		}
		spawned = append(spawned, t)
	}
	return spawned
}
