package engine

import "testing"

func TestSpawnFillsEmptyCell(t *testing.T) {
	g := newTestGrid(t, 2, cells{{0, 0}: 4, {1, 0}: 8, {0, 1}: 16})
	sp := NewSpawner(1, 2)

	tile, ok := sp.Spawn(g)
	if !ok {
		t.Fatal("Spawn returned false with one empty cell")
	}
	if tile.Pos != (Position{1, 1}) || tile.Value != 2 {
		t.Errorf("spawned %v, want value 2 at (1,1)", tile)
	}
	if !g.Full() {
		t.Error("grid not full after filling the last cell")
	}

	if _, ok := sp.Spawn(g); ok {
		t.Error("Spawn on a full grid returned true")
	}
	if g.Len() != 4 {
		t.Errorf("Len = %d after spawning on a full grid", g.Len())
	}
}

func TestSpawnDeterministicSeed(t *testing.T) {
	run := func(seed int64) []Position {
		g := newTestGrid(t, 4, nil)
		sp := NewSpawner(seed, 2)
		var out []Position
		for range 10 {
			tile, _ := sp.Spawn(g)
			out = append(out, tile.Pos)
		}
		return out
	}

	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs for the same seed: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestSpawnInitialDistinct(t *testing.T) {
	for seed := range int64(50) {
		g := newTestGrid(t, 4, nil)
		tiles := NewSpawner(seed, 0).SpawnInitial(g, 2)

		if len(tiles) != 2 {
			t.Fatalf("seed %d: spawned %d tiles, want 2", seed, len(tiles))
		}
		if tiles[0].Pos == tiles[1].Pos {
			t.Fatalf("seed %d: both initial tiles at %s", seed, tiles[0].Pos)
		}
		for _, tile := range tiles {
			if tile.Value != MinTileValue {
				t.Errorf("seed %d: initial tile value %d, want %d", seed, tile.Value, MinTileValue)
			}
		}
	}
}

func TestSpawnInitialStopsWhenFull(t *testing.T) {
	g := newTestGrid(t, 2, nil)
	tiles := NewSpawner(9, 2).SpawnInitial(g, 10)

	if len(tiles) != 4 {
		t.Errorf("spawned %d tiles on a 2x2 board, want 4", len(tiles))
	}
}

func TestSpawnUniform(t *testing.T) {
	const rounds = 8000
	counts := map[Position]int{}
	sp := NewSpawner(99, 2)

	for range rounds {
		g := newTestGrid(t, 2, nil)
		tile, _ := sp.Spawn(g)
		counts[tile.Pos]++
	}

	if len(counts) != 4 {
		t.Fatalf("spawned on %d distinct cells, want 4", len(counts))
	}
	for p, n := range counts {
		// Expected 2000 per cell.
		if n < 1700 || n > 2300 {
			t.Errorf("cell %s chosen %d times out of %d", p, n, rounds)
		}
	}
}
