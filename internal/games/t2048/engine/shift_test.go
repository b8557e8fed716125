package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestShiftScenarios(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		dir       Direction
		board     cells
		want      cells
		wantDelta uint64
		changed   bool
	}{
		{
			name:      "pair merges and four slides behind it",
			size:      4,
			dir:       Left,
			board:     cells{{0, 0}: 2, {1, 0}: 2, {3, 0}: 4},
			want:      cells{{0, 0}: 4, {1, 0}: 4},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "three equal tiles merge leftmost pair only",
			size:      4,
			dir:       Left,
			board:     cells{{0, 0}: 2, {2, 0}: 2, {3, 0}: 2},
			want:      cells{{0, 0}: 4, {1, 0}: 2},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "three equal tiles right merges rightmost pair",
			size:      4,
			dir:       Right,
			board:     cells{{0, 0}: 2, {1, 0}: 2, {2, 0}: 2},
			want:      cells{{3, 0}: 4, {2, 0}: 2},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "up compacts toward top edge",
			size:      4,
			dir:       Up,
			board:     cells{{0, 0}: 2, {0, 1}: 2, {0, 2}: 2},
			want:      cells{{0, 3}: 4, {0, 2}: 2},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "down compacts toward bottom edge",
			size:      4,
			dir:       Down,
			board:     cells{{1, 3}: 2, {1, 2}: 2, {1, 1}: 2},
			want:      cells{{1, 0}: 4, {1, 1}: 2},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "two pairs in a row",
			size:      4,
			dir:       Left,
			board:     cells{{0, 0}: 2, {1, 0}: 2, {2, 0}: 4, {3, 0}: 4},
			want:      cells{{0, 0}: 4, {1, 0}: 8},
			wantDelta: 12,
			changed:   true,
		},
		{
			name:      "four equal tiles",
			size:      4,
			dir:       Right,
			board:     cells{{0, 2}: 4, {1, 2}: 4, {2, 2}: 4, {3, 2}: 4},
			want:      cells{{3, 2}: 8, {2, 2}: 8},
			wantDelta: 16,
			changed:   true,
		},
		{
			name:      "merged tile does not merge again",
			size:      4,
			dir:       Left,
			board:     cells{{0, 0}: 2, {1, 0}: 2, {2, 0}: 4},
			want:      cells{{0, 0}: 4, {1, 0}: 4},
			wantDelta: 4,
			changed:   true,
		},
		{
			name:      "equal values in different rows stay apart",
			size:      4,
			dir:       Left,
			board:     cells{{0, 0}: 2, {1, 0}: 4, {2, 1}: 4},
			want:      cells{{0, 0}: 2, {1, 0}: 4, {0, 1}: 4},
			wantDelta: 0,
			changed:   true,
		},
		{
			name:      "rows are compacted independently",
			size:      4,
			dir:       Left,
			board:     cells{{3, 0}: 2, {3, 1}: 2, {2, 3}: 8, {3, 3}: 8},
			want:      cells{{0, 0}: 2, {0, 1}: 2, {0, 3}: 16},
			wantDelta: 16,
			changed:   true,
		},
		{
			name:    "already compacted is a no-op",
			size:    4,
			dir:     Left,
			board:   cells{{0, 0}: 2, {1, 0}: 4, {0, 1}: 8},
			want:    cells{{0, 0}: 2, {1, 0}: 4, {0, 1}: 8},
			changed: false,
		},
		{
			name:    "empty board is a no-op",
			size:    3,
			dir:     Down,
			board:   cells{},
			want:    cells{},
			changed: false,
		},
		{
			name:      "larger board",
			size:      6,
			dir:       Up,
			board:     cells{{5, 0}: 2, {5, 1}: 2, {5, 4}: 32},
			want:      cells{{5, 5}: 32, {5, 4}: 4},
			wantDelta: 4,
			changed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t, tt.size, tt.board)
			res, err := Shift(g, tt.dir)
			if err != nil {
				t.Fatalf("Shift: %v", err)
			}
			assertCells(t, g, tt.want)
			if res.ScoreDelta != tt.wantDelta {
				t.Errorf("ScoreDelta = %d, want %d", res.ScoreDelta, tt.wantDelta)
			}
			if res.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", res.Changed, tt.changed)
			}
		})
	}
}

func TestShiftReportsMovesAndMerges(t *testing.T) {
	g := newTestGrid(t, 4, nil)
	a, _ := g.Insert(Position{1, 0}, 2)
	b, _ := g.Insert(Position{3, 0}, 2)
	c, _ := g.Insert(Position{0, 2}, 8)

	res, err := Shift(g, Left)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Merges) != 1 {
		t.Fatalf("Merges = %v, want one", res.Merges)
	}
	m := res.Merges[0]
	if m.Target.ID != a.ID || m.Consumed.ID != b.ID || m.Value != 4 {
		t.Errorf("merge = %+v, want target %d consuming %d into 4", m, a.ID, b.ID)
	}
	if m.Consumed.Pos != (Position{3, 0}) {
		t.Errorf("consumed tile position = %s, want its pre-shift cell", m.Consumed.Pos)
	}
	if len(res.Removed) != 1 || res.Removed[0].ID != b.ID {
		t.Errorf("Removed = %v, want tile %d", res.Removed, b.ID)
	}

	byID := map[uint64]TileMove{}
	for _, mv := range res.Moves {
		byID[mv.ID] = mv
	}
	if _, ok := byID[b.ID]; ok {
		t.Error("consumed tile listed among surviving moves")
	}
	if mv := byID[a.ID]; mv.To != (Position{0, 0}) || !mv.Merged || !mv.Moved() {
		t.Errorf("merge target move = %+v", mv)
	}
	if mv := byID[c.ID]; mv.Moved() || mv.Merged {
		t.Errorf("untouched tile move = %+v", mv)
	}

	// Surviving tiles keep their identity.
	if tile, _ := g.TileAt(Position{0, 0}); tile.ID != a.ID {
		t.Errorf("tile at (0,0) has ID %d, want %d", tile.ID, a.ID)
	}
}

func TestShiftInvalidDirection(t *testing.T) {
	g := newTestGrid(t, 4, cells{{3, 0}: 2})

	_, err := Shift(g, Direction(9))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("error = %v, want ErrInvalidDirection", err)
	}
	assertCells(t, g, cells{{3, 0}: 2})
}

func TestShiftOverflowLeavesGridUnchanged(t *testing.T) {
	const huge = uint32(1) << 31
	board := cells{{0, 0}: 2, {3, 0}: 4, {0, 1}: huge, {1, 1}: huge}
	g := newTestGrid(t, 4, board)

	_, err := Shift(g, Left)
	if !errors.Is(err, ErrValueOverflow) {
		t.Fatalf("error = %v, want ErrValueOverflow", err)
	}
	assertCells(t, g, board)
}

// randomGrid fills roughly half the cells with small powers of two.
func randomGrid(t *testing.T, rng *rand.Rand, size int) *Grid {
	t.Helper()
	c := cells{}
	for x := range size {
		for y := range size {
			if rng.Intn(2) == 0 {
				c[Position{x, y}] = uint32(2) << rng.Intn(4)
			}
		}
	}
	return newTestGrid(t, size, c)
}

func sumValues(g *Grid) uint64 {
	var sum uint64
	for _, t := range g.Tiles() {
		sum += uint64(t.Value)
	}
	return sum
}

func TestShiftMergeConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 200 {
		size := MinSize + i%5
		g := randomGrid(t, rng, size)
		dir := Directions()[i%4]

		beforeLen := g.Len()
		beforeSum := sumValues(g)

		res, err := Shift(g, dir)
		if err != nil {
			t.Fatal(err)
		}

		if g.Len() != beforeLen-len(res.Merges) {
			t.Fatalf("case %d: %d tiles after %d merges from %d", i, g.Len(), len(res.Merges), beforeLen)
		}

		// Merging v+v into 2v keeps the board sum; the score gains 2v.
		var mergeSum uint64
		for _, m := range res.Merges {
			if m.Value != 2*m.Consumed.Value {
				t.Fatalf("case %d: merge of %d produced %d", i, m.Consumed.Value, m.Value)
			}
			mergeSum += uint64(m.Value)
		}
		if res.ScoreDelta != mergeSum {
			t.Fatalf("case %d: ScoreDelta = %d, merges sum to %d", i, res.ScoreDelta, mergeSum)
		}
		if sumValues(g) != beforeSum {
			t.Fatalf("case %d: board sum %d, want %d", i, sumValues(g), beforeSum)
		}
	}
}

func TestShiftNoDoubleMerge(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := range 200 {
		g := randomGrid(t, rng, 4)
		res, err := Shift(g, Directions()[i%4])
		if err != nil {
			t.Fatal(err)
		}

		seen := map[uint64]bool{}
		consumed := map[uint64]bool{}
		for _, m := range res.Merges {
			if seen[m.Target.ID] {
				t.Fatalf("case %d: tile %d merged twice", i, m.Target.ID)
			}
			seen[m.Target.ID] = true
			consumed[m.Consumed.ID] = true
		}
		for id := range seen {
			if consumed[id] {
				t.Fatalf("case %d: tile %d both absorbed and was absorbed", i, id)
			}
		}
	}
}

func TestShiftDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := range 100 {
		g := randomGrid(t, rng, 5)
		c := g.Clone()
		dir := Directions()[i%4]

		if _, err := Shift(g, dir); err != nil {
			t.Fatal(err)
		}
		if _, err := Shift(c, dir); err != nil {
			t.Fatal(err)
		}
		assertCells(t, c, gridCells(g))
	}
}

func TestShiftKeepsTilesInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sp := NewSpawner(5, 2)

	for i := range 200 {
		size := MinSize + i%4
		g := randomGrid(t, rng, size)
		if _, err := Shift(g, Directions()[i%4]); err != nil {
			t.Fatal(err)
		}
		sp.Spawn(g)

		seen := map[Position]bool{}
		for _, tile := range g.Tiles() {
			if !g.InBounds(tile.Pos) {
				t.Fatalf("case %d: tile %v out of bounds", i, tile)
			}
			if seen[tile.Pos] {
				t.Fatalf("case %d: two tiles at %s", i, tile.Pos)
			}
			seen[tile.Pos] = true
		}
	}
}

func TestCanShift(t *testing.T) {
	g := newTestGrid(t, 3, cells{{0, 0}: 2, {1, 0}: 4})

	if CanShift(g, Left) {
		t.Error("CanShift(Left) = true on a left-compacted row")
	}
	if !CanShift(g, Right) {
		t.Error("CanShift(Right) = false")
	}
	if !CanShift(g, Up) {
		t.Error("CanShift(Up) = false")
	}
	if CanShift(g, Down) {
		t.Error("CanShift(Down) = true on a bottom row")
	}
	assertCells(t, g, cells{{0, 0}: 2, {1, 0}: 4})
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", Left, false},
		{"RIGHT", Right, false},
		{" up ", Up, false},
		{"j", Down, false},
		{"h", Left, false},
		{"w", Up, false},
		{"d", Right, false},
		{"sideways", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDirection) {
				t.Errorf("ParseDirection(%q) error = %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
