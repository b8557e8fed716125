package engine

import (
	"errors"
	"testing"
)

// cells describes a board by position → value.
type cells map[Position]uint32

func newTestGrid(t *testing.T, size int, c cells) *Grid {
	t.Helper()
	g, err := NewGrid(size)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", size, err)
	}
	for p, v := range c {
		if _, err := g.Insert(p, v); err != nil {
			t.Fatalf("Insert(%s, %d): %v", p, v, err)
		}
	}
	return g
}

func gridCells(g *Grid) cells {
	c := cells{}
	for _, t := range g.Tiles() {
		c[t.Pos] = t.Value
	}
	return c
}

func assertCells(t *testing.T, g *Grid, want cells) {
	t.Helper()
	got := gridCells(g)
	if len(got) != len(want) {
		t.Errorf("tile count = %d, want %d (got %v)", len(got), len(want), got)
		return
	}
	for p, v := range want {
		if got[p] != v {
			t.Errorf("tile at %s = %d, want %d (board %v)", p, got[p], v, got)
		}
	}
}

func TestNewGridSize(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{1, true},
		{0, true},
		{-3, true},
		{MinSize, false},
		{DefaultSize, false},
		{MaxSize, false},
		{MaxSize + 1, true},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.size)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewGrid(%d) error = %v, want ErrInvalidSize", tt.size, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewGrid(%d) unexpected error: %v", tt.size, err)
		}
	}
}

func TestGridInsert(t *testing.T) {
	g := newTestGrid(t, 4, cells{{1, 1}: 2})

	tests := []struct {
		name  string
		pos   Position
		value uint32
		want  error
	}{
		{"occupied", Position{1, 1}, 2, ErrOccupied},
		{"negative x", Position{-1, 0}, 2, ErrOutOfBounds},
		{"y past edge", Position{0, 4}, 2, ErrOutOfBounds},
		{"zero value", Position{0, 0}, 0, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Insert(tt.pos, tt.value)
			if !errors.Is(err, tt.want) {
				t.Errorf("Insert(%s, %d) error = %v, want %v", tt.pos, tt.value, err, tt.want)
			}
		})
	}

	if g.Len() != 1 {
		t.Errorf("failed inserts changed the grid: Len = %d", g.Len())
	}
}

func TestGridTileAt(t *testing.T) {
	g := newTestGrid(t, 4, cells{{2, 3}: 8})

	tile, ok := g.TileAt(Position{2, 3})
	if !ok || tile.Value != 8 {
		t.Errorf("TileAt(2,3) = %v, %v; want value 8", tile, ok)
	}
	if _, ok := g.TileAt(Position{0, 0}); ok {
		t.Error("TileAt(0,0) reported a tile on an empty cell")
	}
}

func TestGridTileAtOutOfBoundsPanics(t *testing.T) {
	g := newTestGrid(t, 4, nil)

	defer func() {
		if recover() == nil {
			t.Error("TileAt out of bounds did not panic")
		}
	}()
	g.TileAt(Position{4, 0})
}

func TestGridClearInvalidatesIDs(t *testing.T) {
	g := newTestGrid(t, 3, nil)
	before, _ := g.Insert(Position{0, 0}, 2)

	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("Len after Clear = %d", g.Len())
	}

	after, _ := g.Insert(Position{0, 0}, 2)
	if after.ID == before.ID {
		t.Errorf("tile ID %d reused after Clear", after.ID)
	}
}

func TestGridOrderings(t *testing.T) {
	g := newTestGrid(t, 2, cells{{1, 0}: 2, {0, 1}: 4})

	occupied := g.OccupiedPositions()
	wantOccupied := []Position{{1, 0}, {0, 1}}
	for i, p := range wantOccupied {
		if occupied[i] != p {
			t.Errorf("OccupiedPositions()[%d] = %s, want %s", i, occupied[i], p)
		}
	}

	empty := g.EmptyPositions()
	wantEmpty := []Position{{0, 0}, {1, 1}}
	if len(empty) != len(wantEmpty) {
		t.Fatalf("EmptyPositions() = %v, want %v", empty, wantEmpty)
	}
	for i, p := range wantEmpty {
		if empty[i] != p {
			t.Errorf("EmptyPositions()[%d] = %s, want %s", i, empty[i], p)
		}
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := newTestGrid(t, 4, cells{{0, 0}: 2})
	c := g.Clone()

	if _, err := c.Insert(Position{1, 0}, 4); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 {
		t.Errorf("insert into clone leaked into original: Len = %d", g.Len())
	}
}

func TestGridValuesAndMaxTile(t *testing.T) {
	g := newTestGrid(t, 3, cells{{0, 2}: 16, {2, 0}: 4})

	rows := g.Values()
	if rows[2][0] != 16 || rows[0][2] != 4 {
		t.Errorf("Values() = %v", rows)
	}
	if g.MaxTile() != 16 {
		t.Errorf("MaxTile() = %d, want 16", g.MaxTile())
	}
}
