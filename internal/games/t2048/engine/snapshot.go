package engine

// Snapshot is a read-only copy of a session taken between moves.
// It shares no memory with the session.
type Snapshot struct {
	Size    int
	Tiles   []Tile
	Score   uint64
	Best    uint64
	State   RunState
	Moves   int
	MaxTile uint32
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Size:    s.grid.Size(),
		Tiles:   s.grid.Tiles(),
		Score:   s.score.Score(),
		Best:    s.score.Best(),
		State:   s.state,
		Moves:   s.moves,
		MaxTile: s.grid.MaxTile(),
	}
}

// Value returns the tile value at p, or 0 for an empty cell.
func (s Snapshot) Value(p Position) uint32 {
	for _, t := range s.Tiles {
		if t.Pos == p {
			return t.Value
		}
	}
	return 0
}

// Rows returns the board as printed on screen: the first row is the top
// of the board (y = size-1).
func (s Snapshot) Rows() [][]uint32 {
	rows := make([][]uint32, s.Size)
	for i := range rows {
		rows[i] = make([]uint32, s.Size)
	}
	for _, t := range s.Tiles {
		rows[s.Size-1-t.Pos.Y][t.Pos.X] = t.Value
	}
	return rows
}
