package engine

// neighbours are the orthogonal offsets checked for a possible merge.
var neighbours = [4]Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// HasLegalMove reports whether any shift could still change the board.
// A board with an empty cell always has one; a full board has one only if
// two orthogonally adjacent tiles share a value.
func HasLegalMove(g *Grid) bool {
	if !g.Full() {
		return true
	}

	for p, t := range g.tiles {
		for _, off := range neighbours {
			n := Position{X: p.X + off.X, Y: p.Y + off.Y}
			if !g.InBounds(n) {
				continue
			}
			if other, ok := g.tiles[n]; ok && other.Value == t.Value {
				return true
			}
		}
	}
	return false
}
