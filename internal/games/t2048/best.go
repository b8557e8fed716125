package t2048

import "sync"

// BestScores keeps the best score per board size for the life of the
// process, so a game started from the menu begins with the best of the
// games before it. Safe for concurrent use.
type BestScores struct {
	mu   sync.Mutex
	best map[int]uint64
}

// NewBestScores returns an empty record.
func NewBestScores() *BestScores {
	return &BestScores{best: make(map[int]uint64)}
}

// Get returns the best score seen on a board size.
func (b *BestScores) Get(size int) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best[size]
}

// Record raises the best score of a board size. Lower scores are ignored.
func (b *BestScores) Record(size int, score uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if score > b.best[size] {
		b.best[size] = score
	}
}
