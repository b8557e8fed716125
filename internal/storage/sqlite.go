// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score history.
type Store struct {
	db *sql.DB
}

// EndReason tells how a game finished.
type EndReason string

const (
	EndNoMoves EndReason = "no_moves" // Board full with no merge left
	EndGaveUp  EndReason = "gave_up"  // Player ended the game
)

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	BoardSize int
	Score     int64
	MaxTile   int64
	Moves     int
	Seed      int64
	EndReason EndReason
	CreatedAt time.Time
}

// ErrInvalidRecord is returned when a record cannot describe a real game.
var ErrInvalidRecord = errors.New("storage: invalid game record")

const timeLayout = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_size ON games(board_size);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(board_size, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.BoardSize < 2 || rec.Score < 0 || rec.MaxTile < 0 || rec.Moves < 0 {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidRecord, rec)
	}
	if rec.EndReason == "" {
		rec.EndReason = EndNoMoves
	}

	result, err := s.db.Exec(
		`INSERT INTO games (board_size, score, max_tile, moves, seed, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.BoardSize, rec.Score, rec.MaxTile, rec.Moves, rec.Seed, string(rec.EndReason),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const gameColumns = `id, board_size, score, max_tile, moves, seed, end_reason, created_at`

// TopGames retrieves the best N games for a board size.
// Results are ordered by score descending; ties go to the earlier game.
func (s *Store) TopGames(boardSize, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE board_size = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		boardSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	return scanGames(rows)
}

// RecentGames retrieves the most recent games of any size.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent games: %w", err)
	}
	return scanGames(rows)
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var reason string
		var createdAt any
		if err := rows.Scan(&g.ID, &g.BoardSize, &g.Score, &g.MaxTile, &g.Moves, &g.Seed, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.EndReason = EndReason(reason)
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// parseTime handles both driver representations of a DATETIME column.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for a board size.
// Returns 0 if no games exist.
func (s *Store) HighScore(boardSize int) (int64, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE board_size = ?",
		boardSize,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return score.Int64, nil
}

// ClearGames deletes the history of a board size; 0 clears every size.
// Returns the number of deleted games.
func (s *Store) ClearGames(boardSize int) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if boardSize == 0 {
		res, err = s.db.Exec("DELETE FROM games")
	} else {
		res, err = s.db.Exec("DELETE FROM games WHERE board_size = ?", boardSize)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear games: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted games: %w", err)
	}
	return n, nil
}

// BoardStats contains aggregated statistics for one board size.
type BoardStats struct {
	BoardSize  int
	GamesCount int
	HighScore  int64
	AvgScore   float64
	BestTile   int64
	TotalMoves int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a board size.
func (s *Store) Stats(boardSize int) (*BoardStats, error) {
	stats := &BoardStats{BoardSize: boardSize}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM games WHERE board_size = ?`,
		boardSize,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestTile, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every board size that has been played.
func (s *Store) AllStats() (map[int]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_size, COUNT(*), MAX(score), AVG(score), MAX(max_tile), SUM(moves), MAX(created_at)
		 FROM games
		 GROUP BY board_size`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*BoardStats)
	for rows.Next() {
		var st BoardStats
		var lastPlayed any
		if err := rows.Scan(&st.BoardSize, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.BestTile, &st.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.BoardSize] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
