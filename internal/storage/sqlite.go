// Package storage keeps the history of finished runs in SQLite through
// the cgo-free modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultLimit is how many runs TopScores lists when asked for none.
const DefaultLimit = 10

// created_at is written by CURRENT_TIMESTAMP in this layout.
const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT    NOT NULL UNIQUE,
	game_id    TEXT    NOT NULL,
	difficulty TEXT    NOT NULL DEFAULT 'normal',
	score      INTEGER NOT NULL,
	level      INTEGER NOT NULL DEFAULT 1,
	won        INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, difficulty, score DESC);
`

// Store is a handle on the score database.
type Store struct {
	db *sql.DB
}

// Record is one finished run. Runs are never resumed from it.
type Record struct {
	ID         int64
	RunID      string
	GameID     string
	Difficulty string
	Score      int
	Level      int
	Won        bool
	CreatedAt  time.Time
}

// NewRecord describes a run that just ended under a fresh run id.
func NewRecord(gameID, difficulty string, score, level int, won bool) Record {
	return Record{
		RunID:      uuid.NewString(),
		GameID:     gameID,
		Difficulty: difficulty,
		Score:      score,
		Level:      level,
		Won:        won,
	}
}

// Open opens the database at path, creating missing parent directories
// and the schema. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close() //nolint:errcheck // Already failing
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close() //nolint:errcheck // Already failing
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close releases the connection. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore inserts r and returns its row id. A blank run id is filled in
// and a blank difficulty is stored as normal.
func (s *Store) SaveScore(r Record) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}

	res, err := s.db.Exec(
		`INSERT INTO scores (run_id, game_id, difficulty, score, level, won) VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Difficulty, r.Score, r.Level, r.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: insert run %s: %w", r.RunID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: insert run %s: %w", r.RunID, err)
	}
	return id, nil
}

// TopScores lists the best runs of a game, highest score first, then
// deepest level, then oldest. An empty difficulty matches all of them.
func (s *Store) TopScores(gameID, difficulty string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, difficulty, score, level, won, created_at
		   FROM scores
		  WHERE game_id = ? AND (? = '' OR difficulty = ?)
		  ORDER BY score DESC, level DESC, id ASC
		  LIMIT ?`,
		gameID, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			created any
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Difficulty, &r.Score, &r.Level, &r.Won, &created); err != nil {
			return nil, fmt.Errorf("storage: top scores: %w", err)
		}
		r.CreatedAt = parseTime(created)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	return out, nil
}

// HighScore is the best score of a game, 0 when nothing is recorded.
// An empty difficulty matches all of them.
func (s *Store) HighScore(gameID, difficulty string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(
		`SELECT MAX(score) FROM scores WHERE game_id = ? AND (? = '' OR difficulty = ?)`,
		gameID, difficulty, difficulty,
	).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores forgets every run of a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// GameStats summarizes every recorded run of a game.
type GameStats struct {
	GameID     string
	Runs       int
	Wins       int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time // zero when there are no runs
}

// Stats aggregates all runs of a game regardless of difficulty.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	if err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(AVG(score), 0)
		   FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.Wins, &st.HighScore, &st.BestLevel, &st.AvgScore); err != nil {
		return nil, fmt.Errorf("storage: stats %s: %w", gameID, err)
	}

	var last any
	err := s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: stats %s: %w", gameID, err)
	default:
		st.LastPlayed = parseTime(last)
	}
	return st, nil
}

// parseTime accepts created_at whether the driver hands back a time.Time
// or the raw text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
