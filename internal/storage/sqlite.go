// Package storage keeps a journal of finished Snake sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished session.
type SessionRecord struct {
	ID        int64
	SessionID string // uuid, generated by SaveSession when empty
	GameID    string
	Player    string // local user or SSH user name
	Length    int    // Final snake length
	Apples    int
	Ticks     uint64
	EndReason string // "hit a wall", "bit itself", "board filled", "quit", ...
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	Sessions    int
	Longest     int
	TotalApples int64
	LastPlayed  time.Time
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			length INTEGER NOT NULL,
			apples INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_longest ON sessions(game_id, length DESC);
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

// SaveSession appends a finished session to the journal.
// Returns the row id of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	if rec.GameID == "" {
		return 0, errors.New("storage: session has no game id")
	}
	if rec.SessionID == "" {
		rec.SessionID = NewSessionID()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, game_id, player, length, apples, ticks, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.GameID, rec.Player, rec.Length, rec.Apples, int64(rec.Ticks), rec.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions returns the latest sessions for the given game, newest first.
// An empty gameID matches every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, player, length, apples, ticks, end_reason, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.GameID, &rec.Player,
			&rec.Length, &rec.Apples, &ticks, &rec.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Ticks = uint64(ticks)
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// LongestRun returns the greatest final length recorded for the given game.
// Returns 0 if no sessions exist.
func (s *Store) LongestRun(gameID string) (int, error) {
	var length sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(length) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&length)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}

	if !length.Valid {
		return 0, nil
	}
	return int(length.Int64), nil
}

// ClearSessions deletes every journal entry for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every game in the journal.
func (s *Store) Stats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(length), SUM(apples), MAX(created_at)
		 FROM sessions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Sessions, &gs.Longest, &gs.TotalApples, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
