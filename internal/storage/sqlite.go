// Package storage provides SQLite-based persistence for named levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
)

// ErrLevelNotFound is returned when no level has the requested name.
var ErrLevelNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for level persistence.
type Store struct {
	db *sql.DB
}

// LevelRecord is a saved level. Code is in the level text format.
type LevelRecord struct {
	Name      string
	Code      string
	Width     int
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			name TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_updated ON levels(updated_at DESC);
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

// SaveLevel stores code under name, replacing any level with that name.
// The code must parse and use only known tile and sprite codes.
func (s *Store) SaveLevel(name, code string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("storage: level name is empty")
	}
	layout, err := levels.Parse(code)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %q: %w", name, err)
	}
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("storage: cannot save level %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO levels (name, code, width, height) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   code = excluded.code,
		   width = excluded.width,
		   height = excluded.height,
		   updated_at = CURRENT_TIMESTAMP`,
		name, code, layout.Width, layout.Height,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %q: %w", name, err)
	}
	return nil
}

// LoadLevel retrieves a level by name.
func (s *Store) LoadLevel(name string) (LevelRecord, error) {
	var rec LevelRecord
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT name, code, width, height, created_at, updated_at
		 FROM levels
		 WHERE name = ?`,
		name,
	).Scan(&rec.Name, &rec.Code, &rec.Width, &rec.Height, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return LevelRecord{}, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	if err != nil {
		return LevelRecord{}, fmt.Errorf("storage: cannot query level: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	return rec, nil
}

// ListLevels retrieves all saved levels ordered by name.
func (s *Store) ListLevels() ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT name, code, width, height, created_at, updated_at
		 FROM levels
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		var rec LevelRecord
		var createdAt, updatedAt any
		if err := rows.Scan(&rec.Name, &rec.Code, &rec.Width, &rec.Height, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		rec.UpdatedAt = parseTime(updatedAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteLevel removes a level by name.
func (s *Store) DeleteLevel(name string) error {
	res, err := s.db.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	return nil
}

// parseTime reads a DATETIME column - handle both time.Time and string
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
