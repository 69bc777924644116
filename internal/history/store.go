// Package history persists browsing history in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gopherburrow/burrow/internal/domain"
	"github.com/gopherburrow/burrow/internal/history/migrations"
	"github.com/gopherburrow/burrow/internal/paths"
)

// Store wraps a SQLite database holding visits.
// It implements the domain.VisitStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// DBPath returns the default location of the history database.
func DBPath() string {
	return paths.HistoryDBPath()
}

// New creates a Store at the given database path.
// Runs migrations automatically.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with in-memory databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
// Use sparingly - prefer using Store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database
// and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record saves a visit. Revisiting a URL updates its timestamp, title
// and owning session instead of inserting a duplicate.
func (s *Store) Record(v domain.Visit) error {
	_, err := s.db.Exec(
		`INSERT INTO visits (session_id, url, title, item_type, visited_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(url)
		 DO UPDATE SET
			visited_at = excluded.visited_at,
			title = excluded.title,
			session_id = excluded.session_id`,
		v.Session.String(),
		v.URL,
		v.Title,
		string(v.ItemType),
		v.VisitedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns the most recent visits, newest first.
func (s *Store) Recent(limit int) ([]domain.Visit, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, url, title, item_type, visited_at
		 FROM visits
		 ORDER BY visited_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var visits []domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}

	return visits, rows.Err()
}

// Prune deletes all but the newest keep visits and returns how many
// were removed.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	res, err := s.db.Exec(
		`DELETE FROM visits
		 WHERE id NOT IN (
			SELECT id FROM visits
			ORDER BY visited_at DESC, id DESC
			LIMIT ?
		 )`,
		keep,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanVisit(rows *sql.Rows) (domain.Visit, error) {
	var (
		v         domain.Visit
		sessionID string
		itemType  string
		visitedAt string
	)

	if err := rows.Scan(&v.ID, &sessionID, &v.URL, &v.Title, &itemType, &visitedAt); err != nil {
		return domain.Visit{}, err
	}

	// Malformed session or timestamp data degrades to zero values
	// rather than failing the whole listing.
	if session, err := uuid.Parse(sessionID); err == nil {
		v.Session = session
	}
	if t, err := time.Parse(time.RFC3339, visitedAt); err == nil {
		v.VisitedAt = t
	}
	if itemType != "" {
		v.ItemType = itemType[0]
	}

	return v, nil
}

// Verify Store implements domain.VisitStore
var _ domain.VisitStore = (*Store)(nil)
