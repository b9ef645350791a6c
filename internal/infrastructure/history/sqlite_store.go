package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// timeLayout is fixed-width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init %s: %w", path, err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS launches (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		directory TEXT NOT NULL,
		command TEXT NOT NULL,
		terminal TEXT,
		outcome TEXT NOT NULL,
		detail TEXT
	);`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS launches_timestamp ON launches(timestamp)`)
	return err
}

// Save inserts a new record and drops the oldest beyond the retention cap.
func (s *SQLiteStore) Save(record domain.LaunchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO launches
		(id, timestamp, directory, command, terminal, outcome, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.UTC().Format(timeLayout),
		record.Directory,
		record.Command,
		record.Terminal,
		record.Outcome,
		record.Detail,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`DELETE FROM launches WHERE id NOT IN
		(SELECT id FROM launches ORDER BY timestamp DESC LIMIT ?)`, maxRecords)
	return err
}

// Records returns launch records, newest first. A limit <= 0 returns all.
func (s *SQLiteStore) Records(limit int) ([]domain.LaunchRecord, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, directory, command, terminal, outcome, detail FROM launches ORDER BY timestamp DESC")
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.LaunchRecord
	for rows.Next() {
		var rec domain.LaunchRecord
		var ts string
		var terminal, detail sql.NullString
		if err := rows.Scan(&rec.ID, &ts, &rec.Directory, &rec.Command, &terminal, &rec.Outcome, &detail); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Terminal = terminal.String
		rec.Detail = detail.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecentDirectories aggregates successful launches per directory.
func (s *SQLiteStore) RecentDirectories(limit int) ([]domain.DirectoryEntry, error) {
	query := `SELECT l.directory, MAX(l.timestamp) AS last_used, COUNT(*),
		(SELECT c.command FROM launches c
			WHERE c.directory = l.directory AND c.outcome = ?
			ORDER BY c.timestamp DESC LIMIT 1)
		FROM launches l
		WHERE l.outcome = ? AND l.directory != ''
		GROUP BY l.directory
		ORDER BY last_used DESC`
	args := []interface{}{domain.OutcomeSuccess, domain.OutcomeSuccess}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.DirectoryEntry
	for rows.Next() {
		var entry domain.DirectoryEntry
		var ts string
		if err := rows.Scan(&entry.Path, &ts, &entry.UsageCount, &entry.LastCommand); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, ts); err == nil {
			entry.LastUsed = t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM launches")
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
