package tape

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the version of the tape schema this package writes.
const SchemaVersion = "1"

// SQLite is a tape stored in a SQLite database.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens or creates a tape at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tape (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expr TEXT NOT NULL,
			result TEXT NOT NULL,
			ok INTEGER NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}
	s := &SQLite{db: db}
	version, err := s.metadata("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadata("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported tape schema version: %s (expected %s)", version, SchemaVersion)
	}
	return s, nil
}

// Append adds an entry to the tape.
func (s *SQLite) Append(e Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.db.Exec(
		`INSERT INTO tape (expr, result, ok, at) VALUES (?, ?, ?, ?)`,
		e.Expr, e.Result, e.OK, e.At.UnixNano(),
	)
	if err != nil {
		return 0, err
	}
	return r.LastInsertId()
}

// Recent returns up to n of the latest entries, oldest first.
func (s *SQLite) Recent(n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT id, expr, result, ok, at FROM tape ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var r []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &e.Expr, &e.Result, &e.OK, &at); err != nil {
			return nil, err
		}
		e.At = time.Unix(0, at)
		r = append(r, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// metadata retrieves a metadata value. The caller must hold the lock or have
// exclusive access.
func (s *SQLite) metadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLite) setMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

var _ Store = (*SQLite)(nil)
